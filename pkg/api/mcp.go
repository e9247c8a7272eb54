package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hazyhaar/quando/pkg/kit"
	"github.com/hazyhaar/quando/pkg/reldate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the quando MCP tools on the server. The tools
// dispatch to the same endpoints the HTTP routes use.
func RegisterMCPTools(srv *server.MCPServer, deps Deps) {
	registerParseDate(srv, deps)
	registerExtractDates(srv, deps)
	registerResolveDate(srv, deps)
	registerListLocales(srv, deps)
	registerListMisses(srv, deps)
}

func mcpRef(args map[string]any) (*time.Time, error) {
	v, _ := args["ref"].(string)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("ref must be a %s date", dateLayout)
	}
	return &t, nil
}

func registerParseDate(srv *server.MCPServer, deps Deps) {
	tool := mcp.NewTool("parse_date",
		mcp.WithDescription("Parse a natural-language relative date phrase (e.g. 'amanhã', 'in 3 days', 'próxima segunda') into a structured expression, optionally resolved against a reference date."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The phrase to parse")),
		mcp.WithString("locale", mcp.Required(), mcp.Description("Locale identifier (e.g. pt-BR, en)")),
		mcp.WithString("ref", mcp.Description("Reference date (YYYY-MM-DD) to also resolve the expression")),
	)

	kit.RegisterMCPTool(srv, tool, parseEndpoint(deps), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		locale, _ := args["locale"].(string)
		if text == "" || locale == "" {
			return nil, fmt.Errorf("text and locale are required")
		}
		ref, err := mcpRef(args)
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &parseRequest{Text: text, Locale: locale, Ref: ref}}, nil
	})
}

func registerExtractDates(srv *server.MCPServer, deps Deps) {
	tool := mcp.NewTool("extract_dates",
		mcp.WithDescription("Scan free text and extract every embedded relative date expression in order of appearance."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to scan")),
		mcp.WithString("locale", mcp.Required(), mcp.Description("Locale identifier (e.g. pt-BR, en)")),
		mcp.WithString("ref", mcp.Description("Reference date (YYYY-MM-DD) to also resolve the expressions")),
	)

	kit.RegisterMCPTool(srv, tool, extractEndpoint(deps), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		locale, _ := args["locale"].(string)
		if text == "" || locale == "" {
			return nil, fmt.Errorf("text and locale are required")
		}
		ref, err := mcpRef(args)
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &extractRequest{Text: text, Locale: locale, Ref: ref}}, nil
	})
}

func registerResolveDate(srv *server.MCPServer, deps Deps) {
	tool := mcp.NewTool("resolve_date",
		mcp.WithDescription("Resolve a previously parsed expression (JSON, as returned by parse_date) against a reference date."),
		mcp.WithString("expression", mcp.Required(), mcp.Description(`Expression JSON, e.g. {"kind":"offset_days","n":3}`)),
		mcp.WithString("ref", mcp.Required(), mcp.Description("Reference date (YYYY-MM-DD)")),
	)

	kit.RegisterMCPTool(srv, tool, resolveEndpoint(deps), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		raw, _ := args["expression"].(string)
		if raw == "" {
			return nil, fmt.Errorf("expression is required")
		}
		var expr reldate.Expr
		if err := json.Unmarshal([]byte(raw), &expr); err != nil {
			return nil, fmt.Errorf("invalid expression: %w", err)
		}
		ref, err := mcpRef(args)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, fmt.Errorf("ref is required")
		}
		return &kit.MCPDecodeResult{Request: &resolveRequest{Expression: expr, Ref: *ref}}, nil
	})
}

func registerListLocales(srv *server.MCPServer, deps Deps) {
	tool := mcp.NewTool("list_locales",
		mcp.WithDescription("List all loaded locales with metadata (name, first day of week, phrase and template counts)."),
	)

	kit.RegisterMCPTool(srv, tool, listLocalesEndpoint(deps), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}

func registerListMisses(srv *server.MCPServer, deps Deps) {
	tool := mcp.NewTool("list_misses",
		mcp.WithDescription("List the most frequent phrases that failed to parse, for lexicon gap analysis."),
		mcp.WithString("locale", mcp.Description("Filter by locale identifier")),
		mcp.WithString("outcome", mcp.Description("Filter by outcome (no_match, invalid_quantity)")),
		mcp.WithNumber("limit", mcp.Description("Maximum rows to return (default 50)")),
	)

	kit.RegisterMCPTool(srv, tool, listMissesEndpoint(deps), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		locale, _ := args["locale"].(string)
		outcome, _ := args["outcome"].(string)
		limit := 0
		if v, ok := args["limit"].(float64); ok {
			limit = int(v)
		}
		return &kit.MCPDecodeResult{Request: &missesRequest{Locale: locale, Outcome: outcome, Limit: limit}}, nil
	})
}
