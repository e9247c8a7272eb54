// CLAUDE:SUMMARY CLI subcommand that calls an MCP tool on a running server over the QUIC transport.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hazyhaar/quando/pkg/mcpquic"
	"github.com/mark3labs/mcp-go/mcp"
)

func cmdCall(args []string) {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8421", "server address (UDP/QUIC)")
	insecure := fs.Bool("insecure", true, "skip TLS verification (dev self-signed certs)")
	toolArgs := fs.String("args", "", "tool arguments as a JSON object")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: quando call [--addr HOST:PORT] [--args JSON] <tool>")
		fmt.Fprintln(os.Stderr, "\ntools: parse_date, extract_dates, resolve_date, list_locales, list_misses")
		os.Exit(1)
	}
	tool := fs.Arg(0)

	var callArgs map[string]any
	if *toolArgs != "" {
		if err := json.Unmarshal([]byte(*toolArgs), &callArgs); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --args: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := mcpquic.NewClient(*addr, mcpquic.ClientTLSConfig(*insecure))
	if err := client.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer client.Close()

	result, err := client.CallTool(ctx, tool, callArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call %s: %v\n", tool, err)
		os.Exit(1)
	}

	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
	if result.IsError {
		os.Exit(1)
	}
}
