package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazyhaar/quando/pkg/journal"
	"github.com/hazyhaar/quando/pkg/kit"
	"github.com/hazyhaar/quando/pkg/reldate"
)

// Deps are the collaborators behind the API. Journal and Recorder are
// optional: without them /v1/misses reports an empty set and failed parses
// are not journaled.
type Deps struct {
	Registry *reldate.Registry
	Journal  *journal.DB
	Recorder *journal.Recorder
}

// dateLayout is the wire form of all dates: calendar day, no time-of-day.
const dateLayout = "2006-01-02"

// Shared request/response types used by both HTTP and MCP transports.

type parseRequest struct {
	Text   string
	Locale string
	Ref    *time.Time
}

type parseResponse struct {
	Expression reldate.Expr `json:"expression"`
	Resolved   string       `json:"resolved,omitempty"`
}

type extractRequest struct {
	Text   string
	Locale string
	Ref    *time.Time
}

type extractResponse struct {
	Expressions []reldate.Expr `json:"expressions"`
	Resolved    []string       `json:"resolved,omitempty"`
}

type resolveRequest struct {
	Expression reldate.Expr
	Ref        time.Time
}

type resolveResponse struct {
	Date string `json:"date"`
}

type missesRequest struct {
	Locale  string
	Outcome string
	Limit   int
}

type missesResponse struct {
	Misses []journal.Miss `json:"misses"`
}

type localesResponse struct {
	Locales []reldate.LocaleInfo `json:"locales"`
}

// outcomeOf maps a parse failure to its journal outcome; locale errors and
// anything unexpected are not journaled.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, reldate.ErrInvalidQuantity):
		return journal.OutcomeInvalidQuantity
	case errors.Is(err, reldate.ErrNoMatch):
		return journal.OutcomeNoMatch
	}
	return ""
}

func (d Deps) journalMiss(text, locale string, err error) {
	if d.Recorder == nil {
		return
	}
	if outcome := outcomeOf(err); outcome != "" {
		d.Recorder.Record(reldate.Normalize(text), locale, outcome)
	}
}

// Endpoints returns the kit.Endpoints backed by the registry and journal.

func parseEndpoint(d Deps) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*parseRequest)
		expr, err := d.Registry.Parse(req.Text, req.Locale)
		if err != nil {
			d.journalMiss(req.Text, req.Locale, err)
			return nil, err
		}
		resp := parseResponse{Expression: expr}
		if req.Ref != nil {
			resp.Resolved = reldate.Resolve(expr, *req.Ref).Format(dateLayout)
		}
		return resp, nil
	}
}

func extractEndpoint(d Deps) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*extractRequest)
		exprs, err := d.Registry.Extract(req.Text, req.Locale)
		if err != nil {
			return nil, err
		}
		if len(exprs) == 0 {
			// Whole-text extraction with nothing found is a lexicon gap too.
			d.journalMiss(req.Text, req.Locale, reldate.ErrNoMatch)
		}
		resp := extractResponse{Expressions: exprs}
		if req.Ref != nil {
			resp.Resolved = make([]string, len(exprs))
			for i, e := range exprs {
				resp.Resolved[i] = reldate.Resolve(e, *req.Ref).Format(dateLayout)
			}
		}
		return resp, nil
	}
}

func resolveEndpoint(_ Deps) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*resolveRequest)
		return resolveResponse{Date: reldate.Resolve(req.Expression, req.Ref).Format(dateLayout)}, nil
	}
}

func listLocalesEndpoint(d Deps) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return localesResponse{Locales: d.Registry.Locales()}, nil
	}
}

func listMissesEndpoint(d Deps) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*missesRequest)
		if d.Journal == nil {
			return missesResponse{Misses: []journal.Miss{}}, nil
		}
		misses, err := d.Journal.Top(req.Locale, req.Outcome, req.Limit)
		if err != nil {
			return nil, fmt.Errorf("journal query: %w", err)
		}
		if misses == nil {
			misses = []journal.Miss{}
		}
		return missesResponse{Misses: misses}, nil
	}
}
