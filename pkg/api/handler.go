package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hazyhaar/quando/pkg/kit"
	"github.com/hazyhaar/quando/pkg/reldate"
)

// NewRouter returns an http.Handler with all quando API routes.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		parse:       parseEndpoint(deps),
		extract:     extractEndpoint(deps),
		resolve:     resolveEndpoint(deps),
		listLocales: listLocalesEndpoint(deps),
		listMisses:  listMissesEndpoint(deps),
		deps:        deps,
	}

	mux.HandleFunc("GET /v1/parse", h.handleParse)
	mux.HandleFunc("POST /v1/extract", h.handleExtract)
	mux.HandleFunc("GET /v1/extract", methodNotAllowed) // body required
	mux.HandleFunc("POST /v1/resolve", h.handleResolve)
	mux.HandleFunc("GET /v1/locales", h.handleListLocales)
	mux.HandleFunc("GET /v1/misses", h.handleListMisses)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	parse       kit.Endpoint
	extract     kit.Endpoint
	resolve     kit.Endpoint
	listLocales kit.Endpoint
	listMisses  kit.Endpoint
	deps        Deps
}

// --- parse ---

func (h *handler) handleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text", "")
		return
	}
	locale := q.Get("locale")
	if locale == "" {
		writeError(w, http.StatusBadRequest, "missing locale", "")
		return
	}
	ref, err := parseRef(q.Get("ref"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	resp, err := h.parse(r.Context(), &parseRequest{Text: text, Locale: locale, Ref: ref})
	if err != nil {
		writeParseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- extract ---

type httpExtractRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
	Ref    string `json:"ref,omitempty"`
}

func (h *handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}
	if req.Text == "" || req.Locale == "" {
		writeError(w, http.StatusBadRequest, "text and locale are required", "")
		return
	}
	ref, err := parseRef(req.Ref)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	resp, err := h.extract(r.Context(), &extractRequest{Text: req.Text, Locale: req.Locale, Ref: ref})
	if err != nil {
		writeParseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- resolve ---

type httpResolveRequest struct {
	Expression json.RawMessage `json:"expression"`
	Ref        string          `json:"ref"`
}

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	var req httpResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "")
		return
	}
	if len(req.Expression) == 0 {
		writeError(w, http.StatusBadRequest, "missing expression", "")
		return
	}
	var expr reldate.Expr
	if err := json.Unmarshal(req.Expression, &expr); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid expression: %v", err), "")
		return
	}
	if req.Ref == "" {
		writeError(w, http.StatusBadRequest, "missing ref", "")
		return
	}
	ref, err := parseRef(req.Ref)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	resp, err := h.resolve(r.Context(), &resolveRequest{Expression: expr, Ref: *ref})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- locales ---

func (h *handler) handleListLocales(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listLocales(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- misses ---

func (h *handler) handleListMisses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = n
	}

	resp, err := h.listMisses(r.Context(), &missesRequest{
		Locale:  q.Get("locale"),
		Outcome: q.Get("outcome"),
		Limit:   limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status       string `json:"status"`
	Locales      int    `json:"locales"`
	TotalEntries int    `json:"total_entries"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Locales:      h.deps.Registry.LocaleCount(),
		TotalEntries: h.deps.Registry.TotalEntries(),
	})
}

// --- helpers ---

func parseRef(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("ref must be a %s date", dateLayout)
	}
	return &t, nil
}

// writeParseError maps the parse error taxonomy to HTTP statuses: an unknown
// locale is a bad request, unparseable input is 422 with a machine-readable
// reason so clients can distinguish lexicon gaps from bad quantities.
func writeParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reldate.ErrUnsupportedLocale):
		writeError(w, http.StatusBadRequest, err.Error(), "unsupported_locale")
	case errors.Is(err, reldate.ErrInvalidQuantity):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "invalid_quantity")
	case errors.Is(err, reldate.ErrNoMatch):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "no_match")
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), "")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg, reason string) {
	body := map[string]string{"error": msg}
	if reason != "" {
		body["reason"] = reason
	}
	writeJSON(w, code, body)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
