package reldate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded lexicons and serves parse and extraction
// queries. The built-in locales are always present; lexicon files loaded
// from the configured directory overlay them, so a file declaring a
// built-in locale identifier shadows the built-in.
type Registry struct {
	mu          sync.RWMutex
	lexicons    map[string]*Lexicon
	lexiconsDir string
}

// NewRegistry creates a registry for the given lexicons directory. An empty
// directory path means built-ins only. The built-ins are available
// immediately; call Load to pick up lexicon files.
func NewRegistry(lexiconsDir string) *Registry {
	return &Registry{
		lexicons:    builtinSet(),
		lexiconsDir: lexiconsDir,
	}
}

// builtinSet copies the built-in map so loads can overlay it without
// touching the shared compiled lexicons.
func builtinSet() map[string]*Lexicon {
	m := make(map[string]*Lexicon, len(builtins))
	for id, lx := range builtins {
		m[id] = lx
	}
	return m
}

// Load scans the lexicons directory and loads every *.yaml/*.yml lexicon on
// top of the built-ins. A missing directory means built-ins only; any other
// error leaves the previously loaded set in place.
func (r *Registry) Load() error {
	newLex := builtinSet()

	if r.lexiconsDir != "" {
		entries, err := os.ReadDir(r.lexiconsDir)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read lexicons dir %s: %w", r.lexiconsDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if ext := filepath.Ext(entry.Name()); ext != ".yaml" && ext != ".yml" {
				continue
			}
			lx, err := LoadLexiconFile(filepath.Join(r.lexiconsDir, entry.Name()))
			if err != nil {
				return fmt.Errorf("load lexicon %s: %w", entry.Name(), err)
			}
			newLex[lx.locale] = lx
		}
	}

	r.mu.Lock()
	r.lexicons = newLex
	r.mu.Unlock()
	return nil
}

// Reload reloads all lexicons from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Lexicon returns the lexicon for a locale identifier, or
// ErrUnsupportedLocale.
func (r *Registry) Lexicon(locale string) (*Lexicon, error) {
	r.mu.RLock()
	lx, ok := r.lexicons[locale]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return lx, nil
}

// Parse matches text against the locale's lexicon.
func (r *Registry) Parse(text, locale string) (Expr, error) {
	lx, err := r.Lexicon(locale)
	if err != nil {
		return Expr{}, err
	}
	return lx.Match(text)
}

// Extract scans free text for every embedded expression using the locale's
// lexicon.
func (r *Registry) Extract(text, locale string) ([]Expr, error) {
	lx, err := r.Lexicon(locale)
	if err != nil {
		return nil, err
	}
	return lx.ExtractAll(text), nil
}

// LocaleInfo is the public metadata for a loaded lexicon.
type LocaleInfo struct {
	Locale    string `json:"locale"`
	Name      string `json:"name"`
	FirstDay  string `json:"first_day"`
	Phrases   int    `json:"phrases"`
	Templates int    `json:"templates"`
	Builtin   bool   `json:"builtin"`
}

// Locales returns metadata for all loaded lexicons, sorted by locale.
func (r *Registry) Locales() []LocaleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]LocaleInfo, 0, len(r.lexicons))
	for id, lx := range r.lexicons {
		infos = append(infos, LocaleInfo{
			Locale:    id,
			Name:      lx.name,
			FirstDay:  weekdayName(lx.firstDay),
			Phrases:   len(lx.phrases),
			Templates: len(lx.templates),
			Builtin:   builtins[id] == lx,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Locale < infos[j].Locale })
	return infos
}

// LocaleCount returns the number of loaded lexicons.
func (r *Registry) LocaleCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lexicons)
}

// TotalEntries returns the total number of phrases and templates across all
// loaded lexicons.
func (r *Registry) TotalEntries() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, lx := range r.lexicons {
		total += len(lx.phrases) + len(lx.templates)
	}
	return total
}
