package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hazyhaar/quando/pkg/api"
	"github.com/hazyhaar/quando/pkg/chassis"
	"github.com/hazyhaar/quando/pkg/journal"
	"github.com/hazyhaar/quando/pkg/reldate"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

const version = "1.0.0"

type config struct {
	Addr        string `yaml:"addr"`
	LexiconsDir string `yaml:"lexicons_dir"`
	JournalPath string `yaml:"journal_path"`
	CertFile    string `yaml:"cert_file"`
	KeyFile     string `yaml:"key_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "parse":
		cmdParse(os.Args[2:])
	case "extract":
		cmdExtract(os.Args[2:])
	case "misses":
		cmdMisses(os.Args[2:])
	case "call":
		cmdCall(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: quando <command>

Commands:
  serve     Start the server (HTTP/1.1+HTTP/2+HTTP/3 and MCP over QUIC; --stdio for MCP on stdin/stdout)
  parse     Parse one relative date phrase and print the expression
  extract   Extract every relative date expression from free text
  misses    List the most frequent phrases that failed to parse
  call      Call an MCP tool on a running server over QUIC
`)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// --- serve ---

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	stdio := fs.Bool("stdio", false, "serve MCP on stdin/stdout instead of the network chassis")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	reg := reldate.NewRegistry(cfg.LexiconsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load lexicons", "error", err)
		os.Exit(1)
	}
	logger.Info("lexicons loaded", "locales", reg.LocaleCount(), "entries", reg.TotalEntries())

	deps := api.Deps{Registry: reg}
	if cfg.JournalPath != "" {
		db, err := journal.Open(cfg.JournalPath)
		if err != nil {
			logger.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		rec := journal.NewRecorder(db, 256, logger)
		defer rec.Close()
		deps.Journal = db
		deps.Recorder = rec
		logger.Info("miss journal enabled", "path", cfg.JournalPath)
	}

	mcpSrv := server.NewMCPServer("quando", version)
	api.RegisterMCPTools(mcpSrv, deps)

	if *stdio {
		logger.Info("serving MCP on stdio")
		if err := server.ServeStdio(mcpSrv); err != nil {
			logger.Error("stdio server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   api.NewRouter(deps),
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("chassis init failed", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload lexicons.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading lexicons")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("lexicons reloaded", "locales", reg.LocaleCount(), "entries", reg.TotalEntries())
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Stop(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:        ":8421",
		LexiconsDir: "lexicons",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}

// --- parse / extract ---

func refFlag(fs *flag.FlagSet) *string {
	return fs.String("ref", time.Now().Format("2006-01-02"), "reference date (YYYY-MM-DD)")
}

func parseRefArg(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --ref %q: expected YYYY-MM-DD\n", s)
		os.Exit(1)
	}
	return t
}

func cmdParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	locale := fs.String("locale", "pt-BR", "locale identifier")
	ref := refFlag(fs)
	fs.Parse(args)

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: quando parse [--locale L] [--ref DATE] <phrase>")
		os.Exit(1)
	}

	expr, err := reldate.Parse(text, *locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	refDate := parseRefArg(*ref)
	out := struct {
		Expression reldate.Expr `json:"expression"`
		Resolved   string       `json:"resolved"`
	}{expr, reldate.Resolve(expr, refDate).Format("2006-01-02")}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func cmdExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	locale := fs.String("locale", "pt-BR", "locale identifier")
	ref := refFlag(fs)
	fs.Parse(args)

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: quando extract [--locale L] [--ref DATE] <text>")
		os.Exit(1)
	}

	exprs, err := reldate.Extract(text, *locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract failed: %v\n", err)
		os.Exit(1)
	}

	refDate := parseRefArg(*ref)
	type row struct {
		Expression reldate.Expr `json:"expression"`
		Resolved   string       `json:"resolved"`
	}
	rows := make([]row, len(exprs))
	for i, e := range exprs {
		rows[i] = row{e, reldate.Resolve(e, refDate).Format("2006-01-02")}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(rows)
}

// --- misses ---

func cmdMisses(args []string) {
	fs := flag.NewFlagSet("misses", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	locale := fs.String("locale", "", "filter by locale")
	outcome := fs.String("outcome", "", "filter by outcome (no_match, invalid_quantity)")
	limit := fs.Int("limit", 20, "maximum rows")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)
	if cfg.JournalPath == "" {
		fmt.Fprintln(os.Stderr, "no journal_path configured; enable the miss journal in config.yaml first")
		os.Exit(1)
	}

	db, err := journal.Open(cfg.JournalPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open journal: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	misses, err := db.Top(*locale, *outcome, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query journal: %v\n", err)
		os.Exit(1)
	}

	if len(misses) == 0 {
		fmt.Println("no misses recorded")
		return
	}
	fmt.Printf("%-6s  %-8s  %-18s  %-19s  %s\n", "COUNT", "LOCALE", "OUTCOME", "LAST SEEN", "PHRASE")
	for _, m := range misses {
		last := time.Unix(m.LastSeen, 0).Format("2006-01-02 15:04:05")
		fmt.Printf("%-6d  %-8s  %-18s  %-19s  %s\n", m.Count, m.Locale, m.Outcome, last, m.Phrase)
	}
}
