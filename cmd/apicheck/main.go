package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apicheck"
	"github.com/fwojciec/apicheck/check"
	"github.com/fwojciec/apicheck/fs"
	"github.com/fwojciec/apicheck/goquery"
	"github.com/fwojciec/apicheck/html"
	apicheckhttp "github.com/fwojciec/apicheck/http"
	"github.com/fwojciec/apicheck/rustdoc"
	aslog "github.com/fwojciec/apicheck/slog"
	"github.com/fwojciec/apicheck/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrGapsFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db and APICHECK_DB are unset.
	DBPath string

	// SQLite database backing the run history. Only opened by commands
	// that read or record runs.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Kong calls Exit after printing help; the selected command must not run.
	helped := false

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("apicheck"),
		kong.Description("Check a crate's API against the rustdoc pages it re-implements"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Bind(deps),
		Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'apicheck --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}
	command := kongCtx.Selected().Name

	logger := newLogger(stderr, cli.Verbose)

	info, err := fs.LoadInfo(cli.Info)
	if err != nil {
		// History is readable without a configuration file.
		if command != "history" || apicheck.ErrorCode(err) != apicheck.ENOTFOUND {
			fmt.Fprintln(stderr, "Hint: Use --info or APICHECK_INFO to point at the checker configuration")
			return err
		}
	}
	deps.Info = info

	if command == "history" || (command == "diff" && cli.Diff.Record) {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		if err := m.openDB(path); err != nil {
			fmt.Fprintln(stderr, "Hint: Set APICHECK_DB to use a different database path")
			return err
		}
		defer m.Close()
		deps.Runs = aslog.NewLoggingRunService(sqlite.NewRunService(m.DB), logger)
	}

	if info != nil {
		reference := aslog.NewLoggingFetcher(apicheckhttp.NewFetcher(apicheckhttp.WithTimeout(cli.Timeout)), logger)
		defer reference.Close()
		local := aslog.NewLoggingFetcher(fs.NewCrateFetcher(cli.DocRoot, info.Name), logger)
		defer local.Close()

		deps.Checker = &check.Checker{
			Reference:   reference,
			Local:       local,
			Parser:      aslog.NewLoggingParser(html.NewParser(), logger),
			Extractor:   aslog.NewLoggingExtractor(rustdoc.NewExtractor(), logger),
			Detector:    goquery.NewDetector(),
			RateLimiter: check.NewHostLimiter(cli.Rate),
			Crate:       info.Name,
			RetryDelays: check.DefaultRetryDelays(),
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// newLogger returns a debug logger writing to w when verbose is set and a
// discarding logger otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".apicheck", "history.db")
}
