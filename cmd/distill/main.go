package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/batch"
	"github.com/fwojciec/distill/htmltomarkdown"
	"github.com/fwojciec/distill/parse"
	"github.com/fwojciec/distill/readability"
	distillslog "github.com/fwojciec/distill/slog"
	"github.com/fwojciec/distill/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin supplies input for commands that read standard input.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ExtractionService distill.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("distill"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'distill --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the extraction pipeline
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extractor := readability.NewExtractor()
	deps.Readability = extractor
	deps.Parser = &parse.Parser{Extractor: distillslog.NewLoggingExtractor(extractor, logger)}
	deps.Converter = htmltomarkdown.NewConverter()

	// Open the database only for commands that touch recorded extractions
	if cmd == "batch" || cmd == "results" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DISTILL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ExtractionService = sqlite.NewExtractionService(m.DB)
		deps.DB = m.DB
		deps.Extractions = m.ExtractionService
	}

	if cmd == "batch" {
		deps.Runner = &batch.Runner{
			Parser:      deps.Parser,
			Extractions: m.ExtractionService,
			BaseURL:     cli.Batch.URL,
			Concurrency: cli.Batch.Concurrency,
		}
		if cli.Batch.Markdown {
			deps.Runner.Converter = deps.Converter
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DISTILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "distill.db"
	}
	dir := filepath.Join(home, ".distill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "distill.db")
}
