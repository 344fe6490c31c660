package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jwnews"
	"github.com/fwojciec/jwnews/goquery"
	"github.com/fwojciec/jwnews/htmltomarkdown"
	jwhttp "github.com/fwojciec/jwnews/http"
	"github.com/fwojciec/jwnews/readability"
	"github.com/fwojciec/jwnews/reader"
	"github.com/fwojciec/jwnews/rod"
	"github.com/fwojciec/jwnews/trafilatura"
	jwzerolog "github.com/fwojciec/jwnews/zerolog"
	"github.com/rs/zerolog"
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
	// Fetcher and Extractor override the collaborators Run wires from
	// command flags. Set before calling Run() for end-to-end testing.
	Fetcher   jwnews.Fetcher
	Extractor jwnews.ArticleExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jwnews"),
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
		return fmt.Errorf("no command specified. Run 'jwnews --help' to see available commands")
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

	// Logs go to stderr so stdout stays clean for article output.
	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	deps.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	// Both commands fetch and extract; resolve the shared settings from
	// whichever command was invoked.
	browser, timeout, engine := cli.Extract.Browser, cli.Extract.Timeout, cli.Extract.Engine
	if strings.HasPrefix(kongCtx.Command(), "serve") {
		browser, timeout, engine = cli.Serve.Browser, cli.Serve.Timeout, cli.Serve.Engine
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if browser {
			f, err := rod.NewFetcher(rod.WithTimeout(timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = jwhttp.NewFetcher(jwhttp.WithTimeout(timeout))
		}
		defer fetcher.Close()
	}

	extractor := m.Extractor
	if extractor == nil {
		var fallback jwnews.Extractor = readability.NewExtractor()
		if engine == "trafilatura" {
			fallback = trafilatura.NewExtractor()
		}
		extractor = goquery.NewArticleExtractor(fallback, htmltomarkdown.NewConverter())
	}

	// Wire core services into dependencies
	deps.Reader = &reader.Service{
		Fetcher:     jwzerolog.NewLoggingFetcher(fetcher, deps.Logger),
		Articles:    extractor,
		Concurrency: cli.Extract.Concurrency,
	}
	deps.Articles = jwzerolog.NewLoggingArticleService(deps.Reader, deps.Logger)

	return kongCtx.Run(deps)
}
