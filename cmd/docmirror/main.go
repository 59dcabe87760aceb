package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/fwojciec/docmirror/htmltomarkdown"
	mirrorhttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/mirror"
	mirrorslog "github.com/fwojciec/docmirror/slog"
	"github.com/fwojciec/docmirror/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror a documentation site to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cli)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	fetcher := mirrorslog.NewLoggingFetcher(
		mirrorhttp.NewFetcher(mirrorhttp.WithTimeout(timeout)),
		logger,
	)
	sitemaps := mirrorslog.NewLoggingSitemapService(mirrorhttp.NewSitemapService(nil), logger)
	nav := mirrorslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), goquery.NewDetector(), logger)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Config:   cfg,
		Sitemaps: sitemaps,
		Fetcher:  fetcher,
		Nav:      nav,
	}

	if !cli.Preview {
		deps.Mirror = &mirror.Mirror{
			Config:    cfg,
			Sitemaps:  sitemaps,
			Nav:       nav,
			Fetcher:   fetcher,
			Extractor: trafilatura.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Store:     fs.NewStore(".", cfg.OutputDir, cfg.IndexFile),
			Limiter:   mirror.NewDomainLimiter(1.0),
			Logger:    logger,
		}
	}

	cmd := &MirrorCmd{Preview: cli.Preview}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Preview     bool          `short:"p" help:"Preview discovered URLs and their categories without saving"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent download limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Download timeout per document"`
	Out         string        `default:"docs" help:"Output directory for mirrored documents"`
	Index       string        `default:"index.md" help:"Index file written next to the output directory"`
	Title       string        `help:"Index title (default: site host)"`
	Description string        `help:"Index description"`
	Sitemap     string        `help:"Sitemap URL (default: <origin>/sitemap.xml)"`
	Nav         string        `help:"Navigation page URL (default: the docs URL)"`
	URL         string        `arg:"" required:"" help:"Documentation base URL to mirror"`
}

// buildConfig derives the run configuration from parsed flags. The docs URL
// supplies the site origin, the sitemap path-prefix filter, and defaults for
// the sitemap and navigation URLs.
func buildConfig(cli *CLI) (docmirror.Config, error) {
	parsed, err := url.Parse(cli.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return docmirror.Config{}, fmt.Errorf("invalid docs URL %q", cli.URL)
	}

	origin := parsed.Scheme + "://" + parsed.Host

	sitemapURL := cli.Sitemap
	if sitemapURL == "" {
		sitemapURL = origin + "/sitemap.xml"
	}

	navURL := cli.Nav
	if navURL == "" {
		navURL = cli.URL
	}

	title := cli.Title
	if title == "" {
		title = parsed.Host
	}

	return docmirror.Config{
		SitemapURL:  sitemapURL,
		NavURL:      navURL,
		BaseURL:     origin,
		PathPrefix:  cli.URL,
		OutputDir:   cli.Out,
		IndexFile:   cli.Index,
		Title:       title,
		Description: cli.Description,
		Concurrency: cli.Concurrency,
		Timeout:     cli.Timeout,
	}, nil
}
