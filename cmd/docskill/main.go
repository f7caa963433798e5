package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/crawl"
	"github.com/fwojciec/docskill/fs"
	"github.com/fwojciec/docskill/goquery"
	"github.com/fwojciec/docskill/htmltomarkdown"
	dshttp "github.com/fwojciec/docskill/http"
	"github.com/fwojciec/docskill/readability"
	"github.com/fwojciec/docskill/skill"
	dsslog "github.com/fwojciec/docskill/slog"
	"github.com/fwojciec/docskill/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Gateway replaces the provider-selected gateway. Set before calling
	// Run() for end-to-end testing.
	Gateway docskill.Gateway

	// Now stamps the crawl date into resource frontmatter.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docskill"),
		kong.Description("Crawl a documentation site into an agent skill bundle"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided. Run 'docskill --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Reject a bad seed before touching the provider or the filesystem.
	if _, err := crawl.Scope(cli.URL); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", docskill.ErrorMessage(err))
		return err
	}

	// Configuration problems only cost the LLM steps, never the crawl.
	env, err := readEnvFile(cli.EnvFile)
	if err != nil {
		fmt.Fprintf(stderr, "warning: ignoring env file %q: %v\n", cli.EnvFile, err)
	}

	provider, err := cli.ProviderConfig(env)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %s; continuing without a language model\n", docskill.ErrorMessage(err))
		provider = docskill.ProviderConfig{Kind: docskill.ProviderNone}
	}

	logger := dsslog.NewLogger(stderr, cli.Verbose)
	logger.Debug("starting", "url", cli.URL, "provider", provider.String(), "all_domains", cli.AllDomains)

	gateway := m.Gateway
	if gateway == nil {
		gateway, err = newGateway(ctx, provider)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s; continuing without a language model\n", docskill.ErrorMessage(err))
			gateway = docskill.NopGateway{}
		}
	}
	gateway = dsslog.NewLoggingGateway(gateway, provider, logger)

	fetcher := dshttp.NewFetcher(
		dshttp.WithTimeout(cli.Timeout),
		dshttp.WithRetryDelays(dshttp.DefaultRetryDelays(cli.Retries)),
		dshttp.WithRetryLog(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer fetcher.Close()

	var assemblerOpts []fs.Option
	if cli.Output != "" {
		assemblerOpts = append(assemblerOpts, fs.WithDir(cli.Output))
	}
	assembler := fs.NewAssembler(DefaultOutputRoot, assemblerOpts...)
	if m.Now != nil {
		assembler.Now = m.Now
	}

	resolver := &skill.Resolver{Gateway: gateway}
	if len(cli.Prefix) > 0 {
		resolver.Prefixes = cli.Prefix
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Fetcher:        dsslog.NewLoggingFetcher(fetcher, logger),
			Extractor:      newExtractor(cli.Extractor),
			Converter:      htmltomarkdown.NewConverter(),
			Links:          goquery.NewLinkExtractor(),
			RateLimiter:    crawl.NewDomainLimiter(cli.Rate),
			AllDomains:     cli.AllDomains,
			MaxPages:       cli.MaxPages,
			SkipDuplicates: cli.SkipDuplicates,
		},
		Names:     dsslog.NewLoggingNameResolver(resolver, logger),
		Generator: dsslog.NewLoggingDocumentGenerator(&skill.Generator{Gateway: gateway}, logger),
		Assembler: dsslog.NewLoggingAssembler(assembler, logger),
	}

	if provider.Kind == docskill.ProviderNone {
		fmt.Fprintln(stderr, "note: no LLM provider configured; set LLM_PROVIDER and LLM_API_KEY to generate SKILL.md")
	}

	cmd := &SkillCmd{URL: cli.URL}
	return cmd.Run(deps)
}

// DefaultOutputRoot is the parent of the bundle directory when no output
// folder is given.
const DefaultOutputRoot = ".."

func newExtractor(name string) docskill.Extractor {
	switch name {
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	case ExtractorReadability:
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// readEnvFile returns the variables defined in path. A missing file is not
// an error.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return env, nil
}
