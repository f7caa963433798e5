package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docskill"
	main "github.com/fwojciec/docskill/cmd/docskill"
	"github.com/fwojciec/docskill/crawl"
	"github.com/fwojciec/docskill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singlePageCrawler returns a crawler that sees one page with no links.
func singlePageCrawler() *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<h1>Docs</h1>", nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractLinksFn: func(string) ([]string, string, error) {
				return nil, "", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*docskill.ExtractResult, error) {
				return &docskill.ExtractResult{Title: "Docs", ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "# Docs\n", nil
			},
		},
	}
}

func testDeps(ctx context.Context, stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Crawler: singlePageCrawler(),
		Names: &mock.NameResolver{
			ResolveFn: func(context.Context, string) (*docskill.SkillIdentity, error) {
				return docskill.NewSkillIdentity("example", "example"), nil
			},
		},
		Generator: &mock.DocumentGenerator{
			GenerateFn: func(context.Context, *docskill.SkillIdentity, string, []*docskill.Page) (*docskill.SkillDocument, error) {
				return &docskill.SkillDocument{Content: "# Skill\n"}, nil
			},
		},
		Assembler: &mock.Assembler{
			AssembleFn: func(_ context.Context, name string, _ []*docskill.Page, _ *docskill.SkillDocument) (string, error) {
				return "/out/" + name, nil
			},
		},
	}
}

func TestSkillCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("assembles crawled pages with generated document", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)

		var gotName string
		var gotPages []*docskill.Page
		var gotDoc *docskill.SkillDocument
		deps.Assembler = &mock.Assembler{
			AssembleFn: func(_ context.Context, name string, pages []*docskill.Page, doc *docskill.SkillDocument) (string, error) {
				gotName, gotPages, gotDoc = name, pages, doc
				return "/out/" + name, nil
			},
		}

		err := (&main.SkillCmd{URL: "https://docs.example.com/"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "use-example", gotName)
		require.Len(t, gotPages, 1)
		assert.Equal(t, "index.md", gotPages[0].Filename)
		require.NotNil(t, gotDoc)
		assert.Equal(t, "# Skill\n", gotDoc.Content)
		assert.Contains(t, stdout.String(), "Saved 1 pages")
		assert.Contains(t, stdout.String(), "Wrote /out/use-example")
	})

	t.Run("generation failure is reported and not fatal", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)
		deps.Generator = &mock.DocumentGenerator{
			GenerateFn: func(context.Context, *docskill.SkillIdentity, string, []*docskill.Page) (*docskill.SkillDocument, error) {
				return nil, docskill.Errorf(docskill.ERATELIMIT, "rate limited by provider")
			},
		}
		var gotDoc *docskill.SkillDocument
		deps.Assembler = &mock.Assembler{
			AssembleFn: func(_ context.Context, name string, _ []*docskill.Page, doc *docskill.SkillDocument) (string, error) {
				gotDoc = doc
				return "/out/" + name, nil
			},
		}

		err := (&main.SkillCmd{URL: "https://docs.example.com/"}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, gotDoc)
		assert.Contains(t, stdout.String(), "SKILL.md not generated: rate limited by provider")
	})

	t.Run("name cleanup failure is reported", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)
		deps.Names = &mock.NameResolver{
			ResolveFn: func(context.Context, string) (*docskill.SkillIdentity, error) {
				id := docskill.NewSkillIdentity("getfoo", "getfoo")
				id.CleanupErr = docskill.Errorf(docskill.ENOTCONFIGURED, "no LLM provider configured")
				return id, nil
			},
		}

		err := (&main.SkillCmd{URL: "https://getfoo.com/"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Skill name: use-getfoo (name cleanup skipped: no LLM provider configured)")
	})

	t.Run("cleaned name is reported", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)
		deps.Names = &mock.NameResolver{
			ResolveFn: func(context.Context, string) (*docskill.SkillIdentity, error) {
				return docskill.NewSkillIdentity("getfoo", "foo"), nil
			},
		}

		err := (&main.SkillCmd{URL: "https://getfoo.com/"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Skill name: use-foo (cleaned from "getfoo")`)
	})

	t.Run("assembly failure is fatal", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)
		deps.Assembler = &mock.Assembler{
			AssembleFn: func(context.Context, string, []*docskill.Page, *docskill.SkillDocument) (string, error) {
				return "", docskill.Errorf(docskill.EINTERNAL, "disk full")
			},
		}

		err := (&main.SkillCmd{URL: "https://docs.example.com/"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "assemble:")
		assert.Equal(t, docskill.EINTERNAL, docskill.ErrorCode(err))
		assert.Contains(t, stderr.String(), "disk full")
	})

	t.Run("invalid seed aborts before naming", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(context.Background(), &stdout, &stderr)
		deps.Names = &mock.NameResolver{
			ResolveFn: func(context.Context, string) (*docskill.SkillIdentity, error) {
				t.Error("Resolve should not be called")
				return nil, nil
			},
		}

		err := (&main.SkillCmd{URL: "mailto:someone@example.com"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docskill.EINVALID, docskill.ErrorCode(err))
	})

	t.Run("cancelled crawl still writes collected pages", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(ctx, &stdout, &stderr)
		deps.Generator = &mock.DocumentGenerator{
			GenerateFn: func(context.Context, *docskill.SkillIdentity, string, []*docskill.Page) (*docskill.SkillDocument, error) {
				t.Error("Generate should not be called")
				return nil, nil
			},
		}
		var assembleErr error
		deps.Assembler = &mock.Assembler{
			AssembleFn: func(ctx context.Context, name string, _ []*docskill.Page, _ *docskill.SkillDocument) (string, error) {
				assembleErr = ctx.Err()
				return "/out/" + name, nil
			},
		}

		err := (&main.SkillCmd{URL: "https://docs.example.com/"}).Run(deps)

		require.NoError(t, err)
		assert.NoError(t, assembleErr)
		assert.Contains(t, stdout.String(), "crawl interrupted")
	})
}

func TestCLI_ProviderConfig(t *testing.T) {
	t.Parallel()

	t.Run("flags take precedence over env file", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Provider: "openai", APIKey: "sk-flag"}
		env := map[string]string{"LLM_PROVIDER": "anthropic", "LLM_API_KEY": "sk-file", "LLM_MODEL": "gpt-test"}

		cfg, err := cli.ProviderConfig(env)

		require.NoError(t, err)
		assert.Equal(t, docskill.ProviderOpenAI, cfg.Kind)
		assert.Equal(t, "sk-flag", cfg.APIKey)
		assert.Equal(t, "gpt-test", cfg.Model)
		assert.NotEmpty(t, cfg.Endpoint)
	})

	t.Run("missing key resolves to none", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Provider: "anthropic"}

		cfg, err := cli.ProviderConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, docskill.ProviderNone, cfg.Kind)
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}

		cfg, err := cli.ProviderConfig(map[string]string{"LLM_PROVIDER": "ollama"})

		require.NoError(t, err)
		assert.Equal(t, docskill.ProviderOllama, cfg.Kind)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Provider: "skynet"}

		_, err := cli.ProviderConfig(nil)

		assert.Equal(t, docskill.EINVALID, docskill.ErrorCode(err))
	})
}
