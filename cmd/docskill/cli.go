package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/crawl"
)

// Extractor names accepted by --extractor.
const (
	ExtractorStrip       = "strip"
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Crawler   *crawl.Crawler
	Names     docskill.NameResolver
	Generator docskill.DocumentGenerator
	Assembler docskill.Assembler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" required:"" help:"Documentation URL to crawl"`

	AllDomains     bool          `help:"Follow links to other hosts"`
	Output         string        `short:"o" help:"Output folder (default: ../<skill-name>)"`
	MaxPages       int           `help:"Stop after saving this many pages (0 = no limit)"`
	Timeout        time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries        int           `default:"0" help:"Retries for transient fetch failures"`
	Rate           float64       `default:"0" help:"Requests per second per host (0 = unlimited)"`
	Extractor      string        `default:"strip" enum:"strip,trafilatura,readability" help:"Main content extractor (strip, trafilatura, readability)"`
	SkipDuplicates bool          `default:"true" negatable:"" help:"Save pages with identical content only once"`
	Prefix         []string      `help:"Marketing prefix stripped from the domain name (repeatable, replaces the defaults)"`
	EnvFile        string        `default:".env" help:"File with LLM_* variables"`
	Verbose        bool          `short:"v" help:"Log debug output to stderr"`

	Provider string `env:"LLM_PROVIDER" help:"LLM provider (anthropic, openai, gemini, grok, openrouter, ollama, none)"`
	APIKey   string `env:"LLM_API_KEY" help:"API key for the LLM provider"`
	Model    string `env:"LLM_MODEL" help:"Model name (default depends on provider)"`
	Endpoint string `env:"LLM_ENDPOINT" help:"Override the provider's API endpoint"`
}

// ProviderConfig resolves the LLM settings. Flags and the process
// environment take precedence over values read from the env file.
func (c *CLI) ProviderConfig(env map[string]string) (docskill.ProviderConfig, error) {
	kind, err := docskill.ParseProviderKind(orEnv(c.Provider, env, "LLM_PROVIDER"))
	if err != nil {
		return docskill.ProviderConfig{}, err
	}
	cfg := docskill.ProviderConfig{
		Kind:     kind,
		APIKey:   orEnv(c.APIKey, env, "LLM_API_KEY"),
		Model:    orEnv(c.Model, env, "LLM_MODEL"),
		Endpoint: orEnv(c.Endpoint, env, "LLM_ENDPOINT"),
	}
	return cfg.Resolve(), nil
}

func orEnv(v string, env map[string]string, key string) string {
	if v != "" {
		return v
	}
	return env[key]
}

// SkillCmd crawls a site and writes the skill bundle.
type SkillCmd struct {
	URL string
}
