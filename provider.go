package docskill

import (
	"fmt"
	"strings"
)

// ProviderKind identifies an LLM backend.
type ProviderKind string

// Supported providers.
const (
	ProviderNone       ProviderKind = "none"
	ProviderAnthropic  ProviderKind = "anthropic"
	ProviderOpenAI     ProviderKind = "openai"
	ProviderGemini     ProviderKind = "gemini"
	ProviderGrok       ProviderKind = "grok"
	ProviderOpenRouter ProviderKind = "openrouter"
	ProviderOllama     ProviderKind = "ollama"
)

// Providers lists every provider kind except ProviderNone.
var Providers = []ProviderKind{
	ProviderAnthropic,
	ProviderOpenAI,
	ProviderGemini,
	ProviderGrok,
	ProviderOpenRouter,
	ProviderOllama,
}

var providerDefaults = map[ProviderKind]struct {
	endpoint string
	model    string
}{
	ProviderAnthropic:  {"https://api.anthropic.com", "claude-sonnet-4-5"},
	ProviderOpenAI:     {"https://api.openai.com/v1", "gpt-4o-mini"},
	ProviderGemini:     {"https://generativelanguage.googleapis.com/", "gemini-2.5-flash"},
	ProviderGrok:       {"https://api.x.ai/v1", "grok-3-mini"},
	ProviderOpenRouter: {"https://openrouter.ai/api/v1", "anthropic/claude-sonnet-4.5"},
	ProviderOllama:     {"http://localhost:11434/v1", "llama3.1"},
}

// ParseProviderKind parses a provider name. The empty string maps to
// ProviderNone.
func ParseProviderKind(s string) (ProviderKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(ProviderNone) {
		return ProviderNone, nil
	}
	for _, k := range Providers {
		if string(k) == s {
			return k, nil
		}
	}
	return ProviderNone, Errorf(EINVALID, "unknown LLM provider %q (supported: %s)", s, providerList())
}

func providerList() string {
	names := make([]string, len(Providers))
	for i, k := range Providers {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// ProviderConfig selects and configures the LLM backend for a run.
// It is loaded once at startup and never modified.
type ProviderConfig struct {
	Kind     ProviderKind
	APIKey   string
	Model    string
	Endpoint string // overrides the provider's default endpoint
}

// RequiresKey reports whether the provider needs an API key.
func (k ProviderKind) RequiresKey() bool {
	return k != ProviderOllama && k != ProviderNone
}

// Resolve fills in defaults. A provider that requires an API key but has
// none resolves to ProviderNone.
func (c ProviderConfig) Resolve() ProviderConfig {
	if c.Kind == "" {
		c.Kind = ProviderNone
	}
	if c.Kind.RequiresKey() && c.APIKey == "" {
		return ProviderConfig{Kind: ProviderNone}
	}
	d, ok := providerDefaults[c.Kind]
	if !ok {
		return c
	}
	if c.Model == "" {
		c.Model = d.model
	}
	if c.Endpoint == "" {
		c.Endpoint = d.endpoint
	}
	return c
}

// String returns a log-safe description that never includes the API key.
func (c ProviderConfig) String() string {
	if c.Kind == ProviderNone || c.Kind == "" {
		return "none"
	}
	return fmt.Sprintf("%s (%s)", c.Kind, c.Model)
}
