package main

import (
	"context"

	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/anthropic"
	"github.com/fwojciec/docskill/gemini"
	"github.com/fwojciec/docskill/openai"
)

// newGateway returns the backend for a resolved provider config.
// ProviderNone yields a gateway that reports ENOTCONFIGURED.
func newGateway(ctx context.Context, cfg docskill.ProviderConfig) (docskill.Gateway, error) {
	switch cfg.Kind {
	case docskill.ProviderAnthropic:
		return anthropic.NewGateway(cfg), nil
	case docskill.ProviderOpenAI, docskill.ProviderGrok, docskill.ProviderOpenRouter, docskill.ProviderOllama:
		return openai.NewGateway(cfg), nil
	case docskill.ProviderGemini:
		gw, err := gemini.NewGateway(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		return docskill.NopGateway{}, nil
	}
}
