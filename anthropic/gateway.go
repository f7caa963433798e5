// Package anthropic implements docskill.Gateway with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/docskill"
)

// DefaultMaxTokens bounds the length of a reply.
const DefaultMaxTokens = 4096

var _ docskill.Gateway = (*Gateway)(nil)

// Gateway sends prompts to Claude models.
type Gateway struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewGateway creates a Gateway from a resolved provider config. SDK retries
// are disabled; a failed call is reported to the caller as-is.
func NewGateway(cfg docskill.ProviderConfig, opts ...option.RequestOption) *Gateway {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		base = append(base, option.WithBaseURL(cfg.Endpoint))
	}
	return &Gateway{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: DefaultMaxTokens,
	}
}

// Send performs one Messages API call and returns the concatenated text
// blocks of the reply.
func (g *Gateway) Send(ctx context.Context, req *docskill.Request) (*docskill.Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classify(ctx, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return nil, docskill.Errorf(docskill.EPROVIDER, "anthropic returned no text")
	}
	return &docskill.Response{Text: sb.String()}, nil
}

func classify(ctx context.Context, err error) error {
	var apiErr *anthropic.Error
	switch {
	case errors.As(err, &apiErr):
		return docskill.Wrap(docskill.StatusCode(apiErr.StatusCode), err, "anthropic: HTTP %d", apiErr.StatusCode)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return docskill.Wrap(docskill.ENETWORK, err, "anthropic request failed")
	}
}
