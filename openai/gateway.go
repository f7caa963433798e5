// Package openai implements docskill.Gateway with the OpenAI chat
// completions API. It serves every OpenAI-compatible provider: OpenAI,
// xAI Grok, OpenRouter and local Ollama.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/docskill"
	"github.com/sashabaranov/go-openai"
)

// OpenRouter attribution headers.
const (
	OpenRouterReferer = "https://github.com/fwojciec/docskill"
	OpenRouterTitle   = "docskill"
)

var _ docskill.Gateway = (*Gateway)(nil)

// Gateway sends prompts to an OpenAI-compatible endpoint.
type Gateway struct {
	client *openai.Client
	kind   docskill.ProviderKind
	model  string
}

// NewGateway creates a Gateway from a resolved provider config.
func NewGateway(cfg docskill.ProviderConfig) *Gateway {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")
	}
	if cfg.Kind == docskill.ProviderOpenRouter {
		clientConfig.HTTPClient = &http.Client{
			Transport: &headerTransport{
				headers: map[string]string{
					"HTTP-Referer": OpenRouterReferer,
					"X-Title":      OpenRouterTitle,
				},
				next: http.DefaultTransport,
			},
		}
	}
	return &Gateway{
		client: openai.NewClientWithConfig(clientConfig),
		kind:   cfg.Kind,
		model:  cfg.Model,
	}
}

// Send performs one chat completion and returns the first choice.
func (g *Gateway) Send(ctx context.Context, req *docskill.Request) (*docskill.Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return nil, g.classify(ctx, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, docskill.Errorf(docskill.EPROVIDER, "%s returned no content", g.kind)
	}
	return &docskill.Response{Text: resp.Choices[0].Message.Content}, nil
}

func (g *Gateway) classify(ctx context.Context, err error) error {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		return docskill.Wrap(docskill.StatusCode(apiErr.HTTPStatusCode), err, "%s: HTTP %d", g.kind, apiErr.HTTPStatusCode)
	case errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0:
		return docskill.Wrap(docskill.StatusCode(reqErr.HTTPStatusCode), err, "%s: HTTP %d", g.kind, reqErr.HTTPStatusCode)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return docskill.Wrap(docskill.ENETWORK, err, "%s request failed", g.kind)
	}
}

// headerTransport adds fixed headers to every request.
type headerTransport struct {
	headers map[string]string
	next    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.next.RoundTrip(req)
}
