// Package gemini implements docskill.Gateway with the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/docskill"
	"google.golang.org/genai"
)

var _ docskill.Gateway = (*Gateway)(nil)

// Gateway sends prompts to Gemini models through the Gemini API backend.
type Gateway struct {
	client *genai.Client
	model  string
}

// NewGateway creates a Gateway from a resolved provider config.
func NewGateway(ctx context.Context, cfg docskill.ProviderConfig) (*Gateway, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, docskill.Wrap(docskill.ENOTCONFIGURED, err, "create gemini client")
	}
	return &Gateway{client: client, model: cfg.Model}, nil
}

// Send performs one GenerateContent call.
func (g *Gateway) Send(ctx context.Context, req *docskill.Request) (*docskill.Response, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req.System),
	)
	if err != nil {
		return nil, classify(ctx, err)
	}
	if result == nil {
		return nil, docskill.Errorf(docskill.EPROVIDER, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, docskill.Errorf(docskill.EPROVIDER, "gemini returned no text")
	}
	return &docskill.Response{Text: text}, nil
}

// BuildConfig returns the GenerateContentConfig carrying the system prompt.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	config := &genai.GenerateContentConfig{Temperature: &temp}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

func classify(ctx context.Context, err error) error {
	if code, ok := statusOf(err); ok {
		return docskill.Wrap(docskill.StatusCode(code), err, "gemini: HTTP %d", code)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return docskill.Wrap(docskill.ENETWORK, err, "gemini request failed")
}

func statusOf(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code, true
	}
	return 0, false
}
