package skill

import (
	"context"
	"strings"

	"github.com/fwojciec/docskill"
)

// Generator asks a language model to write SKILL.md.
type Generator struct {
	Gateway docskill.Gateway
}

// Generate sends one request describing the crawled pages and returns the
// model's document. A nil document with an error means the bundle should
// be assembled without SKILL.md. No request is made for zero pages.
func (g *Generator) Generate(ctx context.Context, id *docskill.SkillIdentity, sourceURL string, pages []*docskill.Page) (*docskill.SkillDocument, error) {
	if len(pages) == 0 {
		return nil, docskill.Errorf(docskill.EINVALID, "no pages to describe")
	}

	gw := g.Gateway
	if gw == nil {
		gw = docskill.NopGateway{}
	}
	resp, err := gw.Send(ctx, &docskill.Request{
		System: generationSystemPrompt,
		Prompt: BuildGenerationPrompt(id, sourceURL, pages),
	})
	if err != nil {
		return nil, err
	}

	content := StripFence(resp.Text)
	if content == "" {
		return nil, docskill.Errorf(docskill.EPROVIDER, "model returned an empty document")
	}
	return &docskill.SkillDocument{Content: content + "\n"}, nil
}

// StripFence trims s and removes a code fence wrapping the whole reply,
// as models often answer with ```markdown ... ```.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return s
	}
	if info := strings.TrimSpace(s[3:nl]); info != "" && info != "markdown" && info != "md" {
		return s
	}
	body := s[nl+1:]
	if !strings.HasSuffix(body, "```") {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(body, "```"))
}
