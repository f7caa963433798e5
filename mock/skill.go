package mock

import (
	"context"

	"github.com/fwojciec/docskill"
)

var _ docskill.NameResolver = (*NameResolver)(nil)

// NameResolver is a mock implementation of docskill.NameResolver.
type NameResolver struct {
	ResolveFn func(ctx context.Context, seedURL string) (*docskill.SkillIdentity, error)
}

func (r *NameResolver) Resolve(ctx context.Context, seedURL string) (*docskill.SkillIdentity, error) {
	return r.ResolveFn(ctx, seedURL)
}

var _ docskill.DocumentGenerator = (*DocumentGenerator)(nil)

// DocumentGenerator is a mock implementation of docskill.DocumentGenerator.
type DocumentGenerator struct {
	GenerateFn func(ctx context.Context, id *docskill.SkillIdentity, sourceURL string, pages []*docskill.Page) (*docskill.SkillDocument, error)
}

func (g *DocumentGenerator) Generate(ctx context.Context, id *docskill.SkillIdentity, sourceURL string, pages []*docskill.Page) (*docskill.SkillDocument, error) {
	return g.GenerateFn(ctx, id, sourceURL, pages)
}

var _ docskill.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of docskill.Assembler.
type Assembler struct {
	AssembleFn func(ctx context.Context, name string, pages []*docskill.Page, doc *docskill.SkillDocument) (string, error)
}

func (a *Assembler) Assemble(ctx context.Context, name string, pages []*docskill.Page, doc *docskill.SkillDocument) (string, error) {
	return a.AssembleFn(ctx, name, pages, doc)
}
