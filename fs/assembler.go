package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docskill"
	"golang.org/x/sync/errgroup"
)

const writeConcurrency = 8

var _ docskill.Assembler = (*Assembler)(nil)

// Assembler writes skill bundles under a root directory:
//
//	<root>/<name>/SKILL.md
//	<root>/<name>/resources/<page>.md
//
// Existing files with the same names are overwritten; nothing is deleted.
type Assembler struct {
	root string
	dir  string

	// Now returns the crawl date recorded in resource frontmatter.
	Now func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithDir writes bundles to dir itself instead of <root>/<name>.
func WithDir(dir string) Option {
	return func(a *Assembler) {
		a.dir = dir
	}
}

// NewAssembler creates an Assembler rooted at root.
func NewAssembler(root string, opts ...Option) *Assembler {
	a := &Assembler{root: root, Now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Dir returns the directory a bundle called name is written to.
func (a *Assembler) Dir(name string) string {
	if a.dir != "" {
		return a.dir
	}
	return filepath.Join(a.root, name)
}

// Assemble writes every page to resources/ and, when doc is not nil,
// SKILL.md. It returns the bundle directory.
func (a *Assembler) Assemble(ctx context.Context, name string, pages []*docskill.Page, doc *docskill.SkillDocument) (string, error) {
	if name == "" {
		return "", docskill.Errorf(docskill.EINVALID, "skill name required")
	}
	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		if err := p.Validate(); err != nil {
			return "", err
		}
		if seen[p.Filename] {
			return "", docskill.Errorf(docskill.EINVALID, "duplicate resource filename %q", p.Filename)
		}
		seen[p.Filename] = true
	}

	target := a.Dir(name)
	resources := filepath.Join(target, docskill.ResourcesDir)
	if err := os.MkdirAll(resources, 0o755); err != nil {
		return "", docskill.Wrap(docskill.EINTERNAL, err, "create %s", resources)
	}

	crawled := a.Now().UTC().Format(crawledFormat)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)
	for _, p := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := FormatPage(p, crawled)
			if err != nil {
				return err
			}
			return writeFile(filepath.Join(resources, p.Filename), content)
		})
	}
	if doc != nil {
		g.Go(func() error {
			return writeFile(filepath.Join(target, docskill.SkillFilename), doc.Content)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return target, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return docskill.Wrap(docskill.EINTERNAL, err, "write %s", path)
	}
	return nil
}
