package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docskill"
)

var _ docskill.NameResolver = (*LoggingNameResolver)(nil)

// LoggingNameResolver wraps a NameResolver with logging.
type LoggingNameResolver struct {
	next   docskill.NameResolver
	logger *slog.Logger
}

// NewLoggingNameResolver creates a new LoggingNameResolver.
func NewLoggingNameResolver(next docskill.NameResolver, logger *slog.Logger) *LoggingNameResolver {
	return &LoggingNameResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the chosen name.
func (r *LoggingNameResolver) Resolve(ctx context.Context, seedURL string) (id *docskill.SkillIdentity, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", seedURL, "duration", time.Since(begin), "err", err}
		if id != nil {
			attrs = append(attrs, "raw", id.RawToken, "name", id.Name, "cleanup_err", id.CleanupErr)
		}
		r.logger.Info("resolve name", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, seedURL)
}

var _ docskill.DocumentGenerator = (*LoggingDocumentGenerator)(nil)

// LoggingDocumentGenerator wraps a DocumentGenerator with logging.
type LoggingDocumentGenerator struct {
	next   docskill.DocumentGenerator
	logger *slog.Logger
}

// NewLoggingDocumentGenerator creates a new LoggingDocumentGenerator.
func NewLoggingDocumentGenerator(next docskill.DocumentGenerator, logger *slog.Logger) *LoggingDocumentGenerator {
	return &LoggingDocumentGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome.
func (g *LoggingDocumentGenerator) Generate(ctx context.Context, id *docskill.SkillIdentity, sourceURL string, pages []*docskill.Page) (doc *docskill.SkillDocument, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Content)
		}
		g.logger.Info("generate skill document",
			"name", id.Name,
			"pages", len(pages),
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, id, sourceURL, pages)
}

var _ docskill.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with logging.
type LoggingAssembler struct {
	next   docskill.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next docskill.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the target.
func (a *LoggingAssembler) Assemble(ctx context.Context, name string, pages []*docskill.Page, doc *docskill.SkillDocument) (dir string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("assemble",
			"name", name,
			"dir", dir,
			"pages", len(pages),
			"skill_md", doc != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Assemble(ctx, name, pages, doc)
}
