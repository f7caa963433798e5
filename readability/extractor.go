// Package readability extracts the main article of a page with
// go-readability. It suits blog-style documentation where the content
// sits in one dominant block.
package readability

import (
	"slices"
	"strings"

	"github.com/fwojciec/docskill"
	"github.com/fwojciec/docskill/goquery"
	"github.com/go-shiori/go-readability"
)

var _ docskill.Extractor = (*Extractor)(nil)

// DefaultBoilerplate is removed before scoring. Short pages make
// go-readability fall back to the whole body, so chrome has to go first.
var DefaultBoilerplate = append(slices.Clone(goquery.DefaultBoilerplate), "aside")

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	// Boilerplate overrides DefaultBoilerplate when non-nil.
	Boilerplate []string
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and content HTML. A page that
// readability cannot parse is EINVALID so the crawler skips it.
func (e *Extractor) Extract(rawHTML string) (*docskill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docskill.Errorf(docskill.EINVALID, "empty HTML input")
	}

	boilerplate := e.Boilerplate
	if boilerplate == nil {
		boilerplate = DefaultBoilerplate
	}
	cleaned, err := goquery.StripBoilerplate(rawHTML, boilerplate)
	if err != nil {
		return nil, err
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), nil)
	if err != nil {
		return nil, docskill.Wrap(docskill.EINVALID, err, "extract article")
	}

	return &docskill.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
