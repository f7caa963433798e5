// Package trafilatura extracts the main content of a page with
// go-trafilatura. It is the alternative to the goquery boilerplate
// stripper for sites whose chrome is not marked up semantically.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docskill"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ docskill.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Links are kept in the extracted
// content so the converted Markdown still points at related pages.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			IncludeLinks:    true,
		},
	}
}

// Extract returns the page title and main content HTML.
func (e *Extractor) Extract(rawHTML string) (*docskill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docskill.Errorf(docskill.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, docskill.Wrap(docskill.EINVALID, err, "extract main content")
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, docskill.Wrap(docskill.EINTERNAL, err, "render content")
		}
		contentHTML = buf.String()
	}

	return &docskill.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}
