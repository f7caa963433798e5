// Package goquery implements HTML extraction on top of goquery: boilerplate
// removal for page content and anchor discovery for the crawler.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docskill"
)

var _ docskill.Extractor = (*Extractor)(nil)

// DefaultBoilerplate lists the elements removed before conversion.
var DefaultBoilerplate = []string{
	"script", "style", "nav", "footer", "header", "iframe", "noscript",
}

// Extractor strips boilerplate elements and returns the remaining body.
type Extractor struct {
	// Boilerplate overrides DefaultBoilerplate when non-nil.
	Boilerplate []string
}

// NewExtractor creates an Extractor with the default boilerplate list.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the body HTML with boilerplate removed.
// The title comes from <title>, falling back to the first <h1>.
func (e *Extractor) Extract(html string) (*docskill.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docskill.Errorf(docskill.EINVALID, "empty HTML")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docskill.Errorf(docskill.EINVALID, "failed to parse HTML: %v", err)
	}

	title := collapseSpace(doc.Find("title").First().Text())
	if title == "" {
		title = collapseSpace(doc.Find("h1").First().Text())
	}

	boilerplate := e.Boilerplate
	if boilerplate == nil {
		boilerplate = DefaultBoilerplate
	}
	doc.Find(strings.Join(boilerplate, ", ")).Remove()

	content, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, docskill.Errorf(docskill.EINVALID, "failed to render HTML: %v", err)
	}

	return &docskill.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(content),
	}, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
