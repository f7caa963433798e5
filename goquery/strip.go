package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docskill"
)

// StripBoilerplate removes every element matched by selectors and returns
// the rest of the document, head included.
func StripBoilerplate(html string, selectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docskill.Errorf(docskill.EINVALID, "failed to parse HTML: %v", err)
	}
	if len(selectors) > 0 {
		doc.Find(strings.Join(selectors, ", ")).Remove()
	}
	out, err := doc.Html()
	if err != nil {
		return "", docskill.Errorf(docskill.EINVALID, "failed to render HTML: %v", err)
	}
	return out, nil
}
