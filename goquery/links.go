package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docskill"
)

var _ docskill.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns every anchor href in document order. Filtering,
// resolution and deduplication are the crawler's job.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses html and returns the raw hrefs and the <base href>.
func (l *LinkExtractor) ExtractLinks(html string) ([]string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, "", docskill.Errorf(docskill.EINVALID, "failed to parse HTML: %v", err)
	}

	base, _ := doc.Find("base[href]").First().Attr("href")

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, strings.TrimSpace(base), nil
}
