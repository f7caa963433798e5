package mock

import "github.com/fwojciec/docskill"

var _ docskill.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docskill.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, string, error)
}

func (l *LinkExtractor) ExtractLinks(html string) ([]string, string, error) {
	return l.ExtractLinksFn(html)
}
