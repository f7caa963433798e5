package mock

import "github.com/fwojciec/docskill"

var _ docskill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docskill.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docskill.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docskill.ExtractResult, error) {
	return e.ExtractFn(html)
}
