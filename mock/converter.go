package mock

import "github.com/fwojciec/docskill"

var _ docskill.Converter = (*Converter)(nil)

// Converter is a mock implementation of docskill.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
