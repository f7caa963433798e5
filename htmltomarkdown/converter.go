// Package htmltomarkdown converts extracted page HTML to Markdown with
// html-to-markdown v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docskill"
)

var _ docskill.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with the commonmark and table plugins.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into Markdown. Input that is empty, or that
// converts to nothing but whitespace, is an EINVALID error so the page
// gets skipped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docskill.Errorf(docskill.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docskill.Wrap(docskill.EINVALID, err, "convert HTML")
	}

	md = strings.TrimSpace(md)
	if md == "" {
		return "", docskill.Errorf(docskill.EINVALID, "page has no convertible content")
	}
	return md + "\n", nil
}
