package docskill

// LinkExtractor extracts anchor targets from HTML.
type LinkExtractor interface {
	// ExtractLinks returns the raw href of every anchor in document order.
	// Resolution against the page URL is left to the caller; base is the
	// document's <base href>, or empty when the page declares none.
	ExtractLinks(html string) (hrefs []string, base string, err error)
}
