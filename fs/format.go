// Package fs writes skill bundles to the local filesystem.
package fs

import (
	"strings"

	"github.com/fwojciec/docskill"
	"gopkg.in/yaml.v3"
)

// Resources longer than TOCMinLines get a table of contents.
const (
	TOCMinLines   = 100
	TOCMaxLevel   = 3
	crawledFormat = "2006-01-02"
)

// Frontmatter is the YAML header of a resource file.
type Frontmatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title,omitempty"`
	Crawled string `yaml:"crawled"`
}

// FormatPage renders a page as a resource file: YAML frontmatter, a table
// of contents for long pages, then the Markdown body.
func FormatPage(page *docskill.Page, crawled string) (string, error) {
	header, err := yaml.Marshal(Frontmatter{
		Source:  page.URL,
		Title:   page.Title,
		Crawled: crawled,
	})
	if err != nil {
		return "", docskill.Wrap(docskill.EINTERNAL, err, "marshal frontmatter for %s", page.URL)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	if strings.Count(page.Content, "\n") >= TOCMinLines {
		if toc := docskill.TableOfContents(page.Content, TOCMaxLevel); toc != "" {
			b.WriteString(toc)
			b.WriteString("\n")
		}
	}
	b.WriteString(page.Content)
	if !strings.HasSuffix(page.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}
