package docskill

import "path"

// Bundle layout. Paths inside a skill always use forward slashes.
const (
	ResourcesDir  = "resources"
	SkillFilename = "SKILL.md"
)

// Page represents a fetched documentation page converted to Markdown.
// Pages are created once by the crawler and never modified afterwards.
type Page struct {
	URL      string
	Filename string // relative to ResourcesDir, e.g. "api-auth-tokens.md"
	Title    string
	Content  string // Markdown
	Hash     string
}

// ResourcePath returns the page's path relative to the skill root.
func (p *Page) ResourcePath() string {
	return path.Join(ResourcesDir, p.Filename)
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Filename == "" {
		return Errorf(EINVALID, "page filename required")
	}
	if path.Base(p.Filename) != p.Filename {
		return Errorf(EINVALID, "page filename %q must not contain path separators", p.Filename)
	}
	return nil
}
