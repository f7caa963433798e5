package docskill

import (
	"context"
	"strings"
)

// SkillNamePrefix is prepended to the cleaned domain token.
const SkillNamePrefix = "use-"

// SkillIdentity names the output bundle.
type SkillIdentity struct {
	// RawToken is the label extracted from the seed URL's host.
	RawToken string

	// Token is RawToken after optional LLM cleanup.
	Token string

	// Name is SkillNamePrefix + Token.
	Name string

	// CleanupErr is set when an LLM cleanup was wanted but could not be
	// applied, in which case Token equals RawToken.
	CleanupErr error
}

// NewSkillIdentity builds an identity from a raw and a cleaned token.
func NewSkillIdentity(raw, token string) *SkillIdentity {
	return &SkillIdentity{
		RawToken: raw,
		Token:    token,
		Name:     SkillName(token),
	}
}

// SkillName returns the skill name for a domain token.
func SkillName(token string) string {
	return SkillNamePrefix + token
}

// SkillDocument is a generated SKILL.md. A nil *SkillDocument means no
// instruction document is available and none should be written.
type SkillDocument struct {
	Content string
}

// SanitizeToken lowercases s and keeps only ASCII letters, digits and
// single hyphens. Returns false if nothing usable remains.
func SanitizeToken(s string) (string, bool) {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	return out, out != ""
}

// NameResolver derives a SkillIdentity from a seed URL.
type NameResolver interface {
	Resolve(ctx context.Context, seedURL string) (*SkillIdentity, error)
}

// DocumentGenerator produces the SKILL.md instruction document. A nil
// document means the bundle is assembled without one.
type DocumentGenerator interface {
	Generate(ctx context.Context, id *SkillIdentity, sourceURL string, pages []*Page) (*SkillDocument, error)
}

// Assembler writes a skill bundle to storage and returns its location.
type Assembler interface {
	Assemble(ctx context.Context, name string, pages []*Page, doc *SkillDocument) (string, error)
}
