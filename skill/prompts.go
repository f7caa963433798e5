package skill

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docskill"
)

// Generation request limits.
const (
	MaxExcerpts   = 10
	ExcerptLength = 200
)

const cleanupSystemPrompt = `You extract product names from domain labels.
Domains often glue a marketing prefix such as "get", "try", "use", "my", "go", "join" or "hey" onto the product name.
Reply with the bare product name only: lowercase, no spaces, no punctuation, no explanation.
If the label is already a product name, reply with it unchanged.`

const generationSystemPrompt = `You write SKILL.md files that let an AI assistant answer questions from a folder of documentation.

The file must start with YAML frontmatter:
---
name: <the skill name you are given, verbatim>
description: <third person, at most 1024 characters, says what the skill covers and when to use it, names the product, APIs and concepts users will mention>
version: 1.0.0
---

The body must:
- stay under 500 lines and act as an overview; details live in resources/
- tell the assistant to search and read the Markdown files in the resources/ directory before answering
- reference files one level deep with forward slashes, e.g. resources/getting-started.md
- point out which files to read first for common tasks
- give a clear default recommendation when several approaches exist
- use one term per concept throughout
- avoid dates and version cutoffs
- include two or three example questions with how to answer them

Never include XML tags. Reply with the file content only.`

// BuildCleanupPrompt builds the name cleanup request for a domain token.
func BuildCleanupPrompt(token string) string {
	return fmt.Sprintf("Domain label: %s\nProduct name:", token)
}

// BuildGenerationPrompt builds the SKILL.md request. Every resource is
// listed; only the first MaxExcerpts pages contribute an excerpt.
func BuildGenerationPrompt(id *docskill.SkillIdentity, sourceURL string, pages []*docskill.Page) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Skill name: %s\n", id.Name)
	fmt.Fprintf(&sb, "Product: %s\n", id.Token)
	fmt.Fprintf(&sb, "Source URL: %s\n\n", sourceURL)

	fmt.Fprintf(&sb, "Documentation files (%d total):\n", len(pages))
	for _, p := range pages {
		if p.Title != "" {
			fmt.Fprintf(&sb, "- %s (%s)\n", p.ResourcePath(), p.Title)
		} else {
			fmt.Fprintf(&sb, "- %s\n", p.ResourcePath())
		}
	}

	sb.WriteString("\nSample content:\n")
	for _, p := range pages[:min(len(pages), MaxExcerpts)] {
		fmt.Fprintf(&sb, "- %s: %s\n", p.ResourcePath(), docskill.Excerpt(p.Content, ExcerptLength))
	}

	sb.WriteString("\nWrite the complete SKILL.md.")
	return sb.String()
}
