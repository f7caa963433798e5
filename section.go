package docskill

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+?)[ \t]*#*[ \t]*$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int
	Title  string
	Anchor string
}

// ExtractSections parses markdown and returns all headings (H1-H6) in
// document order. Anchors follow the GitHub convention, with numeric
// suffixes for duplicates.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	matches := headingRe.FindAllStringSubmatch(codeBlockRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	anchorCounts := make(map[string]int)

	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		anchor := generateAnchor(title)

		if count, exists := anchorCounts[anchor]; exists {
			anchorCounts[anchor]++
			anchor = anchor + "-" + strconv.Itoa(count)
		} else {
			anchorCounts[anchor] = 1
		}

		sections = append(sections, Section{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return sections
}

// TableOfContents renders a nested Markdown list linking to the headings
// of markdown up to maxLevel. Returns "" if there are fewer than two
// headings.
func TableOfContents(markdown string, maxLevel int) string {
	var sections []Section
	for _, s := range ExtractSections(markdown) {
		if s.Level <= maxLevel {
			sections = append(sections, s)
		}
	}
	if len(sections) < 2 {
		return ""
	}

	top := sections[0].Level
	for _, s := range sections {
		top = min(top, s.Level)
	}

	var sb strings.Builder
	sb.WriteString("## Contents\n\n")
	for _, s := range sections {
		indent := strings.Repeat("  ", s.Level-top)
		fmt.Fprintf(&sb, "%s- [%s](#%s)\n", indent, s.Title, s.Anchor)
	}
	return sb.String()
}

// Excerpt returns up to n runes of markdown with whitespace collapsed.
func Excerpt(markdown string, n int) string {
	text := strings.Join(strings.Fields(markdown), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

// generateAnchor creates a URL-safe anchor from a title.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
