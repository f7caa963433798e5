// Package docskill turns a documentation site into a local "skill": a
// directory of Markdown resources plus a SKILL.md instruction file that
// tells an LLM agent how to search them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, anthropic/, openai/).
package docskill
