// Package content turns raw remote cheatsheet Markdown into display-ready
// Markdown. Every transform is a no-op on input that lacks the construct it
// targets, and Process is idempotent.
package content

// Process applies the full pipeline in order: front matter, template tags,
// tables. Custom sheets are never processed.
func Process(md string) string {
	return FormatTables(StripTemplateTags(StripFrontMatter(md)))
}
