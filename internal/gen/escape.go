package gen

import "strings"

var (
	htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

	// Link targets: generic angle brackets become backticks (the same escape
	// used for file names on disk) and spaces are percent-encoded.
	fileEscaper = strings.NewReplacer("<", "`", ">", "`", " ", "%20")

	// File names on disk: only the angle brackets are rewritten.
	nameEscaper = strings.NewReplacer("<", "`", ">", "`")

	anchorStripper = strings.NewReplacer("(", "", ")", "", "?", "")
)

// htmlEscape escapes angle brackets for embedding a name in markdown text.
func htmlEscape(s string) string { return htmlEscaper.Replace(s) }

// fileEscape makes a link path filesystem- and URL-safe. This is independent
// of htmlEscape: link text and link target go through different passes.
func fileEscape(s string) string { return fileEscaper.Replace(s) }

// nameEscape maps a type name to its file name on disk.
func nameEscape(s string) string { return nameEscaper.Replace(s) }

// anchor derives the in-page fragment for a member heading. It must match how
// the site generator slugs the member headings the renderer emits: lower-cased
// with parentheses and question marks removed.
func anchor(name string) string {
	return anchorStripper.Replace(strings.ToLower(name))
}
