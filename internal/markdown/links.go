// Package markdown provides AST-level inspection of generated markdown.
package markdown

import (
	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// LinkDestinations parses src and returns every link destination in document
// order. Duplicates are preserved.
func LinkDestinations(src string) []string {
	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	var dests []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dests = append(dests, string(link.Destination))
		}
		return ast.GoToNext
	})
	return dests
}

// Headings parses src and returns the text of every heading at the given
// level, in document order.
func Headings(src string, level int) []string {
	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	var out []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if h, ok := node.(*ast.Heading); ok && h.Level == level {
			var text []byte
			ast.WalkFunc(h, func(n ast.Node, entering bool) ast.WalkStatus {
				if leaf := n.AsLeaf(); leaf != nil && entering {
					text = append(text, leaf.Literal...)
				}
				return ast.GoToNext
			})
			out = append(out, string(text))
		}
		return ast.GoToNext
	})
	return out
}
