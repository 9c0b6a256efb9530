package gen

import (
	"fmt"
	"strings"
)

// RenderIndex assembles the top-level index page enumerating every namespace.
// It must run after all namespace pages exist, since it links to each one.
func (rn *Renderer) RenderIndex() (string, []byte, error) {
	fm, err := frontMatter([]fmField{
		{"title", "Index"},
		{"sidebar_label", "Index"},
		{"sidebar_position", 0},
		{"slug", rn.cfg.IndexSlug},
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("# API Index\n")
	b.WriteString("## Namespaces\n")

	for _, ns := range rn.graph.Namespaces() {
		b.WriteString("* " + htmlEscape(rn.flat.Link(ns.UID, LinkContext{FromIndex: true})) + "\n")
	}

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "Generated using [docfx-markdown-gen](https://github.com/mgamesdev/docfx-markdown-gen) v%s.\n", Version)

	return "index.md", []byte(b.String()), nil
}
