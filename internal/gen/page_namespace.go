package gen

import (
	"path/filepath"
	"strings"

	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

// namespaceSections fixes the order of the per-kind listings on a namespace
// page.
var namespaceSections = []struct {
	kind   docfx.Kind
	header string
}{
	{docfx.KindClass, "Classes"},
	{docfx.KindStruct, "Structs"},
	{docfx.KindInterface, "Interfaces"},
	{docfx.KindEnum, "Enums"},
	{docfx.KindDelegate, "Delegates"},
}

// RenderNamespace assembles a namespace page: one section per type kind,
// members sorted alphabetically, each entry a short-name link plus summary.
// Namespace pages use the flat resolver, so type links always take the
// ungrouped shape.
func (rn *Renderer) RenderNamespace(item *docfx.Item) (string, []byte, error) {
	fm, err := frontMatter([]fmField{
		{"title", string(item.Kind) + " " + item.Name},
		{"sidebar_label", item.Name},
	})
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("# Namespace " + htmlEscape(item.Name) + "\n")

	lc := LinkContext{NameOnly: true}
	for _, section := range namespaceSections {
		types := rn.graph.TypesIn(item.Name, section.kind)
		if len(types) == 0 {
			continue
		}
		b.WriteString("## " + section.header + "\n")
		for _, t := range types {
			b.WriteString("### " + htmlEscape(rn.flat.Link(t.UID, lc)) + "\n")
			if s := strings.TrimSpace(rn.processSummary(t.Summary, rn.flat, LinkContext{})); s != "" {
				b.WriteString(s + "\n")
			}
		}
	}

	return filepath.Join(item.Name, item.Name+".md"), []byte(b.String()), nil
}
