package gen

import (
	"path/filepath"
	"strings"

	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

// RenderType assembles the page for a class, interface, struct, enum or
// delegate. It returns the page's path relative to the output root and its
// contents. Section order is fixed: summary, assembly, declaration,
// inheritance, derived, implements, then Properties, Fields, Methods, Events,
// the Implements recap and extension methods.
func (rn *Renderer) RenderType(item *docfx.Item) (string, []byte, error) {
	grouped := rn.res.grouping.Grouped(item.Namespace)
	lc := LinkContext{FromGrouped: grouped}

	fields := []fmField{
		{"title", string(item.Kind) + " " + item.Name},
		{"sidebar_label", item.Name},
	}
	if s := strings.TrimSpace(rn.processSummary(item.Summary, rn.res, lc)); s != "" {
		fields = append(fields, fmField{"description", s})
	}
	fm, err := frontMatter(fields)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.Write(fm)
	b.WriteString("# " + string(item.Kind) + " " + htmlEscape(item.Name) + "\n")

	if s := strings.TrimSpace(rn.processSummary(item.Summary, rn.res, lc)); s != "" {
		b.WriteString(s + "\n\n")
	}
	if len(item.Assemblies) > 0 {
		b.WriteString("###### **Assembly**: " + item.Assemblies[0] + ".dll\n")
	}
	rn.declaration(&b, item)

	if len(item.Inheritance) > 1 {
		b.WriteString("**Inheritance:** ")
		for i, ancestor := range item.Inheritance {
			b.WriteString(rn.res.Link(ancestor, lc))
			if i != len(item.Inheritance)-1 {
				b.WriteString(" -> ")
			}
		}
		b.WriteString("\n\n")
	}

	rn.linkList(&b, "**Derived:**  \n", item.DerivedClasses, lc)
	rn.linkList(&b, "**Implements:**  \n", item.Implements, lc)

	rn.propertyLikeSection(&b, "## Properties\n", rn.graph.Members(item.UID, docfx.KindProperty), lc)
	rn.propertyLikeSection(&b, "## Fields\n", rn.graph.Members(item.UID, docfx.KindField), lc)
	rn.methodSection(&b, rn.graph.Members(item.UID, docfx.KindMethod), lc)
	rn.eventSection(&b, rn.graph.Members(item.UID, docfx.KindEvent), lc)

	if len(item.Implements) > 0 {
		b.WriteString("\n## Implements\n\n")
		for _, impl := range item.Implements {
			b.WriteString("* " + rn.res.Link(impl, lc) + "\n")
		}
	}

	rn.extensionMethods(&b, item, lc)

	rel := filepath.Join(item.Namespace, nameEscape(item.Name)+".md")
	if grouped {
		rel = filepath.Join(item.Namespace, item.Kind.Dir(), nameEscape(item.Name)+".md")
	}
	return rel, []byte(b.String()), nil
}

// declaration writes the View Source line and the fenced declaration block.
func (rn *Renderer) declaration(b *strings.Builder, it *docfx.Item) {
	b.WriteString(sourceLink(it) + "\n")
	if it.Syntax != nil && it.Syntax.Content != "" {
		b.WriteString("```csharp title=\"Declaration\"\n")
		b.WriteString(it.Syntax.Content + "\n")
		b.WriteString("```\n")
	}
}

// linkList writes a comma-separated resolved link list, wrapped in a
// collapsible block when it has more than 8 entries.
func (rn *Renderer) linkList(b *strings.Builder, header string, uids []string, lc LinkContext) {
	if len(uids) == 0 {
		return
	}
	b.WriteString(header)
	collapsible := len(uids) > 8
	if collapsible {
		b.WriteString("\n<details>\n<summary>Expand</summary>\n\n")
	}
	for i, uid := range uids {
		b.WriteString(rn.res.Link(uid, lc))
		if i != len(uids)-1 {
			b.WriteString(", ")
		}
	}
	if collapsible {
		b.WriteString("\n</details>\n")
	}
	b.WriteString("\n\n")
}

// propertyLikeSection renders properties or fields: heading, summary,
// declaration. Input order is preserved.
func (rn *Renderer) propertyLikeSection(b *strings.Builder, header string, members []*docfx.Item, lc LinkContext) {
	if len(members) == 0 {
		return
	}
	b.WriteString(header)
	for _, m := range members {
		b.WriteString("### " + m.Name + "\n")
		if s := strings.TrimSpace(rn.processSummary(m.Summary, rn.res, lc)); s != "" {
			b.WriteString(s + "\n")
		}
		rn.declaration(b, m)
	}
}

func (rn *Renderer) methodSection(b *strings.Builder, methods []*docfx.Item, lc LinkContext) {
	if len(methods) == 0 {
		return
	}
	b.WriteString("## Methods\n")
	for _, m := range methods {
		b.WriteString("### " + htmlEscape(m.Name) + "\n")
		if s := strings.TrimSpace(rn.processSummary(m.Summary, rn.res, lc)); s != "" {
			b.WriteString(s + "\n")
		}
		rn.declaration(b, m)

		if m.Syntax != nil && m.Syntax.Return != nil && m.Syntax.Return.Type != "" {
			b.WriteString("\n##### Returns\n\n")
			b.WriteString(strings.TrimSpace(rn.res.Link(m.Syntax.Return.Type, lc)))
			if m.Syntax.Return.Description == "" {
				b.WriteString("\n")
			} else {
				b.WriteString(": " + rn.processSummary(m.Syntax.Return.Description, rn.res, lc))
			}
		}

		if m.Syntax != nil && len(m.Syntax.Parameters) > 0 {
			rn.parameterTable(b, m.Syntax.Parameters, lc)
		}
		if m.Syntax != nil && len(m.Syntax.TypeParameters) > 0 {
			rn.typeParameterTable(b, m.Syntax.TypeParameters, lc)
		}

		if len(m.Exceptions) > 0 {
			b.WriteString("\n##### Exceptions\n\n")
			for _, exc := range m.Exceptions {
				b.WriteString(rn.res.Link(exc.Type, lc) + "  \n")
				if s := strings.TrimSpace(rn.processSummary(exc.Description, rn.res, lc)); s != "" {
					b.WriteString(s + "\n")
				}
			}
		}
	}
}

// parameterTable renders a three-column table when any parameter carries a
// description, otherwise a two-column one.
func (rn *Renderer) parameterTable(b *strings.Builder, params []docfx.Parameter, lc LinkContext) {
	b.WriteString("\n##### Parameters\n\n")
	described := false
	for _, p := range params {
		if p.Description != "" {
			described = true
			break
		}
	}
	if described {
		b.WriteString("| Type | Name | Description |\n")
		b.WriteString("|:--- |:--- |:--- |\n")
		for _, p := range params {
			b.WriteString("| " + rn.res.Link(p.Type, lc) + " | *" + p.ID + "* | " +
				rn.processSummary(p.Description, rn.res, lc) + " |\n")
		}
	} else {
		b.WriteString("| Type | Name |\n")
		b.WriteString("|:--- |:--- |\n")
		for _, p := range params {
			b.WriteString("| " + rn.res.Link(p.Type, lc) + " | *" + p.ID + "* |\n")
		}
	}
	b.WriteString("\n")
}

// typeParameterTable renders a table when any type parameter has a
// description, otherwise a bullet list.
func (rn *Renderer) typeParameterTable(b *strings.Builder, typeParams []docfx.TypeParameter, lc LinkContext) {
	b.WriteString("##### Type Parameters\n")
	described := false
	for _, tp := range typeParams {
		if tp.Description != "" {
			described = true
			break
		}
	}
	if described {
		b.WriteString("| Name | Description |\n")
		b.WriteString("|:--- |:--- |\n")
		for _, tp := range typeParams {
			b.WriteString("| " + rn.res.Link(tp.ID, lc) + " | " + tp.Description + " |\n")
		}
	} else {
		for _, tp := range typeParams {
			b.WriteString("* " + rn.res.Link(tp.ID, lc) + "\n")
		}
	}
}

func (rn *Renderer) eventSection(b *strings.Builder, events []*docfx.Item, lc LinkContext) {
	if len(events) == 0 {
		return
	}
	b.WriteString("## Events\n")
	for _, e := range events {
		b.WriteString("### " + htmlEscape(e.Name) + "\n")
		if s := strings.TrimSpace(rn.processSummary(e.Summary, rn.res, lc)); s != "" {
			b.WriteString(s + "\n")
		}
		rn.declaration(b, e)

		if e.Syntax != nil && e.Syntax.Return != nil {
			b.WriteString("##### Event Type\n")
			link := strings.TrimSpace(rn.res.Link(e.Syntax.Return.Type, lc))
			if e.Syntax.Return.Description == "" {
				b.WriteString(link + "\n")
			} else {
				b.WriteString(link + ": " + e.Syntax.Return.Description + "\n")
			}
		}
	}
}

// extensionMethods renders the extension-method list. The stored identifiers
// use an upstream-specific key (first parameter type + "." + full name
// truncated at the parameter list), so matching is best effort: unmatched
// entries render inert with the braces entity-escaped.
func (rn *Renderer) extensionMethods(b *strings.Builder, item *docfx.Item, lc LinkContext) {
	if len(item.ExtensionMethods) < 2 {
		return
	}
	b.WriteString("## Extension Methods\n")
	items := rn.graph.Items()
	for _, ext := range item.ExtensionMethods {
		var method *docfx.Item
		for i := range items {
			candidate := &items[i]
			if candidate.Syntax == nil || len(candidate.Syntax.Parameters) == 0 {
				continue
			}
			full := candidate.FullName
			if idx := strings.Index(full, "("); idx >= 0 {
				full = full[:idx]
			}
			if candidate.Syntax.Parameters[0].Type+"."+full == ext {
				method = candidate
				break
			}
		}
		if method == nil {
			inert := strings.ReplaceAll(strings.ReplaceAll(ext, "{", "&#123;"), "}", "&#125;")
			b.WriteString("* " + inert + "\n")
		} else {
			b.WriteString("* " + rn.res.Link(method.UID, lc) + "\n")
		}
	}
}
