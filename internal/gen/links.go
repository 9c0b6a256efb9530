package gen

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

// levelDetail sits between debug and info; it carries per-reference resolution
// chatter that would drown debug output on large graphs.
const levelDetail = slog.Level(-2)

// LinkContext describes the page a reference is being rendered into.
type LinkContext struct {
	// FromGrouped means the calling page lives inside a kind subdirectory and
	// needs one extra "../" to reach the output root.
	FromGrouped bool
	// FromIndex means the calling page is the top-level index page.
	FromIndex bool
	// NameOnly selects the short display name instead of the fully
	// qualified one.
	NameOnly bool
}

// Resolver turns reference identifiers into markdown links. It never fails on
// an unknown or dangling reference: those render as inert code spans, since
// references to types outside the documented assembly are a normal input
// condition.
type Resolver struct {
	graph             *docfx.Graph
	grouping          Grouping
	rewriteInterlinks bool
	logger            *slog.Logger
}

func NewResolver(graph *docfx.Graph, grouping Grouping, rewriteInterlinks bool, logger *slog.Logger) *Resolver {
	return &Resolver{
		graph:             graph,
		grouping:          grouping,
		rewriteInterlinks: rewriteInterlinks,
		logger:            logger,
	}
}

// Link resolves uid and renders a markdown link to the item's page.
func (r *Resolver) Link(uid string, lc LinkContext) string {
	ref, ok := r.graph.Lookup(uid)

	// A reference like "N.T{N.T}" can denote a constructed generic whose
	// definition is indexed under its arity marker, "N.T`1". Retry with the
	// first braced segment replaced.
	if !ok {
		if start := strings.Index(uid, "{"); start >= 0 {
			if end := strings.LastIndex(uid, "}"); end > start {
				candidate := uid[:start] + "`1" + uid[end+1:]
				if ref, ok = r.graph.Lookup(candidate); ok {
					r.logger.Log(context.Background(), levelDetail,
						"resolved generic type argument reference", "uid", uid, "candidate", candidate)
				}
			}
		}
	}

	if !ok {
		r.logger.Log(context.Background(), levelDetail, "unresolved reference", "uid", uid)
		return inertSpan(uid)
	}

	name := ref.FullName
	if lc.NameOnly {
		name = ref.Name
	}

	dots := "../"
	if lc.FromIndex {
		dots = "./"
	} else if lc.FromGrouped {
		dots = "../../"
	}
	ext := ""
	if lc.FromIndex {
		ext = ".md"
	}

	switch {
	case ref.Kind.IsType():
		var path string
		if r.grouping.Grouped(ref.Namespace) {
			path = dots + ref.Namespace + "/" + ref.Kind.Dir() + "/" + ref.Name + ext
		} else {
			path = dots + ref.Namespace + "/" + ref.Name + ext
		}
		return mdLink(name, path)

	case ref.Kind == docfx.KindNamespace:
		if r.rewriteInterlinks && !lc.FromIndex {
			return mdLink(name, dots+ref.Name)
		}
		return mdLink(name, dots+ref.Name+"/"+ref.Name+ext)

	default:
		// Members link to their parent type's page with an in-page anchor.
		parent, ok := r.graph.Lookup(ref.Parent)
		if !ok {
			r.logger.Log(context.Background(), levelDetail, "dangling parent reference",
				"uid", uid, "parent", ref.Parent, "kind", string(ref.Kind))
			return inertSpan(uid)
		}
		kindPart := ""
		if r.grouping.Grouped(parent.Namespace) {
			kindPart = "/" + parent.Kind.Dir()
		}
		path := dots + ref.Namespace + kindPart + "/" + parent.Name + ext
		return "[" + htmlEscape(name) + "](" + fileEscape(path) + "#" + anchor(ref.Name) + ")"
	}
}

func mdLink(name, path string) string {
	return "[" + htmlEscape(name) + "](" + fileEscape(path) + ")"
}

// inertSpan renders an unresolvable identifier as a code span, with braces
// turned into angle brackets for readability.
func inertSpan(uid string) string {
	return "`" + strings.ReplaceAll(strings.ReplaceAll(uid, "{", "<"), "}", ">") + "`"
}
