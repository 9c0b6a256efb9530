package docfx

import "sort"

// Graph is the loaded item set. It is built once by Load and read-only
// afterwards: the uid index and per-namespace type counts are computed in
// NewGraph so later lookups never rescan the item list.
type Graph struct {
	items      []Item
	byUID      map[string]*Item
	typeCounts map[string]int
}

// NewGraph indexes a fully loaded item list. When two items share a uid the
// first one wins, matching lookup-by-first-match semantics.
func NewGraph(items []Item) *Graph {
	g := &Graph{
		items:      items,
		byUID:      make(map[string]*Item, len(items)),
		typeCounts: make(map[string]int),
	}
	for i := range items {
		it := &items[i]
		if _, ok := g.byUID[it.UID]; !ok {
			g.byUID[it.UID] = it
		}
		if it.Kind.IsType() {
			g.typeCounts[it.Namespace]++
		}
	}
	return g
}

// Len returns the number of items in the graph.
func (g *Graph) Len() int { return len(g.items) }

// Items returns all items in load order. Callers must not mutate them.
func (g *Graph) Items() []Item { return g.items }

// Lookup finds an item by uid.
func (g *Graph) Lookup(uid string) (*Item, bool) {
	it, ok := g.byUID[uid]
	return it, ok
}

// Members returns the items of the given kind whose parent is parentUID,
// in load order.
func (g *Graph) Members(parentUID string, kind Kind) []*Item {
	var out []*Item
	for i := range g.items {
		it := &g.items[i]
		if it.Parent == parentUID && it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// TypesIn returns the items of the given kind in a namespace, sorted by name.
func (g *Graph) TypesIn(namespace string, kind Kind) []*Item {
	var out []*Item
	for i := range g.items {
		it := &g.items[i]
		if it.Namespace == namespace && it.Kind == kind {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Namespaces returns all namespace items sorted by name.
func (g *Graph) Namespaces() []*Item {
	var out []*Item
	for i := range g.items {
		if g.items[i].Kind == KindNamespace {
			out = append(out, &g.items[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TypeCount returns the number of groupable type items (classes, interfaces,
// structs, enums, delegates) in a namespace.
func (g *Graph) TypeCount(namespace string) int {
	return g.typeCounts[namespace]
}
