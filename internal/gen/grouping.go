package gen

import (
	"github.com/mgamesdev/docfx-markdown-gen/internal/config"
	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

// Grouping is the namespace grouping policy: whether a namespace's types are
// laid out under per-kind subdirectories. It is a pure function of the final
// graph and config, so it must only be built after loading has fully joined.
// The zero value is a policy that groups nothing.
type Grouping struct {
	graph    *docfx.Graph
	enabled  bool
	minCount int
}

func NewGrouping(graph *docfx.Graph, cfg *config.Config) Grouping {
	return Grouping{
		graph:    graph,
		enabled:  cfg.TypesGrouping.Enabled,
		minCount: cfg.TypesGrouping.MinCount,
	}
}

// Grouped reports whether the namespace holds enough groupable types to get
// per-kind subdirectories.
func (gr Grouping) Grouped(namespace string) bool {
	if !gr.enabled || gr.graph == nil {
		return false
	}
	return gr.graph.TypeCount(namespace) >= gr.minCount
}
