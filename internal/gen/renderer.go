package gen

import (
	"bytes"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/mgamesdev/docfx-markdown-gen/internal/config"
	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

// Renderer assembles markdown pages for types, namespaces and the index.
// It holds two resolvers: the grouping-aware one used on type pages, and a
// flat one for namespace and index pages, which always link to types by their
// ungrouped path.
type Renderer struct {
	graph *docfx.Graph
	cfg   *config.Config
	res   *Resolver
	flat  *Resolver
}

func NewRenderer(graph *docfx.Graph, grouping Grouping, cfg *config.Config, logger *slog.Logger) *Renderer {
	return &Renderer{
		graph: graph,
		cfg:   cfg,
		res:   NewResolver(graph, grouping, cfg.RewriteInterlinks, logger),
		flat:  NewResolver(graph, Grouping{}, cfg.RewriteInterlinks, logger),
	}
}

// Resolver returns the grouping-aware resolver.
func (rn *Renderer) Resolver() *Resolver { return rn.res }

type fmField struct {
	key   string
	value any
}

// frontMatter serializes fields into a delimited YAML front-matter block,
// preserving field order.
func frontMatter(fields []fmField) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(f.value); err != nil {
			return nil, fmt.Errorf("encoding front matter field %s: %w", f.key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

// sourceLink renders a "View Source" line pointing at the item's declaration
// in its remote repository, or "" when no remote metadata is present.
func sourceLink(it *docfx.Item) string {
	if it.Source == nil || it.Source.Remote == nil {
		return ""
	}
	r := it.Source.Remote
	return fmt.Sprintf("###### [View Source](%s/blob/%s/%s#L%d)", r.Repo, r.Branch, r.Path, it.Source.StartLine+1)
}
