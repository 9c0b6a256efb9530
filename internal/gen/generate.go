package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mgamesdev/docfx-markdown-gen/internal/config"
	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

const Version = "1.0.0"

// Generate renders the whole markdown tree for a loaded graph. Namespace and
// type pages are written concurrently (they have no data dependency); the
// index page waits for both, since it enumerates the namespace pages.
//
// Items without a commentId cannot be classified for page generation; they
// are counted, logged and skipped rather than aborting the run.
func Generate(ctx context.Context, graph *docfx.Graph, cfg *config.Config, logger *slog.Logger) error {
	grouping := NewGrouping(graph, cfg)
	rn := NewRenderer(graph, grouping, cfg, logger)

	for _, ns := range graph.Namespaces() {
		if err := os.MkdirAll(filepath.Join(cfg.OutputPath, ns.Name), 0o755); err != nil {
			return fmt.Errorf("creating namespace directory %s: %w", ns.Name, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(16)

	items := graph.Items()
	var typePages, namespacePages, missing int
	for i := range items {
		item := &items[i]
		// Namespaces are classified by kind, not commentId, so they render
		// either way; anything else without a commentId cannot be classified.
		if item.CommentID == "" && item.Kind != docfx.KindNamespace {
			missing++
			logger.Warn("missing commentId, skipping page", "uid", item.UID, "id", item.ID)
			continue
		}

		switch {
		case strings.HasPrefix(item.CommentID, "T:"):
			typePages++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rel, content, err := rn.RenderType(item)
				if err != nil {
					return fmt.Errorf("rendering type %s: %w", item.UID, err)
				}
				return writePage(cfg.OutputPath, rel, content)
			})
		case item.Kind == docfx.KindNamespace:
			namespacePages++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rel, content, err := rn.RenderNamespace(item)
				if err != nil {
					return fmt.Errorf("rendering namespace %s: %w", item.Name, err)
				}
				return writePage(cfg.OutputPath, rel, content)
			})
		}
	}

	logger.Info("rendering pages", "types", typePages, "namespaces", namespacePages)
	if missing > 0 {
		logger.Warn("items skipped for missing commentId", "count", missing)
	}

	if err := g.Wait(); err != nil {
		return err
	}

	rel, content, err := rn.RenderIndex()
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	if err := writePage(cfg.OutputPath, rel, content); err != nil {
		return err
	}

	logger.Info("markdown generation complete", "pages", typePages+namespacePages+1)
	return nil
}

func writePage(root, rel string, content []byte) error {
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
