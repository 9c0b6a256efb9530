package docfx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Load reads every item document in dir and returns the indexed graph.
// Documents are read concurrently; each file appends only to its own slot, so
// the accumulated list needs no locking once the group joins. A malformed
// document aborts the whole load: a partial graph would skew the grouping
// counts for every page.
//
// Files named *.yml are included, except the table-of-contents file.
// *.yml.zst files are decompressed transparently.
func Load(ctx context.Context, dir string, logger *slog.Logger) (*Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isItemDocument(e.Name()) {
			files = append(files, e.Name())
		}
	}
	logger.Info("found item documents", "count", len(files), "dir", dir)

	results := make([][]Item, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(16)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, err := readItems(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			logger.Debug("loaded item document", "file", name, "items", len(items))
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []Item
	for _, r := range results {
		items = append(items, r...)
	}

	counts := make(map[Kind]int)
	for i := range items {
		kind := items[i].Kind
		if !kind.Known() {
			kind = KindOther
		}
		counts[kind]++
	}
	logger.Info("loaded items", "total", len(items))
	for kind, n := range counts {
		logger.Debug("item kind count", "kind", string(kind), "count", n)
	}

	return NewGraph(items), nil
}

func isItemDocument(name string) bool {
	base := strings.TrimSuffix(name, ".zst")
	return strings.HasSuffix(base, ".yml") && base != "toc.yml"
}

func readItems(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader for %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Items, nil
}
