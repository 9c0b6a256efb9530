package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

func TestGenerate(t *testing.T) {
	items := []docfx.Item{
		{UID: "Big", Name: "Big", FullName: "Big", Kind: docfx.KindNamespace, CommentID: "N:Big"},
		{UID: "Small", Name: "Small", FullName: "Small", Kind: docfx.KindNamespace, CommentID: "N:Small"},
		{UID: "Big.Alpha", Name: "Alpha", FullName: "Big.Alpha", Kind: docfx.KindClass, Namespace: "Big", CommentID: "T:Big.Alpha"},
		{UID: "Big.Beta", Name: "Beta", FullName: "Big.Beta", Kind: docfx.KindClass, Namespace: "Big", CommentID: "T:Big.Beta"},
		{UID: "Big.IThing", Name: "IThing", FullName: "Big.IThing", Kind: docfx.KindInterface, Namespace: "Big", CommentID: "T:Big.IThing"},
		{UID: "Small.One", Name: "One", FullName: "Small.One", Kind: docfx.KindStruct, Namespace: "Small", CommentID: "T:Small.One"},
		// Members never get their own pages.
		{UID: "Big.Alpha.Run", Name: "Run()", FullName: "Big.Alpha.Run()", Kind: docfx.KindMethod, Namespace: "Big", Parent: "Big.Alpha", CommentID: "M:Big.Alpha.Run"},
		// Missing commentId: counted and skipped, not fatal.
		{UID: "Big.Ghost", Name: "Ghost", FullName: "Big.Ghost", Kind: docfx.KindClass, Namespace: "Big"},
	}
	graph := docfx.NewGraph(items)

	cfg := testConfig()
	cfg.OutputPath = t.TempDir()

	if err := Generate(context.Background(), graph, cfg, testLogger()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Big has 3 groupable types and MinCount is 3: grouped layout.
	for _, rel := range []string{
		"Big/Big.md",
		"Big/Classes/Alpha.md",
		"Big/Classes/Beta.md",
		"Big/Interfaces/IThing.md",
		"Small/Small.md",
		"Small/One.md",
		"index.md",
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputPath, rel)); err != nil {
			t.Errorf("expected page %s: %v", rel, err)
		}
	}

	// Members and commentId-less items get no pages.
	for _, rel := range []string{
		"Big/Classes/Ghost.md",
		"Big/Ghost.md",
		"Big/Classes/Run().md",
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputPath, rel)); err == nil {
			t.Errorf("unexpected page %s", rel)
		}
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputPath, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"* [Big](./Big/Big.md)", "* [Small](./Small/Small.md)"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index missing %q:\n%s", want, index)
		}
	}
}

func TestGenerateNamespaceWithoutCommentID(t *testing.T) {
	items := []docfx.Item{
		// Extractors may omit commentId on namespace items; the namespace
		// still gets its page, since the index links every namespace.
		{UID: "Bare", Name: "Bare", FullName: "Bare", Kind: docfx.KindNamespace},
		{UID: "Bare.A", Name: "A", FullName: "Bare.A", Kind: docfx.KindClass, Namespace: "Bare", CommentID: "T:Bare.A"},
	}
	graph := docfx.NewGraph(items)

	cfg := testConfig()
	cfg.OutputPath = t.TempDir()

	if err := Generate(context.Background(), graph, cfg, testLogger()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputPath, "Bare", "Bare.md")); err != nil {
		t.Errorf("namespace page must be written without a commentId: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputPath, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "[Bare](./Bare/Bare.md)") {
		t.Errorf("index must link the namespace:\n%s", index)
	}
}

func TestGenerateUngroupedLayout(t *testing.T) {
	items := []docfx.Item{
		{UID: "Bar", Name: "Bar", FullName: "Bar", Kind: docfx.KindNamespace, CommentID: "N:Bar"},
		{UID: "Bar.A", Name: "A", FullName: "Bar.A", Kind: docfx.KindClass, Namespace: "Bar", CommentID: "T:Bar.A"},
		{UID: "Bar.B", Name: "B", FullName: "Bar.B", Kind: docfx.KindClass, Namespace: "Bar", CommentID: "T:Bar.B"},
	}
	graph := docfx.NewGraph(items)

	cfg := testConfig() // MinCount 3, only 2 classes
	cfg.OutputPath = t.TempDir()

	if err := Generate(context.Background(), graph, cfg, testLogger()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, rel := range []string{"Bar/A.md", "Bar/B.md"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputPath, rel)); err != nil {
			t.Errorf("expected ungrouped page %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputPath, "Bar", "Classes")); err == nil {
		t.Error("Classes directory must not exist below the grouping threshold")
	}
}
