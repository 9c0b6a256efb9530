package gen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mgamesdev/docfx-markdown-gen/internal/config"
	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testGraph builds a graph with one grouped namespace (Big, three classes)
// and one ungrouped namespace (Small, one class).
func testGraph() *docfx.Graph {
	items := []docfx.Item{
		{UID: "Big", Name: "Big", FullName: "Big", Kind: docfx.KindNamespace, CommentID: "N:Big"},
		{UID: "Small", Name: "Small", FullName: "Small", Kind: docfx.KindNamespace, CommentID: "N:Small"},
		{UID: "Big.Alpha", Name: "Alpha", FullName: "Big.Alpha", Kind: docfx.KindClass, Namespace: "Big", CommentID: "T:Big.Alpha"},
		{UID: "Big.Beta", Name: "Beta", FullName: "Big.Beta", Kind: docfx.KindClass, Namespace: "Big", CommentID: "T:Big.Beta"},
		{UID: "Big.List`1", Name: "List<T>", FullName: "Big.List<T>", Kind: docfx.KindClass, Namespace: "Big", CommentID: "T:Big.List`1"},
		{UID: "Small.One", Name: "One", FullName: "Small.One", Kind: docfx.KindStruct, Namespace: "Small", CommentID: "T:Small.One"},
		{UID: "Big.Alpha.Run(System.Int32)", Name: "Run(Int32)", FullName: "Big.Alpha.Run(System.Int32)", Kind: docfx.KindMethod, Namespace: "Big", Parent: "Big.Alpha", CommentID: "M:Big.Alpha.Run(System.Int32)"},
		{UID: "Small.One.Value", Name: "Value", FullName: "Small.One.Value", Kind: docfx.KindProperty, Namespace: "Small", Parent: "Small.One", CommentID: "P:Small.One.Value"},
		{UID: "Big.Orphan.Do", Name: "Do()", FullName: "Big.Orphan.Do()", Kind: docfx.KindMethod, Namespace: "Big", Parent: "Big.Orphan", CommentID: "M:Big.Orphan.Do"},
	}
	return docfx.NewGraph(items)
}

func testConfig() *config.Config {
	return &config.Config{
		YamlPath:      "in",
		OutputPath:    "out",
		IndexSlug:     "/api",
		TypesGrouping: config.TypesGroupingConfig{Enabled: true, MinCount: 3},
		BrNewline:     "\n\n",
		ForcedNewline: "  \n",
	}
}

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	graph := testGraph()
	return NewResolver(graph, NewGrouping(graph, testConfig()), false, testLogger())
}

func TestLinkTypes(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name string
		uid  string
		lc   LinkContext
		want string
	}{
		{
			"grouped class from ungrouped page",
			"Big.Alpha", LinkContext{},
			"[Big.Alpha](../Big/Classes/Alpha)",
		},
		{
			"grouped class from grouped page",
			"Big.Alpha", LinkContext{FromGrouped: true},
			"[Big.Alpha](../../Big/Classes/Alpha)",
		},
		{
			"grouped class from index",
			"Big.Alpha", LinkContext{FromIndex: true},
			"[Big.Alpha](./Big/Classes/Alpha.md)",
		},
		{
			"ungrouped struct omits the kind segment",
			"Small.One", LinkContext{},
			"[Small.One](../Small/One)",
		},
		{
			"short name",
			"Small.One", LinkContext{NameOnly: true},
			"[One](../Small/One)",
		},
		{
			"generic name gets both escape passes",
			"Big.List`1", LinkContext{},
			"[Big.List&lt;T&gt;](../Big/Classes/List`T`)",
		},
	}

	for _, tt := range tests {
		got := r.Link(tt.uid, tt.lc)
		if got != tt.want {
			t.Errorf("%s: Link(%q) = %q, want %q", tt.name, tt.uid, got, tt.want)
		}
		// Resolution is idempotent for identical contexts.
		if again := r.Link(tt.uid, tt.lc); again != got {
			t.Errorf("%s: second resolution differed: %q vs %q", tt.name, again, got)
		}
	}
}

func TestLinkNamespace(t *testing.T) {
	graph := testGraph()
	grouping := NewGrouping(graph, testConfig())

	plain := NewResolver(graph, grouping, false, testLogger())
	rewrite := NewResolver(graph, grouping, true, testLogger())

	tests := []struct {
		name string
		res  *Resolver
		lc   LinkContext
		want string
	}{
		{"from page", plain, LinkContext{}, "[Big](../Big/Big)"},
		{"from index", plain, LinkContext{FromIndex: true}, "[Big](./Big/Big.md)"},
		{"rewritten from page", rewrite, LinkContext{}, "[Big](../Big)"},
		{"rewritten from index keeps the duplicated segment", rewrite, LinkContext{FromIndex: true}, "[Big](./Big/Big.md)"},
	}

	for _, tt := range tests {
		if got := tt.res.Link("Big", tt.lc); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLinkMembers(t *testing.T) {
	r := testResolver(t)

	// Method anchor mirrors the member heading: lower-cased, parens stripped.
	got := r.Link("Big.Alpha.Run(System.Int32)", LinkContext{})
	want := "[Big.Alpha.Run(System.Int32)](../Big/Classes/Alpha#runint32)"
	if got != want {
		t.Errorf("method link = %q, want %q", got, want)
	}

	// Property on an ungrouped type.
	got = r.Link("Small.One.Value", LinkContext{NameOnly: true})
	want = "[Value](../Small/One#value)"
	if got != want {
		t.Errorf("property link = %q, want %q", got, want)
	}

	// A dangling parent degrades to the inert fallback.
	got = r.Link("Big.Orphan.Do", LinkContext{})
	want = "`Big.Orphan.Do`"
	if got != want {
		t.Errorf("dangling parent link = %q, want %q", got, want)
	}
}

func TestLinkUnresolved(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		uid  string
		want string
	}{
		{"System.String", "`System.String`"},
		{"System.Collections.Generic.Dictionary{TKey,TValue}", "`System.Collections.Generic.Dictionary<TKey,TValue>`"},
	}
	for _, tt := range tests {
		got := r.Link(tt.uid, LinkContext{})
		if got != tt.want {
			t.Errorf("Link(%q) = %q, want %q", tt.uid, got, tt.want)
		}
		if got == "" {
			t.Errorf("Link(%q) produced empty fallback", tt.uid)
		}
	}
}

func TestLinkGenericArgumentFallback(t *testing.T) {
	r := testResolver(t)

	// "Big.List{T}" is not indexed, but "Big.List`1" is: the first braced
	// segment is replaced by the arity marker and the lookup retried.
	got := r.Link("Big.List{T}", LinkContext{})
	want := "[Big.List&lt;T&gt;](../Big/Classes/List`T`)"
	if got != want {
		t.Errorf("Link(Big.List{T}) = %q, want %q", got, want)
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Run(Int32)", "runint32"},
		{"TryGet(String, Boolean?)", "trygetstring, boolean"},
		{"Value", "value"},
	}
	for _, tt := range tests {
		if got := anchor(tt.name); got != tt.want {
			t.Errorf("anchor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
