package dbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/dbg"
)

func sample() markup.Node {
	return markup.El("div",
		markup.Leaf("h1", "A rather longish headline"),
		markup.El("ul", markup.Leaf("li", "X"), markup.Leaf("li", "Y")),
	).WithAttr("id", "page")
}

func TestTextDump(t *testing.T) {
	dump := dbg.Text(sample())
	t.Logf("tree =\n%s", dump)
	for _, want := range []string{`div id="page"`, "ul", `li "X"`, `li "Y"`} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q, doesn't:\n%s", want, dump)
		}
	}
	if !strings.Contains(dump, "A rather l...") {
		t.Errorf("expected long text to be shortened, isn't:\n%s", dump)
	}
}

func TestTextDumpFragment(t *testing.T) {
	dump := dbg.Text(markup.Fragment(markup.Leaf("p", "x")))
	if !strings.Contains(dump, "#fragment") {
		t.Errorf("expected fragment marker in dump, isn't:\n%s", dump)
	}
}

func TestToGraphViz(t *testing.T) {
	var sb strings.Builder
	if err := dbg.ToGraphViz(sample(), &sb); err != nil {
		t.Fatalf("expected DOT output to be written, wasn't: %v", err)
	}
	dot := sb.String()
	t.Logf("dot =\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a complete digraph, is:\n%s", dot)
	}
	if !strings.Contains(dot, "->") {
		t.Error("expected edges in the digraph, aren't any")
	}
	if !strings.Contains(dot, "node1") {
		t.Error("expected numbered nodes in the digraph, aren't any")
	}
}
