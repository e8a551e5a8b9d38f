package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func doc() markup.Node {
	return markup.El("div",
		markup.Leaf("h1", "Title"),
		markup.El("ul",
			markup.Leaf("li", "X").WithAttr("class", "item"),
			markup.Leaf("li", "Y").WithAttr("class", "item"),
			markup.Leaf("li", "Z"),
		),
	).WithAttr("id", "page")
}

func TestToHTMLElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	hn := dom.ToHTML(doc())
	if hn.Type != html.ElementNode || hn.Data != "div" {
		t.Fatalf("expected lowered root to be a div element, is %v", hn.Data)
	}
	if len(hn.Attr) != 1 || hn.Attr[0].Key != "id" || hn.Attr[0].Val != "page" {
		t.Errorf("expected id attribute to survive lowering, attrs = %v", hn.Attr)
	}
}

func TestToHTMLFragmentBecomesDocument(t *testing.T) {
	frag := markup.Fragment(markup.Leaf("p", "one"), markup.Leaf("p", "two"))
	hn := dom.ToHTML(frag)
	if hn.Type != html.DocumentNode {
		t.Fatalf("expected top-level fragment to lower to a document node, is %v", hn.Type)
	}
	count := 0
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 children under the document node, have %d", count)
	}
}

func TestToHTMLSplicesNestedFragments(t *testing.T) {
	n := markup.El("ul", markup.Fragment(
		markup.Leaf("li", "X"),
		markup.Fragment(markup.Leaf("li", "Y")),
	))
	hn := dom.ToHTML(n)
	var tags []string
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		tags = append(tags, c.Data)
	}
	if len(tags) != 2 || tags[0] != "li" || tags[1] != "li" {
		t.Errorf("expected fragments to splice into the ul, children = %v", tags)
	}
}

func TestRoundTripThroughHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	orig := doc()
	back := dom.FromHTML(dom.ToHTML(orig))
	if !back.Equal(orig) {
		t.Errorf("expected lower+import round trip to preserve the tree:\n%v\nvs\n%v",
			markup.Serialize(orig), markup.Serialize(back))
	}
}

func TestQuerySelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	items, err := dom.Query(doc(), "ul > li.item")
	if err != nil {
		t.Fatalf("expected selector to compile, didn't: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 matches for li.item, have %d", len(items))
	}
	if items[0].Text() != "X" || items[1].Text() != "Y" {
		t.Errorf("expected matches in document order, are %v %v", items[0], items[1])
	}
}

func TestQueryInvalidSelector(t *testing.T) {
	_, err := dom.Query(doc(), "ul > li[")
	if err == nil {
		t.Error("expected invalid selector to be reported, wasn't")
	}
	if err != nil && !strings.Contains(err.Error(), "selector") {
		t.Errorf("expected error to name the selector, is %v", err)
	}
}

func TestQueryFirst(t *testing.T) {
	first, ok, err := dom.QueryFirst(doc(), "li")
	if err != nil || !ok {
		t.Fatalf("expected a first match, haven't (err=%v)", err)
	}
	if first.Text() != "X" {
		t.Errorf("expected first li to be X, is %v", first)
	}
	_, ok, err = dom.QueryFirst(doc(), "table")
	if err != nil {
		t.Fatalf("expected no error for a non-matching selector, have %v", err)
	}
	if ok {
		t.Error("expected no match for table, have one")
	}
}

func TestTextContent(t *testing.T) {
	if txt := dom.TextContent(doc()); txt != "TitleXYZ" {
		t.Errorf("expected concatenated text in tree order, is %q", txt)
	}
}
