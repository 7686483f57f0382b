package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	input := `<p>Hello <b>World</b>!</p><script>var x = 1;</script><p>Second<br>line</p>`
	text, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	expected := "Hello World!\nSecond\nline\n"
	if text.String() != expected {
		t.Errorf("expected %q, got %q", expected, text.String())
	}
	if text.FragmentCount() != 8 {
		t.Errorf("expected 8 fragments, have %d", text.FragmentCount())
	}
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head><title>T</title></head>
<body><div id="main">The <i>quick</i> fox</div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	div := findByID(doc, "main")
	if div == nil {
		t.Fatalf("test document has no #main")
	}
	text, err := InnerText(div)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != "The quick fox\n" {
		t.Errorf("unexpected inner text: %q", text.String())
	}
	if _, err = InnerText(nil); !errors.Is(err, ropes.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil node, got %v", err)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
