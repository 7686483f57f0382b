/*
Package html creates ropes from the textual content of HTML documents.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'ropes'
func tracer() tracing.Trace {
	return tracing.Select("ropes")
}

// InnerText creates a text rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Content of script and style elements
// is skipped. Line breaks and block-level elements produce newline characters.
//
// The fragment organization of the resulting rope will reflect the hierarchy of
// the element node's descendents.
func InnerText(n *html.Node) (*ropes.Rope, error) {
	if n == nil {
		return nil, ropes.ErrIllegalArguments
	}
	c := collector{b: ropes.NewBuilder()}
	if err := c.collectText(n); err != nil {
		return nil, err
	}
	return c.b.Rope(), nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*ropes.Rope, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, err
	}
	c := collector{b: ropes.NewBuilder()}
	for _, n := range nodes {
		if err := c.collectText(n); err != nil {
			return nil, err
		}
	}
	return c.b.Rope(), nil
}

type collector struct {
	b      *ropes.Builder
	lastNL bool // last fragment appended ended with a newline
}

func (c *collector) collectText(n *html.Node) error {
	switch n.Type {
	case html.ElementNode:
		tracer().Debugf("<%s>", n.Data)
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return nil
		case atom.Br:
			return c.append("\n")
		}
	case html.TextNode:
		if err := c.append(n.Data); err != nil {
			return err
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := c.collectText(ch); err != nil {
			return err
		}
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) && !c.lastNL {
		return c.append("\n")
	}
	return nil
}

func (c *collector) append(s string) error {
	if s == "" {
		return nil
	}
	c.lastNL = s[len(s)-1] == '\n'
	return c.b.Append(s)
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Tr, atom.Pre, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
