package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree structure of a rope to w, for debugging purposes.
//
// Nodes are visited breadth-first and written level by level, one line per
// level. Every node is printed as tag(orientation,weight), where tag is either
// "leaf" or "concat", and orientation is one of "root", "L" or "R":
//
//	level 0: concat(root,2)
//	level 1: leaf(L,2) concat(R,2)
//	level 2: leaf(L,2) leaf(R,2)
func (r *Rope) Dump(w io.Writer) error {
	for depth, level := range r.levels() {
		if _, err := fmt.Fprintf(w, "level %d: %s\n", depth, strings.Join(level, " ")); err != nil {
			return err
		}
	}
	return nil
}

// levels returns the node labels of the tree, level by level.
func (r *Rope) levels() [][]string {
	type entry struct {
		node   node
		orient string
	}
	var levels [][]string
	queue := []entry{{node: r.top(), orient: "root"}}
	for len(queue) > 0 {
		var next []entry
		level := make([]string, 0, len(queue))
		for _, e := range queue {
			switch x := e.node.(type) {
			case *leafNode:
				level = append(level, fmt.Sprintf("leaf(%s,%d)", e.orient, x.weight()))
			case *concatNode:
				level = append(level, fmt.Sprintf("concat(%s,%d)", e.orient, x.w))
				next = append(next, entry{x.left, "L"}, entry{x.right, "R"})
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

// --- Debugging helper ------------------------------------------------------

func dump(n node) {
	_ = traverse(n, 0, 0, func(n node, pos uint64, depth int) error {
		if leaf, ok := n.(*leafNode); ok {
			tracer().Debugf("%sL = %q @%d", indent(depth), strstart(leaf), pos)
			return nil
		}
		tracer().Debugf("%sN = %v", indent(depth), n)
		return nil
	})
}

func indent(d int) string {
	return strings.Repeat("  ", d)
}

func strstart(leaf *leafNode) string {
	s := leaf.String()
	if len(s) > 8 {
		return s[:7] + "…"
	}
	return s
}
