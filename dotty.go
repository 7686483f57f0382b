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

type nodeids struct {
	idTable map[node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[node]int),
		max:     1,
	}
}

func (ids nodeids) find(n node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
func Rope2Dot(text *Rope, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	err := traverse(text.top(), 0, 0, func(n node, pos uint64, depth int) error {
		ID := ids.alloc(n)
		switch x := n.(type) {
		case *leafNode:
			label := fmt.Sprintf("%d @%d\\n“%s”", x.weight(), pos, escape(strstart(x)))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
		case *concatNode:
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=L];\n", ID, ids.alloc(x.left))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=R];\n", ID, ids.alloc(x.right))
			fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, x.w, nodeDotStyles(false))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
		return err
	}
	if _, err = io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err = io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err = io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}
