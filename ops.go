package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/schuko/tracing"

// Append adds s to the end of the rope.
//
// Appending to the empty rope stores s in the rope's (empty) leaf. Otherwise
// Append walks down the right spine of the tree and replaces the rightmost leaf
// by a new concatenation node, joining the old leaf and a new leaf for s.
// Weights are unaffected, as nothing changes on the left side of any node.
//
// Appending the empty string is a no-op.
func (r *Rope) Append(s string) {
	if r == nil || len(s) == 0 {
		return
	}
	switch root := r.top().(type) {
	case *leafNode:
		if root.weight() == 0 {
			root.concat(s)
			return
		}
		r.root = makeConcatNode(root, makeLeafNode(s))
		tracer().Debugf("append: new root %v", r.root)
	case *concatNode:
		inner := root
		for {
			switch right := inner.right.(type) {
			case *leafNode:
				inner.attachRight(makeConcatNode(right, makeLeafNode(s)))
				return
			case *concatNode:
				inner = right
			}
		}
	}
}

// Insert inserts s into the rope, starting at byte position offset. After the
// operation, the rope reads old[:offset] + s + old[offset:].
//
// Offsets are not rejected: an offset greater than r.Len() is clamped to
// r.Len(), i.e., the call behaves like Append. Inserting at offset 0 into a
// non-empty rope prepends s.
//
// Offset is a byte position; clients are responsible for not splitting
// multi-byte runes. Inserting the empty string is a no-op.
func (r *Rope) Insert(offset uint64, s string) {
	if r == nil || len(s) == 0 {
		return
	}
	if l := r.Len(); offset > l {
		tracer().Debugf("insert: offset %d beyond end of rope, clamped to %d", offset, l)
		offset = l
	}
	if leaf, ok := r.top().(*leafNode); ok && leaf.weight() == 0 {
		leaf.concat(s)
		return
	}
	r.root = insertAt(r.root, offset, s)
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		dump(r.root)
	}
}

// insertAt inserts s at position offset of the subtree starting at n and
// returns the node which replaces n in its parent's slot.
//
// When the insertion happens in the left subtree of an inner node, the
// inner node's weight grows by len(s). Every inner node on the path to the
// insertion point is adjusted this way, when the recursion returns.
func insertAt(n node, offset uint64, s string) node {
	switch x := n.(type) {
	case *leafNode:
		return insertIntoLeaf(x, offset, s)
	case *concatNode:
		if offset <= x.w {
			x.attachLeft(insertAt(x.left, offset, s), uint64(len(s)))
		} else {
			x.attachRight(insertAt(x.right, offset-x.w, s))
		}
		return x
	}
	panic("internal error: unknown rope node type")
}

// insertIntoLeaf creates a subtree which replaces leaf. There are 3 cases:
//
//	offset >= weight   =>   (leaf, s)
//	offset == 0        =>   (s, leaf)
//	otherwise          =>   (pre, (s, post))
func insertIntoLeaf(leaf *leafNode, offset uint64, s string) node {
	ins := makeLeafNode(s)
	if offset >= leaf.weight() {
		tracer().Debugf("insert: appending %q to leaf %q", s, strstart(leaf))
		return makeConcatNode(leaf, ins)
	}
	if offset == 0 {
		tracer().Debugf("insert: prepending %q to leaf %q", s, strstart(leaf))
		return makeConcatNode(ins, leaf)
	}
	pre, post := leaf.split(offset)
	tracer().Debugf("insert: splitting leaf %q at %d", strstart(leaf), offset)
	return makeConcatNode(pre, makeConcatNode(ins, post))
}
