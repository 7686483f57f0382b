package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"iter"
)

// Rope is a mutable string type, organized as a binary tree of text fragments.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string, as does a rope created
// by New().
//
// Methods that take or return positions use byte offsets.
//
// Ropes are modified in place. Due to their internal structure they do have
// performance characteristics differing from Go strings:
//
//	Operation     |   Rope            |  String
//	--------------+-------------------+--------
//	Len           |   O(right spine)  |   O(1)
//	Append        |   O(right spine)  |   O(n)
//	Insert        |   O(depth)        |   O(n)
//	Index         |   O(depth)        |   O(1)
//	String        |   O(n)            |   O(1)
//
// As ropes are never re-balanced, repeated appends will produce a degenerated
// right spine.
//
// Ropes are not safe for concurrent use. Read-only methods may be called
// concurrently as long as no mutating method runs at the same time.
type Rope struct {
	root node
}

// New creates an empty rope.
func New() *Rope {
	return &Rope{root: makeLeafNode("")}
}

// FromString creates a rope from a Go string. The rope initially consists of a
// single leaf.
func FromString(s string) *Rope {
	return &Rope{root: makeLeafNode(s)}
}

// top returns the root node of a rope, initializing it for zero-value ropes.
func (r *Rope) top() node {
	if r.root == nil {
		r.root = makeLeafNode("")
	}
	return r.root
}

// reset drops the tree of r and makes r the empty rope.
func (r *Rope) reset() {
	r.root = makeLeafNode("")
}

// Len returns the length of the rope in bytes.
//
// Len walks down the right spine of the tree, summing up the weights of the
// nodes it visits. It does not visit the tree as a whole.
func (r *Rope) Len() uint64 {
	if r == nil || r.root == nil {
		return 0
	}
	return length(r.root)
}

// IsVoid returns true if the rope represents "".
func (r *Rope) IsVoid() bool {
	return r.Len() == 0
}

// String returns the rope as a Go string. This may be an expensive operation,
// as it will allocate a buffer for all the bytes of the rope and collect all
// fragments to a single continuous string.
//
// String does not modify the rope; calling it repeatedly yields the same result.
func (r *Rope) String() string {
	if r == nil || r.root == nil {
		return ""
	}
	var bf bytes.Buffer
	bf.Grow(int(r.Len()))
	err := r.EachLeaf(func(fragment string, pos uint64) error {
		_, err := bf.WriteString(fragment)
		return err
	})
	assert(err == nil, "internal error in rope.String()")
	return bf.String()
}

// Height returns the height of the rope's tree. A rope consisting of a single
// leaf has height 1.
func (r *Rope) Height() int {
	if r == nil || r.root == nil {
		return 1
	}
	return height(r.root)
}

// FragmentCount returns the number of leafs this rope is internally split into.
func (r *Rope) FragmentCount() int {
	cnt := 0
	_ = r.EachLeaf(func(string, uint64) error {
		cnt++
		return nil
	})
	return cnt
}

// EachLeaf visits all text fragments of the rope in logical order.
//
// The callback receives each fragment and its starting byte offset. Iteration
// stops at the first callback error and returns that error to the caller.
// The empty leaf of a void rope is not reported.
func (r *Rope) EachLeaf(f func(string, uint64) error) error {
	if r == nil || r.root == nil {
		return nil
	}
	return traverse(r.root, 0, 0, func(n node, pos uint64, depth int) error {
		if leaf, ok := n.(*leafNode); ok && leaf.weight() > 0 {
			return f(leaf.s, pos)
		}
		return nil
	})
}

// RangeLeaf returns an iterator over all text fragments in logical order.
func (r *Rope) RangeLeaf() iter.Seq[string] {
	return func(yield func(string) bool) {
		stop := RopeError("stop")
		_ = r.EachLeaf(func(fragment string, pos uint64) error {
			if !yield(fragment) {
				return stop
			}
			return nil
		})
	}
}
