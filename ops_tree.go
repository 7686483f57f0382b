package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"bytes"

	"github.com/npillmayer/schuko/tracing"
)

// Index returns the byte at position i.
// If i is not a valid position within the rope, ErrIndexOutOfBounds is returned.
func (r *Rope) Index(i uint64) (byte, error) {
	if i >= r.Len() {
		return 0, ErrIndexOutOfBounds
	}
	leaf, j := index(r.root, i)
	return leaf.s[j], nil
}

// index locates the leaf containing position i, together with the position
// within the leaf. i has to be a valid position in the subtree starting at n.
func index(n node, i uint64) (*leafNode, uint64) {
	for {
		switch x := n.(type) {
		case *leafNode:
			return x, i
		case *concatNode:
			if i < x.w {
				n = x.left
			} else {
				i -= x.w
				n = x.right
			}
		}
	}
}

// Report outputs a substring: Report(i,l) => outputs the string b(i),...,b(i+l-1).
// If [i, i+l) is not a valid range within the rope, ErrIndexOutOfBounds is returned.
func (r *Rope) Report(i, l uint64) (string, error) {
	if !r.isValidRange(i, l) {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	var bf bytes.Buffer
	bf.Grow(int(l))
	report(r.root, i, i+l, &bf)
	return bf.String(), nil
}

// report writes the text of [i, j) within the subtree of n to bf.
// Subtrees not overlapping [i, j) are not visited.
func report(n node, i, j uint64, bf *bytes.Buffer) {
	switch x := n.(type) {
	case *leafNode:
		bf.WriteString(x.s[i:min(j, x.weight())])
	case *concatNode:
		if i < x.w {
			report(x.left, i, min(j, x.w), bf)
		}
		if j > x.w {
			report(x.right, i-min(i, x.w), j-x.w, bf)
		}
	}
}

// Delete removes the bytes [i, i+l) from the rope.
// If [i, i+l) is not a valid range within the rope, ErrIndexOutOfBounds is returned
// and the rope is left unchanged.
func (r *Rope) Delete(i, l uint64) error {
	if !r.isValidRange(i, l) {
		return ErrIndexOutOfBounds
	}
	if l == 0 {
		return nil
	}
	left, rest := splitNode(r.root, i)
	_, right := splitNode(rest, l)
	r.root = join(left, right)
	if r.root == nil {
		r.reset()
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		dump(r.root)
	}
	tracer().Debugf("delete: removed [%d…%d), rope length now %d", i, i+l, r.Len())
	return nil
}

// Split splits a rope into two new ropes right before position i:
// Split(R,i) => R1=b(0),...,b(i-1) and R2=b(i),...,b(n).
//
// The fragments of r are moved to the new ropes and r is left empty.
// If i is greater than the length of r, ErrIndexOutOfBounds is returned and r
// remains unchanged. Splitting a nil rope returns ErrIllegalArguments.
func (r *Rope) Split(i uint64) (*Rope, *Rope, error) {
	if r == nil {
		return nil, nil, ErrIllegalArguments
	}
	if i > r.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	left, right := splitNode(r.top(), i)
	r.reset()
	return ropeFromNode(left), ropeFromNode(right), nil
}

// Concat appends the content of other to r. The tree of other is attached as a
// whole, making it the right subtree of r's new root. other is left empty.
//
// It is illegal to concatenate a rope with itself.
func (r *Rope) Concat(other *Rope) error {
	if r == nil || r == other {
		return ErrIllegalArguments
	}
	if other.IsVoid() {
		return nil
	}
	if r.IsVoid() {
		r.root = other.root
	} else {
		r.root = makeConcatNode(r.root, other.root)
	}
	other.reset()
	return nil
}

func (r *Rope) isValidRange(i, l uint64) bool {
	n := r.Len()
	return i <= n && l <= n-i
}

func ropeFromNode(n node) *Rope {
	if n == nil {
		return New()
	}
	return &Rope{root: n}
}

// splitNode splits the subtree starting at n at position i. It returns the
// subtrees for [0, i) and [i, …); either may be nil if it would be empty.
//
// Inner nodes along the path to position i are dropped and their children
// re-joined by new inner nodes. All other subtrees move unchanged to one of
// the results, therefore n must not be used any more after splitting.
func splitNode(n node, i uint64) (node, node) {
	switch x := n.(type) {
	case *leafNode:
		if i == 0 {
			return nil, x
		}
		if i >= x.weight() {
			return x, nil
		}
		pre, post := x.split(i)
		return pre, post
	case *concatNode:
		if i == x.w {
			return x.left, x.right
		}
		if i < x.w {
			l, r := splitNode(x.left, i)
			return l, join(r, x.right)
		}
		l, r := splitNode(x.right, i-x.w)
		return join(x.left, l), r
	}
	return nil, nil
}

// join creates an inner node for two subtrees. If one of them is nil, the
// other one is returned.
func join(left, right node) node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return makeConcatNode(left, right)
}
