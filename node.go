package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// --- Node types ------------------------------------------------------------

// We use 2 types of distinct nodes: leaf nodes and concatenation nodes.
// Leaf nodes carry a fragment of text. Concatenation nodes always carry two
// children; there is no way to construct one with a missing child, so code
// walking the tree never has to check for nil.
//
// No node carries a reference to its parent. Operations which restructure the
// tree are written as recursive functions returning the replacement for the
// subtree they were called on, and the caller stores that replacement in the
// slot it owns (either a child slot of a concatenation node or the rope's root).

// node is the common interface of leafNode and concatNode.
type node interface {
	// weight is the string length of a leaf, or the total string length of
	// the left subtree of a concatenation node.
	weight() uint64
	// String is for debugging.
	String() string
}

type leafNode struct {
	s string
}

type concatNode struct {
	left, right node
	w           uint64 // cached length of left subtree
}

func makeLeafNode(s string) *leafNode {
	return &leafNode{s: s}
}

// makeConcatNode creates an inner node joining left and right. Neither may be nil.
// Computing the weight is an O(depth) operation.
func makeConcatNode(left, right node) *concatNode {
	assert(left != nil, "internal error: concat node without left child")
	assert(right != nil, "internal error: concat node without right child")
	return &concatNode{
		left:  left,
		right: right,
		w:     length(left),
	}
}

// length returns the total string length of the subtree starting at n.
// It adds up the weights along the right spine of the subtree.
func length(n node) uint64 {
	var l uint64
	for {
		switch x := n.(type) {
		case *leafNode:
			return l + x.weight()
		case *concatNode:
			l += x.w
			n = x.right
		default:
			panic(fmt.Sprintf("internal error: unknown rope node type %T", n))
		}
	}
}

// isLeaf is the variant test for nodes: true for leafs, false for
// concatenation nodes.
func isLeaf(n node) bool {
	_, ok := n.(*leafNode)
	return ok
}

// height returns the height of the subtree starting at n. Leafs have height 1.
func height(n node) int {
	if isLeaf(n) {
		return 1
	}
	inner := n.(*concatNode)
	return max(height(inner.left), height(inner.right)) + 1
}

// --- Leaf nodes ------------------------------------------------------------

// Weight of a leaf is its string length in bytes.
func (leaf *leafNode) weight() uint64 {
	return uint64(len(leaf.s))
}

func (leaf *leafNode) String() string {
	return leaf.s
}

// concat appends a suffix to the text fragment of leaf. The weight follows
// automatically.
func (leaf *leafNode) concat(suffix string) {
	leaf.s += suffix
}

// split splits a leaf node at position i, resulting in 2 new leaf nodes.
// 0 < i < weight is required.
func (leaf *leafNode) split(i uint64) (*leafNode, *leafNode) {
	assert(i > 0 && i < leaf.weight(), "internal error: leaf split position out of range")
	return makeLeafNode(leaf.s[:i]), makeLeafNode(leaf.s[i:])
}

// --- Concatenation nodes ---------------------------------------------------

func (inner *concatNode) weight() uint64 {
	return inner.w
}

func (inner *concatNode) String() string {
	return fmt.Sprintf("<concat %d>", inner.w)
}

// attachLeft replaces the left child of an inner node. The new left subtree
// is delta bytes longer than the old one, so the weight grows by delta.
func (inner *concatNode) attachLeft(child node, delta uint64) {
	assert(child != nil, "internal error: attaching nil as left child")
	inner.left = child
	inner.w += delta
}

// attachRight replaces the right child of an inner node.
// The weight is unaffected.
func (inner *concatNode) attachRight(child node) {
	assert(child != nil, "internal error: attaching nil as right child")
	inner.right = child
}

// --- Traversal -------------------------------------------------------------

// traverse walks the subtree starting at n in depth-first, left-to-right order.
// f is called for every node with the text position the subtree starts at and
// the depth of the node. Traversal stops at the first error returned by f.
func traverse(n node, pos uint64, depth int, f func(node, uint64, int) error) error {
	if err := f(n, pos, depth); err != nil {
		return err
	}
	if inner, ok := n.(*concatNode); ok {
		if err := traverse(inner.left, pos, depth+1, f); err != nil {
			return err
		}
		return traverse(inner.right, pos+inner.w, depth+1, f)
	}
	return nil
}
