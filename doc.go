/*
Package ropes implements a mutable rope, a binary tree of string fragments.

Ropes

Ropes (sometimes called cords) organize fragments of text in a tree. Appending
to or inserting into a long text then touches a single path of the tree instead
of copying the whole string.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
[…] In summary, ropes are preferable when the data is large and modified often.

Tree Layout

Nodes are either leafs, carrying a fragment of text, or concatenation nodes
with exactly two children. Every node carries a weight:

  * The weight of a leaf is equal to the length of its string fragment.
  * The weight of a concatenation node is the total string length of its *left*
    subtree.
  * The total string length of a subtree, starting from node N, is equal to N's
    weight, plus the weights of the straight line of right children down to the
    rightmost leaf of the subtree.

A concatenation node without a right (or left) child cannot be constructed.
Every node has exactly one owner, either its parent or the rope; no subtree is
ever shared between two ropes.

Ropes do not re-balance. Repeated appends grow the right spine of the tree, so
Len and Append are O(depth) and depth may become O(n) for n appends.

Positions are byte offsets. Ropes are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ropes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ropes'
func tracer() tracing.Trace {
	return tracing.Select("ropes")
}

// RopeError is an error type for the ropes module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
