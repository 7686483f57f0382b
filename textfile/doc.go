/*
Package textfile provides API helpers to load UTF-8 text files as ropes.

Files are read in fragments by a background goroutine, which broadcasts every
fragment as soon as it has been read. The rope is assembled from the broadcast
messages, with every fragment becoming a leaf of the rope. Load itself is
synchronous and returns when the whole file is part of the rope.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ropes'
func tracer() tracing.Trace {
	return tracing.Select("ropes")
}
