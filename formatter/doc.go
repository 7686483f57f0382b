/*
Package formatter outputs ropes to devices with fixed-width fonts, most
notably terminals.

Lines are broken with a first-fit strategy. Break opportunities are found
following UAX#14 (line breaking), and the display width of every segment is
measured on grapheme clusters (UAX#29), following UAX#11 (character width).
This package does not constitute a typesetter: there is no handling of
fonts, glyphs or elaborate line-breaking algorithms.

Output may visualize the fragment structure of a rope by coloring text
from adjacent leafs differently.

	text := ropes.FromString("The quick brown fox jumps over the lazy dog!")
	formatter.Print(os.Stdout, text, formatter.ConfigFromTerminal())

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ropes'
func tracer() tracing.Trace {
	return tracing.Select("ropes")
}
