package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ropes"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for formatting a text.
type Config struct {
	LineWidth int            // target line length in fixed width positions
	Context   *uax11.Context // context for measuring character widths
	// Colors are used in turn for the text of adjacent fragments of a rope.
	// If Colors is empty, text is output uncolored.
	Colors []*color.Color
}

// DefaultPalette is a palette for visualizing fragment boundaries.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
	}
}

// Print outputs a text to w, breaking it into lines according to config.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties. Config.Context will be created based on heuristics from
// the user environment.
func Print(w io.Writer, text *ropes.Rope, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.LineWidth <= 0 {
		return ropes.ErrIllegalArguments
	}
	fragstarts := fragmentStarts(text)
	var start uint64
	for _, end := range Breaks(text, config.LineWidth, config.Context) {
		if err := printLine(w, text, start, end, fragstarts, config.Colors); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// printLine outputs the text between start and end as a single line, without
// trailing white space. Text from different fragments is printed in different
// colors.
func printLine(w io.Writer, text *ropes.Rope, start, end uint64, fragstarts []uint64, colors []*color.Color) error {
	line, err := text.Report(start, end-start)
	if err != nil {
		return err
	}
	end = start + uint64(len(strings.TrimRight(line, " \t\r\n")))
	pos := start
	for pos < end {
		k := fragmentIndex(fragstarts, pos)
		next := end
		if k+1 < len(fragstarts) && fragstarts[k+1] < end {
			next = fragstarts[k+1]
		}
		s := line[pos-start : next-start]
		if len(colors) > 0 {
			_, err = colors[k%len(colors)].Fprint(w, s)
		} else {
			_, err = io.WriteString(w, s)
		}
		if err != nil {
			return err
		}
		pos = next
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func fragmentStarts(text *ropes.Rope) []uint64 {
	starts := make([]uint64, 0, 16)
	_ = text.EachLeaf(func(_ string, pos uint64) error {
		starts = append(starts, pos)
		return nil
	})
	return starts
}

// fragmentIndex returns the index of the fragment containing pos.
func fragmentIndex(starts []uint64, pos uint64) int {
	k := 0
	for k+1 < len(starts) && starts[k+1] <= pos {
		k++
	}
	return k
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
		config.Colors = DefaultPalette()
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
