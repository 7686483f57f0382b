package formatter

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Breaks finds line breaks for a text, given a line width measured in fixed
// width positions (“en”s). It returns the byte positions after which lines end,
// with the last break position being text.Len().
//
// Line breaking uses a first-fit strategy:
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Word in Text
//	3. |      if Width(Word) > SpaceLeft
//	4. |           insert line break before Word in Text
//	5. |           SpaceLeft := LineWidth - (Width(Word) + SpaceWidth)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
//
// Words wider than a line are not broken. Newline characters force a break.
// If context is nil, uax11.LatinContext is used.
func Breaks(text *ropes.Rope, linewidth int, context *uax11.Context) []uint64 {
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(text.Reader()))
	breaks := make([]uint64, 0, 20)
	spaceleft := linewidth
	var pos uint64
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		word := strings.TrimRight(frag, " \t\r\n")
		wordlen := width(word, context)
		if wordlen > spaceleft && spaceleft < linewidth {
			breaks = append(breaks, pos)
			tracer().Debugf("break @ %d", pos)
			spaceleft = linewidth
		}
		spaceleft -= wordlen + width(frag[len(word):], context)
		pos += uint64(len(frag))
		if strings.HasSuffix(frag, "\n") {
			breaks = append(breaks, pos)
			tracer().Debugf("mandatory break @ %d", pos)
			spaceleft = linewidth
		}
	}
	if spaceleft < linewidth {
		breaks = append(breaks, pos)
	}
	return breaks
}

func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
