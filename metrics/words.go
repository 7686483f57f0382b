package metrics

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/ropes"
)

// WordsMetric is a metric counting words, i.e. maximal runs of non-space
// characters.
//
// Fragments are measured independently. A word may therefore start in one
// fragment and end in another one; Combine accounts for this by inspecting
// the borders of adjacent fragments. Multi-byte space characters split across
// fragments are counted as word characters.
type WordsMetric struct{}

// Words creates a word counting metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// WordsValue is the metric value of WordsMetric.
type WordsValue struct {
	length     int
	count      int
	startsWord bool // text starts with a non-space character
	endsWord   bool // text ends with a non-space character
}

// Len is part of interface ropes.MetricValue.
func (v WordsValue) Len() int {
	return v.length
}

// WordCount returns the number of words found.
func (v WordsValue) WordCount() int {
	return v.count
}

// Apply counts the words in a text fragment.
// Apply is part of interface ropes.Metric.
func (WordsMetric) Apply(frag string) ropes.MetricValue {
	v := WordsValue{length: len(frag)}
	inWord := false
	for pos := 0; pos < len(frag); {
		r, width := utf8.DecodeRuneInString(frag[pos:])
		space := unicode.IsSpace(r)
		if pos == 0 {
			v.startsWord = !space
		}
		if !space && !inWord {
			v.count++
		}
		inWord = !space
		pos += width
	}
	v.endsWord = inWord
	return v
}

// Combine is part of interface ropes.Metric.
func (WordsMetric) Combine(leftSibling, rightSibling ropes.MetricValue) ropes.MetricValue {
	l, r := leftSibling.(WordsValue), rightSibling.(WordsValue)
	if l.length == 0 {
		return r
	} else if r.length == 0 {
		return l
	}
	v := WordsValue{
		length:     l.length + r.length,
		count:      l.count + r.count,
		startsWord: l.startsWord,
		endsWord:   r.endsWord,
	}
	if l.endsWord && r.startsWord { // one word spanning both siblings
		v.count--
	}
	return v
}

// Count is part of interface CountingMetric.
func (WordsMetric) Count(v ropes.MetricValue) int {
	return v.(WordsValue).count
}

var _ CountingMetric = WordsMetric{}
