package metrics

import (
	"strings"

	"github.com/npillmayer/ropes"
)

// LinesMetric is a metric that counts the lines of a text, delimited by newline
// characters. Multiple consecutive newlines will be counted as multiple empty lines.
// A non-empty text with n newline characters has n+1 lines, the empty text has none.
type LinesMetric struct{}

// Lines creates a line counting metric.
func Lines() LinesMetric {
	return LinesMetric{}
}

type linesValue struct {
	length   int
	newlines int
}

func (v linesValue) Len() int {
	return v.length
}

// Apply counts the newlines in a text fragment.
// Apply is part of interface ropes.Metric.
func (LinesMetric) Apply(frag string) ropes.MetricValue {
	return linesValue{
		length:   len(frag),
		newlines: strings.Count(frag, "\n"),
	}
}

// Combine is part of interface ropes.Metric.
func (LinesMetric) Combine(leftSibling, rightSibling ropes.MetricValue) ropes.MetricValue {
	l, r := leftSibling.(linesValue), rightSibling.(linesValue)
	return linesValue{
		length:   l.length + r.length,
		newlines: l.newlines + r.newlines,
	}
}

// Count is part of interface CountingMetric.
func (LinesMetric) Count(v ropes.MetricValue) int {
	lv := v.(linesValue)
	if lv.length == 0 {
		return 0
	}
	return lv.newlines + 1
}

var _ CountingMetric = LinesMetric{}
