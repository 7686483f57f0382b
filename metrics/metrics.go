package metrics

import (
	"fmt"

	"github.com/npillmayer/ropes"
)

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, emojis, …
type CountingMetric interface {
	ropes.Metric
	Count(ropes.MetricValue) int
}

// Count applies a counting metric to a text.
//
// i and j are text positions with Go slice semantics.
func Count(text *ropes.Rope, i, j uint64, metric CountingMetric) (int, error) {
	value, err := ropes.ApplyMetric(text, i, j, metric)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	n := metric.Count(value)
	tracer().Debugf("metrics.Count [%d…%d) = %d", i, j, n)
	return n, nil
}
