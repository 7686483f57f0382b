package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Metric is a metric to calculate on a rope. Sometimes it's helpful to find
// information about a (large) text by collecting metrics from fragments and
// assembling them. Ropes naturally break up texts into smaller fragments,
// letting us calculate metrics by applying them to (a subset of) fragments and
// propagate them upwards the nodes of the rope tree.
//
// An example of a (very simplistic) metric would be to count the number of
// bytes in a text. The total count is calculated by counting the bytes in every
// fragment and adding up intermediate sums while travelling upwards through the
// rope's tree.
//
// Clients have no control over size or boundaries of the fragments. Fragments
// are presented to Apply without regard to rune- or line-boundaries.
//
// Combine requires the Metric to calculate a metric value “sum” (monoid) from
// two metric values of adjacent sections of text. Combine must be associative,
// with the neutral element being Apply(""), i.e. the metric value of the empty
// string.
type Metric interface {
	Apply(frag string) MetricValue
	Combine(leftSibling, rightSibling MetricValue) MetricValue
}

// MetricValue is a type returned by applying a metric to text fragments (see
// interface Metric).
type MetricValue interface {
	Len() int // summed up length of text fragments
}

// --- Apply a metric to a rope ----------------------------------------------

// ApplyMetric applies a metric calculation on a (section of a) text.
//
// i and j are text positions with Go slice semantics.
// If [i, j) does not specify a valid slice of the text, ErrIndexOutOfBounds will be
// returned.
func ApplyMetric(r *Rope, i, j uint64, metric Metric) (MetricValue, error) {
	if metric == nil {
		return nil, ErrIllegalArguments
	}
	if j < i || !r.isValidRange(i, j-i) {
		return nil, ErrIndexOutOfBounds
	}
	if i == j {
		return metric.Apply(""), nil
	}
	return applyMetric(r.root, i, j, metric), nil
}

func applyMetric(n node, i, j uint64, metric Metric) MetricValue {
	switch x := n.(type) {
	case *leafNode:
		v := metric.Apply(x.s[i:min(j, x.weight())])
		tracer().Debugf("leaf metric value = %v", v)
		return v
	case *concatNode:
		var vl, vr MetricValue
		if i < x.w {
			vl = applyMetric(x.left, i, min(j, x.w), metric)
		}
		if j > x.w {
			vr = applyMetric(x.right, i-min(i, x.w), j-x.w, metric)
		}
		if vl == nil {
			return vr
		} else if vr == nil {
			return vl
		}
		v := metric.Combine(vl, vr)
		tracer().Debugf("combined metric value = %v", v)
		return v
	}
	return nil
}
