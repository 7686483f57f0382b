package ropes

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

// recordingTrace collects debug messages.
type recordingTrace struct {
	lines []string
}

func (rt *recordingTrace) Errorf(s string, args ...interface{}) {}
func (rt *recordingTrace) Infof(s string, args ...interface{})  {}
func (rt *recordingTrace) Debugf(s string, args ...interface{}) {
	rt.lines = append(rt.lines, fmt.Sprintf(s, args...))
}
func (rt *recordingTrace) P(string, interface{}) tracing.Trace { return rt }
func (rt *recordingTrace) SetTraceLevel(tracing.TraceLevel)   {}
func (rt *recordingTrace) GetTraceLevel() tracing.TraceLevel  { return tracing.LevelDebug }
func (rt *recordingTrace) SetOutput(io.Writer)                {}

func (rt *recordingTrace) Select(string) tracing.Trace { return rt }

func (rt *recordingTrace) count(prefix string) int {
	n := 0
	for _, l := range rt.lines {
		if strings.HasPrefix(strings.TrimLeft(l, " "), prefix) {
			n++
		}
	}
	return n
}

func TestDumpOnDebugLevel(t *testing.T) {
	rec := &recordingTrace{}
	tracing.SetTraceSelector(rec)
	defer tracing.SetTraceSelector(nil)
	//
	r := FromString("Hello World")
	r.Insert(5, ",")
	if n := rec.count("L = "); n != 3 {
		t.Errorf("expected insert to dump 3 leafs to debug trace, found %d in %v", n, rec.lines)
	}
	rec.lines = nil
	if err := r.Delete(0, 7); err != nil {
		t.Fatal(err)
	}
	if n := rec.count("L = "); n == 0 {
		t.Errorf("expected delete to dump the tree to debug trace, got %v", rec.lines)
	}
	if r.String() != "World" {
		t.Errorf("unexpected rope after delete: %q", r.String())
	}
}
