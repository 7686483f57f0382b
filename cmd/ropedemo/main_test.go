package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/ropes/formatter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestDemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	config := &formatter.Config{LineWidth: 40, Context: uax11.LatinContext}
	var sb strings.Builder
	if err := demo(&sb, config, false); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `text   = "abcdefg"`) || !strings.HasSuffix(out, "_abcdefg\n") {
		t.Errorf("unexpected demo output:\n%s", out)
	}
}

func TestDemoDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	config := &formatter.Config{LineWidth: 40, Context: uax11.LatinContext}
	var sb strings.Builder
	if err := demo(&sb, config, true); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected DOT output after last step, got:\n%s", out)
	}
}
