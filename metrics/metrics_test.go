package metrics

import (
	"testing"

	"github.com/npillmayer/ropes"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordsSingleFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	text := ropes.FromString("The quick brown fox")
	n, err := Count(text, 0, text.Len(), Words())
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected 4 words, counted %d", n)
	}
}

func TestWordsAcrossFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	text := ropes.New()
	text.Append("The qu")
	text.Append("ick br")
	text.Append("own  ")
	text.Append(" fox")
	if text.FragmentCount() != 4 {
		t.Fatalf("expected 4 fragments, have %d", text.FragmentCount())
	}
	n, err := Count(text, 0, text.Len(), Words())
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected 4 words, counted %d", n)
	}
	// "ick brown" starts at 6
	n, err = Count(text, 6, 15, Words())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 words in [6,15), counted %d", n)
	}
}

func TestWordsEmptyRange(t *testing.T) {
	text := ropes.FromString("Hello World")
	n, err := Count(text, 3, 3, Words())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected 0 words in empty range, counted %d", n)
	}
}

func TestCountOutOfBounds(t *testing.T) {
	text := ropes.FromString("Hello World")
	if _, err := Count(text, 5, 100, Words()); err == nil {
		t.Errorf("expected out-of-bounds error, got none")
	}
	if _, err := Count(text, 8, 4, Lines()); err == nil {
		t.Errorf("expected error for j < i, got none")
	}
}

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	text := ropes.New()
	text.Append("first line\nsec")
	text.Append("ond line\n")
	text.Insert(0, "\n")
	n, err := Count(text, 0, text.Len(), Lines())
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected 4 lines in %q, counted %d", text.String(), n)
	}
	n, err = Count(ropes.New(), 0, 0, Lines())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected empty text to have 0 lines, counted %d", n)
	}
}
