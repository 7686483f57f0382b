package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	content := strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n", 40)
	name := writeTempFile(t, content)
	text, err := Load(context.Background(), name, 100)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != content {
		t.Errorf("loaded text differs from file content")
	}
	expected := (len(content) + 99) / 100
	if text.FragmentCount() != expected {
		t.Errorf("expected %d fragments, have %d", expected, text.FragmentCount())
	}
}

func TestLoadDefaultFragmentSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	content := strings.Repeat("x", 1000)
	name := writeTempFile(t, content)
	text, err := Load(context.Background(), name, 0)
	if err != nil {
		t.Fatal(err)
	}
	if text.Len() != 1000 {
		t.Errorf("expected rope of length 1000, is %d", text.Len())
	}
	if text.FragmentCount() != 16 { // 1000 bytes in fragments of 64
		t.Errorf("expected 16 fragments, have %d", text.FragmentCount())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name := writeTempFile(t, "")
	text, err := Load(context.Background(), name, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !text.IsVoid() {
		t.Errorf("expected empty file to load as void rope")
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ropes")
	defer teardown()
	//
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 0); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := Load(context.Background(), t.TempDir(), 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for directory, got %v", err)
	}
	name := writeTempFile(t, strings.Repeat("abc", 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, name, 10); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestLoadCancelWhileLoading(t *testing.T) {
	content := strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n", 70000)
	name := writeTempFile(t, content)
	for i := 0; i < 50; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := Load(ctx, name, 16)
			done <- err
		}()
		time.Sleep(time.Duration(i%3) * time.Millisecond)
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("iteration %d: expected context.Canceled, got %v", i, err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("iteration %d: Load did not return after cancel", i)
		}
	}
}

func TestFragmentSize(t *testing.T) {
	for _, tc := range []struct{ size, req, expected int64 }{
		{10, 0, 10},
		{10, 100, 10},
		{500, 0, 64},
		{5000, 0, 256},
		{50000, 0, 512},
		{500000, 0, twoKb},
		{5000000, 0, sixKb},
		{5000000, 1000, 1000},
		{5000000, 20000, sixKb},
	} {
		if s := fragmentSize(tc.size, tc.req); s != tc.expected {
			t.Errorf("fragmentSize(%d,%d): expected %d, got %d", tc.size, tc.req, tc.expected, s)
		}
	}
}
