package textfile

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ropes"
	"golang.org/x/sync/errgroup"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned when trying to load something other than a regular file.
var ErrNotRegular = errors.New("file is not a regular file")

// fragment is a section of a text file's content, as broadcast by the loader.
type fragment struct {
	content string // content of this fragment
	pos     int64  // start position of this fragment within the file
}

// endOfFile is broadcast after the last fragment of a file.
type endOfFile struct{}

// textFile represents a OS file which will be loaded as a rope.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// Load reads a file, which must be a text file, and loads it as a rope.
// Clients may indicate a recommended fragment length. If fragSize is 0, Load
// will select a size depending on the size of the file.
//
// Fragments are read asynchronously, but Load does not return before the file
// has been loaded completely or an error occurred. Cancelling ctx stops
// loading and Load will return the context's error.
func Load(ctx context.Context, name string, fragSize int64) (*ropes.Rope, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		return ropes.New(), nil
	}
	fragSize = fragmentSize(size, fragSize)
	tracer().Infof("loading %q (%d bytes) in fragments of %d bytes", tf.path, size, fragSize)
	//
	cast := caster.New(ctx) // we will broadcast messages when fragments are loaded
	defer cast.Close()
	g, gctx := errgroup.WithContext(ctx)
	messages, ok := cast.Sub(gctx, 16)
	if !ok {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("cannot subscribe to fragments of %q", tf.path)
	}
	g.Go(func() error {
		return tf.loadFragments(gctx, cast, fragSize)
	})
	b := ropes.NewBuilder()
	g.Go(func() error {
		err := collectFragments(gctx, messages, b)
		if err != nil {
			// keep the broadcaster from blocking on our subscription until
			// cast.Close() closes it
			go drain(messages)
		}
		return err
	})
	if err = g.Wait(); err != nil {
		tracer().Errorf("loading %q: %v", tf.path, err)
		return nil, err
	}
	text := b.Rope()
	if text.Len() != uint64(size) {
		return nil, fmt.Errorf("loaded %d bytes from %q, expected %d", text.Len(), tf.path, size)
	}
	return text, nil
}

// fragmentSize returns a sensible fragment size for a file of a given size.
// fragSize is the size the client asked for.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return min(fragSize, size)
	}
	switch {
	case size < 64:
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegular)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

// --- File loading goroutines -----------------------------------------------

// loadFragments reads the file fragment by fragment and publishes every
// fragment to cast. After the last fragment, endOfFile is published.
func (tf *textFile) loadFragments(ctx context.Context, cast *caster.Caster, fragSize int64) error {
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf := make([]byte, min(fragSize, size-pos))
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			return fmt.Errorf("error loading text fragment at %d: %w", pos, err)
		} else if cnt < len(buf) {
			return fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
		}
		if !cast.Pub(fragment{content: string(buf), pos: pos}) {
			return errClosed(ctx)
		}
	}
	if !cast.Pub(endOfFile{}) {
		return errClosed(ctx)
	}
	return nil
}

func errClosed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New("fragment broadcast closed before end of file")
}

func drain(messages <-chan interface{}) {
	for range messages {
	}
}

// collectFragments receives fragments in file order and appends them to b.
func collectFragments(ctx context.Context, messages <-chan interface{}, b *ropes.Builder) error {
	var next int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return errClosed(ctx)
			}
			switch m := msg.(type) {
			case endOfFile:
				return nil
			case fragment:
				if m.pos != next {
					return fmt.Errorf("fragment at %d received out of order, expected %d", m.pos, next)
				}
				if err := b.Append(m.content); err != nil {
					return err
				}
				next += int64(len(m.content))
			}
		}
	}
}
