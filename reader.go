package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import "io"

// Reader returns a reader for the bytes of a rope.
//
// The rope must not be modified while the reader is in use.
func (r *Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   *Rope
	cursor uint64
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := uint64(len(p))
	if rr.cursor+l > rr.rope.Len() {
		l = rr.rope.Len() - rr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := rr.rope.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += uint64(n)
	return n, nil
}
