package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

// Builder incrementally stages text fragments and finalizes them into a Rope.
//
// Builder collects fragments and materializes the rope only when Rope() is
// called. Every non-empty fragment will become a leaf of the rope.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done bool
	rope *Rope
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times. It will return the same rope every time.
func (b *Builder) Rope() *Rope {
	if b == nil {
		return New()
	}
	if b.rope == nil {
		b.rope = b.buildRope()
	}
	b.done = true
	if b.rope.IsVoid() {
		tracer().Debugf("rope builder: rope is void")
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.rope = nil
}

// Append appends a text fragment to the staged build.
func (b *Builder) Append(fragment string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if fragment != "" {
		b.back = append(b.back, fragment)
	}
	return nil
}

// Prepend prepends a text fragment to the staged build.
func (b *Builder) Prepend(fragment string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if fragment != "" {
		b.front = append(b.front, fragment)
	}
	return nil
}

func (b *Builder) buildRope() *Rope {
	r := New()
	for i := len(b.front) - 1; i >= 0; i-- {
		r.Append(b.front[i])
	}
	for _, fragment := range b.back {
		r.Append(fragment)
	}
	return r
}
