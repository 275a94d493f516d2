package stream

import "iter"

// Chunk regroups src into slices of size values each. The last slice may
// hold fewer, and an empty slice is never yielded. When src reports an
// error, Chunk discards the values gathered since the previous batch and
// yields the error.
//
// Chunk panics if size is less than 1, matching slices.Chunk.
func Chunk[T any](src iter.Seq2[T, error], size int) iter.Seq2[[]T, error] {
	if size < 1 {
		panic("stream: chunk size must be at least 1")
	}
	return func(yield func([]T, error) bool) {
		batch := make([]T, 0, size)
		for value, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			batch = append(batch, value)
			if len(batch) == size {
				if !yield(batch, nil) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch, nil)
		}
	}
}

// Take caps src at n values. An error still passes through and ends the
// sequence. A non-positive n produces an empty sequence.
func Take[T any](src iter.Seq2[T, error], n int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if n < 1 {
			return
		}
		remaining := n
		for value, err := range src {
			if !yield(value, err) {
				return
			}
			if err != nil {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// Collect drains src into a slice. It stops at the first error and returns
// the values gathered before it alongside that error.
func Collect[T any](src iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for value, err := range src {
		if err != nil {
			return out, err
		}
		out = append(out, value)
	}
	return out, nil
}

// Cursor is pull-style access to a sequence. Position persists between Next
// calls, so a consumer can fetch a step, do other work and come back for
// the next one.
type Cursor[T any] struct {
	next func() (T, error, bool)
	stop func()
}

// NewCursor starts pulling from src. Callers must Stop the cursor when done
// with it to release the underlying sequence.
func NewCursor[T any](src iter.Seq2[T, error]) *Cursor[T] {
	next, stop := iter.Pull2(src)
	return &Cursor[T]{next: next, stop: stop}
}

// Next returns the next step of the sequence. ok reports whether the
// sequence still had a step to give; after the sequence ends or Stop is
// called, ok is false.
func (c *Cursor[T]) Next() (T, error, bool) {
	return c.next()
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (c *Cursor[T]) Stop() {
	c.stop()
}
