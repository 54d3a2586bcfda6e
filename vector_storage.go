package slidingwindow

import "fmt"

// VectorStorage is a heap slice whose capacity is reserved once as
// size * multiplier. Values are appended within that reservation and the
// slice is never reallocated.
//
// A multiplier of 1 is accepted but rewinds on every push once the window
// is filled.
type VectorStorage[T comparable] struct {
	cursor[T]
}

// NewVectorStorage reserves size*multiplier slots. It returns ErrInvalidConfig
// if size or multiplier is less than one.
func NewVectorStorage[T comparable](size, multiplier int) (*VectorStorage[T], error) {
	if size < 1 {
		return nil, &WindowError{Op: "new vector storage", Err: fmt.Errorf("%w: size %d must be at least 1", ErrInvalidConfig, size)}
	}
	if multiplier < 1 {
		return nil, &WindowError{Op: "new vector storage", Err: fmt.Errorf("%w: multiplier %d must be at least 1", ErrInvalidConfig, multiplier)}
	}
	return &VectorStorage[T]{
		cursor: cursor[T]{
			buf:  make([]T, 0, size*multiplier),
			size: size,
			grow: true,
		},
	}, nil
}
