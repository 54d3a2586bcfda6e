package slidingwindow

import "errors"

// --- Errors ---

var (
	// ErrEmptyBuffer is returned by First when nothing has been pushed yet.
	ErrEmptyBuffer = errors.New("window is empty")
	// ErrNotFilled is returned by Last and the snapshot methods until the
	// window has received at least Size elements.
	ErrNotFilled = errors.New("window is not yet filled")
	// ErrLengthMismatch is returned by Arr when the destination length differs from Size.
	ErrLengthMismatch = errors.New("destination length does not match window size")
	// ErrInvalidConfig reports a window configuration that cannot be built.
	ErrInvalidConfig = errors.New("invalid window configuration")
)

// WindowError records the operation that failed along with the cause.
type WindowError struct {
	Op  string
	Err error
}

func (e *WindowError) Error() string {
	return "slidingwindow: " + e.Op + ": " + e.Err.Error()
}

func (e *WindowError) Unwrap() error {
	return e.Err
}

// Preallocated so the read path never allocates, not even on failure.
var (
	errFirstEmpty     error = &WindowError{Op: "first", Err: ErrEmptyBuffer}
	errLastNotFilled  error = &WindowError{Op: "last", Err: ErrNotFilled}
	errSliceNotFilled error = &WindowError{Op: "slice", Err: ErrNotFilled}
	errVecNotFilled   error = &WindowError{Op: "vec", Err: ErrNotFilled}
	errArrNotFilled   error = &WindowError{Op: "arr", Err: ErrNotFilled}
	errArrLength      error = &WindowError{Op: "arr", Err: ErrLengthMismatch}
)
