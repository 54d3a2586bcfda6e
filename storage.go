package slidingwindow

// Storage is the capability set every backing store provides. Window forwards
// all of its methods to exactly one Storage.
type Storage[T comparable] interface {
	// Push inserts value as the newest element. It never fails.
	Push(value T)
	// First returns the oldest retained element, or ErrEmptyBuffer.
	First() (T, error)
	// Last returns the newest element once the window is filled, or ErrNotFilled.
	Last() (T, error)
	// Filled reports whether at least Size elements have been pushed.
	Filled() bool
	// Empty reports whether nothing has been pushed.
	Empty() bool
	// Size returns the logical window length.
	Size() int
	// Capacity returns the backing buffer length.
	Capacity() int
	// Head returns the buffer index of the oldest retained element.
	Head() int
	// Tail returns the buffer index of the next write.
	Tail() int
	// Slice returns the window oldest first, aliasing the backing buffer.
	// The returned slice is only valid until the next Push.
	Slice() ([]T, error)
	// Vec returns a freshly allocated copy of the window.
	Vec() ([]T, error)
	// Arr copies the window into dst, which must have exactly Size elements.
	Arr(dst []T) error
	// Stats returns push and rewind counts since construction.
	Stats() Stats
}

// Stats counts storage activity.
type Stats struct {
	Pushes  uint64 `json:"pushes"`
	Rewinds uint64 `json:"rewinds"`
}

// cursor holds the head/tail bookkeeping and the rewind algorithm shared by
// all backends. The buffer runs linearly until it is exhausted, then the live
// window is compacted to the front in one copy.
//
// Invariants: 0 <= head <= tail <= cap(buf), and [head, tail) holds the
// min(pushes, size) most recent values in insertion order.
type cursor[T comparable] struct {
	buf  []T
	size int
	head int
	tail int
	// grow is set for slice-backed storage, where len(buf) tracks tail and
	// values are appended within the reserved capacity.
	grow bool

	pushes  uint64
	rewinds uint64
}

func (c *cursor[T]) Push(value T) {
	if c.tail > 0 && c.tail == cap(c.buf) {
		c.rewind()
	}

	if c.grow {
		c.buf = append(c.buf, value)
	} else {
		c.buf[c.tail] = value
	}
	c.tail++

	if c.tail-c.head > c.size {
		c.head++
	}
	c.pushes++
}

// rewind moves the newest size-1 values to the front of the buffer so the
// push in progress completes a full window again at index size-1.
func (c *cursor[T]) rewind() {
	keep := c.size - 1
	copy(c.buf[:keep], c.buf[c.tail-keep:c.tail])
	if c.grow {
		c.buf = c.buf[:keep]
	}
	c.head = 0
	c.tail = keep
	c.rewinds++
}

func (c *cursor[T]) First() (T, error) {
	if c.tail == 0 {
		var zero T
		return zero, errFirstEmpty
	}
	return c.buf[c.head], nil
}

func (c *cursor[T]) Last() (T, error) {
	if !c.Filled() {
		var zero T
		return zero, errLastNotFilled
	}
	return c.buf[c.tail-1], nil
}

func (c *cursor[T]) Filled() bool { return c.tail >= c.size }

func (c *cursor[T]) Empty() bool { return c.tail == 0 }

func (c *cursor[T]) Size() int { return c.size }

func (c *cursor[T]) Capacity() int { return cap(c.buf) }

func (c *cursor[T]) Head() int { return c.head }

func (c *cursor[T]) Tail() int { return c.tail }

func (c *cursor[T]) Stats() Stats {
	return Stats{Pushes: c.pushes, Rewinds: c.rewinds}
}

// window returns [head, tail) with the capacity clipped so appends by the
// caller cannot write into the backing buffer.
func (c *cursor[T]) window() []T {
	return c.buf[c.head:c.tail:c.tail]
}

func (c *cursor[T]) Slice() ([]T, error) {
	if !c.Filled() {
		return nil, errSliceNotFilled
	}
	return c.window(), nil
}

func (c *cursor[T]) Vec() ([]T, error) {
	if !c.Filled() {
		return nil, errVecNotFilled
	}
	out := make([]T, c.size)
	copy(out, c.window())
	return out, nil
}

func (c *cursor[T]) Arr(dst []T) error {
	if !c.Filled() {
		return errArrNotFilled
	}
	if len(dst) != c.size {
		return errArrLength
	}
	copy(dst, c.window())
	return nil
}
