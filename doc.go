/*
Package slidingwindow provides a fixed-size sliding window over a stream of values,
designed for moving statistics and recent-history lookups where an allocation per
push is unacceptable.

The window keeps the most recent Size values. Instead of indexing a ring with a
modulo on every access, the backing buffer is larger than the window and is
written linearly. When it runs out, the live window is copied to the front in a
single "rewind". With a capacity of size*multiplier that costs one O(size) copy
every size*(multiplier-1) pushes.

Key Features:

  - Type-Safe Generics: A Window[T] works with any comparable T. Use a pointer
    type to hold references to large values instead of copies.

  - Interchangeable Storage: The same window logic runs over a heap slice
    (NewWithVectorStorage), a caller-owned array (NewWithArrayStorage) or an
    array whose length is carried by a type token (NewWithGenericArrayStorage).

  - Allocation-Free Pushes: Capacity is reserved at construction. Array-backed
    windows never allocate after that, and the slice-backed window never grows
    past its reservation.

  - Optional Observability: WithMetrics exports push, rewind and buffer
    utilization metrics to Prometheus. WithLogger logs rewinds through logrus.

Reads follow two rules. First only needs one pushed value, while Last and the
snapshot methods (Slice, Vec, Arr) fail with ErrNotFilled until Size values have
been pushed.

Example: Basic Usage

	w, err := slidingwindow.NewWithVectorStorage[float64](4, 8)
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range []float64{1, 2, 3, 4, 5} {
		w.Push(v)
	}

	first, _ := w.First() // 2
	last, _ := w.Last()   // 5
	values, _ := w.Vec()  // [2 3 4 5]

Example: Array Storage

	var backing [32]int
	w, _ := slidingwindow.NewWithArrayStorage(8, backing[:])

	var snapshot [8]int
	if err := w.Arr(snapshot[:]); errors.Is(err, slidingwindow.ErrNotFilled) {
		// fewer than 8 values so far
	}

A Window is not safe for concurrent use. Guard it with a mutex if it is shared
between goroutines.
*/
package slidingwindow
