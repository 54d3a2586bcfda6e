package slidingwindow

import "fmt"

// ArrayStorage is a fixed-length buffer that is written in place and never
// grown. It backs both the fixed-capacity and the length-token front-ends.
type ArrayStorage[T comparable] struct {
	cursor[T]
}

// NewArrayStorage uses backing as the buffer, typically a caller-declared
// array such as
//
//	var backing [64]float64
//	s := slidingwindow.NewArrayStorage(8, backing[:])
//
// The storage keeps writing into backing for its whole lifetime. It panics if
// size < 1 or len(backing) <= size: that is a programming error, not a
// runtime condition.
func NewArrayStorage[T comparable](size int, backing []T) *ArrayStorage[T] {
	mustFit(size, len(backing))
	return &ArrayStorage[T]{
		cursor: cursor[T]{
			buf:  backing[:len(backing):len(backing)],
			size: size,
		},
	}
}

// NewGenericArrayStorage allocates a buffer whose length is carried by the
// length token N, so the capacity is fixed by the type rather than a runtime
// argument. It panics under the same conditions as NewArrayStorage.
func NewGenericArrayStorage[T comparable, N Length](size int) *ArrayStorage[T] {
	var n N
	mustFit(size, n.Len())
	return NewArrayStorage(size, make([]T, n.Len()))
}

func mustFit(size, capacity int) {
	if size < 1 {
		panic(fmt.Sprintf("slidingwindow: window size %d must be at least 1", size))
	}
	if capacity <= size {
		panic(fmt.Sprintf("slidingwindow: capacity %d must be greater than window size %d", capacity, size))
	}
}

// --- Length tokens ---

// Length is a type-level buffer length. Implementations are zero-size types
// whose Len method returns a constant.
type Length interface {
	Len() int
}

type (
	L4    struct{}
	L8    struct{}
	L16   struct{}
	L32   struct{}
	L64   struct{}
	L128  struct{}
	L256  struct{}
	L512  struct{}
	L1024 struct{}
)

func (L4) Len() int    { return 4 }
func (L8) Len() int    { return 8 }
func (L16) Len() int   { return 16 }
func (L32) Len() int   { return 32 }
func (L64) Len() int   { return 64 }
func (L128) Len() int  { return 128 }
func (L256) Len() int  { return 256 }
func (L512) Len() int  { return 512 }
func (L1024) Len() int { return 1024 }
