package slidingwindow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// --- Options ---

// options holds the configuration for a Window.
type options struct {
	name       string
	registerer prometheus.Registerer
	logger     logrus.FieldLogger
}

// Option is a function that configures a Window's options.
type Option func(*options)

// WithName sets the name used as the "window" label on metrics and as a log field.
// The default is "default".
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMetrics registers push, rewind and utilization metrics for the window
// with reg. A nil registerer leaves metrics disabled.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithLogger logs every rewind at debug level. Disabled by default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts ...Option) options {
	cfg := options{name: "default"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// --- Window ---

// Window retains the most recent Size values pushed into it. It forwards
// every operation to the Storage chosen at construction.
//
// A Window is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own lock.
type Window[T comparable] struct {
	storage Storage[T]
}

// NewWithStorage builds a window over a caller-supplied storage.
// An error is returned only if metrics registration fails.
func NewWithStorage[T comparable](storage Storage[T], opts ...Option) (*Window[T], error) {
	cfg := applyOptions(opts...)
	if cfg.registerer != nil || cfg.logger != nil {
		instrumented, err := newInstrumentedStorage(storage, cfg)
		if err != nil {
			return nil, err
		}
		storage = instrumented
	}
	return &Window[T]{storage: storage}, nil
}

// NewWithVectorStorage builds a window backed by a heap slice holding
// size*multiplier values. Larger multipliers rewind less often.
func NewWithVectorStorage[T comparable](size, multiplier int, opts ...Option) (*Window[T], error) {
	storage, err := NewVectorStorage[T](size, multiplier)
	if err != nil {
		return nil, err
	}
	return NewWithStorage[T](storage, opts...)
}

// NewWithArrayStorage builds a window that writes into backing, which must be
// longer than size. It panics otherwise.
func NewWithArrayStorage[T comparable](size int, backing []T, opts ...Option) (*Window[T], error) {
	return NewWithStorage[T](NewArrayStorage(size, backing), opts...)
}

// NewWithGenericArrayStorage builds a window whose buffer length is given by
// the length token N, e.g. NewWithGenericArrayStorage[float64, L16](4).
// It panics if N's length is not greater than size.
func NewWithGenericArrayStorage[T comparable, N Length](size int, opts ...Option) (*Window[T], error) {
	return NewWithStorage[T](NewGenericArrayStorage[T, N](size), opts...)
}

// Push inserts value as the newest element, evicting the oldest once the window is filled.
func (w *Window[T]) Push(value T) { w.storage.Push(value) }

// First returns the oldest retained element.
func (w *Window[T]) First() (T, error) { return w.storage.First() }

// Last returns the newest element. It fails until the window is filled.
func (w *Window[T]) Last() (T, error) { return w.storage.Last() }

func (w *Window[T]) Filled() bool { return w.storage.Filled() }

func (w *Window[T]) Empty() bool { return w.storage.Empty() }

func (w *Window[T]) Size() int { return w.storage.Size() }

func (w *Window[T]) Capacity() int { return w.storage.Capacity() }

func (w *Window[T]) Head() int { return w.storage.Head() }

func (w *Window[T]) Tail() int { return w.storage.Tail() }

// Slice returns the window oldest first without copying. The slice is
// overwritten by later pushes.
func (w *Window[T]) Slice() ([]T, error) { return w.storage.Slice() }

// Vec returns a copy of the window oldest first.
func (w *Window[T]) Vec() ([]T, error) { return w.storage.Vec() }

// Arr copies the window into dst, usually an array sliced as a[:].
func (w *Window[T]) Arr(dst []T) error { return w.storage.Arr(dst) }

func (w *Window[T]) Stats() Stats { return w.storage.Stats() }
