package slidingwindow

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSize = 4

// data mirrors a small caller-defined value type.
type data struct {
	dats int32
}

func windowCases(t *testing.T) map[string]*Window[data] {
	t.Helper()

	vector, err := NewWithVectorStorage[data](testSize, 2)
	require.NoError(t, err)

	var backing [8]data
	array, err := NewWithArrayStorage(testSize, backing[:])
	require.NoError(t, err)

	generic, err := NewWithGenericArrayStorage[data, L8](testSize)
	require.NoError(t, err)

	return map[string]*Window[data]{
		"Vector":       vector,
		"Array":        array,
		"GenericArray": generic,
	}
}

func TestWindow_New(t *testing.T) {
	for name, w := range windowCases(t) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, w.Empty())
			assert.False(t, w.Filled())
			assert.Equal(t, testSize, w.Size())
			assert.Equal(t, 8, w.Capacity())
			assert.Equal(t, Stats{}, w.Stats())
		})
	}
}

func TestWindow_Filled(t *testing.T) {
	for name, w := range windowCases(t) {
		t.Run(name, func(t *testing.T) {
			d := data{dats: 0}
			for i := 1; i < testSize; i++ {
				w.Push(d)
				assert.False(t, w.Filled(), "push %d", i)
			}

			// Keeps reporting filled through the rewind at capacity 8.
			for i := testSize; i <= 12; i++ {
				w.Push(d)
				assert.True(t, w.Filled(), "push %d", i)
			}
			assert.Equal(t, uint64(1), w.Stats().Rewinds)
		})
	}
}

func TestWindow_Snapshots(t *testing.T) {
	for name, w := range windowCases(t) {
		t.Run(name, func(t *testing.T) {
			zero := data{dats: 0}
			for i := 0; i < testSize; i++ {
				w.Push(zero)
			}
			w.Push(data{dats: 42})

			first, err := w.First()
			require.NoError(t, err)
			assert.Equal(t, zero, first)

			last, err := w.Last()
			require.NoError(t, err)
			assert.Equal(t, data{dats: 42}, last)

			slice, err := w.Slice()
			require.NoError(t, err)
			assert.Equal(t, []data{zero, zero, zero, {dats: 42}}, slice)

			vec, err := w.Vec()
			require.NoError(t, err)
			require.Len(t, vec, testSize)
			assert.Equal(t, first, vec[0])
			assert.Equal(t, last, vec[testSize-1])

			w.Push(zero)
			var arr [testSize]data
			require.NoError(t, w.Arr(arr[:]))
			assert.Equal(t, [testSize]data{zero, zero, {dats: 42}, zero}, arr)
		})
	}
}

func TestWindow_BackendsAgree(t *testing.T) {
	cases := windowCases(t)
	values := lo.Map(lo.Range(50), func(i int, _ int) data { return data{dats: int32(i * 3)} })

	for i, v := range values {
		var snapshots [][]data
		for _, w := range cases {
			w.Push(v)
			if !w.Filled() {
				continue
			}
			vec, err := w.Vec()
			require.NoError(t, err)
			snapshots = append(snapshots, vec)
		}
		if i+1 < testSize {
			assert.Empty(t, snapshots)
			continue
		}
		require.Len(t, snapshots, len(cases))
		for _, s := range snapshots[1:] {
			assert.Equal(t, snapshots[0], s, "push %d", i)
		}
		assert.Equal(t, values[i+1-testSize:i+1], snapshots[0])
	}
}

func TestWindow_Options(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := applyOptions()
		assert.Equal(t, "default", cfg.name)
		assert.Nil(t, cfg.registerer)
		assert.Nil(t, cfg.logger)
	})

	t.Run("Empty name and nil options ignored", func(t *testing.T) {
		cfg := applyOptions(WithName(""), nil)
		assert.Equal(t, "default", cfg.name)
	})

	t.Run("Plain storage without instrumentation", func(t *testing.T) {
		w, err := NewWithVectorStorage[int](2, 2, WithName("plain"))
		require.NoError(t, err)
		_, ok := w.storage.(*VectorStorage[int])
		assert.True(t, ok, "a name alone should not wrap the storage")
	})
}

func TestWindow_InvalidVectorConfig(t *testing.T) {
	w, err := NewWithVectorStorage[int](0, 2)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWindow_ArrayMisuseFailsAtConstruction(t *testing.T) {
	assert.Panics(t, func() {
		var backing [4]int
		_, _ = NewWithArrayStorage(4, backing[:])
	})
	assert.Panics(t, func() {
		_, _ = NewWithGenericArrayStorage[int, L8](8)
	})
}

// customStorage shows that callers can supply their own backend.
type customStorage struct {
	*VectorStorage[string]
	pushed []string
}

func (c *customStorage) Push(v string) {
	c.pushed = append(c.pushed, v)
	c.VectorStorage.Push(v)
}

func TestWindow_CustomStorage(t *testing.T) {
	vs, err := NewVectorStorage[string](2, 3)
	require.NoError(t, err)
	cs := &customStorage{VectorStorage: vs}

	w, err := NewWithStorage[string](cs)
	require.NoError(t, err)
	w.Push("a")
	w.Push("b")
	w.Push("c")

	assert.Equal(t, []string{"a", "b", "c"}, cs.pushed)
	vec, err := w.Vec()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, vec)
}
