package arraylist

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewList(t *testing.T) {
	tests := []struct {
		name     string
		list     *List[int]
		expected int
	}{
		{"default capacity", New[int](), DefaultCapacity},
		{"explicit capacity", NewWithCapacity[int](32), 32},
		{"zero capacity", NewWithCapacity[int](0), 0},
		{"negative capacity", NewWithCapacity[int](-5), DefaultCapacity},
		{"capacity option", New[int](WithCapacity(3)), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.list.Cap())
			assert.Zero(t, tt.list.Len())
			assert.Zero(t, tt.list.Grows())
		})
	}
}

func TestFromSlice(t *testing.T) {
	seed := []int{1, 2, 3}
	l := FromSlice(seed)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 3, l.Cap())

	// The list owns a copy of the seed.
	seed[0] = 100
	v, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	l.Append(4)
	assert.Equal(t, 13, l.Cap())
	assert.Equal(t, 1, l.Grows())
	v, ok = l.Get(3)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestFromSliceEmpty(t *testing.T) {
	l := FromSlice[string](nil)
	assert.Zero(t, l.Cap())
	l.Append("x")
	assert.Equal(t, DefaultGrowthStep, l.Cap())
	assert.Equal(t, "[x]", l.String())
}

func TestScenarioStrings(t *testing.T) {
	l := New[string]()
	require.Equal(t, DefaultCapacity, l.Cap())
	l.Append("A")
	l.Append("B")
	l.Append("C")
	require.Equal(t, 3, l.Len())

	i, ok := l.IndexOf("B")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	require.NoError(t, l.RemoveAt(0))
	assert.Equal(t, []string{"B", "C"}, l.Values())
	assert.Equal(t, 2, l.Len())
}

func TestAppendGrowth(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, DefaultCapacity, 25} {
		t.Run(fmt.Sprintf("capacity-%d", capacity), func(t *testing.T) {
			l := NewWithCapacity[int](capacity)
			for i := 0; i <= capacity; i++ {
				l.Append(i)
				assert.LessOrEqual(t, l.Len(), l.Cap())
			}
			require.Equal(t, capacity+1, l.Len())
			assert.Equal(t, capacity+DefaultGrowthStep, l.Cap())
			for i := 0; i <= capacity; i++ {
				v, ok := l.Get(i)
				require.True(t, ok)
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestAppendGetRoundTrip(t *testing.T) {
	l := New[float64]()
	for _, x := range []float64{0, -1.5, 3e9, 0} {
		l.Append(x)
		v, ok := l.Get(l.Len() - 1)
		require.True(t, ok)
		assert.Equal(t, x, v)
	}
}

func TestGetDistinguishesZeroValue(t *testing.T) {
	l := New[bool]()
	l.Append(false)

	v, ok := l.Get(0)
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = l.Get(1)
	assert.False(t, ok)
}

func TestOutOfRange(t *testing.T) {
	l := FromSlice([]string{"a", "b"})

	_, ok := l.Get(-1)
	assert.False(t, ok)
	_, ok = l.Get(l.Len())
	assert.False(t, ok)

	err := l.Set(l.Len(), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	err = l.RemoveAt(l.Len())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "remove", ie.Op)
	assert.Equal(t, 2, ie.Index)
	assert.Equal(t, 2, ie.Length)

	require.Error(t, l.RemoveAt(-1))
	assert.Equal(t, []string{"a", "b"}, l.Values())
}

func TestSetBeyondLengthWithinCapacity(t *testing.T) {
	l := NewWithCapacity[int](8)
	l.Append(1)
	assert.Error(t, l.Set(1, 2))
	assert.Equal(t, 1, l.Len())
}

func TestSet(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	require.NoError(t, l.Set(1, 20))
	assert.Equal(t, []int{1, 20, 3}, l.Values())
	assert.Equal(t, 3, l.Len())
}

func TestRemoveFirstMatch(t *testing.T) {
	l := FromSlice([]string{"A", "B", "A"})
	assert.True(t, l.Remove("A"))
	assert.Equal(t, []string{"B", "A"}, l.Values())

	assert.False(t, l.Remove("Z"))
	assert.Equal(t, []string{"B", "A"}, l.Values())
}

func TestRemoveAtShiftsWithoutGaps(t *testing.T) {
	for remove := 0; remove < 5; remove++ {
		l := FromSlice([]int{0, 1, 2, 3, 4})
		require.NoError(t, l.RemoveAt(remove))
		require.Equal(t, 4, l.Len())

		want := 0
		for i := 0; i < l.Len(); i++ {
			if want == remove {
				want++
			}
			v, ok := l.Get(i)
			require.True(t, ok, "hole at %d after removing %d", i, remove)
			assert.Equal(t, want, v)
			want++
		}
		// The vacated slot is zeroed.
		assert.Zero(t, l.data[l.Len()])
	}
}

func TestIndexOfScansOnlyLength(t *testing.T) {
	l := NewWithCapacity[int](10)
	l.Append(5)
	// Unused slots hold the zero value but must not match.
	_, ok := l.IndexOf(0)
	assert.False(t, ok)
	assert.False(t, l.Contains(0))

	i, ok := l.IndexOf(5)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

type student struct {
	name string
}

func (s *student) Equal(other *student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.name == other.name
}

func (s *student) String() string {
	return "Student(" + s.name + ")"
}

func TestEqualerComparesByValue(t *testing.T) {
	l := New[*student]()
	l.Append(&student{name: "Max"})
	l.Append(&student{name: "Moritz"})

	i, ok := l.IndexOf(&student{name: "Moritz"})
	require.True(t, ok)
	assert.Equal(t, 1, i)

	assert.True(t, l.Remove(&student{name: "Max"}))
	assert.Equal(t, "[Student(Moritz)]", l.String())
}

type shape interface {
	Equal(other shape) bool
}

type circle struct {
	radius int
}

func (c *circle) Equal(other shape) bool {
	o, ok := other.(*circle)
	return ok && c != nil && o != nil && c.radius == o.radius
}

type square struct {
	side int
}

func (s square) Equal(other shape) bool {
	o, ok := other.(square)
	return ok && s.side == o.side
}

func TestEqualerInterfaceElements(t *testing.T) {
	l := New[shape]()
	l.Append(&circle{radius: 1})
	l.Append(square{side: 2})
	l.Append(&circle{radius: 3})

	i, ok := l.IndexOf(&circle{radius: 3})
	require.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = l.IndexOf(square{side: 2})
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = l.IndexOf(&circle{radius: 2})
	assert.False(t, ok)

	assert.True(t, l.Remove(&circle{radius: 1}))
	assert.Equal(t, 2, l.Len())

	// Elements of interface types without Equal still compare with ==.
	vals := New[any]()
	vals.Append(&student{name: "Max"})
	_, ok = vals.IndexOf(&student{name: "Max"})
	assert.False(t, ok)
}

func TestEqualerNilElements(t *testing.T) {
	t.Run("pointer", func(t *testing.T) {
		l := New[*demoStudent]()
		l.Append(nil)
		l.Append(&demoStudent{Name: "Max"})

		i, ok := l.IndexOf(&demoStudent{Name: "Max"})
		require.True(t, ok)
		assert.Equal(t, 1, i)

		i, ok = l.IndexOf(nil)
		require.True(t, ok)
		assert.Equal(t, 0, i)

		assert.NotPanics(t, func() {
			assert.True(t, l.Remove(nil))
			assert.False(t, l.Remove(nil))
		})
		assert.Equal(t, 1, l.Len())
	})

	t.Run("interface", func(t *testing.T) {
		l := New[shape]()
		l.Append(nil)
		l.Append(&circle{radius: 1})

		i, ok := l.IndexOf(nil)
		require.True(t, ok)
		assert.Equal(t, 0, i)

		assert.NotPanics(t, func() {
			_, ok = l.IndexOf(&circle{radius: 4})
		})
		assert.False(t, ok)
		assert.True(t, l.Remove(nil))
		assert.Equal(t, 1, l.Len())
	})
}

func TestNewFunc(t *testing.T) {
	var sameBytes EqualFunc[[]byte] = func(a, b []byte) bool { return string(a) == string(b) }
	l := NewFunc(sameBytes)
	l.Append([]byte("one"))
	l.Append([]byte("two"))

	i, ok := l.IndexOf([]byte("two"))
	require.True(t, ok)
	assert.Equal(t, 1, i)

	assert.Panics(t, func() { NewFunc[int](nil) })
	assert.Panics(t, func() { FromSliceFunc[int]([]int{1}, nil) })
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		list fmt.Stringer
		want string
	}{
		{"empty", New[int](), "[]"},
		{"single", FromSlice([]int{7}), "[7]"},
		{"strings", FromSlice([]string{"Erster", "Zweiter", "Dritter"}), "[Erster, Zweiter, Dritter]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.String())
		})
	}
}

func TestGrowthPolicies(t *testing.T) {
	t.Run("doubling", func(t *testing.T) {
		l := NewWithCapacity[int](0, WithGrowth(DoublingGrowth()))
		caps := []int{}
		for i := 0; i < 41; i++ {
			before := l.Cap()
			l.Append(i)
			if l.Cap() != before {
				caps = append(caps, l.Cap())
			}
		}
		assert.Equal(t, []int{10, 20, 40, 80}, caps)
	})

	t.Run("linear step", func(t *testing.T) {
		l := NewWithCapacity[int](2, WithGrowth(LinearGrowth(3)))
		for i := 0; i < 3; i++ {
			l.Append(i)
		}
		assert.Equal(t, 5, l.Cap())
	})

	t.Run("non-positive step", func(t *testing.T) {
		assert.Equal(t, 10, LinearGrowth(0)(0))
		assert.Equal(t, 15, LinearGrowth(-1)(5))
	})

	t.Run("policy that does not grow", func(t *testing.T) {
		l := NewWithCapacity[int](1, WithGrowth(func(c int) int { return c }))
		l.Append(1)
		l.Append(2)
		assert.Equal(t, 2, l.Cap())
		assert.Equal(t, []int{1, 2}, l.Values())
	})

	t.Run("nil policy ignored", func(t *testing.T) {
		l := NewWithCapacity[int](0, WithGrowth(nil))
		l.Append(1)
		assert.Equal(t, DefaultGrowthStep, l.Cap())
	})
}

func TestGrowthLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCapacity[int](1, WithLogger(zap.New(core)))
	l.Append(1)
	l.Append(2)

	entries := logs.FilterMessage("arraylist grow").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 1, fields["old-capacity"])
	assert.EqualValues(t, 11, fields["new-capacity"])
	assert.EqualValues(t, 1, fields["length"])
}

func BenchmarkListAppend(b *testing.B) {
	for _, policy := range []struct {
		name string
		opt  Option
	}{
		{"linear", WithGrowth(LinearGrowth(DefaultGrowthStep))},
		{"doubling", WithGrowth(DoublingGrowth())},
	} {
		b.Run(policy.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l := New[int](policy.opt)
				for j := 0; j < 1000; j++ {
					l.Append(j)
				}
			}
		})
	}
}

func BenchmarkListVsBuiltin(b *testing.B) {
	b.Run("arraylist", func(b *testing.B) {
		l := New[int](WithGrowth(DoublingGrowth()))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Append(i)
			if i%1000 == 999 {
				l.Clear()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		s := make([]int, 0, 10)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s = append(s, i)
			if i%1000 == 999 {
				s = s[:0]
			}
		}
	})
}
