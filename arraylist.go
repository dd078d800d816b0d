// Package arraylist implements a generic growable array backed by a
// contiguous store whose capacity is managed separately from its length.
package arraylist

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultCapacity is the capacity of a list created without an explicit one.
const DefaultCapacity = 10

// List is a growable array. Not goroutine-safe; use SafeList for concurrent access.
type List[T any] struct {
	data   []T // backing store, len(data) is the capacity
	length int // elements [0, length) are valid
	grows  int

	eq     EqualFunc[T]
	growth GrowthPolicy
	logger *zap.Logger
}

// New creates an empty list of comparable elements with DefaultCapacity
// unless WithCapacity says otherwise.
func New[T comparable](opts ...Option) *List[T] {
	return newList(defaultEqual[T](), buildOptions(opts))
}

// NewWithCapacity creates an empty list with room for capacity elements.
// A capacity of 0 is valid; a negative one falls back to DefaultCapacity.
func NewWithCapacity[T comparable](capacity int, opts ...Option) *List[T] {
	o := buildOptions(opts)
	o.setCapacity(capacity)
	return newList(defaultEqual[T](), o)
}

// FromSlice creates a list holding a copy of seed. The list starts full:
// capacity equals len(seed), so the next Append grows it.
func FromSlice[T comparable](seed []T, opts ...Option) *List[T] {
	return fromSlice(seed, defaultEqual[T](), buildOptions(opts))
}

// NewFunc creates an empty list whose elements are compared with eq.
func NewFunc[T any](eq EqualFunc[T], opts ...Option) *List[T] {
	if eq == nil {
		panic("arraylist: nil EqualFunc")
	}
	return newList(eq, buildOptions(opts))
}

// FromSliceFunc is FromSlice for element types compared with eq.
func FromSliceFunc[T any](seed []T, eq EqualFunc[T], opts ...Option) *List[T] {
	if eq == nil {
		panic("arraylist: nil EqualFunc")
	}
	return fromSlice(seed, eq, buildOptions(opts))
}

func newList[T any](eq EqualFunc[T], o options) *List[T] {
	return &List[T]{
		data:   make([]T, o.capacity),
		eq:     eq,
		growth: o.growth,
		logger: o.logger,
	}
}

func fromSlice[T any](seed []T, eq EqualFunc[T], o options) *List[T] {
	l := &List[T]{
		data:   make([]T, len(seed)),
		length: len(seed),
		eq:     eq,
		growth: o.growth,
		logger: o.logger,
	}
	copy(l.data, seed)
	return l
}

// Append adds value at the end, growing the backing store when it is full.
func (l *List[T]) Append(value T) {
	if l.full() {
		l.grow()
	}
	l.data[l.length] = value
	l.length++
}

// Set overwrites the element at index. Only [0, Len()) is writable,
// even when the backing store has room beyond it.
func (l *List[T]) Set(index int, value T) error {
	if !l.validIndex(index) {
		return newIndexError("set", index, l.length)
	}
	l.data[index] = value
	return nil
}

// Get returns the element at index. The bool is false when index is out of
// range, which keeps a missing element apart from a stored zero value.
func (l *List[T]) Get(index int) (T, bool) {
	if !l.validIndex(index) {
		var zero T
		return zero, false
	}
	return l.data[index], true
}

// IndexOf returns the position of the first element equal to value.
func (l *List[T]) IndexOf(value T) (int, bool) {
	for i := 0; i < l.length; i++ {
		if l.eq(l.data[i], value) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether an element equal to value is present.
func (l *List[T]) Contains(value T) bool {
	_, ok := l.IndexOf(value)
	return ok
}

// Remove deletes the first element equal to value. It reports whether
// anything was removed; duplicates after the first match are kept.
func (l *List[T]) Remove(value T) bool {
	i, ok := l.IndexOf(value)
	if !ok {
		return false
	}
	l.removeAt(i)
	return true
}

// RemoveAt deletes the element at index and closes the gap by shifting
// the tail one slot left. Nothing changes when index is out of range.
func (l *List[T]) RemoveAt(index int) error {
	if !l.validIndex(index) {
		return newIndexError("remove", index, l.length)
	}
	l.removeAt(index)
	return nil
}

func (l *List[T]) removeAt(index int) {
	copy(l.data[index:l.length-1], l.data[index+1:l.length])
	l.length--
	var zero T
	l.data[l.length] = zero
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Cap returns the size of the backing store.
func (l *List[T]) Cap() int {
	return len(l.data)
}

// String renders the elements as "[a, b, c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) validIndex(index int) bool {
	return index >= 0 && index < l.length
}

func (l *List[T]) full() bool {
	return l.length >= len(l.data)
}

// grow replaces the backing store with a larger one chosen by the growth
// policy and copies the live elements over in order.
func (l *List[T]) grow() {
	old := len(l.data)
	next := l.growth(old)
	if next <= old {
		next = old + 1
	}
	data := make([]T, next)
	copy(data, l.data[:l.length])
	l.data = data
	l.grows++

	if ce := l.logger.Check(zap.DebugLevel, "arraylist grow"); ce != nil {
		ce.Write(
			zap.Int("old-capacity", old),
			zap.Int("new-capacity", next),
			zap.Int("length", l.length),
		)
	}
}
