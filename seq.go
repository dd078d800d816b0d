package arraylist

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Insert places value at index, shifting the elements from index onwards one
// slot right. index may equal Len(), which appends.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return newIndexError("insert", index, l.length)
	}
	if l.full() {
		l.grow()
	}
	copy(l.data[index+1:l.length+1], l.data[index:l.length])
	l.data[index] = value
	l.length++
	return nil
}

// SubList returns a new list holding copies of the elements in [begin, end).
// The new list is full and shares this list's equality, growth policy and logger.
func (l *List[T]) SubList(begin, end int) (*List[T], error) {
	if begin < 0 || begin > l.length {
		return nil, newIndexError("sublist", begin, l.length)
	}
	if end < begin || end > l.length {
		return nil, newIndexError("sublist", end, l.length)
	}
	return &List[T]{
		data:   slices.Clone(l.data[begin:end]),
		length: end - begin,
		eq:     l.eq,
		growth: l.growth,
		logger: l.logger,
	}, nil
}

// RemoveIf deletes every element for which pred returns true in a single
// compaction pass and returns how many were removed.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	w := 0
	for r := 0; r < l.length; r++ {
		if pred(l.data[r]) {
			continue
		}
		if w != r {
			l.data[w] = l.data[r]
		}
		w++
	}
	removed := l.length - w
	clear(l.data[w:l.length])
	l.length = w
	return removed
}

// Clear removes all elements and keeps the backing store.
func (l *List[T]) Clear() {
	clear(l.data[:l.length])
	l.length = 0
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.data[:l.length])
}

// ForEach calls fn for every element in order until fn returns false.
func (l *List[T]) ForEach(fn func(index int, value T) bool) {
	for i := 0; i < l.length; i++ {
		if !fn(i, l.data[i]) {
			return
		}
	}
}

// All returns an iterator over index/element pairs. The list must not be
// modified while ranging; use Iterator for removal during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.ForEach(yield)
	}
}

// Iterator is a forward cursor over a List that supports removing the
// element it last returned.
type Iterator[T any] struct {
	l    *List[T]
	next int
	last int // index returned by the last Next, -1 if none
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, last: -1}
}

// HasNext reports whether Next will return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.next < it.l.length
}

// Next returns the next element, or false when the list is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	v := it.l.data[it.next]
	it.last = it.next
	it.next++
	return v, true
}

// Remove deletes the element returned by the last call to Next.
func (it *Iterator[T]) Remove() error {
	if it.last < 0 || it.last >= it.l.length {
		return ErrNoCurrent
	}
	it.l.removeAt(it.last)
	it.next = it.last
	it.last = -1
	return nil
}
