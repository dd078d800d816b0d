package arraylist

import "sync"

// SafeList is a mutex-protected wrapper around List for concurrent access.
// Reads share a read lock; mutations take the write lock.
type SafeList[T any] struct {
	mu sync.RWMutex
	l  *List[T]
}

// NewSafeList creates a new thread-safe list of comparable elements.
func NewSafeList[T comparable](opts ...Option) *SafeList[T] {
	return &SafeList[T]{l: New[T](opts...)}
}

// NewSafeListFunc creates a new thread-safe list compared with eq.
func NewSafeListFunc[T any](eq EqualFunc[T], opts ...Option) *SafeList[T] {
	return &SafeList[T]{l: NewFunc(eq, opts...)}
}

// Synchronized wraps l. The caller must not use l directly afterwards.
func Synchronized[T any](l *List[T]) *SafeList[T] {
	return &SafeList[T]{l: l}
}

// Append thread-safely adds value at the end.
func (s *SafeList[T]) Append(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Append(value)
}

// Insert thread-safely places value at index.
func (s *SafeList[T]) Insert(index int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(index, value)
}

// Set thread-safely overwrites the element at index.
func (s *SafeList[T]) Set(index int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, value)
}

// Get thread-safely returns the element at index.
func (s *SafeList[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Get(index)
}

// IndexOf thread-safely returns the position of the first element equal to value.
func (s *SafeList[T]) IndexOf(value T) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.IndexOf(value)
}

// Contains thread-safely reports whether value is present.
func (s *SafeList[T]) Contains(value T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Contains(value)
}

// Remove thread-safely deletes the first element equal to value.
func (s *SafeList[T]) Remove(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(value)
}

// RemoveAt thread-safely deletes the element at index.
func (s *SafeList[T]) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// RemoveIf thread-safely deletes every element matching pred.
func (s *SafeList[T]) RemoveIf(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveIf(pred)
}

// Clear thread-safely removes all elements.
func (s *SafeList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Len thread-safely returns the number of elements.
func (s *SafeList[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

// Cap thread-safely returns the backing store size.
func (s *SafeList[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Cap()
}

// Values thread-safely returns a copy of the elements.
func (s *SafeList[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Values()
}

// ForEach calls fn under the read lock. fn must not call back into s.
func (s *SafeList[T]) ForEach(fn func(index int, value T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.l.ForEach(fn)
}

// String thread-safely renders the elements as "[a, b, c]".
func (s *SafeList[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.String()
}
