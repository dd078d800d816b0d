package arraylist

// Grows returns how many times the backing store has been replaced.
func (l *List[T]) Grows() int {
	return l.grows
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	capacity := l.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(l.length) / float64(capacity)
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() Metrics {
	return Metrics{
		Len:         l.Len(),
		Cap:         l.Cap(),
		Grows:       l.Grows(),
		Utilization: l.Utilization(),
	}
}

// Metrics contains statistical information about a list.
type Metrics struct {
	Len         int     // Elements present
	Cap         int     // Slots in the backing store
	Grows       int     // Backing store replacements so far
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}

// Thread-safe metrics for SafeList

// Grows thread-safely returns the number of growth events.
func (s *SafeList[T]) Grows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Grows()
}

// Utilization thread-safely returns the ratio of length to capacity.
func (s *SafeList[T]) Utilization() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Utilization()
}

// Metrics thread-safely returns a snapshot of list statistics.
func (s *SafeList[T]) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Metrics()
}
