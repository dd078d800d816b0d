package measure

import (
	"container/list"

	"golang.org/x/exp/slices"

	"github.com/pavanmanishd/arraylist"
)

// Sequence is the list surface the harness times.
type Sequence interface {
	Add(v int)
	Get(i int) int
	RemoveAt(i int)
	Len() int
	// RemoveWhileIterating walks the elements in order, removes each one for
	// which drop returns true, and returns the number removed.
	RemoveWhileIterating(drop func() bool) int
	Values() []int
}

// Factory creates an empty Sequence.
type Factory func() Sequence

var factories = map[string]Factory{
	"arraylist": func() Sequence {
		return &arrayListSeq{l: arraylist.New[int]()}
	},
	"arraylist-doubling": func() Sequence {
		return &arrayListSeq{l: arraylist.New[int](arraylist.WithGrowth(arraylist.DoublingGrowth()))}
	},
	"linkedlist": func() Sequence {
		return &linkedSeq{l: list.New()}
	},
	"slice": func() Sequence {
		return &sliceSeq{}
	},
}

// Implementations lists the registered names in sorted order.
func Implementations() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

type arrayListSeq struct {
	l *arraylist.List[int]
}

func (s *arrayListSeq) Add(v int) { s.l.Append(v) }

func (s *arrayListSeq) Get(i int) int {
	v, ok := s.l.Get(i)
	if !ok {
		panic(&arraylist.IndexError{Op: "get", Index: i, Length: s.l.Len()})
	}
	return v
}

func (s *arrayListSeq) RemoveAt(i int) {
	if err := s.l.RemoveAt(i); err != nil {
		panic(err)
	}
}

func (s *arrayListSeq) Len() int { return s.l.Len() }

func (s *arrayListSeq) RemoveWhileIterating(drop func() bool) int {
	removed := 0
	it := s.l.Iterator()
	for it.HasNext() {
		it.Next()
		if drop() {
			if err := it.Remove(); err != nil {
				panic(err)
			}
			removed++
		}
	}
	return removed
}

func (s *arrayListSeq) Values() []int { return s.l.Values() }

type linkedSeq struct {
	l *list.List
}

func (s *linkedSeq) Add(v int) { s.l.PushBack(v) }

func (s *linkedSeq) Get(i int) int { return s.at(i).Value.(int) }

func (s *linkedSeq) RemoveAt(i int) { s.l.Remove(s.at(i)) }

func (s *linkedSeq) Len() int { return s.l.Len() }

// at walks from the nearer end.
func (s *linkedSeq) at(i int) *list.Element {
	if i < 0 || i >= s.l.Len() {
		panic(&arraylist.IndexError{Op: "seek", Index: i, Length: s.l.Len()})
	}
	if i < s.l.Len()>>1 {
		e := s.l.Front()
		for ; i > 0; i-- {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for j := s.l.Len() - 1; j > i; j-- {
		e = e.Prev()
	}
	return e
}

func (s *linkedSeq) RemoveWhileIterating(drop func() bool) int {
	removed := 0
	for e := s.l.Front(); e != nil; {
		next := e.Next()
		if drop() {
			s.l.Remove(e)
			removed++
		}
		e = next
	}
	return removed
}

func (s *linkedSeq) Values() []int {
	vs := make([]int, 0, s.l.Len())
	for e := s.l.Front(); e != nil; e = e.Next() {
		vs = append(vs, e.Value.(int))
	}
	return vs
}

type sliceSeq struct {
	s []int
}

func (s *sliceSeq) Add(v int) { s.s = append(s.s, v) }

func (s *sliceSeq) Get(i int) int { return s.s[i] }

func (s *sliceSeq) RemoveAt(i int) { s.s = slices.Delete(s.s, i, i+1) }

func (s *sliceSeq) Len() int { return len(s.s) }

func (s *sliceSeq) RemoveWhileIterating(drop func() bool) int {
	before := len(s.s)
	s.s = slices.DeleteFunc(s.s, func(int) bool { return drop() })
	return before - len(s.s)
}

func (s *sliceSeq) Values() []int { return slices.Clone(s.s) }
