// Package arraylist implements a generic growable array (array list) for Go.
//
// # Overview
//
// A List keeps its elements in a contiguous backing store whose capacity is
// tracked separately from the number of elements present. Appending to a full
// list replaces the store with a larger one; removing an element shifts the
// tail left so the elements always occupy [0, Len()) without gaps.
//
//   - Append, Get and Set are O(1) (Append amortised over growth)
//   - RemoveAt, Remove, Insert and IndexOf are O(Len())
//   - Capacity grows on demand and never shrinks
//
// # Basic Usage
//
//	l := arraylist.New[string]() // capacity 10
//	l.Append("A")
//	l.Append("B")
//
//	v, ok := l.Get(1)          // "B", true
//	_, ok = l.Get(5)           // "", false: absent, not an error
//	err := l.Set(5, "C")       // *IndexError, errors.Is(err, ErrIndexOutOfRange)
//	i, ok := l.IndexOf("B")    // 1, true
//	removed := l.Remove("A")   // true, first match only
//	fmt.Println(l)             // [B]
//
// # Equality
//
// Lists of comparable elements compare with ==, unless the element type
// implements Equaler, in which case its Equal method decides. Any other element
// type is supported through NewFunc with an explicit EqualFunc.
//
// # Growth
//
// By default a full list grows by DefaultGrowthStep slots. WithGrowth installs
// another GrowthPolicy, for example DoublingGrowth:
//
//	l := arraylist.New[int](arraylist.WithGrowth(arraylist.DoublingGrowth()))
//
// A list created with FromSlice starts full, so its first Append grows it.
//
// # Thread Safety
//
// List is not thread-safe. For concurrent access, use SafeList:
//
//	s := arraylist.NewSafeList[int]()
//	s.Append(1) // safe from any goroutine
//
// # Metrics and Monitoring
//
// Metrics returns a snapshot of length, capacity, growth count and utilisation.
// WithLogger attaches a zap logger that records each growth at debug level:
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package arraylist
