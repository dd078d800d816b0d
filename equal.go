package arraylist

import "reflect"

// EqualFunc reports whether a and b are equal elements.
type EqualFunc[T any] func(a, b T) bool

// Equaler is implemented by element types that define their own equality.
// Lists built with New or FromSlice use Equal instead of == for such types,
// which lets pointer elements compare by value. For interface element types
// the check is made on each stored element.
//
// A nil element is only ever equal to another nil element; Equal is not
// called for it. An interface element holding a typed nil pointer is not nil,
// so Equal must accept a nil receiver in that case.
type Equaler[T any] interface {
	Equal(other T) bool
}

func defaultEqual[T comparable]() EqualFunc[T] {
	typ := reflect.TypeFor[T]()
	var zero T

	switch {
	case typ.Kind() == reflect.Interface:
		return func(a, b T) bool {
			if a == zero || b == zero {
				return a == b
			}
			if e, ok := any(a).(Equaler[T]); ok {
				return e.Equal(b)
			}
			return a == b
		}
	case !typ.Implements(reflect.TypeFor[Equaler[T]]()):
		return func(a, b T) bool {
			return a == b
		}
	case typ.Kind() == reflect.Pointer:
		return func(a, b T) bool {
			if a == zero || b == zero {
				return a == b
			}
			return any(a).(Equaler[T]).Equal(b)
		}
	default:
		return func(a, b T) bool {
			return any(a).(Equaler[T]).Equal(b)
		}
	}
}
