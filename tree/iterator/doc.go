// Package iterator provides tree iterators for use
// by tree implementations.
//
// None of the iterators rely on recursion or parent pointers.
// They keep their own stack (or queue) of pending nodes, so they are
// only valid as long as the tree is not modified.
package iterator

import (
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Key, Value or Item, even for
// the first round of iteration.
// If Next returns false, Key, Value and Item must not be called.
// Next may be called any number of times, once it returns false
// it will keep returning false.
// Key, Value and Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k, v := i.Key(), i.Value()
//		... do stuff with k and v, or break ...
//	}
type Iterator[K constraints.Ordered, V any] interface {
	Next() bool
	Key() K
	Value() V
	Item() Pair[K, V]
}

// Pair is a key and its value.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Drain exhausts i and returns everything it yielded.
func Drain[K constraints.Ordered, V any](i Iterator[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

var (
	_ Iterator[int, any] = (*InOrder[int, any])(nil)
	_ Iterator[int, any] = (*InOrderReverse[int, any])(nil)
	_ Iterator[int, any] = (*PreOrder[int, any])(nil)
	_ Iterator[int, any] = (*PostOrder[int, any])(nil)
	_ Iterator[int, any] = (*BreadthFirst[int, any])(nil)
)
