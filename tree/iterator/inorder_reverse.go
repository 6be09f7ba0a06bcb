package iterator

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someTree.ReverseIterator()
//	for i.Next() {
//		k := i.Key()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[K constraints.Ordered, V any] struct {
	cur, at *tree.Node[K, V]

	stack []*tree.Node[K, V]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[K constraints.Ordered, V any](
	root *tree.Node[K, V]) *InOrderReverse[K, V] {
	return &InOrderReverse[K, V]{
		cur:   root,
		stack: make([]*tree.Node[K, V], 0, root.Height()),
	}
}

// Next returns true if there is a next node to yield with Key.
// Next must always be called before Key.
func (i *InOrderReverse[K, V]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	for i.cur != nil {
		i.stack = append(i.stack, i.cur)
		i.cur = i.cur.Right
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.cur = i.at.Left

	return true
}

// Key returns the current key of the iterator.
func (i *InOrderReverse[K, _]) Key() K {
	return i.at.Key
}

// Value returns the current value of the iterator.
func (i *InOrderReverse[_, V]) Value() V {
	return i.at.Value
}

// Item returns the current key and value of the iterator.
func (i *InOrderReverse[K, V]) Item() Pair[K, V] {
	return Pair[K, V]{Key: i.at.Key, Value: i.at.Value}
}
