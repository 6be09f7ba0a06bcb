package iterator

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// InOrder is an iterator object over a binary tree.
// It yields keys in ascending order.
// The usage should be pretty familiar:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Key()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[K constraints.Ordered, V any] struct {
	// next subtree to descend into
	cur *tree.Node[K, V]
	at  *tree.Node[K, V]

	stack []*tree.Node[K, V]
}

// Recursive in order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Key is equivalent to f(n).
// The next call to Next continues from (2) by descending
// into the right child.

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[K constraints.Ordered, V any](root *tree.Node[K, V]) *InOrder[K, V] {
	return &InOrder[K, V]{
		cur: root,
		// the stack never holds more than one node per level
		stack: make([]*tree.Node[K, V], 0, root.Height()),
	}
}

// Next returns true if there is a next node to yield with Key.
// Next must always be called before Key.
func (i *InOrder[K, V]) Next() bool {
	if i == nil {
		return false
	}

	for i.cur != nil {
		i.stack = append(i.stack, i.cur)
		i.cur = i.cur.Left
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.cur = i.at.Right

	return true
}

// Key returns the current key of the iterator.
func (i *InOrder[K, _]) Key() K {
	return i.at.Key
}

// Value returns the current value of the iterator.
func (i *InOrder[_, V]) Value() V {
	return i.at.Value
}

// Item returns the current key and value of the iterator.
func (i *InOrder[K, V]) Item() Pair[K, V] {
	return Pair[K, V]{Key: i.at.Key, Value: i.at.Value}
}
