package avl

import (
	"go.lepak.sg/avlmap/tree/iterator"
)

// Iterator returns an iterator object that yields
// keys and values from the tree in ascending key order.
func (t *Tree[K, V]) Iterator() *iterator.InOrder[K, V] {
	return iterator.NewInOrder(t.root)
}

// ReverseIterator returns an iterator object that yields
// keys and values from the tree in descending key order.
func (t *Tree[K, V]) ReverseIterator() *iterator.InOrderReverse[K, V] {
	return iterator.NewInOrderReverse(t.root)
}

// PreOrderIterator yields every node before its children.
func (t *Tree[K, V]) PreOrderIterator() *iterator.PreOrder[K, V] {
	return iterator.NewPreOrder(t.root)
}

// PostOrderIterator yields every node after its children.
func (t *Tree[K, V]) PostOrderIterator() *iterator.PostOrder[K, V] {
	return iterator.NewPostOrder(t.root)
}

// BreadthFirstIterator yields nodes level by level, starting at the root.
func (t *Tree[K, V]) BreadthFirstIterator() *iterator.BreadthFirst[K, V] {
	return iterator.NewBreadthFirst(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for p := range co.Items() {
//		... do stuff with p.Key and p.Value ...
//		if p meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[K, V]) InOrderCoroutine() iterator.CoIterator[K, V] {
	return iterator.CoIterate[K, V](t.Iterator())
}

// InOrder applies f to each key and value in the tree in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[K, V]) InOrder(f func(k K, v V) bool) {
	i := t.Iterator()
	for i.Next() {
		if !f(i.Key(), i.Value()) {
			return
		}
	}
}

// PreOrder applies f to each key and value in the tree in pre-order,
// which visits a node before its children.
// If f returns false, the iteration is stopped early.
func (t *Tree[K, V]) PreOrder(f func(k K, v V) bool) {
	i := t.PreOrderIterator()
	for i.Next() {
		if !f(i.Key(), i.Value()) {
			return
		}
	}
}

// Items returns every key and value in the tree, sorted by key.
func (t *Tree[K, V]) Items() []iterator.Pair[K, V] {
	out := make([]iterator.Pair[K, V], 0, t.count)
	i := t.Iterator()
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

// Keys returns every key in the tree in ascending order.
func (t *Tree[K, V]) Keys() []K {
	out := make([]K, 0, t.count)
	i := t.Iterator()
	for i.Next() {
		out = append(out, i.Key())
	}
	return out
}
