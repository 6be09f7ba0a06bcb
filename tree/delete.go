package tree

import (
	"golang.org/x/exp/constraints"
)

// Delete removes k from the subtree rooted at n and returns the new
// root of the subtree, which may be nil. removed is the detached node
// that held k, or nil if k was not found, in which case the subtree is
// left unchanged.
func (n *Node[K, V]) Delete(k K) (root, removed *Node[K, V]) {
	if n == nil {
		return nil, nil
	}

	switch Compare(k, n.Key) {
	case Less:
		n.Left, removed = n.Left.Delete(k)
	case Greater:
		n.Right, removed = n.Right.Delete(k)
	case Equal:
		return n.DeleteSelf(), n
	default:
		panic("unreachable")
	}

	if removed == nil {
		return n, nil
	}

	return n.Rebalance(), removed
}

// DeleteSelf detaches n from its children and returns what should
// take its place:
//   - nothing, if n is a leaf
//   - its only child, if it has one
//   - its subtrees merged around n's in-order successor, if it has two
func (n *Node[K, V]) DeleteSelf() *Node[K, V] {
	if n == nil {
		panic("cannot DeleteSelf on nil")
	}

	l, r := n.Left, n.Right
	n.detach()

	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	default:
		return l.Merge(r)
	}
}

// RemoveMin removes the leftmost node of the subtree rooted at n.
// It returns the remaining subtree, which may be nil, and the removed
// node, detached. Every ancestor of the removed node is rebalanced.
func (n *Node[K, V]) RemoveMin() (rest, min *Node[K, V]) {
	if n == nil {
		panic("cannot RemoveMin on nil")
	}

	if n.Left == nil {
		rest = n.Right
		return rest, n.detach()
	}

	n.Left, min = n.Left.RemoveMin()

	return n.Rebalance(), min
}

// Merge joins the subtree rooted at n with hi, where every key under n
// is less than every key under hi, and returns the root of the joined
// subtree. The minimum of hi becomes the joining node.
// n may be nil; hi must not be.
func (n *Node[K, V]) Merge(hi *Node[K, V]) *Node[K, V] {
	if hi == nil {
		panic("cannot Merge with nil")
	}

	rest, mid := hi.RemoveMin()

	return join(n, mid, rest)
}

// join makes mid the parent of lo and hi, where lo < mid < hi.
// If the heights of lo and hi differ by more than one, mid is pushed
// down the inner spine of the taller side until it fits, and every
// node on that spine is rebalanced on the way back up.
func join[K constraints.Ordered, V any](lo, mid, hi *Node[K, V]) *Node[K, V] {
	switch lh, hh := lo.Height(), hi.Height(); {
	case lh > hh+1:
		lo.Right = join(lo.Right, mid, hi)
		return lo.Rebalance()
	case hh > lh+1:
		hi.Left = join(lo, mid, hi.Left)
		return hi.Rebalance()
	default:
		mid.Left, mid.Right = lo, hi
		return mid.Rebalance()
	}
}
