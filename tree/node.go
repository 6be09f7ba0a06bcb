// Package tree implements the node engine of an AVL tree:
// search, insertion, deletion, rotations and rebalancing.
//
// A Node owns its Left and Right subtrees exclusively. Every mutating
// method takes the subtree rooted at the receiver and returns the node
// that now roots it, which the caller must store in place of the receiver:
//
//	root, _ = root.Put(k, v)
//
// A nil *Node is an empty subtree.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Node[K constraints.Ordered, V any] struct {
	Key   K
	Value V

	Left, Right *Node[K, V]

	// height of the subtree rooted here, 1 for a leaf.
	// Only valid after updateHeight.
	height int
}

// NodeOf returns a detached leaf node.
func NodeOf[K constraints.Ordered, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{
		Key:    k,
		Value:  v,
		height: 1,
	}
}

// Height returns the cached height of the subtree rooted at n.
// The empty subtree has height 0.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K, V]) updateHeight() {
	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
}

// BalanceFactor is height(Right) - height(Left).
// Negative means left-heavy, positive means right-heavy.
func (n *Node[K, V]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.Right.Height() - n.Left.Height()
}

// Leaf reports whether n has no children.
func (n *Node[K, V]) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node[K, V]) detach() *Node[K, V] {
	n.Left, n.Right = nil, nil
	n.height = 1
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
