package iterator

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// PreOrder yields every node before its children, left subtree first.
// The result of mutating the tree while iterating over it is undefined.
type PreOrder[K constraints.Ordered, V any] struct {
	at    *tree.Node[K, V]
	stack []*tree.Node[K, V]
}

// NewPreOrder returns a new PreOrder iterator over the tree rooted at root.
func NewPreOrder[K constraints.Ordered, V any](root *tree.Node[K, V]) *PreOrder[K, V] {
	i := &PreOrder[K, V]{
		stack: make([]*tree.Node[K, V], 0, root.Height()+1),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

func (i *PreOrder[K, V]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right goes in first so that left comes out first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

func (i *PreOrder[K, _]) Key() K {
	return i.at.Key
}

func (i *PreOrder[_, V]) Value() V {
	return i.at.Value
}

func (i *PreOrder[K, V]) Item() Pair[K, V] {
	return Pair[K, V]{Key: i.at.Key, Value: i.at.Value}
}
