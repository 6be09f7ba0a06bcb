package iterator

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// BreadthFirst yields nodes level by level, from the root down,
// left to right within a level.
// The result of mutating the tree while iterating over it is undefined.
type BreadthFirst[K constraints.Ordered, V any] struct {
	at    *tree.Node[K, V]
	queue []*tree.Node[K, V]
}

// NewBreadthFirst returns a new BreadthFirst iterator over the tree
// rooted at root.
func NewBreadthFirst[K constraints.Ordered, V any](root *tree.Node[K, V]) *BreadthFirst[K, V] {
	i := &BreadthFirst[K, V]{}
	if root != nil {
		i.queue = append(i.queue, root)
	}
	return i
}

func (i *BreadthFirst[K, V]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.queue) == 0 {
		i.at = nil
		i.queue = nil
		return false
	}

	i.at = i.queue[0]
	i.queue[0] = nil
	i.queue = i.queue[1:]

	if i.at.Left != nil {
		i.queue = append(i.queue, i.at.Left)
	}
	if i.at.Right != nil {
		i.queue = append(i.queue, i.at.Right)
	}

	return true
}

func (i *BreadthFirst[K, _]) Key() K {
	return i.at.Key
}

func (i *BreadthFirst[_, V]) Value() V {
	return i.at.Value
}

func (i *BreadthFirst[K, V]) Item() Pair[K, V] {
	return Pair[K, V]{Key: i.at.Key, Value: i.at.Value}
}
