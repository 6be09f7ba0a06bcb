package iterator

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// PostOrder yields every node after both of its children,
// left subtree first.
// The result of mutating the tree while iterating over it is undefined.
type PostOrder[K constraints.Ordered, V any] struct {
	at    *tree.Node[K, V]
	stack []postOrderFrame[K, V]
}

// A node is pushed once unexpanded. When it is popped the first time,
// it goes back on the stack expanded, under its children.
// When it is popped the second time, it is yielded.
type postOrderFrame[K constraints.Ordered, V any] struct {
	n        *tree.Node[K, V]
	expanded bool
}

// NewPostOrder returns a new PostOrder iterator over the tree rooted at root.
func NewPostOrder[K constraints.Ordered, V any](root *tree.Node[K, V]) *PostOrder[K, V] {
	i := &PostOrder[K, V]{
		stack: make([]postOrderFrame[K, V], 0, 2*root.Height()+1),
	}
	if root != nil {
		i.stack = append(i.stack, postOrderFrame[K, V]{n: root})
	}
	return i
}

func (i *PostOrder[K, V]) Next() bool {
	if i == nil {
		return false
	}

	for len(i.stack) > 0 {
		top := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		if top.expanded {
			i.at = top.n
			return true
		}

		i.stack = append(i.stack, postOrderFrame[K, V]{n: top.n, expanded: true})
		if top.n.Right != nil {
			i.stack = append(i.stack, postOrderFrame[K, V]{n: top.n.Right})
		}
		if top.n.Left != nil {
			i.stack = append(i.stack, postOrderFrame[K, V]{n: top.n.Left})
		}
	}

	i.at = nil
	return false
}

func (i *PostOrder[K, _]) Key() K {
	return i.at.Key
}

func (i *PostOrder[_, V]) Value() V {
	return i.at.Value
}

func (i *PostOrder[K, V]) Item() Pair[K, V] {
	return Pair[K, V]{Key: i.at.Key, Value: i.at.Value}
}
