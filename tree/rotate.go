package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//
//	-> n            p
//	  / \          / \
//	 m   p   ->   n   q
//	    / \      / \
//	   o   q    m   o
//
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
// o may be nil. The heights of n and p are recomputed.
func (n *Node[K, V]) RotateLeft() *Node[K, V] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p := n.Right

	n.Right = p.Left
	p.Left = n

	n.updateHeight()
	p.updateHeight()

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//
//	 -> n            l
//	   / \          / \
//	  l   o   ->   k   n
//	 / \              / \
//	k   m            m   o
//
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
// m may be nil. The heights of n and l are recomputed.
func (n *Node[K, V]) RotateRight() *Node[K, V] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateRight with nil left")
	}

	l := n.Left

	n.Left = l.Right
	l.Right = n

	n.updateHeight()
	l.updateHeight()

	return l
}

// RotateLeftRight rotates the left child of n to the left,
// then rotates n to the right:
//
//	  n           n          m
//	 /           /          / \
//	l     ->    m     ->   l   n
//	 \         /
//	  m       l
//
// The left-right grandchild m is returned.
func (n *Node[K, V]) RotateLeftRight() *Node[K, V] {
	if n == nil {
		panic("cannot RotateLeftRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateLeftRight with nil left")
	}

	n.Left = n.Left.RotateLeft()
	return n.RotateRight()
}

// RotateRightLeft is the mirror image of RotateLeftRight:
// the right child of n is rotated to the right,
// then n is rotated to the left.
// The right-left grandchild is returned.
func (n *Node[K, V]) RotateRightLeft() *Node[K, V] {
	if n == nil {
		panic("cannot RotateRightLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateRightLeft with nil right")
	}

	n.Right = n.Right.RotateRight()
	return n.RotateLeft()
}

// Rebalance restores the AVL property at n, assuming it already
// holds for both subtrees and the heights of the children are valid.
// The height of n is recomputed first. The node now rooting the
// subtree is returned.
func (n *Node[K, V]) Rebalance() *Node[K, V] {
	n.updateHeight()

	switch bf := n.BalanceFactor(); {
	case bf < -1:
		// left subtree is too deep
		if n.Left.BalanceFactor() <= 0 {
			return n.RotateRight()
		}
		return n.RotateLeftRight()
	case bf > 1:
		// right subtree is too deep
		if n.Right.BalanceFactor() >= 0 {
			return n.RotateLeft()
		}
		return n.RotateRightLeft()
	default:
		return n
	}
}
