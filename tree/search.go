package tree

// Find searches the subtree rooted at n for k.
// If k is not found, ok is false.
func (n *Node[K, V]) Find(k K) (found *Node[K, V], ok bool) {
	for n != nil {
		switch Compare(k, n.Key) {
		case Less:
			n = n.Left
		case Greater:
			n = n.Right
		case Equal:
			return n, true
		default:
			panic("unreachable")
		}
	}

	return nil, false
}

// Get returns the value stored under k.
// If k is not found, v is the zero V and ok is false.
func (n *Node[K, V]) Get(k K) (v V, ok bool) {
	found, ok := n.Find(k)
	if !ok {
		return
	}
	return found.Value, true
}

// Min returns the node with the smallest key in the subtree,
// or nil if the subtree is empty.
func (n *Node[K, V]) Min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the node with the largest key in the subtree,
// or nil if the subtree is empty.
func (n *Node[K, V]) Max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Len counts the nodes in the subtree. This walks the whole subtree.
func (n *Node[K, V]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}
