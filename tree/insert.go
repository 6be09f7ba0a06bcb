package tree

// Put inserts k with the value v into the subtree rooted at n and
// returns the new root of the subtree. If k is already present, its
// value is overwritten in place and the shape of the subtree does not
// change. added is true if a new node was created.
//
// Put may be called on a nil *Node, which creates the first node.
func (n *Node[K, V]) Put(k K, v V) (root *Node[K, V], added bool) {
	if n == nil {
		return NodeOf(k, v), true
	}

	switch Compare(k, n.Key) {
	case Less:
		n.Left, added = n.Left.Put(k, v)
	case Greater:
		n.Right, added = n.Right.Put(k, v)
	case Equal:
		n.Value = v
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		// overwrite somewhere below, heights are unchanged
		return n, false
	}

	return n.Rebalance(), true
}

// InsertNode splices other into the subtree rooted at n without
// allocating, and returns the new root of the subtree.
// other must be detached: InsertNode panics if it has children.
//
// If a node with other.Key is already present, other takes its place,
// adopting its children, and added is false. The replaced node is
// detached and left for the garbage collector.
func (n *Node[K, V]) InsertNode(other *Node[K, V]) (root *Node[K, V], added bool) {
	if other == nil {
		panic("cannot InsertNode nil")
	}

	if !other.Leaf() {
		panic("cannot InsertNode with children")
	}

	return n.insertNode(other)
}

func (n *Node[K, V]) insertNode(other *Node[K, V]) (*Node[K, V], bool) {
	if n == nil {
		other.height = 1
		return other, true
	}

	var added bool

	switch Compare(other.Key, n.Key) {
	case Less:
		n.Left, added = n.Left.insertNode(other)
	case Greater:
		n.Right, added = n.Right.insertNode(other)
	case Equal:
		if other == n {
			return n, false
		}
		other.Left, other.Right, other.height = n.Left, n.Right, n.height
		n.detach()
		return other, false
	default:
		panic("unreachable")
	}

	if !added {
		return n, false
	}

	return n.Rebalance(), true
}
