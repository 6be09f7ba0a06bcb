// Package avl provides Tree, an ordered map backed by an AVL tree.
//
// Tree is not safe for concurrent use. Callers that need concurrent
// readers and writers must guard the whole Tree themselves,
// for example with a sync.RWMutex.
package avl

import (
	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a self-balancing binary search tree mapping unique keys
// to values.
//
// The zero Tree may be used immediately. Tree should not be copied
// after first use.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - At any node N, the heights of N.Left and N.Right differ by at most 1
type Tree[K constraints.Ordered, V any] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate keys or children!
	root *tree.Node[K, V]

	count int

	log Logger
}

// Logger receives trace messages about tree operations.
// *logger.L from github.com/bitmark-inc/logger satisfies it.
type Logger interface {
	Tracef(format string, args ...any)
}

// New returns a pointer to a new, empty Tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// SetLogger makes t trace every operation to l.
// A nil Logger turns tracing off.
func (t *Tree[K, V]) SetLogger(l Logger) {
	t.log = l
}

func (t *Tree[K, V]) tracef(format string, args ...any) {
	if t.log != nil {
		t.log.Tracef(format, args...)
	}
}

// Put sets the value for k, like the map set `t[k] = v`.
// Put always succeeds; it returns true if k was not in the tree before,
// or false if the value of an existing k was overwritten.
func (t *Tree[K, V]) Put(k K, v V) bool {
	var added bool
	t.root, added = t.root.Put(k, v)

	if added {
		t.count++
		t.tracef("put %v: added, count=%d height=%d", k, t.count, t.root.Height())
	} else {
		t.tracef("put %v: overwritten", k)
	}

	return added
}

// InsertNode splices a detached node into the tree, without copying it.
// If n.Key is already in the tree, n replaces the existing node.
// InsertNode returns true if n.Key was not in the tree before.
// It panics if n has children.
func (t *Tree[K, V]) InsertNode(n *tree.Node[K, V]) bool {
	var added bool
	t.root, added = t.root.InsertNode(n)

	if added {
		t.count++
		t.tracef("insert node %v: added, count=%d height=%d", n.Key, t.count, t.root.Height())
	} else {
		t.tracef("insert node %v: replaced", n.Key)
	}

	return added
}

// Get behaves like the map access `v, ok := t[k]`.
// The value is returned as a copy.
func (t *Tree[K, V]) Get(k K) (v V, ok bool) {
	return t.root.Get(k)
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[K, V]) Contains(k K) bool {
	_, ok := t.root.Find(k)
	return ok
}

// Delete behaves like `delete(t, k)`.
// If k was not found, the tree is unchanged and Delete returns false.
func (t *Tree[K, V]) Delete(k K) bool {
	_, ok := t.Take(k)
	return ok
}

// Take removes k from the tree and returns its value.
// If k was not found, ok is false.
func (t *Tree[K, V]) Take(k K) (v V, ok bool) {
	var removed *tree.Node[K, V]
	t.root, removed = t.root.Delete(k)

	if removed == nil {
		t.tracef("delete %v: not found", k)
		return
	}

	t.count--
	t.tracef("delete %v: removed, count=%d height=%d", k, t.count, t.root.Height())

	return removed.Value, true
}

// Height returns the height of the tree. The empty tree has
// height 0, a tree with only a root node has height 1.
func (t *Tree[K, V]) Height() int {
	return t.root.Height()
}

// Len behaves like `len(t)`. This is a constant-time operation.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Min returns the smallest key in the tree and its value.
// If the tree is empty, ok is false.
func (t *Tree[K, V]) Min() (k K, v V, ok bool) {
	n := t.root.Min()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}

// Max returns the largest key in the tree and its value.
// If the tree is empty, ok is false.
func (t *Tree[K, V]) Max() (k K, v V, ok bool) {
	n := t.root.Max()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}
