package avl

import (
	"errors"
	"fmt"
)

// ErrCount is returned by Check when the node count does not match Len.
var ErrCount = errors.New("node count does not match Len")

// Check verifies every invariant of the tree. It is O(n) and meant for
// tests and debugging. The returned error wraps one of tree.ErrOrder,
// tree.ErrBalance, tree.ErrHeight or ErrCount.
func (t *Tree[K, V]) Check() error {
	if err := t.root.Check(); err != nil {
		return err
	}

	if n := t.root.Len(); n != t.count {
		return fmt.Errorf("%w: counted %d nodes, Len is %d", ErrCount, n, t.count)
	}

	return nil
}
