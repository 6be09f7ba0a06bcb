package tree

import (
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("ordering invariant broken")
	ErrBalance = errors.New("balance invariant broken")
	ErrHeight  = errors.New("cached height is stale")
)

// Check walks the subtree rooted at n and verifies the ordering,
// balance and cached height of every node. The first violation found
// is returned, wrapping one of ErrOrder, ErrBalance or ErrHeight.
// Check is meant for tests and debugging, it is O(n).
func (n *Node[K, V]) Check() error {
	_, err := n.check(nil, nil)
	return err
}

// check verifies the subtree and returns its real height.
// lo and hi bound the keys allowed in the subtree, nil is unbounded.
func (n *Node[K, V]) check(lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && Compare(n.Key, *lo) != Greater {
		return 0, fmt.Errorf("%w: key %v is not greater than %v", ErrOrder, n.Key, *lo)
	}

	if hi != nil && Compare(n.Key, *hi) != Less {
		return 0, fmt.Errorf("%w: key %v is not less than %v", ErrOrder, n.Key, *hi)
	}

	lh, err := n.Left.check(lo, &n.Key)
	if err != nil {
		return 0, err
	}

	rh, err := n.Right.check(&n.Key, hi)
	if err != nil {
		return 0, err
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}

	if n.height != h {
		return 0, fmt.Errorf("%w: key %v has height %d, expected %d", ErrHeight, n.Key, n.height, h)
	}

	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrBalance, n.Key, bf)
	}

	return h, nil
}
