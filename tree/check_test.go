package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		create func() *Node[int, string]
		err    error
	}{
		{
			name:   "empty",
			create: func() *Node[int, string] { return nil },
		},
		{
			name:   "complete",
			create: newCompleteTree_2Tall,
		},
		{
			name: "order",
			create: func() *Node[int, string] {
				n := newCompleteTree_2Tall()
				// 5 is in the right subtree of 4, so 3 is out of place
				n.Right.Left.Key = 3
				return n
			},
			err: ErrOrder,
		},
		{
			name: "duplicate",
			create: func() *Node[int, string] {
				n := newCompleteTree_2Tall()
				n.Left.Right.Key = 4
				return n
			},
			err: ErrOrder,
		},
		{
			name: "balance",
			create: func() *Node[int, string] {
				n := NodeOf(1, "")
				n.Right = NodeOf(2, "")
				n.Right.Right = NodeOf(3, "")
				fixHeights(n)
				return n
			},
			err: ErrBalance,
		},
		{
			name: "stale height",
			create: func() *Node[int, string] {
				n := newCompleteTree_2Tall()
				n.Right.Right.Right = NodeOf(8, "")
				return n
			},
			err: ErrHeight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create().Check()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
