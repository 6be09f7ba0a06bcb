package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func newCompleteTree_2Tall() *Node[int, string] {
	t := &Node[int, string]{
		Left: &Node[int, string]{
			Left: &Node[int, string]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int, string]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int, string]{
			Left: &Node[int, string]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int, string]{
				Key: 7,
			},
		},
	}

	fixHeights(t)
	return t
}

// fixHeights sets the cached heights of a hand-built tree.
func fixHeights[K constraints.Ordered, V any](n *Node[K, V]) {
	if n == nil {
		return
	}
	fixHeights(n.Left)
	fixHeights(n.Right)
	n.updateHeight()
}

func preOrder[K constraints.Ordered, V any](n *Node[K, V]) []K {
	if n == nil {
		return nil
	}
	out := []K{n.Key}
	out = append(out, preOrder(n.Left)...)
	return append(out, preOrder(n.Right)...)
}

func inOrder[K constraints.Ordered, V any](n *Node[K, V]) []K {
	if n == nil {
		return nil
	}
	out := inOrder(n.Left)
	out = append(out, n.Key)
	return append(out, inOrder(n.Right)...)
}

func TestNode_RotateLeft(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should6 := tr.RotateLeft()

	assert.Equal(t, 6, should6.Key)
	assert.Equal(t, []int{6, 4, 2, 1, 3, 5, 7}, preOrder(should6))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inOrder(should6))
	assert.Equal(t, 3, should6.Left.Height())
	assert.Equal(t, 4, should6.Height())
}

func TestNode_RotateRight(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should2 := tr.RotateRight()

	assert.Equal(t, 2, should2.Key)
	assert.Equal(t, []int{2, 1, 4, 3, 6, 5, 7}, preOrder(should2))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inOrder(should2))
	assert.Equal(t, 3, should2.Right.Height())
	assert.Equal(t, 4, should2.Height())
}

func TestNode_RotatePanics(t *testing.T) {
	leaf := func() *Node[int, string] { return NodeOf(1, "") }

	assert.PanicsWithValue(t, "cannot RotateLeft with nil right", func() { leaf().RotateLeft() })
	assert.PanicsWithValue(t, "cannot RotateRight with nil left", func() { leaf().RotateRight() })
	assert.PanicsWithValue(t, "cannot RotateLeftRight with nil left", func() { leaf().RotateLeftRight() })
	assert.PanicsWithValue(t, "cannot RotateRightLeft with nil right", func() { leaf().RotateRightLeft() })
	assert.PanicsWithValue(t, "cannot RotateLeft on nil", func() { (*Node[int, string])(nil).RotateLeft() })

	// left child exists but has no right child to rotate up
	n := NodeOf(2, "")
	n.Left = NodeOf(1, "")
	fixHeights(n)
	assert.PanicsWithValue(t, "cannot RotateLeft with nil right", func() { n.RotateLeftRight() })
}

func TestNode_BalanceFactor(t *testing.T) {
	root := NodeOf(2, "root")
	left := NodeOf(1, "left")
	left.Left = NodeOf(0, "left_left")

	left.updateHeight()
	assert.Equal(t, 2, left.Height())
	assert.Equal(t, -1, left.BalanceFactor())

	root.Left = left
	root.updateHeight()
	assert.Equal(t, 3, root.Height())
	assert.Equal(t, -2, root.BalanceFactor())

	assert.Equal(t, 0, (*Node[int, string])(nil).BalanceFactor())
	assert.Equal(t, 0, (*Node[int, string])(nil).Height())
}

func TestNode_Rebalance(t *testing.T) {
	tests := []struct {
		name   string
		create func() *Node[int, string]
		root   int
		pre    []int
		values []string
	}{
		{
			name: "left left",
			create: func() *Node[int, string] {
				n := NodeOf(2, "root")
				n.Left = NodeOf(1, "left")
				n.Left.Left = NodeOf(0, "left_left")
				return n
			},
			root:   1,
			pre:    []int{1, 0, 2},
			values: []string{"left", "left_left", "root"},
		},
		{
			name: "right right",
			create: func() *Node[int, string] {
				n := NodeOf(0, "root")
				n.Right = NodeOf(1, "right")
				n.Right.Right = NodeOf(2, "right_right")
				return n
			},
			root:   1,
			pre:    []int{1, 0, 2},
			values: []string{"right", "root", "right_right"},
		},
		{
			name: "left right",
			create: func() *Node[int, string] {
				n := NodeOf(2, "root")
				n.Left = NodeOf(0, "left")
				n.Left.Right = NodeOf(1, "left_right")
				return n
			},
			root:   1,
			pre:    []int{1, 0, 2},
			values: []string{"left_right", "left", "root"},
		},
		{
			name: "right left",
			create: func() *Node[int, string] {
				n := NodeOf(0, "root")
				n.Right = NodeOf(2, "right")
				n.Right.Left = NodeOf(1, "right_left")
				return n
			},
			root:   1,
			pre:    []int{1, 0, 2},
			values: []string{"right_left", "root", "right"},
		},
		{
			name: "balanced left child",
			create: func() *Node[int, string] {
				// can only happen after a deletion on the right
				n := NodeOf(5, "root")
				n.Left = NodeOf(3, "left")
				n.Left.Left = NodeOf(2, "left_left")
				n.Left.Right = NodeOf(4, "left_right")
				return n
			},
			root:   3,
			pre:    []int{3, 2, 5, 4},
			values: []string{"left", "left_left", "root", "left_right"},
		},
		{
			name: "already balanced",
			create: func() *Node[int, string] {
				n := NodeOf(1, "root")
				n.Left = NodeOf(0, "left")
				return n
			},
			root:   1,
			pre:    []int{1, 0},
			values: []string{"root", "left"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.create()
			fixHeights(n)

			n = n.Rebalance()
			require.NoError(t, n.Check())
			assert.Equal(t, tt.root, n.Key)
			assert.Equal(t, tt.pre, preOrder(n))

			var values []string
			var visit func(*Node[int, string])
			visit = func(n *Node[int, string]) {
				if n == nil {
					return
				}
				values = append(values, n.Value)
				visit(n.Left)
				visit(n.Right)
			}
			visit(n)
			assert.Equal(t, tt.values, values)
		})
	}
}
