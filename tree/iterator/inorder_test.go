package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avlmap/tree"
)

func newCompleteTree_2Tall() *tree.Node[int, string] {
	return &tree.Node[int, string]{
		Left: &tree.Node[int, string]{
			Left: &tree.Node[int, string]{
				Key:   1,
				Value: "one",
			},
			Key:   2,
			Value: "two",
			Right: &tree.Node[int, string]{
				Key:   3,
				Value: "three",
			},
		},
		Key:   4,
		Value: "four",
		Right: &tree.Node[int, string]{
			Left: &tree.Node[int, string]{
				Key:   5,
				Value: "five",
			},
			Key:   6,
			Value: "six",
			Right: &tree.Node[int, string]{
				Key:   7,
				Value: "seven",
			},
		},
	}
}

// newLevelLabelledTree has the same shape as newCompleteTree_2Tall
// but its keys are numbered in level order. It is not a search tree.
func newLevelLabelledTree() *tree.Node[int, string] {
	return &tree.Node[int, string]{
		Left: &tree.Node[int, string]{
			Left:  &tree.Node[int, string]{Key: 4},
			Key:   2,
			Right: &tree.Node[int, string]{Key: 5},
		},
		Key: 1,
		Right: &tree.Node[int, string]{
			Left:  &tree.Node[int, string]{Key: 6},
			Key:   3,
			Right: &tree.Node[int, string]{Key: 7},
		},
	}
}

// newDogleg is lopsided, with a right child hanging off a left child.
//
//	    8
//	   / \
//	  5   9
//	 / \
//	1   7
//	   /
//	  6
func newDogleg() *tree.Node[int, string] {
	return &tree.Node[int, string]{
		Left: &tree.Node[int, string]{
			Left: &tree.Node[int, string]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int, string]{
				Left: &tree.Node[int, string]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int, string]{
			Key: 9,
		},
	}
}

func keys(i Iterator[int, string]) []int {
	var out []int
	for i.Next() {
		out = append(out, i.Key())
	}
	return out
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int, string]
		post   func(t *testing.T, i *InOrder[int, string])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int, string] {
				return nil
			},
			post: func(t *testing.T, i *InOrder[int, string]) {
				assert.False(t, i.Next(), "first")
				assert.False(t, i.Next(), "again")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int, string] {
				return &tree.Node[int, string]{
					Key:   1,
					Value: "one",
				}
			},
			post: func(t *testing.T, i *InOrder[int, string]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Key())
				assert.Equal(t, "one", i.Value())
				assert.Equal(t, Pair[int, string]{Key: 1, Value: "one"}, i.Item())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int, string]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Key())
				assert.Equal(t, "one", i.Value())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 2, i.Key())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 3, i.Key())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Key())
				assert.Equal(t, "four", i.Value())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 5, i.Key())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 6, i.Key())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 7, i.Key())
				assert.Equal(t, "seven", i.Value())
				assert.False(t, i.Next(), "eighth")
				assert.False(t, i.Next(), "exhausted")
			},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			post: func(t *testing.T, i *InOrder[int, string]) {
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, keys(i))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrder(tt.create()))
		})
	}
}

func TestInOrder_Nil(t *testing.T) {
	var i *InOrder[int, string]
	assert.False(t, i.Next())
}

func TestDrain(t *testing.T) {
	assert.Nil(t, Drain[int, string](NewInOrder[int, string](nil)))
	assert.Equal(t, []Pair[int, string]{
		{Key: 1, Value: "one"}, {Key: 2, Value: "two"}, {Key: 3, Value: "three"}, {Key: 4, Value: "four"},
		{Key: 5, Value: "five"}, {Key: 6, Value: "six"}, {Key: 7, Value: "seven"},
	}, Drain[int, string](NewInOrder(newCompleteTree_2Tall())))
}
