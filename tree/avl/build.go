package avl

import (
	"math/rand"

	"go.lepak.sg/avlmap/tree/iterator"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FromMap builds a tree holding every key and value of m.
// Keys are inserted in ascending order, so the same map
// always produces the same tree shape.
func FromMap[M ~map[K]V, K constraints.Ordered, V any](m M) *Tree[K, V] {
	keys := maps.Keys(m)
	slices.Sort(keys)

	tr := New[K, V]()
	for _, k := range keys {
		tr.Put(k, m[k])
	}

	return tr
}

// FromPairs builds a tree from ps in the order given.
// If a key appears more than once, its last value wins.
func FromPairs[S ~[]iterator.Pair[K, V], K constraints.Ordered, V any](ps S) *Tree[K, V] {
	tr := New[K, V]()
	for _, p := range ps {
		tr.Put(p.Key, p.Value)
	}

	return tr
}

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// Each value is the key's position in the insertion order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int, int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int, int]()
	for i, k := range rd.Perm(num) {
		tr.Put(k, i)
	}

	return tr
}

// DeleteRandom deletes num keys chosen at random from tr and
// returns them in the order they were deleted.
// If num is larger than tr.Len, every key is deleted.
// If num is not positive, nothing is deleted and nil is returned.
func DeleteRandom[K constraints.Ordered, V any](tr *Tree[K, V], num int, seed int64) []K {
	if num <= 0 {
		return nil
	}

	rd := rand.New(rand.NewSource(seed))

	keys := tr.Keys()
	rd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	if num < len(keys) {
		keys = keys[:num]
	}

	for _, k := range keys {
		if !tr.Delete(k) {
			panic("key from Keys was not found")
		}
	}

	return keys
}
