// Command avlrandom builds trees from random insert orders, deletes
// random keys from them and checks that every tree is still a valid
// AVL tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.lepak.sg/avlmap/tree/avl"
	"golang.org/x/sync/errgroup"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of nodes in the tree")
	workers = flag.Int("w", 4, "number of trees built at the same time")
	rounds  = flag.Int("r", 1, "number of trees to build, each with its own seed")
	deletes = flag.Int("d", 0, "number of random keys to delete from each tree")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	first, err := run(context.Background(), config{
		seed:    *seed,
		num:     *num,
		workers: *workers,
		rounds:  *rounds,
		deletes: *deletes,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	preorder := make([]int, 0, first.Len())
	first.PreOrder(func(k, _ int) bool {
		preorder = append(preorder, k)
		return true
	})

	fmt.Println("seed:", *seed)
	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", first.Keys())

	fmt.Println("tree:")
	fmt.Print(first.String())

	fmt.Println("height:", first.Height(), "len:", first.Len())
	fmt.Println("rounds:", *rounds, "ok")
}

type config struct {
	seed    int64
	num     int
	workers int
	rounds  int
	deletes int
}

// round builds and checks one tree.
// The delete order uses a different seed from the insert order.
func round(c config, r int) (*avl.Tree[int, int], error) {
	s := c.seed + int64(r)

	tr := avl.BuildRandom(c.num, s)
	if err := tr.Check(); err != nil {
		return nil, fmt.Errorf("round %d, seed %d, after insert: %w", r, s, err)
	}

	if c.deletes > 0 {
		avl.DeleteRandom(tr, c.deletes, ^s)
		if err := tr.Check(); err != nil {
			return nil, fmt.Errorf("round %d, seed %d, after delete: %w", r, s, err)
		}
	}

	return tr, nil
}

// run builds c.rounds trees on at most c.workers goroutines and returns
// the tree from round 0. The first failing round cancels the rest.
func run(ctx context.Context, c config) (*avl.Tree[int, int], error) {
	if c.rounds < 1 {
		return nil, fmt.Errorf("need at least one round, got %d", c.rounds)
	}
	if c.workers < 1 {
		c.workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)

	var first *avl.Tree[int, int]

	for r := 0; r < c.rounds; r++ {
		r := r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tr, err := round(c, r)
			if err != nil {
				return err
			}

			// only this goroutine writes first, and Wait orders it
			// before the read below
			if r == 0 {
				first = tr
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return first, nil
}
