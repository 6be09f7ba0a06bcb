package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"go.lepak.sg/avlmap/tree/avl"
	"go.lepak.sg/avlmap/tree/iterator"
)

func runWalk(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("no keys given")
	}

	tr := avl.New[int, int]()
	if m.verbose {
		tr.SetLogger(m.log)
	}

	for i, arg := range c.Args() {
		k, err := strconv.Atoi(arg)
		if nil != err {
			return fmt.Errorf("key %q: %w", arg, err)
		}
		tr.Put(k, i)
	}

	return walk(tr, c.String("order"), m.w)
}

// walk prints the keys of tr on one line in the named order.
func walk(tr *avl.Tree[int, int], order string, w io.Writer) error {
	var i iterator.Iterator[int, int]

	switch order {
	case "in":
		i = tr.Iterator()
	case "reverse":
		i = tr.ReverseIterator()
	case "pre":
		i = tr.PreOrderIterator()
	case "post":
		i = tr.PostOrderIterator()
	case "breadth":
		i = tr.BreadthFirstIterator()
	default:
		return fmt.Errorf("order: %q can only be in/reverse/pre/post/breadth", order)
	}

	keys := make([]string, 0, tr.Len())
	for i.Next() {
		keys = append(keys, strconv.Itoa(i.Key()))
	}

	fmt.Fprintln(w, strings.Join(keys, " "))
	return nil
}
