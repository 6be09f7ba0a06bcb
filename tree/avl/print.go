package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/avlmap/tree"
	"golang.org/x/exp/constraints"
)

// String returns a string representation of the tree.
// A complete tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[K, V]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[K constraints.Ordered, V any](
	sb *strings.Builder, n *tree.Node[K, V], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}

// Dump returns a three line summary of the tree: its length and
// height, every key=value pair in pre-order, then every key in
// level order. Together the two orders pin down the shape.
func (t *Tree[K, V]) Dump() string {
	var sb strings.Builder

	pre := t.PreOrderIterator()
	bfs := t.BreadthFirstIterator()
	fmt.Fprintf(&sb, "len=%d height=%d\n", t.count, t.Height())

	sb.WriteString("pre-order:")
	for pre.Next() {
		fmt.Fprintf(&sb, " %v=%v", pre.Key(), pre.Value())
	}
	sb.WriteString("\nlevel-order:")
	for bfs.Next() {
		fmt.Fprintf(&sb, " %v", bfs.Key())
	}
	sb.WriteRune('\n')

	return sb.String()
}
