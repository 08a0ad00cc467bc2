// SPDX-License-Identifier: MIT

package bst

import "github.com/katalvlaran/algotrace/snapshot"

// node is one tree node.
type node struct {
	value       int
	left, right *node
}

// Tree is a binary search tree of ints.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// Len returns the number of nodes.
func (t *Tree) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	var h func(*node) int
	h = func(n *node) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.left), h(n.right))
	}
	return h(t.root)
}

// Contains reports whether v is stored, without recording anything.
func (t *Tree) Contains(v int) bool {
	for cur := t.root; cur != nil; {
		switch {
		case v == cur.value:
			return true
		case v < cur.value:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}

// InOrder returns the stored values in ascending order.
func (t *Tree) InOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(*node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Snapshot renders the current tree without highlights.
func (t *Tree) Snapshot(status string) snapshot.TreeSnapshot {
	return t.render(nil, false, status)
}

// render deep-copies the tree, marking mark (by identity) highlighted and,
// when found is set, found.
func (t *Tree) render(mark *node, found bool, status string) snapshot.TreeSnapshot {
	var cp func(*node) *snapshot.TreeNode
	cp = func(n *node) *snapshot.TreeNode {
		if n == nil {
			return nil
		}
		hit := n == mark
		return &snapshot.TreeNode{
			Value:         n.value,
			IsHighlighted: hit,
			IsFound:       hit && found,
			Left:          cp(n.left),
			Right:         cp(n.right),
		}
	}
	return snapshot.TreeSnapshot{Root: cp(t.root), Status: status}
}
