// SPDX-License-Identifier: MIT

package bst

import (
	"fmt"

	"github.com/katalvlaran/algotrace/snapshot"
)

// Insert adds v as a new leaf.
//
// Trace: "Starting insertion of v", then either "Created new tree with root v"
// (empty tree, final) or, per visited node, "Comparing v with x" followed by
// "v < x, moving to left child" / "v >= x, moving to right child", then
// "Inserted v as left|right child of p" and "Insertion complete".
// Complexity: O(h) steps, O(n) per snapshot.
func (t *Tree) Insert(v int) snapshot.Trace {
	rec := snapshot.NewRecorder(2*t.size + 4)
	rec.Record(t.render(nil, false, fmt.Sprintf("Starting insertion of %d", v)))

	fresh := &node{value: v}
	if t.root == nil {
		t.root = fresh
		t.size++
		rec.Record(t.render(fresh, false, fmt.Sprintf("Created new tree with root %d", v)))
		return rec.Finish()
	}

	var parent *node
	for cur := t.root; cur != nil; {
		parent = cur
		rec.Record(t.render(cur, false, fmt.Sprintf("Comparing %d with %d", v, cur.value)))
		if v < cur.value {
			cur = cur.left
			rec.Record(t.render(parent, false, fmt.Sprintf("%d < %d, moving to left child", v, parent.value)))
		} else {
			cur = cur.right
			rec.Record(t.render(parent, false, fmt.Sprintf("%d >= %d, moving to right child", v, parent.value)))
		}
	}

	side := "right"
	if v < parent.value {
		parent.left = fresh
		side = "left"
	} else {
		parent.right = fresh
	}
	t.size++
	rec.Record(t.render(fresh, false, fmt.Sprintf("Inserted %d as %s child of %d", v, side, parent.value)))
	rec.Record(t.render(nil, false, "Insertion complete"))

	return rec.Finish()
}

// Search looks v up and reports whether it was found.
//
// Trace: "Starting search for v", then "Tree is empty, value not found" for
// an empty tree; otherwise per visited node "Comparing v with x", and when
// the descent continues "v < x, moving to left child" / "v > x, moving to
// right child" highlighting the child moved to. A match records "Found v in the
// tree" with the node marked found; an exhausted descent records
// "v not found in the tree".
func (t *Tree) Search(v int) (bool, snapshot.Trace) {
	rec := snapshot.NewRecorder(2*t.size + 2)
	rec.Record(t.render(nil, false, fmt.Sprintf("Starting search for %d", v)))

	if t.root == nil {
		rec.Record(t.render(nil, false, "Tree is empty, value not found"))
		return false, rec.Finish()
	}

	for cur := t.root; cur != nil; {
		rec.Record(t.render(cur, false, fmt.Sprintf("Comparing %d with %d", v, cur.value)))
		if v == cur.value {
			rec.Record(t.render(cur, true, fmt.Sprintf("Found %d in the tree", v)))
			return true, rec.Finish()
		}
		from := cur
		if v < from.value {
			cur = from.left
			if cur != nil {
				rec.Record(t.render(cur, false, fmt.Sprintf("%d < %d, moving to left child", v, from.value)))
			}
		} else {
			cur = from.right
			if cur != nil {
				rec.Record(t.render(cur, false, fmt.Sprintf("%d > %d, moving to right child", v, from.value)))
			}
		}
	}
	rec.Record(t.render(nil, false, fmt.Sprintf("%d not found in the tree", v)))

	return false, rec.Finish()
}

// Delete removes one node holding v and reports whether one existed.
//
// Trace: "Starting deletion of v"; "Tree is empty, nothing to delete" for an
// empty tree; otherwise the recursive descent of deleteNode, then
// "Deletion complete", or "v not found in the tree, nothing deleted" when
// the descent ran off the tree.
func (t *Tree) Delete(v int) (bool, snapshot.Trace) {
	rec := snapshot.NewRecorder(4*t.size + 4)
	rec.Record(t.render(nil, false, fmt.Sprintf("Starting deletion of %d", v)))

	if t.root == nil {
		rec.Record(t.render(nil, false, "Tree is empty, nothing to delete"))
		return false, rec.Finish()
	}

	d := &deleter{tree: t, rec: rec}
	t.root = d.deleteNode(t.root, v)
	if !d.removed {
		rec.Record(t.render(nil, false, fmt.Sprintf("%d not found in the tree, nothing deleted", v)))
		return false, rec.Finish()
	}
	t.size--
	rec.Record(t.render(nil, false, "Deletion complete"))

	return true, rec.Finish()
}

// deleter carries the recorder through the recursive delete.
type deleter struct {
	tree    *Tree
	rec     *snapshot.Recorder
	removed bool
}

func (d *deleter) emit(mark *node, found bool, format string, args ...any) {
	d.rec.Record(d.tree.render(mark, found, fmt.Sprintf(format, args...)))
}

// deleteNode removes v from the subtree rooted at n and returns the new
// subtree root. The caller stores the result into the slot n came from.
func (d *deleter) deleteNode(n *node, v int) *node {
	if n == nil {
		return nil
	}
	d.emit(n, false, "Examining node %d", n.value)

	switch {
	case v < n.value:
		d.emit(n, false, "%d < %d, moving to left subtree", v, n.value)
		n.left = d.deleteNode(n.left, v)
		return n
	case v > n.value:
		d.emit(n, false, "%d > %d, moving to right subtree", v, n.value)
		n.right = d.deleteNode(n.right, v)
		return n
	}

	d.emit(n, true, "Found node to delete: %d", n.value)

	// At most one child: splice it into n's slot.
	if n.left == nil {
		d.emit(n, false, "Node %d has no left child, replacing with right child", n.value)
		d.removed = true
		return n.right
	}
	if n.right == nil {
		d.emit(n, false, "Node %d has no right child, replacing with left child", n.value)
		d.removed = true
		return n.left
	}

	// Two children: take the in-order successor's value, then delete the
	// successor from the right subtree.
	d.emit(n, false, "Node %d has two children, finding successor", n.value)
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	d.emit(succ, false, "Inorder successor is %d", succ.value)

	n.value = succ.value
	d.emit(n, false, "Replaced value with successor %d", n.value)

	d.emit(succ, false, "Now deleting the successor node %d from right subtree", succ.value)
	n.right = d.deleteNode(n.right, succ.value)

	return n
}

// Clear discards every node.
func (t *Tree) Clear() snapshot.Trace {
	rec := snapshot.NewRecorder(2)
	rec.Record(t.render(nil, false, "Clearing the tree"))
	t.root, t.size = nil, 0
	rec.Record(t.render(nil, false, "Tree cleared"))

	return rec.Finish()
}
