// SPDX-License-Identifier: MIT

// Package bst implements an unbalanced binary search tree whose operations
// return the recorded trace of every comparison and branch decision.
//
// Ordering: a value smaller than a node goes left, anything else (including
// duplicates) goes right. Each parent exclusively owns its children.
//
// Rendering: every snapshot is a deep copy of the whole tree. Highlighting
// is by node identity, so duplicates of the examined value stay unmarked.
//
// Delete replaces a two-child node's value with its in-order successor (the
// leftmost node of the right subtree) and then deletes that successor from
// the right subtree. Deleting from an empty tree or deleting a missing value
// is not an error; the trace ends with a terminal snapshot that says so.
//
// A Tree is not safe for concurrent use; package store serializes access to
// the persistent instance.
package bst
