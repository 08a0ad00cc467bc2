// SPDX-License-Identifier: MIT

// Package sorting implements traced in-place sorts over a private copy of
// the input: bubble, insertion, selection, merge, quick and heap sort.
//
// Step policy, shared by every algorithm:
//
//   - one snapshot before any comparison ("Starting <name> sort");
//   - one snapshot per comparison, highlighting the two compared positions;
//   - one snapshot per swap or overwrite, highlighting the affected positions;
//   - merge and quick sort add a snapshot bracketing each range before
//     recursing into it;
//   - heap sort records the maxheap.SiftDown policy in both phases;
//   - one final snapshot with no highlights ("Array is sorted").
//
// The caller's slice is never mutated. Empty and single-element inputs yield
// exactly the initial and final snapshots.
package sorting
