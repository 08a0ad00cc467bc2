// SPDX-License-Identifier: MIT

// Package search implements traced linear and binary search.
//
// Linear search records "Checking element at index i" for each examined
// index. Binary search records "Checking mid element at index m" for each
// midpoint, computed as low+(high-low)/2, followed by the direction taken.
// Both end with "Found target at index i" (highlighting i) or
// "Target not found in array" (no highlight) and report -1 when absent.
//
// BinarySearch expects ascending input and does not sort it; unsorted input
// gives a deterministic but meaningless result.
package search
