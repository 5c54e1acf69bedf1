// SPDX-License-Identifier: MIT
// Package: lvcluster/dsu

// Package dsu provides a disjoint-set forest (union-find) over the integer
// elements 0..n-1.
//
// What & Why
//
//   - A Forest maintains a partition of n elements into disjoint sets.
//     Every set is identified by its root (representative) element.
//   - It is the engine behind both clusterers in package clustering:
//     agglomerative clustering halts Kruskal's MST early, centroid
//     clustering attaches periphery vertices to their nearest centroid.
//
// Heuristics
//
//   - Path compression: Find relinks every visited node directly to the
//     discovered root. The walk is iterative (two passes), so deep chains
//     never grow the goroutine stack.
//   - Union by size: the smaller set's root is attached under the larger
//     set's root and the receiving root's size grows by the absorbed size.
//     On equal sizes the second argument's root becomes the child.
//
// Complexity
//
//   - New: O(n) time and space.
//   - Find / Union: O(α(n)) amortized.
//   - Labelling: O(n·α(n)).
//
// Errors
//
//   - ErrNegativeSize    : New called with n < 0.
//   - ErrIndexOutOfRange : Find / Union / SetSize with an element outside [0, n).
//
// A Forest is not safe for concurrent use; the clusterers own one per call.
package dsu
