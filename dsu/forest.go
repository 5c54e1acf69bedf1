// SPDX-License-Identifier: MIT
// Package: lvcluster/dsu
//
// forest.go: array-backed disjoint-set forest.
//
// Invariants:
//   • parent[i] == i  ⇔  i is a root.
//   • size[r] is the number of elements whose root is r (meaningful for roots only).
//   • sets is the number of roots.

package dsu

import "fmt"

// Forest is a disjoint-set forest over the elements 0..n-1.
type Forest struct {
	parent []int
	size   []int
	sets   int
}

// New creates a forest of n singleton sets: every element is its own root
// with size 1. n == 0 yields an empty forest.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}

	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &Forest{parent: parent, size: size, sets: n}, nil
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the root of the set containing a, compressing the path
// from a to the root on the way.
func (f *Forest) Find(a int) (int, error) {
	if err := f.check(a); err != nil {
		return 0, err
	}

	return f.find(a), nil
}

// Union merges the sets containing a and b and returns the root of the
// merged set. The smaller set is attached under the larger one; on a size
// tie b's root goes under a's root. If a and b already share a root the
// forest is left untouched and that root is returned.
func (f *Forest) Union(a, b int) (int, error) {
	if err := f.check(a); err != nil {
		return 0, err
	}
	if err := f.check(b); err != nil {
		return 0, err
	}

	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return ra, nil
	}

	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.sets--

	return ra, nil
}

// SetSize returns the number of elements in the set containing a.
func (f *Forest) SetSize(a int) (int, error) {
	if err := f.check(a); err != nil {
		return 0, err
	}

	return f.size[f.find(a)], nil
}

// Labelling returns, for every element 0..n-1 in order, the root of its set.
// Two elements belong to the same set iff their labels are equal. Root ids
// are not renumbered.
func (f *Forest) Labelling() []int {
	labels := make([]int, len(f.parent))
	for i := range labels {
		labels[i] = f.find(i)
	}

	return labels
}

// find is Find without the bounds check.
func (f *Forest) find(a int) int {
	// First pass: walk up to the root.
	root := a
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// Second pass: point every node on the path straight at the root.
	for f.parent[a] != root {
		a, f.parent[a] = f.parent[a], root
	}

	return root
}

func (f *Forest) check(a int) error {
	if a < 0 || a >= len(f.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", a, len(f.parent), ErrIndexOutOfRange)
	}

	return nil
}
