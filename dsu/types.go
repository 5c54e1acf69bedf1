// SPDX-License-Identifier: MIT
// Package: lvcluster/dsu
//
// types.go: sentinel errors for the dsu package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (the offending index, the forest size) is attached with %w.
//   • Forest methods never panic on bad input; they return these sentinels.

package dsu

import "errors"

// ErrNegativeSize indicates that a forest was requested with a negative
// number of elements.
var ErrNegativeSize = errors.New("dsu: negative forest size")

// ErrIndexOutOfRange indicates that an element index lies outside [0, n).
// Usage: if errors.Is(err, ErrIndexOutOfRange) { /* programmer error */ }.
var ErrIndexOutOfRange = errors.New("dsu: index out of range")
