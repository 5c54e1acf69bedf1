// Package clustering - RNG utilities for centroid selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutation across platforms.
//   - Encapsulation: a single RNG factory; no global or time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each call creates its own stream.
package clustering

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng,
// walking from the last index down and swapping with a uniform j ∈ [0, i].
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Permutation returns a permutation of 0..n-1 drawn deterministically from
// seed. n <= 0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Permutation(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rngFromSeed(seed))

	return p
}
