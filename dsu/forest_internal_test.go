package dsu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_CompressesPath builds a chain by hand and checks that a single
// Find relinks every node on it directly to the root.
func TestFind_CompressesPath(t *testing.T) {
	f, err := New(5)
	require.NoError(t, err)
	// 4 → 3 → 2 → 1 → 0
	for i := 1; i < 5; i++ {
		f.parent[i] = i - 1
	}

	root, err := f.Find(4)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, f.parent)
}

// TestFind_RootReachable checks that after random unions and finds the root
// returned for i is reachable by following parent from i, and stays stable.
func TestFind_RootReachable(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const n = 100

	f, err := New(n)
	require.NoError(t, err)
	for step := 0; step < 300; step++ {
		if r.Intn(2) == 0 {
			_, err = f.Union(r.Intn(n), r.Intn(n))
		} else {
			_, err = f.Find(r.Intn(n))
		}
		require.NoError(t, err)
	}

	for i := 0; i < n; i++ {
		// Walk the raw parent chain before Find mutates it.
		walk := i
		for f.parent[walk] != walk {
			walk = f.parent[walk]
		}
		root := f.find(i)
		assert.Equal(t, walk, root)
		assert.Equal(t, root, f.find(i))
		assert.Equal(t, root, f.parent[i])
	}
}

// TestFind_DeepChain makes sure a long chain does not recurse.
func TestFind_DeepChain(t *testing.T) {
	const n = 1 << 20
	f, err := New(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		f.parent[i] = i - 1
	}

	root, err := f.Find(n - 1)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, 0, f.parent[n/2])
}
