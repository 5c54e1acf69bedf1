package clustering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/clustering"
)

// TestCompute_Dispatch verifies Compute matches the direct calls.
func TestCompute_Dispatch(t *testing.T) {
	xs := []float64{0, 1, 5, 6, 20, 21}
	edges := symmetricEdges(xs)

	want, err := clustering.Agglomerative(len(xs), edges, 3)
	require.NoError(t, err)
	got, err := clustering.Compute(len(xs), edges, 3, clustering.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want, err = clustering.Centroid(len(xs), edges, 3, 17)
	require.NoError(t, err)
	opts := clustering.NewOptions(clustering.WithMethod(clustering.MethodCentroid), clustering.WithSeed(17))
	got, err = clustering.Compute(len(xs), edges, 3, opts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, err := clustering.Compute(2, nil, 1, clustering.Options{Method: "spectral"})
	assert.ErrorIs(t, err, clustering.ErrUnknownMethod)
}

func TestDefaultOptions(t *testing.T) {
	opts := clustering.DefaultOptions()
	assert.Equal(t, clustering.MethodAgglomerative, opts.Method)
	assert.Equal(t, clustering.DefaultSeed, opts.Seed)
	assert.Equal(t, []string{"agglomerative", "centroid"}, clustering.Methods())
	assert.Equal(t, "k-Means", clustering.DisplayName(clustering.MethodCentroid))
	assert.Equal(t, "Agglomerative", clustering.DisplayName(clustering.MethodAgglomerative))
}

// TestRelabel compacts roots in first-appearance order.
func TestRelabel(t *testing.T) {
	in := []int{4, 4, 1, 7, 1, 4}
	assert.Equal(t, []int{0, 0, 1, 2, 1, 0}, clustering.Relabel(in))
	assert.Equal(t, []int{4, 4, 1, 7, 1, 4}, in)
	assert.Equal(t, 3, clustering.Count(in))
	assert.Empty(t, clustering.Relabel(nil))
}
