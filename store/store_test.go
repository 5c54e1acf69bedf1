package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := store.New(context.Background(), db)
	require.NoError(t, err)

	return s
}

// TestSaveRun_RoundTrip stores two runs and reads them back newest first.
func TestSaveRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := store.Run{
		Source: "data/test1.txt", Method: "agglomerative", Metric: "euclidean",
		Clusters: 2, Seed: 2, Texts: 4, Edges: 6, Groups: 2,
		Elapsed: 1500 * time.Millisecond, CreatedAt: base,
		Labels: []int{0, 0, 0, 3},
	}
	second := first
	second.Method = "centroid"
	second.CreatedAt = base.Add(time.Minute)
	second.Labels = []int{1, 1, 2, 2}

	id1, err := s.SaveRun(ctx, first)
	require.NoError(t, err)
	id2, err := s.SaveRun(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, "centroid", runs[0].Method)
	assert.Equal(t, id1, runs[1].ID)
	assert.Equal(t, 1500*time.Millisecond, runs[1].Elapsed)
	assert.True(t, base.Equal(runs[1].CreatedAt))
	assert.Nil(t, runs[1].Labels)

	labels, err := s.Labels(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 3}, labels)
	labels, err = s.Labels(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2}, labels)
}

func TestLabels_NotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.Labels(context.Background(), 42)
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
}

func TestRuns_Empty(t *testing.T) {
	runs, err := openStore(t).Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

// TestFileDatabase reopens a file database and sees the stored run.
func TestFileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.sqlite")

	db, err := store.Open(path)
	require.NoError(t, err)
	s, err := store.New(ctx, db)
	require.NoError(t, err)
	_, err = s.SaveRun(ctx, store.Run{Source: "a", Method: "centroid", Metric: "cityblock", Clusters: 1, Labels: []int{0}})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	s, err = store.New(ctx, db)
	require.NoError(t, err)
	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "a", runs[0].Source)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestNew_NilDB(t *testing.T) {
	_, err := store.New(context.Background(), nil)
	assert.Error(t, err)
}
