package corpus_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/corpus"
)

// sample has word totals w1=5, w2=2, w3=11, w4=1. With the default window
// [2,10] only w1 and w2 survive; the w3 record is also above the per-token cap.
const sample = `3
4
6
1 1 2
1 2 1
2 1 3
2 3 11

3 4 1
3 2 1
`

func TestParse_Sample(t *testing.T) {
	c, err := corpus.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 4, c.Dimensions())
	assert.Equal(t, []int{5, 2, 11, 1}, []int{c.WordTotal(0), c.WordTotal(1), c.WordTotal(2), c.WordTotal(3)})

	assert.Equal(t, [][]float64{
		{2, 1, 0, 0},
		{3, 0, 0, 0},
		{0, 1, 0, 0},
	}, c.Vectors())
	assert.Equal(t, []corpus.Token{{Word: 0, Frequency: 3}}, c.Tokens(1))
}

// TestParse_Bounds widens the window so every word survives the sieve, but
// the per-token cap still drops the frequency-11 record.
func TestParse_Bounds(t *testing.T) {
	c, err := corpus.Parse(strings.NewReader(sample), corpus.WithFrequencyBounds(0, 10))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{2, 1, 0, 0},
		{3, 0, 0, 0},
		{0, 1, 0, 1},
	}, c.Vectors())

	c, err = corpus.Parse(strings.NewReader(sample), corpus.WithFrequencyBounds(0, 100))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 11, 0}, c.Vectors()[1])
}

// TestParse_RepeatedWordsAccumulate checks that two records of the same
// (text, word) pair add up in the vector.
func TestParse_RepeatedWordsAccumulate(t *testing.T) {
	in := "1\n1\n2\n1 1 2\n1 1 3\n"
	c, err := corpus.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5}}, c.Vectors())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", corpus.ErrMalformedHeader},
		{"bad header", "x\n1\n1\n", corpus.ErrMalformedHeader},
		{"negative header", "1\n-1\n0\n", corpus.ErrMalformedHeader},
		{"missing records", "1\n1\n2\n1 1 1\n", corpus.ErrTruncated},
		{"short record", "1\n1\n1\n1 1\n", corpus.ErrMalformedLine},
		{"non-integer", "1\n1\n1\n1 a 1\n", corpus.ErrMalformedLine},
		{"text out of range", "1\n1\n1\n2 1 1\n", corpus.ErrIDOutOfRange},
		{"word zero", "1\n1\n1\n1 0 1\n", corpus.ErrIDOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := corpus.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := corpus.Parse(strings.NewReader("0\n0\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Vectors())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test1.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := corpus.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = corpus.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWithFrequencyBounds_Panics(t *testing.T) {
	assert.Panics(t, func() { corpus.WithFrequencyBounds(5, 1) })
}
