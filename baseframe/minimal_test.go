package baseframe_test

import (
	"testing"

	"github.com/dargueta/framepack/baseframe"
	ftesting "github.com/dargueta/framepack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalSize__PicksSmallestTotal(t *testing.T) {
	corpus := baseframe.Corpus{
		{9, 8, 9, 8, 9, 8},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}

	base, err := baseframe.MinimalSize{Workers: 2}.SelectBase(corpus)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, base)
}

func TestMinimalSize__TiesGoToFirstFrame(t *testing.T) {
	// Every candidate costs the same, so the first one must win no matter
	// which worker finishes first.
	corpus := baseframe.Corpus{{5}, {6}, {7}, {8}, {9}}

	for workers := 1; workers <= 5; workers++ {
		base, err := baseframe.MinimalSize{Workers: workers}.SelectBase(corpus)
		require.NoError(t, err)
		assert.Equal(t, []byte{5}, base, "workers=%d", workers)
	}
}

func TestMinimalSize__MatchesBruteForce(t *testing.T) {
	frames := ftesting.SimilarCorpus(t, 24, 24, 9, 10, 7)
	corpus := packedCorpus(frames)

	bestIndex, bestSize := -1, 0
	for i, candidate := range corpus {
		size, err := baseframe.TotalSize(candidate, corpus)
		require.NoError(t, err)
		if bestIndex < 0 || size < bestSize {
			bestIndex, bestSize = i, size
		}
	}

	for _, workers := range []int{0, 1, 4, 100} {
		base, err := baseframe.MinimalSize{Workers: workers}.SelectBase(corpus)
		require.NoError(t, err)
		assert.Equal(t, corpus[bestIndex], base, "workers=%d", workers)
	}
}

func TestMinimalSize__NeverWorseThanFirstFrame(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		corpus := packedCorpus(ftesting.SimilarCorpus(t, 16, 16, 6, 12, seed))

		base, err := baseframe.MinimalSize{}.SelectBase(corpus)
		require.NoError(t, err)

		chosen, err := baseframe.TotalSize(base, corpus)
		require.NoError(t, err)
		first, err := baseframe.TotalSize(corpus[0], corpus)
		require.NoError(t, err)
		assert.LessOrEqual(t, chosen, first, "seed %d", seed)
	}
}

func TestMinimalSize__ReturnsCopy(t *testing.T) {
	corpus := baseframe.Corpus{{1, 2}, {1, 2}}
	base, err := baseframe.MinimalSize{}.SelectBase(corpus)
	require.NoError(t, err)

	base[0] = 99
	assert.Equal(t, []byte{1, 2}, corpus[0])
}
