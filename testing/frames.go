package testing

import (
	"crypto/rand"
	"io"
	mathrand "math/rand"
	"testing"

	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/delta"
	"github.com/dargueta/framepack/utilities/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// Dimensions of [SampleFrame].
const (
	SampleFrameWidth  = 128
	SampleFrameHeight = 40
)

// SampleFrame is a real packed 128x40 keyboard OLED frame. It ends with a
// non-zero byte, so it's also what [bitplane.Pack] returns for it.
var SampleFrame = []byte{
	0, 0, 126, 126, 24, 60, 102, 66, 0, 12, 28, 112, 112, 28, 12, 0,
	116, 116, 20, 20, 124, 104, 0, 124, 124, 0, 112, 120, 44, 36, 124, 124,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 128, 64, 64, 32, 32, 32,
	32, 16, 16, 16, 16, 16, 8, 8, 4, 4, 4, 8, 48, 64, 128, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 128, 128, 128,
	0, 0, 0, 0, 192, 96, 48, 24, 12, 132, 198, 98, 35, 51, 17, 145,
	113, 241, 113, 145, 17, 51, 35, 98, 198, 132, 12, 24, 48, 96, 192, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 24, 100, 130, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0, 128, 128,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 128, 0, 48, 48, 0, 192, 193,
	193, 194, 4, 8, 16, 32, 64, 128, 0, 0, 0, 128, 128, 128, 128, 64,
	64, 64, 64, 32, 32, 32, 32, 16, 16, 16, 16, 8, 8, 8, 8, 8,
	196, 4, 196, 4, 196, 2, 194, 2, 194, 1, 1, 1, 1, 0, 0, 0,
	0, 0, 252, 15, 1, 0, 248, 14, 31, 109, 140, 148, 148, 164, 166, 249,
	224, 255, 224, 249, 166, 164, 148, 148, 140, 109, 31, 14, 248, 0, 1, 15,
	252, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	192, 56, 4, 3, 0, 0, 0, 0, 0, 0, 0, 12, 12, 12, 13, 1,
	0, 64, 160, 33, 34, 18, 17, 17, 17, 9, 8, 8, 8, 8, 4, 4,
	8, 8, 16, 16, 16, 16, 16, 17, 15, 1, 1, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 170, 170, 255,
	255, 195, 191, 127, 3, 127, 191, 195, 255, 255, 170, 170, 0, 0, 0, 0,
	0, 0, 31, 120, 192, 0, 15, 56, 124, 219, 152, 20, 20, 18, 50, 207,
	3, 255, 3, 207, 50, 18, 20, 20, 152, 219, 124, 56, 15, 0, 192, 120,
	31, 16, 16, 16, 16, 8, 8, 8, 8, 8, 4, 4, 4, 4, 4, 2,
	3, 2, 2, 1, 1, 1, 1, 1, 1, 2, 2, 4, 4, 8, 8, 8,
	8, 8, 7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 130, 135,
	31, 7, 159, 7, 28, 7, 159, 7, 159, 7, 2, 130, 0, 0, 0, 0,
	32, 16, 16, 16, 17, 11, 14, 12, 24, 16, 49, 35, 98, 102, 68, 68,
	71, 71, 71, 68, 68, 102, 98, 35, 49, 16, 24, 12, 6, 3, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7, 8, 8,
	23, 0, 15, 1, 2, 1, 15, 0, 15, 2, 5, 8,
}

// RandomMatrix creates a matrix with every pixel set at random. It is
// guaranteed to either return a valid matrix or fail the test and abort.
func RandomMatrix(t *testing.T, width, height int) *bitplane.Matrix {
	noise := make([]byte, width*height)
	_, err := rand.Read(noise)
	require.NoErrorf(t, err, "failed to generate %dx%d random pixels", width, height)

	m, err := bitplane.NewMatrix(width, height)
	require.NoError(t, err)
	for i, value := range noise {
		m.Set(i%width, i/width, value&1 == 1)
	}
	return m
}

// SimilarCorpus creates `count` frames that each differ from a shared random
// frame by `flips` randomly chosen pixels, which is roughly what consecutive
// animation frames look like.
//
// The sequence is derived from `seed`, so a test gets the same corpus every
// time it runs.
func SimilarCorpus(t *testing.T, width, height, count, flips int, seed int64) []*bitplane.Matrix {
	require.Greater(t, width*height, 0, "corpus frames must have at least one pixel")

	rng := mathrand.New(mathrand.NewSource(seed))
	template, err := bitplane.NewMatrix(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Keep the template sparse like a real line-art frame.
			template.Set(x, y, rng.Intn(4) == 0)
		}
	}

	frames := make([]*bitplane.Matrix, count)
	for i := range frames {
		frame, err := bitplane.MatrixFromRows(template.Rows())
		require.NoError(t, err)
		for j := 0; j < flips; j++ {
			x, y := rng.Intn(width), rng.Intn(height)
			frame.Set(x, y, frame.At(x, y) == 0)
		}
		frames[i] = frame
	}
	return frames
}

// LoadExpandedFrame takes a compressed delta and the base it was computed
// against, and returns a stream over the reconstructed packed frame.
//
//   - Writes to the stream do not affect `compressed` or `base`.
//   - The stream's size is fixed to `len(base)`.
func LoadExpandedFrame(t *testing.T, compressed, base []byte) io.ReadWriteSeeker {
	frameDelta, err := compression.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, len(base), len(frameDelta), "decompressed delta is the wrong size")

	packed, err := delta.Undiff(base, frameDelta)
	require.NoError(t, err)
	return bytesextra.NewReadWriteSeeker(packed)
}
