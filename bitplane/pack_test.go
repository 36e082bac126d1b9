package bitplane_test

import (
	"testing"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/bitplane"
	ftesting "github.com/dargueta/framepack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack__SampleFrameRoundTrip(t *testing.T) {
	m, err := bitplane.Unpack(
		ftesting.SampleFrame, ftesting.SampleFrameWidth, ftesting.SampleFrameHeight)
	require.NoError(t, err)
	assert.Equal(t, ftesting.SampleFrame, bitplane.Pack(m))
}

func TestPack__BitLayout(t *testing.T) {
	// 2 columns by 9 rows: the ninth row lands in a second band.
	rows := [][]byte{
		{1, 0},
		{0, 0},
		{1, 0},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 1},
		{0, 1},
	}
	m, err := bitplane.MatrixFromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, []byte{0b0000_0101, 0b1000_0000, 0, 1}, bitplane.Pack(m))
}

func TestPack__TrimsTrailingZeros(t *testing.T) {
	m, err := bitplane.NewMatrix(16, 16)
	require.NoError(t, err)
	m.Set(3, 0, true)

	assert.Equal(t, []byte{0, 0, 0, 1}, bitplane.Pack(m))

	blank, err := bitplane.NewMatrix(16, 16)
	require.NoError(t, err)
	assert.Empty(t, bitplane.Pack(blank))
}

func TestPackUnpack__RoundTrip(t *testing.T) {
	sizes := []struct {
		Width, Height int
	}{
		{1, 1}, {5, 7}, {8, 8}, {13, 9}, {128, 32}, {128, 40}, {33, 63},
	}

	for _, size := range sizes {
		m := ftesting.RandomMatrix(t, size.Width, size.Height)
		packed := bitplane.Pack(m)
		assert.LessOrEqual(t, len(packed), bitplane.PackedLen(size.Width, size.Height))

		unpacked, err := bitplane.Unpack(packed, size.Width, size.Height)
		require.NoErrorf(t, err, "%dx%d", size.Width, size.Height)
		assert.Truef(t, m.Equal(unpacked), "%dx%d frame changed in round trip", size.Width, size.Height)

		padded := bitplane.Pad(packed, bitplane.PackedLen(size.Width, size.Height))
		unpacked, err = bitplane.Unpack(padded, size.Width, size.Height)
		require.NoError(t, err)
		assert.True(t, m.Equal(unpacked), "padded frame changed in round trip")
	}
}

func TestUnpack__TooLong(t *testing.T) {
	_, err := bitplane.Unpack(make([]byte, 17), 8, 16)
	assert.ErrorIs(t, err, framepack.ErrShapeMismatch)
}

func TestUnpack__BitBelowLastRow(t *testing.T) {
	// Bit 3 of the first byte is row 3, but the frame has only three rows.
	_, err := bitplane.Unpack([]byte{0b0000_1000}, 4, 3)
	assert.ErrorIs(t, err, framepack.ErrShapeMismatch)

	m, err := bitplane.Unpack([]byte{0b0000_0100}, 4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, m.At(0, 2))
}

func TestUnpack__NegativeDimensions(t *testing.T) {
	_, err := bitplane.Unpack(nil, -1, 8)
	assert.ErrorIs(t, err, framepack.ErrInvalidArgument)
}

func TestPackedLen(t *testing.T) {
	assert.Equal(t, 640, bitplane.PackedLen(128, 40))
	assert.Equal(t, 640, bitplane.PackedLen(128, 33))
	assert.Equal(t, 512, bitplane.PackedLen(128, 32))
	assert.Equal(t, 0, bitplane.PackedLen(128, 0))
}

func TestPad(t *testing.T) {
	original := []byte{1, 2}
	padded := bitplane.Pad(original, 4)
	assert.Equal(t, []byte{1, 2, 0, 0}, padded)

	padded[0] = 9
	assert.Equal(t, []byte{1, 2}, original, "Pad must copy")

	assert.Panics(t, func() { bitplane.Pad([]byte{1, 2, 3}, 2) })
}
