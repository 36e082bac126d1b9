package bitplane_test

import (
	"testing"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/bitplane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixFromRows(t *testing.T) {
	rows := [][]byte{{0, 1, 0}, {1, 1, 1}}
	m, err := bitplane.MatrixFromRows(rows)
	require.NoError(t, err)

	width, height := m.Dimensions()
	assert.Equal(t, 3, width)
	assert.Equal(t, 2, height)
	assert.EqualValues(t, 1, m.At(1, 0))
	assert.EqualValues(t, 0, m.At(2, 0))
	assert.Equal(t, rows, m.Rows())
}

func TestMatrixFromRows__Ragged(t *testing.T) {
	_, err := bitplane.MatrixFromRows([][]byte{{0, 1, 0}, {1, 1}})
	assert.ErrorIs(t, err, framepack.ErrMalformedPixelSource)
}

func TestMatrixFromRows__BadValue(t *testing.T) {
	_, err := bitplane.MatrixFromRows([][]byte{{0, 2}})
	assert.ErrorIs(t, err, framepack.ErrMalformedPixelSource)
}

func TestMatrix__OutOfBounds(t *testing.T) {
	m, err := bitplane.NewMatrix(2, 2)
	require.NoError(t, err)

	assert.EqualValues(t, 0, m.At(5, 0), "reads outside the matrix are blank")
	assert.EqualValues(t, 0, m.At(0, -1))
	assert.Panics(t, func() { m.Set(2, 0, true) })
}

func TestMatrix__Equal(t *testing.T) {
	a, _ := bitplane.MatrixFromRows([][]byte{{0, 1}, {1, 0}})
	b, _ := bitplane.MatrixFromRows([][]byte{{0, 1}, {1, 0}})
	c, _ := bitplane.MatrixFromRows([][]byte{{0, 1}, {1, 1}})
	d, _ := bitplane.MatrixFromRows([][]byte{{0, 1, 0}, {1, 0, 0}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.ErrorIs(t, bitplane.CheckSameShape(a, d), framepack.ErrShapeMismatch)
	assert.NoError(t, bitplane.CheckSameShape(a, c))
}

func TestMatrix__String(t *testing.T) {
	m, _ := bitplane.MatrixFromRows([][]byte{{1, 0}, {0, 1}})
	assert.Equal(t, "██  \n  ██\n", m.String())
}
