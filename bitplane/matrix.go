package bitplane

import (
	"fmt"
	"strings"

	bitmap "github.com/boljen/go-bitmap"
	"github.com/dargueta/framepack"
)

// Matrix is a rectangular grid of binary pixels. Pixels are stored one bit
// each, row-major, in a [bitmap.Bitmap].
type Matrix struct {
	width  int
	height int
	bits   bitmap.Bitmap
}

// NewMatrix creates a matrix of the given dimensions with every pixel off.
func NewMatrix(width, height int) (*Matrix, error) {
	if width < 0 || height < 0 {
		msg := fmt.Sprintf("dimensions must be non-negative, got %dx%d", width, height)
		return nil, framepack.ErrInvalidArgument.WithMessage(msg)
	}
	return &Matrix{
		width:  width,
		height: height,
		bits:   bitmap.New(width * height),
	}, nil
}

// MatrixFromRows builds a matrix from rows of 0/1 values. Every row must have
// the same length, and every value must be 0 or 1.
func MatrixFromRows(rows [][]byte) (*Matrix, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	for y, row := range rows {
		if len(row) != width {
			msg := fmt.Sprintf("row %d has %d pixels, expected %d", y, len(row), width)
			return nil, framepack.ErrMalformedPixelSource.WithMessage(msg)
		}
	}

	m, err := NewMatrix(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		for x, value := range row {
			if value > 1 {
				msg := fmt.Sprintf("pixel (%d, %d) has value %d, expected 0 or 1", x, y, value)
				return nil, framepack.ErrMalformedPixelSource.WithMessage(msg)
			}
			m.Set(x, y, value == 1)
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return m.height
}

// Dimensions returns the width and height, in that order.
func (m *Matrix) Dimensions() (int, int) {
	return m.width, m.height
}

// At returns the pixel at (x, y) as 0 or 1. Coordinates outside the matrix
// read as 0, which is what lets the packer pad partial bands.
func (m *Matrix) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	if m.bits.Get(y*m.width + x) {
		return 1
	}
	return 0
}

// Set turns the pixel at (x, y) on or off. It panics if the coordinates are
// outside the matrix.
func (m *Matrix) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d matrix", x, y, m.width, m.height))
	}
	m.bits.Set(y*m.width+x, on)
}

// Equal reports whether both matrices have the same dimensions and pixels.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) != other.At(x, y) {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the pixels as rows of 0/1 values.
func (m *Matrix) Rows() [][]byte {
	rows := make([][]byte, m.height)
	for y := range rows {
		rows[y] = make([]byte, m.width)
		for x := range rows[y] {
			rows[y][x] = m.At(x, y)
		}
	}
	return rows
}

// String renders the matrix for a terminal, two characters per pixel so the
// aspect ratio looks roughly square.
func (m *Matrix) String() string {
	var builder strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) == 1 {
				builder.WriteString("██")
			} else {
				builder.WriteString("  ")
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// CheckSameShape returns an error if the two matrices differ in size.
func CheckSameShape(a, b *Matrix) error {
	if a.width == b.width && a.height == b.height {
		return nil
	}
	msg := fmt.Sprintf("%dx%d != %dx%d", a.width, a.height, b.width, b.height)
	return framepack.ErrShapeMismatch.WithMessage(msg)
}
