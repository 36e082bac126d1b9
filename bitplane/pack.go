// Package bitplane converts between pixel matrices and the packed byte layout
// used by SSD1306-style display controllers.
//
// Eight vertically adjacent rows form a band. Each column of a band becomes one
// byte, with the top row in bit 0 and the bottom row in bit 7. Bytes are
// written band by band, and within a band column by column:
//
//	band 0: col 0, col 1, ... col W-1
//	band 1: col 0, col 1, ... col W-1
//
// A frame whose height isn't a multiple of 8 is padded with blank rows. After
// packing, trailing zero bytes are dropped; readers treat any missing byte at
// the end as zero.
package bitplane

import (
	"fmt"

	"github.com/dargueta/framepack"
)

const rowsPerBand = 8

// BandCount returns the number of 8-row bands needed to hold `height` rows.
func BandCount(height int) int {
	return (height + rowsPerBand - 1) / rowsPerBand
}

// PackedLen returns the untrimmed packed size of a frame of the given
// dimensions, i.e. the upper bound on what [Pack] can return.
func PackedLen(width, height int) int {
	return BandCount(height) * width
}

// Pack converts a matrix into its packed byte form with trailing zero bytes
// removed.
func Pack(m *Matrix) []byte {
	packed := make([]byte, 0, PackedLen(m.width, m.height))

	for band := 0; band < BandCount(m.height); band++ {
		top := band * rowsPerBand
		for x := 0; x < m.width; x++ {
			var value byte
			for r := 0; r < rowsPerBand; r++ {
				value |= m.At(x, top+r) << r
			}
			packed = append(packed, value)
		}
	}

	return TrimTrailingZeros(packed)
}

// TrimTrailingZeros returns the prefix of `packed` that ends with its last
// non-zero byte. The returned slice shares memory with the argument.
func TrimTrailingZeros(packed []byte) []byte {
	end := len(packed)
	for end > 0 && packed[end-1] == 0 {
		end--
	}
	return packed[:end]
}

// Pad returns a copy of `packed` extended with zero bytes to length `n`. It
// panics if `packed` is already longer than `n`.
func Pad(packed []byte, n int) []byte {
	if len(packed) > n {
		panic(fmt.Sprintf("can't pad %d bytes down to %d", len(packed), n))
	}
	padded := make([]byte, n)
	copy(padded, packed)
	return padded
}

// Unpack is the inverse of [Pack]. Missing trailing bytes are treated as zero,
// so both trimmed and padded data are accepted. Data longer than a frame of the
// given dimensions can hold is an error.
func Unpack(packed []byte, width, height int) (*Matrix, error) {
	m, err := NewMatrix(width, height)
	if err != nil {
		return nil, err
	}

	maxLen := PackedLen(width, height)
	if len(packed) > maxLen {
		msg := fmt.Sprintf(
			"%d bytes can't be a %dx%d frame, which packs to at most %d bytes",
			len(packed),
			width,
			height,
			maxLen,
		)
		return nil, framepack.ErrShapeMismatch.WithMessage(msg)
	}

	for i, value := range packed {
		if value == 0 {
			continue
		}
		top := (i / width) * rowsPerBand
		x := i % width
		for r := 0; r < rowsPerBand; r++ {
			if value&(1<<r) == 0 {
				continue
			}
			y := top + r
			if y >= height {
				msg := fmt.Sprintf(
					"byte %d sets bit %d, which is row %d of a frame only %d rows tall",
					i,
					r,
					y,
					height,
				)
				return nil, framepack.ErrShapeMismatch.WithMessage(msg)
			}
			m.Set(x, y, true)
		}
	}
	return m, nil
}
