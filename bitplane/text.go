package bitplane

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dargueta/framepack"
)

// Symbols used by the text frame format.
const (
	PixelOff = '.'
	PixelOn  = '#'
)

// ReadText parses a frame drawn with [PixelOff] and [PixelOn] characters, one
// row per line. A single trailing newline is allowed, as are CRLF line endings.
func ReadText(r io.Reader) (*Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return NewMatrix(0, 0)
	}

	var rows [][]byte
	for lineIndex, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		row := make([]byte, len(line))
		for column, symbol := range line {
			switch symbol {
			case PixelOff:
				row[column] = 0
			case PixelOn:
				row[column] = 1
			default:
				msg := fmt.Sprintf(
					"line %d, column %d: unexpected symbol %q",
					lineIndex+1,
					column+1,
					symbol,
				)
				return nil, framepack.ErrMalformedPixelSource.WithMessage(msg)
			}
		}
		rows = append(rows, row)
	}

	return MatrixFromRows(rows)
}

// WriteText writes a matrix in the format [ReadText] accepts, with a newline
// after every row.
func WriteText(w io.Writer, m *Matrix) error {
	writer := bufio.NewWriter(w)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			symbol := byte(PixelOff)
			if m.At(x, y) == 1 {
				symbol = PixelOn
			}
			if err := writer.WriteByte(symbol); err != nil {
				return err
			}
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return writer.Flush()
}
