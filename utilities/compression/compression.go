package compression

import (
	"bytes"
	"io"
)

// Compress returns the run-length encoding of `data`. An empty input gives an
// empty output.
func Compress(data []byte) []byte {
	buffer := bytes.NewBuffer(make([]byte, 0, len(data)/2+2))
	encoder := newRecordEncoder(buffer)
	for _, run := range GroupRuns(data, MaxRunLength) {
		// Writes to a bytes.Buffer can't fail.
		_ = encoder.addRun(run)
	}
	_ = encoder.flush()
	return buffer.Bytes()
}

// CompressedSize returns len(Compress(data)) without building the output.
func CompressedSize(data []byte) int {
	encoder := newRecordEncoder(io.Discard)
	for _, run := range GroupRuns(data, MaxRunLength) {
		_ = encoder.addRun(run)
	}
	_ = encoder.flush()
	return int(encoder.written)
}

// Decompress expands a stream produced by [Compress]. It never reads past the
// end of `data`; a truncated or malformed stream is an error.
func Decompress(data []byte) ([]byte, error) {
	output := make([]byte, 0, len(data)*2)

	for i := 0; i < len(data); {
		control := data[i]
		count := int(control & CountMask)
		if count == 0 {
			return nil, zeroCountError(control, int64(i))
		}

		if control&ModeBit != 0 {
			end := i + 1 + count
			if end > len(data) {
				return nil, truncatedError(int64(i), count, len(data)-i-1)
			}
			output = append(output, data[i+1:end]...)
			i = end
			continue
		}

		if i+1 >= len(data) {
			return nil, truncatedError(int64(i), 1, 0)
		}
		for j := 0; j < count; j++ {
			output = append(output, data[i+1])
		}
		i += 2
	}
	return output, nil
}
