package compression

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/framepack"
)

const (
	// ModeBit is set in the control byte of a literal record and clear in the
	// control byte of a repeat record.
	ModeBit = 0x80
	// CountMask extracts the repeat or literal count from a control byte.
	CountMask = 0x7f
	// MaxRunLength is the largest count a single control byte can carry.
	MaxRunLength = 127
)

// recordEncoder is the second compression pass. It receives runs from the
// first pass and writes repeat and literal records to the output.
type recordEncoder struct {
	output   io.Writer
	literals []byte
	written  int64
}

func newRecordEncoder(output io.Writer) *recordEncoder {
	return &recordEncoder{
		output:   output,
		literals: make([]byte, 0, MaxRunLength),
	}
}

func (encoder *recordEncoder) write(record []byte) error {
	n, err := encoder.output.Write(record)
	encoder.written += int64(n)
	return err
}

func (encoder *recordEncoder) addRun(run ByteRun) error {
	if run.RunLength < 1 || run.RunLength > MaxRunLength {
		panic(fmt.Sprintf("run length %d not in [1, %d]", run.RunLength, MaxRunLength))
	}

	if run.RunLength == 1 {
		encoder.literals = append(encoder.literals, run.Byte)
		if len(encoder.literals) == MaxRunLength {
			return encoder.flush()
		}
		return nil
	}

	if err := encoder.flush(); err != nil {
		return err
	}
	return encoder.write([]byte{byte(run.RunLength), run.Byte})
}

// flush writes out any pending single bytes.
func (encoder *recordEncoder) flush() error {
	var err error
	switch len(encoder.literals) {
	case 0:
		return nil
	case 1:
		err = encoder.write([]byte{1, encoder.literals[0]})
	default:
		record := make([]byte, 0, len(encoder.literals)+1)
		record = append(record, ModeBit|byte(len(encoder.literals)))
		record = append(record, encoder.literals...)
		err = encoder.write(record)
	}
	encoder.literals = encoder.literals[:0]
	return err
}

// CompressRLE7 reads bytes from the input and writes compressed data to the
// output until the input is exhausted. The return value is the number of bytes
// written, only valid if no error occurred.
func CompressRLE7(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRLEGrouper(input, MaxRunLength)
	encoder := newRecordEncoder(output)

	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return encoder.written, err
		}

		if err = encoder.addRun(run); err != nil {
			return encoder.written, err
		}
	}

	err := encoder.flush()
	return encoder.written, err
}

// DecompressRLE7 expands a compressed stream from `input` into `output`. It
// returns the number of bytes written. A record cut off by the end of the input
// gives an error wrapping both [framepack.ErrTruncatedStream] and
// [io.ErrUnexpectedEOF].
func DecompressRLE7(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	payload := make([]byte, MaxRunLength)
	totalBytesWritten := int64(0)
	offset := int64(0)

	for {
		control, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		count := int(control & CountMask)
		if count == 0 {
			return totalBytesWritten, zeroCountError(control, offset)
		}

		var currentOutput []byte
		if control&ModeBit != 0 {
			n, err := io.ReadFull(source, payload[:count])
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return totalBytesWritten, truncatedError(offset, count, n)
				}
				return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
			}
			currentOutput = payload[:count]
			offset += int64(count) + 1
		} else {
			value, err := source.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return totalBytesWritten, truncatedError(offset, 1, 0)
				}
				return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
			}
			currentOutput = repeatByte(payload, value, count)
			offset += 2
		}

		n, err := output.Write(currentOutput)
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
	}
}

// repeatByte fills the first `count` bytes of `buffer` with `value`.
func repeatByte(buffer []byte, value byte, count int) []byte {
	run := buffer[:count]
	for i := range run {
		run[i] = value
	}
	return run
}

func truncatedError(offset int64, needed, remaining int) error {
	return framepack.ErrTruncatedStream.Wrap(
		fmt.Errorf(
			"%w: record at offset %d needs %d payload bytes, only %d remain",
			io.ErrUnexpectedEOF,
			offset,
			needed,
			remaining,
		),
	)
}

func zeroCountError(control byte, offset int64) error {
	msg := fmt.Sprintf("control byte %#02x at offset %d has a count of 0", control, offset)
	return framepack.ErrMalformedStream.WithMessage(msg)
}
