package compression

import (
	"bufio"
	"io"
)

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	RunLength int
}

// InvalidRLERun is returned by [RunLengthGrouper.GetNextRun] when no run could
// be read.
var InvalidRLERun = ByteRun{Byte: 0, RunLength: 0}

// RunLengthGrouper splits a byte stream into runs of identical bytes.
type RunLengthGrouper struct {
	rd           *bufio.Reader
	maxRunLength int
}

// NewRLEGrouper creates a grouper reading from `rd`. Runs longer than
// `maxRunLength` are split into several runs; pass 0 for no limit.
func NewRLEGrouper(rd io.Reader, maxRunLength int) RunLengthGrouper {
	return RunLengthGrouper{rd: bufio.NewReader(rd), maxRunLength: maxRunLength}
}

// GetNextRun returns a [ByteRun] for the next byte or run of byte values in the
// stream. At the end of the stream it returns [InvalidRLERun] and [io.EOF].
func (grouper RunLengthGrouper) GetNextRun() (ByteRun, error) {
	firstByte, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRLERun, err
	}

	var runLength int
	for runLength = 1; grouper.maxRunLength <= 0 || runLength < grouper.maxRunLength; runLength++ {
		currentByte, err := grouper.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return InvalidRLERun, err
		}
		if currentByte != firstByte {
			// Hit a different byte, back up and return.
			grouper.rd.UnreadByte()
			break
		}
	}
	return ByteRun{Byte: firstByte, RunLength: runLength}, nil
}

// GroupRuns is the in-memory form of [RunLengthGrouper]: it returns every run
// in `data`, in order, with none longer than `maxRunLength` (0 for no limit).
func GroupRuns(data []byte, maxRunLength int) []ByteRun {
	var runs []ByteRun
	for i := 0; i < len(data); {
		run := ByteRun{Byte: data[i], RunLength: 1}
		for i+run.RunLength < len(data) &&
			data[i+run.RunLength] == run.Byte &&
			(maxRunLength <= 0 || run.RunLength < maxRunLength) {
			run.RunLength++
		}
		runs = append(runs, run)
		i += run.RunLength
	}
	return runs
}
