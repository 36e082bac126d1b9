package compression_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/dargueta/framepack"
	c "github.com/dargueta/framepack/utilities/compression"
	"github.com/noxer/bytewriter"
)

type RLE7TestCase struct {
	Input          []byte
	ExpectedOutput []byte
	Name           string
}

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

var rle7TestCases = []RLE7TestCase{
	{[]byte{}, []byte{}, "empty"},
	{[]byte{7}, []byte{1, 7}, "single byte"},
	{[]byte{0, 0, 0, 0, 0}, []byte{5, 0}, "uniform"},
	{[]byte{0, 0, 0, 1, 0}, []byte{3, 0, 0b1000_0010, 1, 0}, "run then literals"},
	{[]byte{0, 0, 0, 1, 1, 1, 2, 2, 2}, []byte{3, 0, 3, 1, 3, 2}, "adjacent runs"},
	{[]byte{1, 2, 3, 4}, []byte{0x84, 1, 2, 3, 4}, "all literals"},
	{[]byte{4, 4, 9, 4, 4}, []byte{2, 4, 1, 9, 2, 4}, "lone byte between runs"},
	{bytes.Repeat([]byte{8}, 127), []byte{127, 8}, "127"},
	{bytes.Repeat([]byte{8}, 128), []byte{127, 8, 1, 8}, "128"},
	{bytes.Repeat([]byte{8}, 129), []byte{127, 8, 2, 8}, "129"},
	{
		bytes.Repeat([]byte{5}, 300),
		[]byte{127, 5, 127, 5, 46, 5},
		"single long run",
	},
	{
		sequence(127),
		append([]byte{0xff}, sequence(127)...),
		"127 literals",
	},
	{
		sequence(128),
		append(append([]byte{0xff}, sequence(127)...), 1, 127),
		"128 literals",
	},
	{
		sequence(130),
		append(append([]byte{0xff}, sequence(127)...), 0x83, 127, 128, 129),
		"130 literals",
	},
}

func TestCompressRLE7__Basic(t *testing.T) {
	for _, test := range rle7TestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runCompressionTestCase(t, test)
			},
		)
	}
}

// Round-trip test of completely random bytes
func TestRLE7RoundTrip__CompletelyRandom(t *testing.T) {
	originalData := make([]byte, 1852)
	rand.Read(originalData)
	runRoundTripTestCase(t, originalData)
}

func TestRLE7RoundTrip__EntirelyNulls(t *testing.T) {
	originalData := make([]byte, 571)
	runRoundTripTestCase(t, originalData)
}

func TestRLE7RoundTrip__EntirelyNonNullRun(t *testing.T) {
	runRoundTripTestCase(t, bytes.Repeat([]byte{182}, 934))
}

func TestRLE7RoundTrip__Empty(t *testing.T) {
	runRoundTripTestCase(t, []byte{})
}

func TestRLE7Decompress__MissingRepeatValue(t *testing.T) {
	data := []byte{3, 0, 4}
	decompressed := make([]byte, 16)
	writer := bytewriter.New(decompressed)

	n, err := c.DecompressRLE7(bytes.NewReader(data), writer)
	if err == nil {
		t.Fatal("read with missing repeat value should've failed but didn't")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error doesn't wrap io.ErrUnexpectedEOF: %s", err.Error())
	}
	if !errors.Is(err, framepack.ErrTruncatedStream) {
		t.Errorf("error doesn't wrap ErrTruncatedStream: %s", err.Error())
	}
	if n != 3 {
		t.Errorf("expected the complete first record (3 bytes) to be written, got %d", n)
	}
}

func TestRLE7Decompress__ShortLiteral(t *testing.T) {
	data := []byte{0x85, 1, 2, 3}
	decompressed := make([]byte, 16)
	writer := bytewriter.New(decompressed)

	_, err := c.DecompressRLE7(bytes.NewReader(data), writer)
	if !errors.Is(err, framepack.ErrTruncatedStream) {
		t.Errorf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestRLE7Decompress__ZeroCount(t *testing.T) {
	for _, control := range []byte{0x00, 0x80} {
		_, err := c.DecompressRLE7(bytes.NewReader([]byte{control, 1}), io.Discard)
		if !errors.Is(err, framepack.ErrMalformedStream) {
			t.Errorf("control byte %#02x: expected ErrMalformedStream, got %v", control, err)
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// Helper functions

func runCompressionTestCase(t *testing.T, test RLE7TestCase) {
	inputBuffer := bytes.NewBuffer(test.Input)
	outputBuffer := make([]byte, len(test.ExpectedOutput)*2)
	outputWriter := bytewriter.New(outputBuffer)

	n, err := c.CompressRLE7(inputBuffer, outputWriter)

	if err != nil {
		t.Errorf("unexpected error: %s", err.Error())
		return
	}

	if n != int64(len(test.ExpectedOutput)) {
		t.Errorf(
			"bytes written should be %d, got %d",
			len(test.ExpectedOutput),
			n,
		)
	}

	if !bytes.Equal(test.ExpectedOutput, outputBuffer[:n]) {
		t.Errorf(
			"output data is wrong: expected %v, got %v",
			test.ExpectedOutput,
			outputBuffer[:n],
		)
	}
}

func runRoundTripTestCase(t *testing.T, originalData []byte) {
	inputBuffer := bytes.NewBuffer(originalData)

	// Random data can come out larger than it went in; the worst case is one
	// control byte for every 127 bytes of input.
	compressedBuffer := make([]byte, len(originalData)*2+2)
	compressedWriter := bytewriter.New(compressedBuffer)

	n, err := c.CompressRLE7(inputBuffer, compressedWriter)
	if err != nil {
		t.Fatalf("unexpected error while compressing: %s", err.Error())
	} else {
		t.Logf("compressed %d to %d", len(originalData), n)
	}

	outputBuffer := make([]byte, len(originalData))
	outputWriter := bytewriter.New(outputBuffer)
	compressedReader := bytes.NewReader(compressedBuffer[:n])

	n, err = c.DecompressRLE7(compressedReader, outputWriter)
	if err != nil {
		t.Fatalf("unexpected error while decompressing: %s", err.Error())
	}
	if n != int64(len(originalData)) {
		t.Errorf(
			"returned decompressed size is wrong; expected %d, got %d",
			len(originalData),
			n,
		)
	}
	if !bytes.Equal(originalData, outputBuffer) {
		t.Error("decompressed data doesn't match original data")
	}
}
