package baseframe

import (
	"fmt"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/bitplane"
)

// Average builds the base from pixels rather than bytes: each pixel is on if
// it's on in most of the frames. It's a cheaper approximation of
// [MajorityVote]. The corpus is unpacked using the frame dimensions given here.
type Average struct {
	Width  int
	Height int
}

func (s Average) SelectBase(corpus Corpus) ([]byte, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	frames := make([]*bitplane.Matrix, len(corpus))
	for i, packed := range corpus {
		frame, err := bitplane.Unpack(packed, s.Width, s.Height)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames[i] = frame
	}
	return FromMatrices(frames, corpus.FrameLen())
}

// FromMatrices averages unpacked frames directly (see [Average]) and returns
// the packed result padded to `length` bytes.
func FromMatrices(frames []*bitplane.Matrix, length int) ([]byte, error) {
	average, err := bitplane.Average(frames)
	if err != nil {
		return nil, err
	}

	packed := bitplane.Pack(average)
	if len(packed) > length {
		msg := fmt.Sprintf(
			"average frame packs to %d bytes, longer than the %d requested",
			len(packed),
			length,
		)
		return nil, framepack.ErrShapeMismatch.WithMessage(msg)
	}
	return bitplane.Pad(packed, length), nil
}
