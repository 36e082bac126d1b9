package bitplane

import (
	"fmt"

	"github.com/dargueta/framepack"
	"github.com/hashicorp/go-multierror"
)

// CheckShapes ensures every matrix has the same dimensions as the first one.
// All mismatches are reported together.
func CheckShapes(frames []*Matrix) error {
	if len(frames) == 0 {
		return framepack.ErrEmptyCorpus
	}

	var result *multierror.Error
	for i, frame := range frames[1:] {
		if err := CheckSameShape(frames[0], frame); err != nil {
			result = multierror.Append(result, fmt.Errorf("frame %d: %w", i+1, err))
		}
	}

	if result != nil {
		return framepack.ErrShapeMismatch.Wrap(result)
	}
	return nil
}

// Average builds a frame where each pixel is on if and only if it's on in a
// strict majority of the input frames. Ties are off.
func Average(frames []*Matrix) (*Matrix, error) {
	if err := CheckShapes(frames); err != nil {
		return nil, err
	}

	width, height := frames[0].Dimensions()
	result, err := NewMatrix(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lit := 0
			for _, frame := range frames {
				lit += int(frame.At(x, y))
			}
			if lit*2 > len(frames) {
				result.Set(x, y, true)
			}
		}
	}
	return result, nil
}
