package animation

import (
	"fmt"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/delta"
	"github.com/dargueta/framepack/utilities/compression"
)

// Result is an encoded animation.
type Result struct {
	Width  int
	Height int
	// Base is the frame every delta is computed against. It's stored
	// uncompressed, padded to the length of every frame.
	Base framepack.Asset
	// Frames holds one compressed delta per input frame, in input order.
	Frames []framepack.Asset
}

// TotalSize returns the number of bytes the base and all frames take up.
func (r *Result) TotalSize() int {
	total := r.Base.Len()
	for _, frame := range r.Frames {
		total += frame.Len()
	}
	return total
}

// PackedSize returns the uncompressed size of one frame, i.e. the number of
// bytes a decoder must reserve for its frame buffer.
func (r *Result) PackedSize() int {
	return r.Base.Len()
}

// ExpandFrame decompresses and undiffs one frame, returning its packed bytes.
func ExpandFrame(base []byte, compressed []byte) ([]byte, error) {
	frameDelta, err := compression.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	return delta.Undiff(base, frameDelta)
}

// Expand reverses the encoding, returning every frame's pixels.
func (r *Result) Expand() ([]*bitplane.Matrix, error) {
	frames := make([]*bitplane.Matrix, len(r.Frames))
	for i, asset := range r.Frames {
		packed, err := ExpandFrame(r.Base.Data, asset.Data)
		if err != nil {
			return nil, fmt.Errorf("frame %d (%s): %w", i, asset.Name, err)
		}
		frames[i], err = bitplane.Unpack(packed, r.Width, r.Height)
		if err != nil {
			return nil, fmt.Errorf("frame %d (%s): %w", i, asset.Name, err)
		}
	}
	return frames, nil
}

func (r *Result) verify(originals []*bitplane.Matrix) error {
	expanded, err := r.Expand()
	if err != nil {
		return err
	}
	for i, frame := range expanded {
		if !frame.Equal(originals[i]) {
			msg := fmt.Sprintf("frame %d (%s) doesn't survive a round trip", i, r.Frames[i].Name)
			return framepack.ErrShapeMismatch.WithMessage(msg)
		}
	}
	return nil
}
