/*
Package animation turns a sequence of binary frames into the byte arrays stored
in firmware: one shared base frame, plus one compressed delta per frame.

Frames are packed (see bitplane), padded to a common length, and handed to a
base frame selector (see baseframe). Every frame is then diffed against the base
(see delta) and run-length encoded (see utilities/compression).
*/
package animation

import (
	"fmt"
	"log"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/baseframe"
	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/delta"
	"github.com/dargueta/framepack/utilities/compression"
)

// BaseName is the identifier given to the base frame asset.
const BaseName = "BASE_FRAME"

// Frame is one named input frame.
type Frame struct {
	Name   string
	Pixels *bitplane.Matrix
}

// Encoder runs the encoding pipeline with a particular base frame policy.
type Encoder struct {
	Selector baseframe.Selector
	Logger   *log.Logger
	// Verify makes Encode expand its result and compare it against the input
	// before returning.
	Verify bool
}

// NewEncoder creates an encoder. A nil logger discards all messages.
func NewEncoder(selector baseframe.Selector, logger *log.Logger) *Encoder {
	return &Encoder{
		Selector: selector,
		Logger:   logger,
	}
}

func (e *Encoder) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// Encode compresses the frames against a base picked by the encoder's
// selector. All frames must have the same dimensions.
func (e *Encoder) Encode(frames []Frame) (*Result, error) {
	if len(frames) == 0 {
		return nil, framepack.ErrEmptyCorpus
	}
	if e.Selector == nil {
		return nil, framepack.ErrInvalidArgument.WithMessage("no base frame selector configured")
	}

	names := make([]string, len(frames))
	matrices := make([]*bitplane.Matrix, len(frames))
	for i, frame := range frames {
		names[i] = frame.Name
		matrices[i] = frame.Pixels
	}
	if err := CheckFrameNames(names); err != nil {
		return nil, err
	}
	if err := bitplane.CheckShapes(matrices); err != nil {
		return nil, err
	}

	width, height := matrices[0].Dimensions()
	corpus := make(baseframe.Corpus, len(frames))
	frameLen := 0
	for i, m := range matrices {
		corpus[i] = bitplane.Pack(m)
		if len(corpus[i]) > frameLen {
			frameLen = len(corpus[i])
		}
	}

	// Everything past the longest packed frame is zero in every frame, so
	// there's no need to store it.
	for i := range corpus {
		corpus[i] = bitplane.Pad(corpus[i], frameLen)
	}
	e.logf(
		"packed %d %dx%d frames to %d bytes each (%d max)",
		len(frames),
		width,
		height,
		frameLen,
		bitplane.PackedLen(width, height),
	)

	base, err := e.Selector.SelectBase(corpus)
	if err != nil {
		return nil, err
	}
	if len(base) != frameLen {
		msg := fmt.Sprintf("selector returned %d bytes, expected %d", len(base), frameLen)
		return nil, framepack.ErrShapeMismatch.WithMessage(msg)
	}

	result := &Result{
		Width:  width,
		Height: height,
		Base:   framepack.Asset{Name: BaseName, Data: base},
		Frames: make([]framepack.Asset, len(frames)),
	}

	for i, frame := range frames {
		frameDelta, err := delta.Diff(base, corpus[i])
		if err != nil {
			return nil, fmt.Errorf("frame %d (%s): %w", i, frame.Name, err)
		}
		result.Frames[i] = framepack.Asset{
			Name: frame.Name,
			Data: compression.Compress(frameDelta),
		}
		e.logf("%s: %d -> %d bytes", frame.Name, frameLen, result.Frames[i].Len())
	}
	e.logf("total stored size: %d bytes", result.TotalSize())

	if e.Verify {
		if err := result.verify(matrices); err != nil {
			return nil, err
		}
		e.logf("verified %d frames", len(frames))
	}
	return result, nil
}
