/*
Package bundle stores an encoded animation in a single file so that it can be
inspected or re-emitted later without re-encoding the source frames.

A bundle is a CBOR map compressed inside an LZ4 frame.
*/
package bundle

import (
	"fmt"
	"io"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/animation"
	"github.com/dargueta/framepack/baseframe"
	"github.com/dargueta/framepack/bitplane"
	"github.com/fxamacker/cbor/v2"
	"github.com/pierrec/lz4/v4"
)

// FormatVersion is written into every bundle. Load rejects other versions.
const FormatVersion = 1

type Asset struct {
	Name string `cbor:"name"`
	Data []byte `cbor:"data"`
}

type Bundle struct {
	Version int              `cbor:"version"`
	Width   int              `cbor:"width"`
	Height  int              `cbor:"height"`
	Policy  baseframe.Policy `cbor:"policy"`
	Base    []byte           `cbor:"base"`
	Frames  []Asset          `cbor:"frames"`
}

// FromResult creates a bundle from an encoded animation. `policy` is recorded
// for reference only.
func FromResult(result *animation.Result, policy baseframe.Policy) *Bundle {
	b := &Bundle{
		Version: FormatVersion,
		Width:   result.Width,
		Height:  result.Height,
		Policy:  policy,
		Base:    result.Base.Data,
		Frames:  make([]Asset, len(result.Frames)),
	}
	for i, frame := range result.Frames {
		b.Frames[i] = Asset{Name: frame.Name, Data: frame.Data}
	}
	return b
}

// Result converts the bundle back into an [animation.Result].
func (b *Bundle) Result() *animation.Result {
	result := &animation.Result{
		Width:  b.Width,
		Height: b.Height,
		Base:   framepack.Asset{Name: animation.BaseName, Data: b.Base},
		Frames: make([]framepack.Asset, len(b.Frames)),
	}
	for i, frame := range b.Frames {
		result.Frames[i] = framepack.Asset{Name: frame.Name, Data: frame.Data}
	}
	return result
}

// Expand decodes every frame in the bundle.
func (b *Bundle) Expand() ([]*bitplane.Matrix, error) {
	return b.Result().Expand()
}

func (b *Bundle) validate() error {
	if b.Version != FormatVersion {
		msg := fmt.Sprintf("unsupported bundle version %d, expected %d", b.Version, FormatVersion)
		return framepack.ErrMalformedStream.WithMessage(msg)
	}
	if b.Width < 0 || b.Height < 0 {
		msg := fmt.Sprintf("invalid frame dimensions %dx%d", b.Width, b.Height)
		return framepack.ErrMalformedStream.WithMessage(msg)
	}
	if len(b.Base) > bitplane.PackedLen(b.Width, b.Height) {
		msg := fmt.Sprintf(
			"base frame is %d bytes, too big for a %dx%d frame",
			len(b.Base),
			b.Width,
			b.Height,
		)
		return framepack.ErrMalformedStream.WithMessage(msg)
	}

	names := make([]string, len(b.Frames))
	for i, frame := range b.Frames {
		names[i] = frame.Name
	}
	if err := animation.CheckFrameNames(names); err != nil {
		return framepack.ErrMalformedStream.Wrap(err)
	}
	return nil
}

// Save writes the bundle to `w`.
func Save(w io.Writer, b *Bundle) error {
	compressor := lz4.NewWriter(w)
	if err := cbor.NewEncoder(compressor).Encode(b); err != nil {
		compressor.Close()
		return err
	}
	return compressor.Close()
}

// Load reads a bundle written by [Save].
func Load(r io.Reader) (*Bundle, error) {
	b := &Bundle{}
	err := cbor.NewDecoder(lz4.NewReader(r)).Decode(b)
	if err != nil {
		return nil, framepack.ErrMalformedStream.Wrap(err)
	}
	if err = b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}
