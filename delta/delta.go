// Package delta computes the byte-wise difference between a frame and the base
// frame it's stored against.
//
// Each byte of a delta is (base - frame) mod 256, so a frame byte that matches
// the base becomes zero. Undoing it uses the same subtraction:
// base - (base - frame) = frame (mod 256).
package delta

import (
	"fmt"

	"github.com/dargueta/framepack"
)

func checkLengths(base, other []byte) error {
	if len(base) == len(other) {
		return nil
	}
	msg := fmt.Sprintf("base is %d bytes but frame is %d bytes", len(base), len(other))
	return framepack.ErrShapeMismatch.WithMessage(msg)
}

// Diff returns the delta that turns `base` into `other`. Both slices must have
// the same length.
func Diff(base, other []byte) ([]byte, error) {
	if err := checkLengths(base, other); err != nil {
		return nil, err
	}

	result := make([]byte, len(base))
	for i := range base {
		result[i] = base[i] - other[i]
	}
	return result, nil
}

// Undiff reverses [Diff], returning the original frame.
func Undiff(base, frameDelta []byte) ([]byte, error) {
	result := make([]byte, len(frameDelta))
	copy(result, frameDelta)
	if err := UndiffInPlace(base, result); err != nil {
		return nil, err
	}
	return result, nil
}

// UndiffInPlace reverses [Diff] in `buffer`, which holds the delta on entry and
// the frame on return. This is how the firmware does it, since it has no room
// for a second frame buffer.
func UndiffInPlace(base, buffer []byte) error {
	if err := checkLengths(base, buffer); err != nil {
		return err
	}
	for i := range base {
		buffer[i] = base[i] - buffer[i]
	}
	return nil
}
