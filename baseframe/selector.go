// Package baseframe chooses the base frame that every frame of an animation
// is diffed against before compression.
//
// Three policies are available, trading speed for the size of the result:
//
//   - [Average] picks each pixel by majority vote. Cheapest, and works on pixels
//     rather than bytes.
//   - [MajorityVote] picks each byte by majority vote.
//   - [MinimalSize] tries every frame as the base and keeps the one giving the
//     smallest total compressed size. Quadratic in the number of frames, but
//     optimizes what actually ends up in flash.
package baseframe

import (
	"fmt"
	"strings"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/delta"
	"github.com/dargueta/framepack/utilities/compression"
	"github.com/hashicorp/go-multierror"
)

// Corpus is the set of packed frames a single base is selected for. Every
// member must have the same length.
type Corpus [][]byte

// Validate ensures the corpus isn't empty and that every frame has the same
// length as the first one. All mismatches are reported together.
func (corpus Corpus) Validate() error {
	if len(corpus) == 0 {
		return framepack.ErrEmptyCorpus
	}

	var result *multierror.Error
	for i, frame := range corpus[1:] {
		if len(frame) != len(corpus[0]) {
			result = multierror.Append(
				result,
				fmt.Errorf("frame %d is %d bytes, expected %d", i+1, len(frame), len(corpus[0])),
			)
		}
	}

	if result != nil {
		return framepack.ErrShapeMismatch.Wrap(result)
	}
	return nil
}

// FrameLen returns the common length of the frames in the corpus. It's only
// meaningful if [Corpus.Validate] succeeds.
func (corpus Corpus) FrameLen() int {
	if len(corpus) == 0 {
		return 0
	}
	return len(corpus[0])
}

// Selector is the interface for base frame selection policies.
type Selector interface {
	// SelectBase returns a base frame with the same length as the corpus
	// frames. The corpus must not be modified.
	SelectBase(corpus Corpus) ([]byte, error)
}

// TotalSize returns the number of bytes needed to store every frame in the
// corpus as a compressed delta against `base`. The base itself isn't counted.
func TotalSize(base []byte, corpus Corpus) (int, error) {
	total := 0
	for i, frame := range corpus {
		frameDelta, err := delta.Diff(base, frame)
		if err != nil {
			return 0, fmt.Errorf("frame %d: %w", i, err)
		}
		total += compression.CompressedSize(frameDelta)
	}
	return total, nil
}

////////////////////////////////////////////////////////////////////////////////

// Policy names a selection policy so it can be picked by configuration.
type Policy string

const (
	PolicyAverage  Policy = "average"
	PolicyMajority Policy = "majority"
	PolicyMinimal  Policy = "minimal"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyAverage, PolicyMajority, PolicyMinimal}

// ParsePolicy converts a case-insensitive policy name into a [Policy].
func ParsePolicy(name string) (Policy, error) {
	policy := Policy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Policies {
		if policy == known {
			return policy, nil
		}
	}

	msg := fmt.Sprintf("unknown base frame policy %q, expected one of %v", name, Policies)
	return "", framepack.ErrInvalidArgument.WithMessage(msg)
}

// Selector returns the [Selector] implementing the policy. The frame
// dimensions are only used by [PolicyAverage], and `workers` only by
// [PolicyMinimal].
func (policy Policy) Selector(width, height, workers int) (Selector, error) {
	switch policy {
	case PolicyAverage:
		return Average{Width: width, Height: height}, nil
	case PolicyMajority:
		return MajorityVote{}, nil
	case PolicyMinimal:
		return MinimalSize{Workers: workers}, nil
	default:
		msg := fmt.Sprintf("unknown base frame policy %q", string(policy))
		return nil, framepack.ErrInvalidArgument.WithMessage(msg)
	}
}
