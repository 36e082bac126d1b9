package animation

import (
	"fmt"

	"github.com/dargueta/framepack"
	"github.com/hashicorp/go-multierror"
)

// CheckFrameNames fails if two frames would be emitted under the same
// identifier, or a frame would take the identifier of the base frame.
func CheckFrameNames(names []string) error {
	baseIdentifier := framepack.Identifier(BaseName)
	seen := make(map[string]int, len(names))

	var result *multierror.Error
	for i, name := range names {
		identifier := framepack.Identifier(name)
		if identifier == baseIdentifier {
			result = multierror.Append(
				result,
				fmt.Errorf("frame %d: name %q is reserved for the base frame", i, name),
			)
			continue
		}

		if first, exists := seen[identifier]; exists {
			result = multierror.Append(
				result,
				fmt.Errorf(
					"frame %d: name %q becomes %s, same as frame %d (%q)",
					i,
					name,
					identifier,
					first,
					names[first],
				),
			)
		} else {
			seen[identifier] = i
		}
	}

	if result != nil {
		return framepack.ErrInvalidArgument.Wrap(result)
	}
	return nil
}
