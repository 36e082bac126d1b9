/*
Package manifest reads the list of frames making up an animation.

A manifest is a CSV file with a header row and two columns:

	name,path
	IDLE,frames/idle.txt
	BLINK,frames/blink.png

Frames are encoded in the order they're listed. Names are used verbatim as the
array names in generated code, after sanitizing.
*/
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/animation"
	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"
)

type Entry struct {
	Name string `csv:"name"`
	Path string `csv:"path"`
}

// Load reads a manifest from `r`. Surrounding whitespace is stripped from each
// field.
func Load(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, framepack.ErrInvalidArgument.WithMessage("manifest is empty")
		}
		return nil, framepack.ErrInvalidArgument.Wrap(err)
	}

	for i := range entries {
		entries[i].Name = strings.TrimSpace(entries[i].Name)
		entries[i].Path = strings.TrimSpace(entries[i].Path)
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFile reads a manifest from disk, resolving relative frame paths against
// the manifest's directory.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ResolvePaths(entries, filepath.Dir(path)), nil
}

// Validate checks that there's at least one entry and every entry has a path.
// It also checks that no two entries would be emitted under the same array
// name, and that no entry takes the base frame's name.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return framepack.ErrInvalidArgument.WithMessage("manifest has no frames")
	}

	var result *multierror.Error
	baseIdentifier := framepack.Identifier(animation.BaseName)
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if entry.Path == "" {
			result = multierror.Append(result, fmt.Errorf("row %d: path is empty", i+1))
		}
		if entry.Name == "" {
			continue
		}

		identifier := framepack.Identifier(entry.Name)
		if identifier == baseIdentifier {
			result = multierror.Append(
				result,
				fmt.Errorf("row %d: name %q is reserved for the base frame", i+1, entry.Name),
			)
		} else if first, exists := seen[identifier]; exists {
			result = multierror.Append(
				result,
				fmt.Errorf(
					"row %d: name %q clashes with %q on row %d",
					i+1,
					entry.Name,
					entries[first].Name,
					first+1,
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

// ResolvePaths returns a copy of `entries` with every relative path joined to
// `dir`.
func ResolvePaths(entries []Entry, dir string) []Entry {
	resolved := make([]Entry, len(entries))
	for i, entry := range entries {
		resolved[i] = entry
		if !filepath.IsAbs(entry.Path) {
			resolved[i].Path = filepath.Join(dir, entry.Path)
		}
	}
	return resolved
}
