// Package displays describes monochrome panels whose controllers address video
// memory in 8-row bands, the layout produced by bitplane.Pack.
package displays

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/bitplane"
	"github.com/jszwec/csvutil"
)

type Display struct {
	Name       string `csv:"name"`
	Slug       string `csv:"slug"`
	Controller string `csv:"controller"`
	Width      int    `csv:"width"`
	Height     int    `csv:"height"`
	Notes      string `csv:"notes"`
}

// PackedSize gives the size of a full frame for this display, in bytes. This is
// the most a single packed frame can take up.
func (d Display) PackedSize() int {
	return bitplane.PackedLen(d.Width, d.Height)
}

// Check returns an error if frames of the given dimensions won't fit on the
// display exactly.
func (d Display) Check(width, height int) error {
	if width == d.Width && height == d.Height {
		return nil
	}
	msg := fmt.Sprintf(
		"frames are %dx%d but display %q is %dx%d",
		width,
		height,
		d.Slug,
		d.Width,
		d.Height,
	)
	return framepack.ErrShapeMismatch.WithMessage(msg)
}

////////////////////////////////////////////////////////////////////////////////

//go:embed displays.csv
var displaysRawCSV string
var predefinedDisplays map[string]Display

func GetPredefinedDisplay(slug string) (Display, error) {
	display, ok := predefinedDisplays[slug]
	if ok {
		return display, nil
	}

	msg := fmt.Sprintf("no predefined display exists with slug %q", slug)
	return Display{}, framepack.ErrInvalidArgument.WithMessage(msg)
}

// Slugs returns the slugs of every predefined display, sorted.
func Slugs() []string {
	slugs := make([]string, 0, len(predefinedDisplays))
	for slug := range predefinedDisplays {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

func init() {
	reader := strings.NewReader(displaysRawCSV)
	csvReader := csv.NewReader(reader)
	csvReader.Comma = '|'

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		panic(fmt.Errorf("failed to create CSV decoder: %w", err))
	}

	predefinedDisplays = make(map[string]Display)

	for {
		var row Display
		if err = decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			panic(
				fmt.Errorf("failed to decode row %d: %w", len(predefinedDisplays)+1, err))
		}

		_, exists := predefinedDisplays[row.Slug]
		if exists {
			message := fmt.Errorf(
				"duplicate definition for display %q found on row %d",
				row.Slug,
				len(predefinedDisplays)+1)
			panic(message)
		}
		predefinedDisplays[row.Slug] = row
	}
}
