// Package emit writes encoded animations out as source code that can be
// compiled into firmware.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/animation"
)

// maxLineWidth is the column before which array values are wrapped.
const maxLineWidth = 80

// Language selects the syntax of emitted arrays.
type Language string

const (
	LanguageC    = Language("c")
	LanguageRust = Language("rust")
)

// Languages lists every supported output language.
var Languages = []Language{LanguageC, LanguageRust}

// ParseLanguage converts a user-supplied language name into a [Language].
func ParseLanguage(name string) (Language, error) {
	normalized := Language(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Languages {
		if normalized == known {
			return known, nil
		}
	}
	msg := fmt.Sprintf("unknown output language %q, expected one of %v", name, Languages)
	return "", framepack.ErrInvalidArgument.WithMessage(msg)
}

// Identifier gives the variable name an asset is emitted under. See
// [framepack.Identifier].
func Identifier(name string) string {
	return framepack.Identifier(name)
}

// writeValues writes the comma-separated array body, starting a new line
// whenever the next value would reach [maxLineWidth]. The closing delimiter is
// written on its own line.
func writeValues(w io.Writer, data []byte, closing string) error {
	if len(data) == 0 {
		_, err := fmt.Fprintf(w, "%s\n", closing)
		return err
	}

	column := 0
	for _, value := range data[:len(data)-1] {
		item := fmt.Sprintf("%d, ", value)
		column += len(item)
		if column >= maxLineWidth {
			column = len(item)
			item = "\n" + item
		}
		if _, err := io.WriteString(w, item); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d\n%s\n", data[len(data)-1], closing)
	return err
}

// WriteCArray writes an asset as a C array stored in program memory. ISO C has
// no zero-length arrays, so an empty asset is an error. This happens when every
// input frame is blank.
func WriteCArray(w io.Writer, asset framepack.Asset) error {
	if asset.Len() == 0 {
		msg := fmt.Sprintf("array %s is empty and can't be written as C", Identifier(asset.Name))
		return framepack.ErrInvalidArgument.WithMessage(msg)
	}

	_, err := fmt.Fprintf(
		w,
		"static const uint8_t PROGMEM %s[%d] = {\n",
		Identifier(asset.Name),
		asset.Len(),
	)
	if err != nil {
		return err
	}
	return writeValues(w, asset.Data, "};")
}

// WriteRustArray writes an asset as a Rust constant.
func WriteRustArray(w io.Writer, asset framepack.Asset) error {
	_, err := fmt.Fprintf(w, "const %s: [u8; %d] = [\n", Identifier(asset.Name), asset.Len())
	if err != nil {
		return err
	}
	return writeValues(w, asset.Data, "];")
}

// SourceWriter writes assets as arrays in a single language.
type SourceWriter struct {
	output   io.Writer
	language Language
	written  int
}

// NewSourceWriter creates a [SourceWriter]. It fails if `language` isn't one
// of [Languages].
func NewSourceWriter(output io.Writer, language Language) (*SourceWriter, error) {
	if _, err := ParseLanguage(string(language)); err != nil {
		return nil, err
	}
	return &SourceWriter{output: output, language: language}, nil
}

// WriteAsset implements [framepack.AssetWriter].
func (sw *SourceWriter) WriteAsset(asset framepack.Asset) error {
	var err error
	if sw.language == LanguageRust {
		err = WriteRustArray(sw.output, asset)
	} else {
		err = WriteCArray(sw.output, asset)
	}
	if err != nil {
		return err
	}
	sw.written += asset.Len()
	return nil
}

// BytesWritten gives the total size of all arrays written so far.
func (sw *SourceWriter) BytesWritten() int {
	return sw.written
}

// WriteAssets writes the base frame followed by every frame of the animation.
func WriteAssets(dst framepack.AssetWriter, result *animation.Result) error {
	if err := dst.WriteAsset(result.Base); err != nil {
		return err
	}
	for _, frame := range result.Frames {
		if err := dst.WriteAsset(frame); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult writes every asset of the animation as source code, then a
// comment giving the total size of all the arrays.
func WriteResult(w io.Writer, language Language, result *animation.Result) error {
	sw, err := NewSourceWriter(w, language)
	if err != nil {
		return err
	}
	if err = WriteAssets(sw, result); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "// total array size is %d bytes\n", sw.BytesWritten())
	return err
}
