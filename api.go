package framepack

import (
	"strings"
	"unicode"
)

// Asset is one named byte array produced for the firmware: either the shared
// base frame or one frame's compressed delta. Name is a human-readable
// identifier; emitters may normalize it before using it in source code.
type Asset struct {
	Name string
	Data []byte
}

// Len returns the number of bytes the asset occupies in read-only memory.
func (a Asset) Len() int {
	return len(a.Data)
}

// AssetWriter is the interface for sinks that publish encoded assets, such as
// source-code emitters.
type AssetWriter interface {
	// WriteAsset writes a single asset. Implementations must not retain Data.
	WriteAsset(asset Asset) error
}

// Identifier converts an asset name into something usable as a variable name
// in both C and Rust. Letters are upper-cased, everything other than letters
// and digits becomes an underscore, and a leading digit gets an underscore
// prepended. Distinct names can map to the same identifier.
func Identifier(name string) string {
	var builder strings.Builder
	for i, r := range name {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			builder.WriteRune(unicode.ToUpper(r))
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			if i == 0 {
				builder.WriteByte('_')
			}
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	if builder.Len() == 0 {
		return "_"
	}
	return builder.String()
}
