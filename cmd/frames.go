package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/framepack/animation"
	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/manifest"
)

// frameName derives an array name from a frame's file name.
func frameName(path string) string {
	base := filepath.Base(path)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

func loadMatrix(path string) (*bitplane.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".gif":
		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return bitplane.FromImage(img), nil
	default:
		m, err := bitplane.ReadText(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	}
}

// loadFrames reads the frames listed in the manifest if one was given,
// otherwise the frames named on the command line.
func loadFrames(manifestPath string, paths []string) ([]animation.Frame, error) {
	var entries []manifest.Entry
	if manifestPath != "" {
		var err error
		entries, err = manifest.LoadFile(manifestPath)
		if err != nil {
			return nil, err
		}
	}
	for _, path := range paths {
		entries = append(entries, manifest.Entry{Name: frameName(path), Path: path})
	}
	if err := manifest.Validate(entries); err != nil {
		return nil, err
	}

	frames := make([]animation.Frame, len(entries))
	for i, entry := range entries {
		m, err := loadMatrix(entry.Path)
		if err != nil {
			return nil, err
		}
		frames[i] = animation.Frame{Name: entry.Name, Pixels: m}
	}
	return frames, nil
}
