package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/bundle"
	"github.com/dargueta/framepack/emit"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Expand every frame in a bundle into a text file.\nUsage: %s bundle-file output-dir\n",
			os.Args[0])
		os.Exit(1)
	}

	bundlePath := os.Args[1]
	outputDir := os.Args[2]

	bundleFile, err := os.Open(bundlePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file for reading: `%v`: %s\n", bundlePath, err)
		os.Exit(1)
	}
	defer bundleFile.Close()

	b, err := bundle.Load(bundleFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading bundle: %s\n", err)
		os.Exit(2)
	}

	frames, err := b.Expand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding bundle: %s\n", err)
		os.Exit(2)
	}

	if err = os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: `%v`: %s\n", outputDir, err)
		os.Exit(1)
	}

	for i, frame := range frames {
		outputPath := filepath.Join(outputDir, emit.Identifier(b.Frames[i].Name)+".txt")
		if err = writeFrame(outputPath, frame); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write frame: `%v`: %s\n", outputPath, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Expanded %d %dx%d frames into %s.\n", len(frames), b.Width, b.Height, outputDir)
}

func writeFrame(path string, frame *bitplane.Matrix) error {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = bitplane.WriteText(outFile, frame); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}
