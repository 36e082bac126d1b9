package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dargueta/framepack"
	"github.com/dargueta/framepack/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := "name,path\nIDLE, frames/idle.txt\nblink,/abs/blink.png\n"
	entries, err := manifest.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(
		t,
		[]manifest.Entry{
			{Name: "IDLE", Path: "frames/idle.txt"},
			{Name: "blink", Path: "/abs/blink.png"},
		},
		entries,
	)
}

func TestLoad__Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{"empty file", "", "empty"},
		{"header only", "name,path\n", "no frames"},
		{"empty path", "name,path\nA,\n", "row 1: path is empty"},
		{"duplicate name", "name,path\nA,a.txt\nB,b.txt\nA,c.txt\n", `row 3: name "A" clashes with "A" on row 1`},
		{"same identifier", "name,path\nwalk-1,a.txt\nwalk_1,b.txt\n", `row 2: name "walk_1" clashes with "walk-1" on row 1`},
		{"case only", "name,path\nidle,a.txt\nIDLE,b.txt\n", `row 2: name "IDLE" clashes with "idle" on row 1`},
		{"base frame name", "name,path\nbase_frame,a.txt\n", `row 1: name "base_frame" is reserved`},
	}

	for _, tc := range testCases {
		t.Run(
			tc.name,
			func(t *testing.T) {
				_, err := manifest.Load(strings.NewReader(tc.input))
				assert.ErrorIs(t, err, framepack.ErrInvalidArgument)
				assert.ErrorContains(t, err, tc.message)
			},
		)
	}
}

func TestResolvePaths(t *testing.T) {
	entries := []manifest.Entry{
		{Name: "A", Path: "a.txt"},
		{Name: "B", Path: filepath.Join(string(filepath.Separator), "tmp", "b.txt")},
	}
	resolved := manifest.ResolvePaths(entries, "anim")
	assert.Equal(t, filepath.Join("anim", "a.txt"), resolved[0].Path)
	assert.Equal(t, entries[1].Path, resolved[1].Path)
	assert.Equal(t, "a.txt", entries[0].Path, "input was modified")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,path\nA,a.txt\n"), 0o644))

	entries, err := manifest.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "a.txt"), entries[0].Path)

	_, err = manifest.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
