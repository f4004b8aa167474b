package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindSubtitles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.srt"))
	touch(t, filepath.Join(dir, "b.SRT"))
	touch(t, filepath.Join(dir, "nested", "c.srt"))
	touch(t, filepath.Join(dir, "ignored.txt"))
	single := filepath.Join(dir, "nested", "c.srt")

	found, err := FindSubtitles([]string{dir}, ".srt")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	// direct file path, case-insensitive extension match
	found, err = FindSubtitles([]string{single}, "srt")
	require.NoError(t, err)
	assert.Equal(t, []string{single}, found)

	// non-matching direct file is skipped
	found, err = FindSubtitles([]string{filepath.Join(dir, "ignored.txt")}, ".srt")
	require.NoError(t, err)
	assert.Empty(t, found)

	// missing paths are skipped, not an error
	found, err = FindSubtitles([]string{filepath.Join(dir, "ghost")}, ".srt")
	require.NoError(t, err)
	assert.Empty(t, found)
}
