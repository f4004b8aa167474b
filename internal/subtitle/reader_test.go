package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadParsesBlocks(t *testing.T) {
	path := writeTemp(t, "sample.srt", `1
00:02:16,612 --> 00:02:19,376
First line
second part

2
00:02:20,000 --> 00:02:22,500
Second block
`)

	file, err := NewReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, "SRT", file.Format)
	require.Len(t, file.Lines, 2)

	first := file.Lines[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2*time.Minute+16*time.Second+612*time.Millisecond, first.StartTime)
	assert.Equal(t, 2*time.Minute+19*time.Second+376*time.Millisecond, first.EndTime)
	assert.Equal(t, "First line\nsecond part", first.Text)

	second := file.Lines[1]
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, "Second block", second.Text)
}

func TestReadRejectsNonSRT(t *testing.T) {
	_, err := NewReader("subtitles.vtt").Read()
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.srt")).Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadInvalidTimeFormat(t *testing.T) {
	path := writeTemp(t, "bad.srt", "1\n00:02:16 --> broken\ntext\n")

	_, err := NewReader(path).Read()
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReadSkipsStrayLines(t *testing.T) {
	// stray non-index junk between blocks is ignored
	path := writeTemp(t, "stray.srt", `junk header

1
00:00:01,000 --> 00:00:02,000
Hello
`)

	file, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, file.Lines, 1)
	assert.Equal(t, "Hello", file.Lines[0].Text)
}

func TestDetectFileLanguage(t *testing.T) {
	lines := []Line{
		{Text: "Hello, world!"},
		{Text: "こんにちは、世界!"},
		{Text: "こんにちは、世界!"},
		{Text: "Привет, мир!"},
	}

	assert.Equal(t, language.Japanese, detectFileLanguage(lines))
	assert.Equal(t, language.Und, detectFileLanguage(nil))
}
