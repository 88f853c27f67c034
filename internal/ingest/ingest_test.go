package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/doco-cli/internal/ingest"
)

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	meta, err := ingest.Describe(path)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", meta.Name)
	assert.Equal(t, "application/pdf", meta.MediaType)
	assert.Equal(t, int64(8), meta.Size)

	_, err = ingest.Describe(filepath.Join(dir, "nope.pdf"))
	assert.Error(t, err)

	_, err = ingest.Describe(dir)
	assert.Error(t, err, "directories are not uploads")
}

func TestMediaTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.pdf":      "application/pdf",
		"A.PDF":      "application/pdf",
		"notes.md":   "text/markdown",
		"img.jpeg":   "image/jpeg",
		"sheet.xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
	for name, want := range cases {
		assert.Equal(t, want, ingest.MediaTypeFor(name, nil), name)
	}

	// unknown extension falls back to sniffing, then to octet-stream
	assert.Equal(t, "text/plain; charset=utf-8", ingest.MediaTypeFor("LICENSE", []byte("plain text here")))
	assert.Equal(t, "application/octet-stream", ingest.MediaTypeFor("mystery.bin", nil))
}

func TestReadAsync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	res := <-ingest.ReadAsync(path)
	require.NoError(t, res.Err)
	assert.Equal(t, []byte("hello"), res.Content)

	res = <-ingest.ReadAsync(filepath.Join(dir, "missing.txt"))
	assert.Error(t, res.Err)
	assert.Nil(t, res.Content)
}
