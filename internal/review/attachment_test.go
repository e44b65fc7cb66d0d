package review

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0666))
}

func TestCollectImages_MissingDirectory(t *testing.T) {
	attachments, err := CollectImages(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestCollectImages_EmptyDirectory(t *testing.T) {
	attachments, err := CollectImages(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestCollectImages_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", []byte("jpg-bytes"))
	writeFile(t, dir, "b.png", []byte("png-bytes"))
	writeFile(t, dir, "notes.txt", []byte("not an image"))
	writeFile(t, dir, "archive.zip", []byte("not an image either"))

	attachments, err := CollectImages(dir)

	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, "image/jpg", attachments[0].MediaType)
	assert.Equal(t, "image/png", attachments[1].MediaType)
}

func TestCollectImages_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.JPG", []byte("x"))
	writeFile(t, dir, "shot.WebP", []byte("y"))

	attachments, err := CollectImages(dir)

	require.NoError(t, err)
	require.Len(t, attachments, 2)
	// The media type label keeps the extension as found on disk
	assert.Equal(t, "image/JPG", attachments[0].MediaType)
	assert.Equal(t, "image/WebP", attachments[1].MediaType)
}

func TestCollectImages_EncodesContent(t *testing.T) {
	dir := t.TempDir()
	content := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}
	writeFile(t, dir, "pic.jpeg", content)

	attachments, err := CollectImages(dir)

	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), attachments[0].Data)
	assert.Equal(t, "image/jpeg", attachments[0].MediaType)
	assert.Equal(t, filepath.Join(dir, "pic.jpeg"), attachments[0].Path)
}

func TestCollectImages_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.png", []byte("c"))
	writeFile(t, dir, "a.png", []byte("a"))
	writeFile(t, dir, "b.png", []byte("b"))

	attachments, err := CollectImages(dir)

	require.NoError(t, err)
	require.Len(t, attachments, 3)
	assert.Equal(t, filepath.Join(dir, "a.png"), attachments[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.png"), attachments[1].Path)
	assert.Equal(t, filepath.Join(dir, "c.png"), attachments[2].Path)
}

func TestCollectImages_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbnails.png"), 0777))
	writeFile(t, dir, "real.png", []byte("x"))

	attachments, err := CollectImages(dir)

	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, filepath.Join(dir, "real.png"), attachments[0].Path)
}

func TestCollectImages_UnreadableFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	// A dangling symlink passes the directory listing but fails to read
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "broken.jpg")))

	_, err := CollectImages(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read image")
}
