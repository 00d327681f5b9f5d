package fileio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	assert.False(t, Exists(f))

	require.NoError(t, WriteText(f, "hi"))
	assert.True(t, Exists(f))
}

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	require.NoError(t, WriteText(f, "hi"))

	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(f))
	assert.False(t, IsDirectory(filepath.Join(dir, "missing")))
}

func TestReadText_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	require.NoError(t, WriteText(f, "hello\nworld\n"))

	got, err := ReadText(f)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", got)
}

func TestReadText_NotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReadText_IsDirectory(t *testing.T) {
	_, err := ReadText(t.TempDir())
	assert.True(t, errors.Is(err, ErrIsDirectory))
}

func TestReadText_RefusesBinary(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "bin.dat")
	data := append([]byte("PNG"), 0x00, 0x01, 0x02, 0x03)
	require.NoError(t, WriteText(f, string(data)))

	_, err := ReadText(f)
	assert.True(t, errors.Is(err, ErrBinary))
}

func TestReadText_AcceptsUnicodeText(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "unicode.txt")
	require.NoError(t, WriteText(f, "café 日本語\n"))

	got, err := ReadText(f)
	require.NoError(t, err)
	assert.Equal(t, "café 日本語\n", got)
}

func TestWriteText_Overwrites(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	require.NoError(t, WriteText(f, "first"))
	require.NoError(t, WriteText(f, "second"))

	got, err := ReadText(f)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestLooksBinary_NonPrintableRatio(t *testing.T) {
	mostlyControl := make([]byte, 100)
	for i := range mostlyControl {
		mostlyControl[i] = 0x01
	}
	assert.True(t, looksBinary(mostlyControl))

	assert.False(t, looksBinary([]byte("plain ascii text\twith\ttabs\n")))
}
