package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
)

const sampleWords = "an\nblau\nBoot\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := OpenInput(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, rc.Close()) }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestOpenInput(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		path := writeFile(t, "words.txt", []byte(sampleWords))
		assert.Equal(t, sampleWords, readAll(t, path))
	})

	t.Run("empty", func(t *testing.T) {
		path := writeFile(t, "empty.txt", nil)
		assert.Equal(t, "", readAll(t, path))
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(sampleWords))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		path := writeFile(t, "words.txt.gz", buf.Bytes())
		assert.Equal(t, sampleWords, readAll(t, path))
	})

	t.Run("zstd", func(t *testing.T) {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write([]byte(sampleWords))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		path := writeFile(t, "words.txt.zst", buf.Bytes())
		assert.Equal(t, sampleWords, readAll(t, path))
	})

	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")
		_, err := OpenInput(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrIO))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Equal(t, 1, strings.Count(err.Error(), path), err.Error())
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := writeFile(t, "words.txt.gz", []byte("not gzip at all"))
		_, err := OpenInput(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, internalErrors.ErrIO))
	})
}
