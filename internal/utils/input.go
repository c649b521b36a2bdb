package utils

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/mmap"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
)

// StdinPath selects standard input instead of a file
const StdinPath = "-"

// mappedFile reads a memory-mapped file sequentially
type mappedFile struct {
	*io.SectionReader
	ra *mmap.ReaderAt
}

func (m *mappedFile) Close() error {
	return m.ra.Close()
}

// stackedReader closes a decompressor before its underlying source
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenInput opens a word or number list for reading.
// Files are memory-mapped; gzip and zstd content is decompressed on the fly.
// Failures are returned as *errors.IOError.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}

	ra, err := mmap.Open(path)
	if err != nil {
		return nil, internalErrors.NewIOError("open", path, err)
	}
	size := int64(ra.Len())
	if size == 0 {
		ra.Close()
		return io.NopCloser(strings.NewReader("")), nil
	}
	src := &mappedFile{SectionReader: io.NewSectionReader(ra, 0, size), ra: ra}

	format := DetectFileFormat(ra, size, path)
	log.Debugf("Mapped %s (%d bytes, %s)", path, size, format)

	switch format {
	case FormatGzip:
		zr, err := gzip.NewReader(src)
		if err != nil {
			src.Close()
			return nil, internalErrors.NewIOError("gunzip", path, err)
		}
		return &stackedReader{Reader: zr, closers: []func() error{zr.Close, src.Close}}, nil
	case FormatZstd:
		zr, err := zstd.NewReader(src)
		if err != nil {
			src.Close()
			return nil, internalErrors.NewIOError("zstd", path, err)
		}
		release := func() error {
			zr.Close()
			return nil
		}
		return &stackedReader{Reader: zr, closers: []func() error{release, src.Close}}, nil
	}
	return src, nil
}
