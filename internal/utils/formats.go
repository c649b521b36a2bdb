package utils

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// FileFormat represents the encodings an input list may come in
type FileFormat int

const (
	FormatText FileFormat = iota // Plain text, one entry per line
	FormatGzip                   // gzip compressed text
	FormatZstd                   // zstd compressed text
)

// FormatInfo contains metadata about an input format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	Magic       []byte
}

var supportedFormats = []FormatInfo{
	{
		Format:      FormatGzip,
		Description: "gzip compressed text",
		Extensions:  []string{".gz"},
		Magic:       []byte{0x1f, 0x8b},
	},
	{
		Format:      FormatZstd,
		Description: "zstd compressed text",
		Extensions:  []string{".zst", ".zstd"},
		Magic:       []byte{0x28, 0xb5, 0x2f, 0xfd},
	},
}

func (f FileFormat) String() string {
	for _, info := range supportedFormats {
		if info.Format == f {
			return info.Description
		}
	}
	return "plain text"
}

// DetectFileFormat sniffs the magic bytes at the start of r.
// When the content is too short to tell, the file extension decides.
func DetectFileFormat(r io.ReaderAt, size int64, path string) FileFormat {
	header := make([]byte, 4)
	if size < int64(len(header)) {
		header = header[:size]
	}
	n, _ := r.ReadAt(header, 0)
	header = header[:n]

	for _, info := range supportedFormats {
		if len(header) >= len(info.Magic) && bytes.Equal(header[:len(info.Magic)], info.Magic) {
			return info.Format
		}
	}

	// Magic did not match; a compressed extension on a non-empty file is still honoured
	// so the decompressor reports the corruption.
	if size > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		for _, info := range supportedFormats {
			for _, e := range info.Extensions {
				if ext == e {
					return info.Format
				}
			}
		}
	}
	return FormatText
}
