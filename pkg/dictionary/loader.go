package dictionary

import (
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/phonecode/internal/logger"
	"github.com/bastiangx/phonecode/internal/utils"
)

// Load reads one word per line from r, in order.
// Lines that are not valid UTF-8 are skipped.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	err := utils.ReadLines(r, func(word string) error {
		d.Add(word)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return d, nil
}

// LoadFile reads a word list from path. Compressed lists (gzip, zstd) are
// detected automatically. When the file cannot be opened or read the error
// matches errors.ErrIO.
func LoadFile(path string) (*Dictionary, error) {
	start := time.Now()

	rc, err := utils.OpenInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer rc.Close()

	d, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	stats := d.Stats()
	dictLog := logger.New("dict")
	dictLog.Debug("Dictionary loaded",
		"path", path,
		"words", stats.Words,
		"keys", stats.Keys,
		"unreachable", stats.Unreachable,
		"took", time.Since(start))
	if stats.Unreachable > 0 {
		dictLog.Debugf("%d words have no letters and can never match", stats.Unreachable)
	}
	return d, nil
}
