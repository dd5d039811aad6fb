// Package fileutil holds the small file helpers shared by the pairs loader
// and the init command: bounded reads and atomic writes.
package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/syncopener/internal/errors"
)

// MaxFileSize bounds reads of configuration files (256KiB). Pairs files are
// a few hundred bytes; anything this large is not one.
const MaxFileSize = 256 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file of at most MaxFileSize bytes.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
