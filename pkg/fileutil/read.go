package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

// MaxFileSize is the maximum size ReadFileWithLimit accepts (1MB).
const MaxFileSize = 1024 * 1024

// StdinPath selects standard input in ReadInput.
const StdinPath = "-"

// ErrFileTooLarge indicates that input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast on regular files that are already too large.
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return readLimited(f)
}

// ReadInput reads path, or stdin when path is StdinPath, up to MaxFileSize.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		return readLimited(stdin)
	}
	return ReadFileWithLimit(path)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
