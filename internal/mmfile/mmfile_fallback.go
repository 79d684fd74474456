//go:build !unix

package mmfile

import (
	"io"
	"os"
)

// MapRange reads up to n bytes of the file at path starting at off when mmap
// is not available.
func MapRange(path string, off int64, n int) ([]byte, func() error, error) {
	noop := func() error { return nil }
	f, err := os.Open(path)
	if err != nil {
		return nil, noop, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, noop, err
	}
	length, err := clamp(info.Size(), off, n)
	if err != nil {
		return nil, noop, err
	}
	data := make([]byte, length)
	if _, err := f.ReadAt(data, off); err != nil && err != io.EOF {
		return nil, noop, err
	}
	return data, noop, nil
}
