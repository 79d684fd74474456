//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapRange maps up to n bytes of the file at path starting at off, read-only.
// The window is clamped to the end of the file. The mapping starts on a page
// boundary; the returned slice begins exactly at off.
func MapRange(path string, off int64, n int) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	length, err := clamp(info.Size(), off, n)
	if err != nil {
		return nil, nil, err
	}
	if length == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	page := int64(unix.Getpagesize())
	start := off &^ (page - 1)
	lead := int(off - start)
	data, err := unix.Mmap(int(f.Fd()), start, lead+length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data[lead : lead+length : lead+length], cleanup, nil
}
