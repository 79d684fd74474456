// Package mmfile provides platform-specific helpers for mapping windows of
// disk image files.
package mmfile

import "fmt"

// clamp returns how many bytes of [off, off+n) lie inside a file of size bytes.
func clamp(size, off int64, n int) (int, error) {
	if off < 0 || n < 0 {
		return 0, fmt.Errorf("mmfile: invalid range off=%d n=%d", off, n)
	}
	if off > size {
		return 0, fmt.Errorf("mmfile: offset %d past end of %d-byte file", off, size)
	}
	if rest := size - off; int64(n) > rest {
		return int(rest), nil
	}
	return n, nil
}
