package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrInvalidUTF16 indicates text whose byte length is not a whole number of code units.
	ErrInvalidUTF16 = errors.New("format: odd UTF-16 byte length")
)
