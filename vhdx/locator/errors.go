package locator

import "errors"

var (
	// ErrFormatMismatch indicates the LocatorType GUID is not the VHDX parent locator type.
	ErrFormatMismatch = errors.New("locator: unrecognized locator type")

	// ErrOutOfBounds indicates the header, a descriptor, or a key/value range
	// lies outside the supplied buffer.
	ErrOutOfBounds = errors.New("locator: out of bounds")

	// ErrBufferTooSmall indicates the destination cannot hold Size() bytes.
	ErrBufferTooSmall = errors.New("locator: buffer too small")

	// ErrInvalidLength indicates a key or value byte length that is not a
	// multiple of the UTF-16 code unit size.
	ErrInvalidLength = errors.New("locator: invalid text length")

	// ErrTooLarge indicates the table cannot be represented in the on-disk
	// field widths.
	ErrTooLarge = errors.New("locator: table too large")

	// ErrNotFound indicates the requested key is not present.
	ErrNotFound = errors.New("locator: key not found")
)
