package vhdx

import (
	"io"
	"log/slog"
)

// DefaultMaxSize bounds how much of the file ReadLocator maps. VHDX metadata
// items are at most 1 MiB.
const DefaultMaxSize = 1 << 20

// Options controls file-level locator operations. A nil *Options uses defaults.
type Options struct {
	// Logger receives debug records for each operation. Nil discards them.
	Logger *slog.Logger

	// MaxSize is the largest locator ReadLocator will decode.
	// Zero means DefaultMaxSize.
	MaxSize int
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) maxSize() int {
	if o == nil || o.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return o.MaxSize
}
