package vhdx

import (
	"fmt"

	"github.com/joshuapare/vhdxkit/internal/mmfile"
	"github.com/joshuapare/vhdxkit/internal/writer"
	"github.com/joshuapare/vhdxkit/vhdx/locator"
)

// ReadLocator decodes the parent locator stored at byte offset off of the
// file at path. At most opts.MaxSize bytes from off are mapped.
func ReadLocator(path string, off int64, opts *Options) (*locator.Locator, error) {
	var loc *locator.Locator
	err := withWindow(path, off, opts, func(data []byte) error {
		var err error
		loc, err = locator.Parse(data, 0)
		return err
	})
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("decoded parent locator", "path", path, "offset", off,
		"entries", loc.Len(), "size", loc.Size())
	return loc, nil
}

// ReadDescriptors returns the raw descriptor slots of the parent locator at
// off without decoding its text.
func ReadDescriptors(path string, off int64, opts *Options) ([]locator.Descriptor, error) {
	var descs []locator.Descriptor
	err := withWindow(path, off, opts, func(data []byte) error {
		var err error
		descs, err = locator.Descriptors(data, 0)
		return err
	})
	return descs, err
}

// withWindow maps the locator window at off and hands it to fn. The slice is
// only valid during fn.
func withWindow(path string, off int64, opts *Options, fn func([]byte) error) error {
	log := opts.logger().With("path", path, "offset", off)

	data, cleanup, err := mmfile.MapRange(path, off, opts.maxSize())
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			log.Warn("unmap failed", "error", cerr)
		}
	}()

	if err := fn(data); err != nil {
		log.Debug("decode failed", "error", err)
		return fmt.Errorf("parent locator at %d: %w", off, err)
	}
	return nil
}

// WriteLocator rewrites the capacity-byte metadata item at off with loc. The
// record is zero-padded to capacity so no bytes of a previous, longer locator
// survive. It fails with locator.ErrBufferTooSmall when loc does not fit,
// before touching the file.
func WriteLocator(path string, off int64, capacity int, loc *locator.Locator, opts *Options) error {
	log := opts.logger().With("path", path, "offset", off)

	if capacity < 0 {
		return fmt.Errorf("negative capacity %d", capacity)
	}
	item := make([]byte, capacity)
	if err := loc.Encode(item, 0); err != nil {
		return fmt.Errorf("parent locator at %d: %w", off, err)
	}

	w := &writer.PatchWriter{Path: path}
	if err := w.WriteAt(item, off); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debug("wrote parent locator", "entries", loc.Len(), "size", loc.Size(), "capacity", capacity)
	return nil
}

// CreateLocatorFile writes loc as a standalone file, replacing path atomically.
func CreateLocatorFile(path string, loc *locator.Locator, opts *Options) error {
	data, err := loc.MarshalBinary()
	if err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	opts.logger().Debug("created locator file", "path", path, "entries", loc.Len(), "size", len(data))
	return nil
}
