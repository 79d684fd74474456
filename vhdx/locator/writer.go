package locator

import (
	"fmt"
	"math"

	"github.com/joshuapare/vhdxkit/internal/buf"
	"github.com/joshuapare/vhdxkit/internal/format"
)

// encodedEntry holds the UTF-16LE text of one entry.
type encodedEntry struct {
	key   []byte
	value []byte
}

// MarshalBinary encodes l into a new Size()-byte slice.
func (l *Locator) MarshalBinary() ([]byte, error) {
	out := make([]byte, l.Size())
	if err := l.Encode(out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode writes l into b starting at b[off] and covering exactly Size() bytes.
// Key/value offsets are written relative to b[off]. Nothing is written unless
// the whole locator fits.
func (l *Locator) Encode(b []byte, off int) error {
	texts, size, err := l.encodeTexts()
	if err != nil {
		return err
	}
	if off < 0 || off > len(b) {
		return fmt.Errorf("offset %d in %d-byte buffer: %w", off, len(b), ErrOutOfBounds)
	}
	rec, ok := buf.Slice(b, off, size)
	if !ok {
		return fmt.Errorf("need %d bytes at %d, have %d: %w", size, off, len(b)-off, ErrBufferTooSmall)
	}

	slot := format.LocatorHeaderSize
	cursor := format.LocatorHeaderSize + len(texts)*format.DescriptorSize
	for _, t := range texts {
		copy(rec[cursor:], t.key)
		buf.PutU32LE(rec, slot+format.DescKeyOffsetField, uint32(cursor))
		buf.PutU16LE(rec, slot+format.DescKeyLengthField, uint16(len(t.key)))
		cursor += len(t.key)

		copy(rec[cursor:], t.value)
		buf.PutU32LE(rec, slot+format.DescValueOffsetField, uint32(cursor))
		buf.PutU16LE(rec, slot+format.DescValueLengthField, uint16(len(t.value)))
		cursor += len(t.value)

		slot += format.DescriptorSize
	}

	copy(rec[format.LocatorTypeOffset:], format.LocatorTypeVHDX)
	buf.PutU16LE(rec, format.LocatorReservedOffset, 0)
	buf.PutU16LE(rec, format.LocatorCountOffset, uint16(len(texts)))
	return nil
}

// encodeTexts encodes every entry and checks the on-disk field limits.
// It returns the encoded text and the total record size.
func (l *Locator) encodeTexts() ([]encodedEntry, int, error) {
	if len(l.entries) > format.MaxEntries {
		return nil, 0, fmt.Errorf("%d entries: %w", len(l.entries), ErrTooLarge)
	}
	texts := make([]encodedEntry, len(l.entries))
	size := format.LocatorHeaderSize + len(l.entries)*format.DescriptorSize
	for i, e := range l.entries {
		k, err := format.EncodeUTF16LE(e.Key)
		if err != nil {
			return nil, 0, fmt.Errorf("key %q: %w", e.Key, err)
		}
		v, err := format.EncodeUTF16LE(e.Value)
		if err != nil {
			return nil, 0, fmt.Errorf("value of %q: %w", e.Key, err)
		}
		if len(k) > format.MaxTextBytes {
			return nil, 0, fmt.Errorf("key %d is %d bytes: %w", i, len(k), ErrTooLarge)
		}
		if len(v) > format.MaxTextBytes {
			return nil, 0, fmt.Errorf("value of %q is %d bytes: %w", e.Key, len(v), ErrTooLarge)
		}
		// Offsets are u32; the value offset is the largest one written.
		if uint64(size+len(k)) > math.MaxUint32 {
			return nil, 0, fmt.Errorf("text offset past 4 GiB: %w", ErrTooLarge)
		}
		texts[i] = encodedEntry{key: k, value: v}
		size += len(k) + len(v)
	}
	return texts, size, nil
}
