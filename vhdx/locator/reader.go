package locator

import (
	"fmt"

	"github.com/joshuapare/vhdxkit/internal/buf"
	"github.com/joshuapare/vhdxkit/internal/format"
)

// Parse decodes the locator that starts at b[off].
func Parse(b []byte, off int) (*Locator, error) {
	l := New()
	if err := l.Decode(b, off); err != nil {
		return nil, err
	}
	return l, nil
}

// UnmarshalBinary decodes a locator that starts at data[0].
func (l *Locator) UnmarshalBinary(data []byte) error {
	return l.Decode(data, 0)
}

// Decode replaces the entries of l with the locator that starts at b[off].
// Key/value offsets in the descriptors are taken relative to b[off]. On error
// l is left unchanged.
func (l *Locator) Decode(b []byte, off int) error {
	rec, descs, err := readDescriptors(b, off)
	if err != nil {
		return err
	}

	entries := make([]Entry, 0, len(descs))
	index := make(map[string]int, len(descs))
	for i, d := range descs {
		key, err := readText(rec, d.KeyOffset, d.KeyLength)
		if err != nil {
			return fmt.Errorf("entry %d key: %w", i, err)
		}
		value, err := readText(rec, d.ValueOffset, d.ValueLength)
		if err != nil {
			return fmt.Errorf("entry %d value: %w", i, err)
		}
		if j, dup := index[key]; dup {
			entries[j].Value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{Key: key, Value: value})
	}

	l.entries = entries
	l.index = index
	return nil
}

// Descriptors returns the raw descriptor slots of the locator at b[off]
// without decoding any text.
func Descriptors(b []byte, off int) ([]Descriptor, error) {
	_, descs, err := readDescriptors(b, off)
	return descs, err
}

// readDescriptors validates the header and returns the record (b[off:]) with
// its descriptor slots.
func readDescriptors(b []byte, off int) ([]byte, []Descriptor, error) {
	if off < 0 || off > len(b) {
		return nil, nil, fmt.Errorf("offset %d in %d-byte buffer: %w", off, len(b), ErrOutOfBounds)
	}
	rec := b[off:]

	typ, err := format.ReadGUID(rec, format.LocatorTypeOffset)
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", ErrOutOfBounds)
	}
	if string(typ[:]) != format.LocatorTypeVHDX {
		return nil, nil, fmt.Errorf("type %s: %w", typ, ErrFormatMismatch)
	}
	if len(rec) < format.LocatorHeaderSize {
		return nil, nil, fmt.Errorf("header: %w", ErrOutOfBounds)
	}

	count := int(buf.U16LE(rec[format.LocatorCountOffset:]))
	if _, err := buf.CheckListBounds(len(rec), format.LocatorHeaderSize, count, format.DescriptorSize); err != nil {
		return nil, nil, fmt.Errorf("%d descriptors: %v: %w", count, err, ErrOutOfBounds)
	}

	descs := make([]Descriptor, count)
	for i := range descs {
		slot := rec[format.LocatorHeaderSize+i*format.DescriptorSize:]
		descs[i] = Descriptor{
			KeyOffset:   buf.U32LE(slot[format.DescKeyOffsetField:]),
			ValueOffset: buf.U32LE(slot[format.DescValueOffsetField:]),
			KeyLength:   buf.U16LE(slot[format.DescKeyLengthField:]),
			ValueLength: buf.U16LE(slot[format.DescValueLengthField:]),
		}
	}
	return rec, descs, nil
}

func readText(rec []byte, off uint32, n uint16) (string, error) {
	if uint64(off)+uint64(n) > uint64(len(rec)) {
		return "", fmt.Errorf("[%d+%d] past %d: %w", off, n, len(rec), ErrOutOfBounds)
	}
	if n%format.UTF16UnitSize != 0 {
		return "", fmt.Errorf("%d bytes: %w", n, ErrInvalidLength)
	}
	raw, _ := buf.Slice(rec, int(off), int(n))
	return format.DecodeUTF16LE(raw)
}
