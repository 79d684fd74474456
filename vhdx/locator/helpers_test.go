package locator

import (
	"encoding/binary"
	"unicode/utf16"
)

var locatorTypeBytes = []byte{
	0xB7, 0xEF, 0x4A, 0xB0, 0x9E, 0xD1, 0x81, 0x4A,
	0xB7, 0x89, 0x25, 0xB8, 0xE9, 0x44, 0x59, 0x13,
}

// utf16le encodes s without going through the package codec.
func utf16le(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*2:], u)
	}
	return out
}

// rawDesc is a descriptor plus the text it points at, for hand-built records.
type rawDesc struct {
	keyOff, valOff uint32
	keyLen, valLen uint16
}

// buildHeader writes a locator header and descriptor table at b[base].
func buildHeader(b []byte, base int, descs []rawDesc) {
	copy(b[base:], locatorTypeBytes)
	binary.LittleEndian.PutUint16(b[base+16:], 0)
	binary.LittleEndian.PutUint16(b[base+18:], uint16(len(descs)))
	for i, d := range descs {
		slot := b[base+20+i*12:]
		binary.LittleEndian.PutUint32(slot[0:], d.keyOff)
		binary.LittleEndian.PutUint32(slot[4:], d.valOff)
		binary.LittleEndian.PutUint16(slot[8:], d.keyLen)
		binary.LittleEndian.PutUint16(slot[10:], d.valLen)
	}
}

// buildKeysFirst lays out a locator at b[base] with all keys packed before all
// values, as some writers do, and returns the record length. Offsets are
// relative to b[base].
func buildKeysFirst(b []byte, base int, pairs [][2]string) int {
	cursor := 20 + len(pairs)*12
	descs := make([]rawDesc, len(pairs))
	for i, p := range pairs {
		k := utf16le(p[0])
		copy(b[base+cursor:], k)
		descs[i].keyOff, descs[i].keyLen = uint32(cursor), uint16(len(k))
		cursor += len(k)
	}
	for i, p := range pairs {
		v := utf16le(p[1])
		copy(b[base+cursor:], v)
		descs[i].valOff, descs[i].valLen = uint32(cursor), uint16(len(v))
		cursor += len(v)
	}
	buildHeader(b, base, descs)
	return cursor
}

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
