package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// utf16LE has no BOM handling: locator text carries neither a byte-order mark
// nor a terminator, and a leading U+FEFF is ordinary text.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE decodes UTF-16LE bytes into a UTF-8 string. Unpaired
// surrogates decode to U+FFFD.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%UTF16UnitSize != 0 {
		return "", ErrInvalidUTF16
	}
	if len(b) == 0 {
		return "", nil
	}
	out, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeUTF16LE encodes s as UTF-16LE. Invalid UTF-8 is replaced with U+FFFD
// first so the result always matches UTF16Len.
func EncodeUTF16LE(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	return utf16LE.NewEncoder().Bytes([]byte(s))
}

// UTF16Len returns the number of UTF-16 code units EncodeUTF16LE produces for s.
func UTF16Len(s string) int {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
