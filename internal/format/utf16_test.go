package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		units int
	}{
		{"empty", "", 0},
		{"ascii", "volume_path", 11},
		{"windows path", `C:\disk.vhdx`, 12},
		{"latin", "\u00dcn\u00efc\u00f6d\u00e9", 7},
		{"cjk", "\u89aa\u30c7\u30a3\u30b9\u30af", 5},
		{"supplementary", "disk\U0001F4BE", 6},
		{"leading bom is text", "\uFEFFx", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeUTF16LE(tt.in)
			require.NoError(t, err)
			assert.Len(t, enc, tt.units*UTF16UnitSize)
			assert.Equal(t, tt.units, UTF16Len(tt.in))

			dec, err := DecodeUTF16LE(enc)
			require.NoError(t, err)
			assert.Equal(t, tt.in, dec)
		})
	}
}

func TestEncodeUTF16LEBytes(t *testing.T) {
	enc, err := EncodeUTF16LE("C:")
	require.NoError(t, err)
	assert.Equal(t, []byte{'C', 0, ':', 0}, enc)
}

func TestEncodeUTF16LEInvalidUTF8(t *testing.T) {
	in := "a\xffb"
	enc, err := EncodeUTF16LE(in)
	require.NoError(t, err)
	assert.Len(t, enc, UTF16Len(in)*UTF16UnitSize)

	dec, err := DecodeUTF16LE(enc)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", dec)
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	_, err := DecodeUTF16LE([]byte{'a', 0, 'b'})
	require.ErrorIs(t, err, ErrInvalidUTF16)
}

func TestDecodeUTF16LELoneSurrogate(t *testing.T) {
	dec, err := DecodeUTF16LE([]byte{0x00, 0xD8, 'x', 0x00})
	require.NoError(t, err)
	assert.Equal(t, "\uFFFDx", dec)
}
