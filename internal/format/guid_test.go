package format

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorTypeVHDXMatchesText(t *testing.T) {
	g, err := ParseGUID(LocatorTypeVHDXString)
	require.NoError(t, err)
	assert.Equal(t, LocatorTypeVHDX, string(g[:]), "on-disk constant must be the mixed-endian form")
	assert.Equal(t, LocatorTypeVHDXString, g.String())
}

func TestGUIDByteOrder(t *testing.T) {
	u := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	g := GUIDFromUUID(u)

	want := GUID{0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	assert.Equal(t, want, g)
	assert.Equal(t, u, g.UUID())
}

func TestParseGUIDBraced(t *testing.T) {
	g, err := ParseGUID("{b04aefb7-d19e-4a81-b789-25b8e9445913}")
	require.NoError(t, err)
	assert.Equal(t, LocatorTypeVHDX, string(g[:]))

	_, err = ParseGUID("not-a-guid")
	require.Error(t, err)
}

func TestReadGUID(t *testing.T) {
	b := append([]byte{0xAA, 0xBB}, []byte(LocatorTypeVHDX)...)

	g, err := ReadGUID(b, 2)
	require.NoError(t, err)
	assert.Equal(t, LocatorTypeVHDXString, g.String())

	_, err = ReadGUID(b, 3)
	require.ErrorIs(t, err, ErrTruncated)
	_, err = ReadGUID(b, -1)
	require.ErrorIs(t, err, ErrTruncated)
}
