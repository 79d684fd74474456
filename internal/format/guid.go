package format

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUIDSize is the on-disk size of a GUID.
const GUIDSize = 16

// GUID holds a Windows GUID in its on-disk byte order: Data1, Data2 and Data3
// little-endian, Data4 as-is.
type GUID [GUIDSize]byte

// GUIDFromUUID converts an RFC 4122 (big-endian) UUID into on-disk order.
func GUIDFromUUID(u uuid.UUID) GUID {
	var g GUID
	g[0], g[1], g[2], g[3] = u[3], u[2], u[1], u[0]
	g[4], g[5] = u[5], u[4]
	g[6], g[7] = u[7], u[6]
	copy(g[8:], u[8:])
	return g
}

// UUID converts g back into RFC 4122 byte order.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

// String returns the upper-case, unbraced form Windows tooling prints.
func (g GUID) String() string {
	return strings.ToUpper(g.UUID().String())
}

// ParseGUID parses the text forms accepted by uuid.Parse, braced included.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("guid %q: %w", s, err)
	}
	return GUIDFromUUID(u), nil
}

// ReadGUID copies the GUID stored at b[off:off+16].
func ReadGUID(b []byte, off int) (GUID, error) {
	var g GUID
	if off < 0 || len(b)-off < GUIDSize {
		return g, fmt.Errorf("guid at %d: %w", off, ErrTruncated)
	}
	copy(g[:], b[off:off+GUIDSize])
	return g, nil
}
