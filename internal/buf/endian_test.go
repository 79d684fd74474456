package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestPutHelpers(t *testing.T) {
	out := make([]byte, 8)
	PutU16LE(out, 1, 0xBEEF)
	PutU32LE(out, 4, 0x01020304)

	want := []byte{0x00, 0xEF, 0xBE, 0x00, 0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x (%x)", i, out[i], want[i], out)
		}
	}
	if U16LE(out[1:]) != 0xBEEF || U32LE(out[4:]) != 0x01020304 {
		t.Fatalf("put/get mismatch: %x", out)
	}
}
