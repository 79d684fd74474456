package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(12, 65535); !ok || p != 786420 {
		t.Fatalf("MulOverflowSafe(12,65535)=%d,%v", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero operand should yield 0,true")
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := MulOverflowSafe(-1, 2); ok {
		t.Fatalf("negative operand should be rejected")
	}
}

func TestCheckListBounds(t *testing.T) {
	end, err := CheckListBounds(44, 20, 2, 12)
	if err != nil || end != 44 {
		t.Fatalf("CheckListBounds exact fit: end=%d err=%v", end, err)
	}
	if _, err := CheckListBounds(43, 20, 2, 12); err == nil {
		t.Fatalf("expected bounds error for one byte short")
	}
	if _, err := CheckListBounds(100, -1, 1, 1); err == nil {
		t.Fatalf("expected negative offset error")
	}
	if _, err := CheckListBounds(100, 0, math.MaxInt, 12); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if got, _ := Slice(data, 1, 2); cap(got) != 2 {
		t.Fatalf("Slice should cap the sub-slice, cap=%d", cap(got))
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
