package hal_test

import (
	"testing"

	"github.com/clktmr/artinchip/hal"
)

type reg uint32

func TestField(t *testing.T) {
	tests := []struct {
		r, mask reg
		want    uint32
	}{
		{0x0000_0030, 0x3 << 4, 0x3},
		{0xffff_ffff, 0x7 << 1, 0x7},
		{0x0abc_0000, 0xfff << 16, 0xabc},
		{0x8000_0000, 1 << 31, 1},
		{0x7fff_ffff, 1 << 31, 0},
		{0x1234_5678, 0xffff_ffff, 0x1234_5678},
	}
	for _, tc := range tests {
		if got := hal.Field(tc.r, tc.mask); got != tc.want {
			t.Errorf("Field(%#x, %#x): got %#x, want %#x", tc.r, tc.mask, got, tc.want)
		}
	}
}

func TestSetField(t *testing.T) {
	const mask reg = 0x1f << 12
	for _, r := range []reg{0, 0xffff_ffff, 0xa5a5_a5a5} {
		for v := range uint32(0x20) {
			got := hal.SetField(r, mask, v)
			if hal.Field(got, mask) != v {
				t.Fatalf("SetField(%#x, %#x, %d): field reads back %d", r, mask, v, hal.Field(got, mask))
			}
			if got&^mask != r&^mask {
				t.Fatalf("SetField(%#x, %#x, %d): modified bits outside field: %#x", r, mask, v, got)
			}
		}
	}

	// Excess bits must not leak into neighbouring fields.
	if got := hal.SetField[reg](0, 0x3<<4, 0xff); got != 0x30 {
		t.Errorf("SetField with oversized value: got %#x, want 0x30", got)
	}
}

func TestSetFlag(t *testing.T) {
	if got := hal.SetFlag[reg](0x10, 0x1, true); got != 0x11 {
		t.Errorf("set: got %#x", got)
	}
	if got := hal.SetFlag[reg](0x11, 0x1, false); got != 0x10 {
		t.Errorf("clear: got %#x", got)
	}
}

func TestCheckRange(t *testing.T) {
	const msg = "value out of range (expected 0..=3)"
	for v := range uint8(4) {
		hal.CheckRange(v, 4, msg)
	}

	defer func() {
		if r := recover(); r != msg {
			t.Errorf("expected panic %q, got %v", msg, r)
		}
	}()
	hal.CheckRange(uint8(4), 4, msg)
}

func TestEnumString(t *testing.T) {
	names := []string{"Low", "", "High"}
	tests := []struct {
		v    uint8
		want string
	}{
		{0, "Low"},
		{1, "Level(1)"},
		{2, "High"},
		{7, "Level(7)"},
	}
	for _, tc := range tests {
		if got := hal.EnumString("Level", names, tc.v); got != tc.want {
			t.Errorf("EnumString(%d): got %q, want %q", tc.v, got, tc.want)
		}
	}
}
