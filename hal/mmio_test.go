//go:build !noos

package hal_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/clktmr/artinchip/hal"
)

type block struct {
	ctrl   hal.R32[reg]
	_      [0x4]byte
	status hal.RO32[reg]
	data   hal.U32
}

func TestRegisterSize(t *testing.T) {
	var b block
	if unsafe.Sizeof(b.ctrl) != 4 || unsafe.Sizeof(b.status) != 4 || unsafe.Sizeof(b.data) != 4 {
		t.Fatal("registers must be 32 bits wide")
	}
	if off := unsafe.Offsetof(b.status); off != 0x8 {
		t.Errorf("status at %#x, want 0x8", off)
	}
}

func TestMap(t *testing.T) {
	mem := new([4]uint32)
	defer runtime.KeepAlive(mem)
	addr := uintptr(unsafe.Pointer(mem))
	b := hal.Map[block](addr)

	if b.ctrl.Addr() != addr {
		t.Errorf("ctrl at %#x, want %#x", b.ctrl.Addr(), addr)
	}
	if b.data.Addr() != addr+0xc {
		t.Errorf("data at %#x, want %#x", b.data.Addr(), addr+0xc)
	}

	b.data.Store(0xdead_beef)
	if mem[3] != 0xdead_beef {
		t.Errorf("store didn't reach memory: %#x", mem[3])
	}
	mem[2] = 0x42
	if v := b.status.Load(); v != 0x42 {
		t.Errorf("read-only register: got %#x, want 0x42", v)
	}
}

func TestBits(t *testing.T) {
	var r hal.R32[reg]
	r.SetBits(0x0f)
	r.ClearBits(0x03)
	if v := r.Load(); v != 0x0c {
		t.Fatalf("SetBits/ClearBits: got %#x, want 0xc", v)
	}
	r.StoreBits(0xf0, 0x5a)
	if v := r.Load(); v != 0x5c {
		t.Errorf("StoreBits: got %#x, want 0x5c", v)
	}
	if v := r.LoadBits(0x50); v != 0x50 {
		t.Errorf("LoadBits: got %#x, want 0x50", v)
	}
}

func TestModify(t *testing.T) {
	var r hal.R32[reg]
	r.Store(0x40)
	hal.Modify(&r, func(v reg) reg { return hal.SetField(v, 0x3<<4, 3) })
	hal.Modify(&r, func(v reg) reg { return v | 1 })
	if v := r.Load(); v != 0x71 {
		t.Errorf("got %#x, want 0x71", v)
	}
}

func TestModifyThenDecode(t *testing.T) {
	var r hal.R32[reg]
	hal.Modify(&r, func(v reg) reg { return hal.SetField(v, 0xf<<4, 0xa) })

	desc := hal.Register{Name: "CTL", Fields: []hal.BitField{{Name: "MODE", Hi: 7, Lo: 4}, {Name: "EN", Hi: 0, Lo: 0}}}
	got := desc.Decode(uint32(r.Load()))
	want := []hal.FieldValue{{Name: "MODE", Value: 0xa}, {Name: "EN", Value: 0}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}
