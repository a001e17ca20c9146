package spienc_test

import (
	"testing"

	"github.com/clktmr/artinchip/d13x/spienc"
	"github.com/clktmr/artinchip/hal"
	d13xtesting "github.com/clktmr/artinchip/testing"
)

func TestRegisterBlock(t *testing.T) {
	l := d13xtesting.Layout[spienc.Registers](t, 0x1000)
	d13xtesting.Offsets(t, l, map[string]uintptr{
		"SPIE_CTL":   0x0,
		"SPIE_ICR":   0x4,
		"SPIE_ISR":   0x8,
		"SPIE_KCNT":  0xc,
		"SPIE_OCNT":  0x10,
		"SPIE_ADDR":  0x14,
		"SPIE_TWEAK": 0x18,
		"SPIE_CPOS":  0x1c,
		"SPIE_CLEN":  0x20,
		"SPIE_VER":   0xffc,
	})
	for _, name := range []string{"SPIE_KCNT", "SPIE_OCNT", "SPIE_VER"} {
		if r, _ := l.Lookup(name); !r.ReadOnly {
			t.Errorf("%s not read-only", name)
		}
	}
}

func TestControl(t *testing.T) {
	c := spienc.Control(0).EnableXIPEnc().SetEncBus(spienc.EncSPI1).SetKeyStart(true)
	if c != 0x0001_2001 {
		t.Fatalf("got %#x, want 0x12001", uint32(c))
	}
	if !c.XIPEncEnabled() || c.EncBus() != spienc.EncSPI1 || !c.KeyStart() {
		t.Error("getters")
	}
	if c = c.DisableXIPEnc().SetEncBus(spienc.EncBypass).SetKeyStart(false); c != 0 {
		t.Errorf("cleared: got %#x", uint32(c))
	}

	for _, tc := range []struct {
		bus  spienc.EncBus
		name string
	}{
		{spienc.EncBypass, "Bypass"},
		{spienc.EncSPI0, "SPI0"},
		{spienc.EncSPI1, "SPI1"},
		{3, "EncBus(3)"},
	} {
		got := spienc.Control(uint32(tc.bus) << 12).EncBus()
		if got != tc.bus || got.String() != tc.name {
			t.Errorf("code %d: got %v", uint8(tc.bus), got)
		}
	}
}

func TestInterrupts(t *testing.T) {
	ie := spienc.IntControl(0).Enable(spienc.IntKeyOverflow | spienc.IntKeyGen)
	if ie != 0x21 {
		t.Fatalf("enable: got %#x, want 0x21", uint32(ie))
	}
	if !ie.Enabled(spienc.IntKeyOverflow) || ie.Enabled(spienc.IntKeyOverflow|spienc.IntKeyUnderflow) {
		t.Error("Enabled")
	}
	if ie = ie.Disable(spienc.IntKeyGen); ie != 0x20 {
		t.Errorf("disable: got %#x", uint32(ie))
	}

	st := spienc.IntStatus(0xffff_ff06)
	if st.Pending() != spienc.IntEncDecFinished|spienc.IntReadEmptyData {
		t.Errorf("pending: %v", st.Pending())
	}
	if !st.IsPending(spienc.IntReadEmptyData) || st.IsPending(spienc.IntKeyGen) {
		t.Error("IsPending")
	}
	if s := st.Pending().String(); s != "ENC_DEC_FINISHED|READ_EMPTY_DATA" {
		t.Errorf("String: %q", s)
	}
	if s := (spienc.IntKeyGen | spienc.IntKeyOverflow).String(); s != "KEY_GEN|KEY_OVF" {
		t.Errorf("String: %q", s)
	}
	if s := spienc.Interrupt(0).String(); s != "" {
		t.Errorf("empty set: %q", s)
	}
	if w := spienc.IntStatus(0).Clear(spienc.IntEncDecFinished); w != 0x2 {
		t.Errorf("clear: got %#x", uint32(w))
	}
}

func TestHandle(t *testing.T) {
	p := spienc.New(d13xtesting.Block[spienc.Registers](t))
	regs := p.Registers()
	hal.Modify(&regs.Ctrl, func(c spienc.Control) spienc.Control {
		return c.SetEncBus(spienc.EncSPI0).SetKeyStart(true)
	})
	regs.Addr.Store(0x1000)
	regs.CipherLen.Store(256)
	if c := regs.Ctrl.Load(); c.EncBus() != spienc.EncSPI0 || !c.KeyStart() {
		t.Errorf("ctrl %#x", uint32(c))
	}
	if regs.Addr.Load() != 0x1000 || regs.CipherLen.Load() != 256 || regs.Tweak.Load() != 0 {
		t.Error("data registers")
	}
}
