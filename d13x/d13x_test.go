package d13x_test

import (
	"reflect"
	"testing"

	"github.com/clktmr/artinchip/d13x"
	d13xtesting "github.com/clktmr/artinchip/testing"
)

func TestInstance(t *testing.T) {
	for _, tc := range []struct {
		name string
		base uintptr
	}{
		{"XSPI", 0x1030_0000},
		{"QSPI2", 0x1042_0000},
		{"UART5", 0x1871_5000},
		{"UART7", 0x1871_7000},
		{"I2C2", 0x1922_2000},
		{"SPI_ENC", 0x1810_0000},
		{"AXICFG", 0x184f_e000},
		{"CLIC", 0x2080_0000},
	} {
		base, ok := d13x.Instance(tc.name)
		if !ok || base != tc.base {
			t.Errorf("%s: got %#x, %v, want %#x", tc.name, base, ok, tc.base)
		}
	}
	if _, ok := d13x.Instance("UART8"); ok {
		t.Error("UART8 exists")
	}
}

func TestInstances(t *testing.T) {
	names := d13x.Instances()
	if len(names) != 31 {
		t.Fatalf("got %d instances, want 31", len(names))
	}
	if names[0] != "DMA" || names[len(names)-1] != "CLIC" {
		t.Errorf("order: first %s, last %s", names[0], names[len(names)-1])
	}
	var prev uintptr
	for _, n := range names {
		base, _ := d13x.Instance(n)
		if base <= prev {
			t.Errorf("%s at %#x not above %#x", n, base, prev)
		}
		prev = base
	}
}

func TestHandles(t *testing.T) {
	for _, h := range []d13x.Handle{
		d13x.DMA{}, d13x.CE{}, d13x.CMU{}, d13x.AXICfg{}, d13x.GPIO{},
		d13x.WRI{}, d13x.GTC{}, d13x.CLINT{}, d13x.CLIC{},
		d13x.QSPI[d13x.I0]{}, d13x.QSPI[d13x.I3]{},
		d13x.SDMC[d13x.I0]{}, d13x.SDMC[d13x.I1]{},
		d13x.UART[d13x.I0]{}, d13x.UART[d13x.I5]{}, d13x.UART[d13x.I7]{},
		d13x.I2C[d13x.I0]{}, d13x.I2C[d13x.I2]{},
	} {
		base, ok := d13x.Instance(h.String())
		if !ok || base != h.Base() {
			t.Errorf("%v at %#x, memory map says %#x, %v", h, h.Base(), base, ok)
		}
	}
	if s := (d13x.QSPI[d13x.I2]{}).String(); s != "QSPI2" {
		t.Errorf("got %s, want QSPI2", s)
	}
	if b := (d13x.UART[d13x.I5]{}).Base(); b != 0x1871_5000 {
		t.Errorf("UART5 at %#x", b)
	}
}

func TestTake(t *testing.T) {
	p := d13x.Take()
	if a := p.XSPI.Registers().Ctrl.Addr(); a != d13x.XSPIBase {
		t.Errorf("XSPI mapped at %#x", a)
	}
	if a := p.RTC.Registers().Ctrl.Addr(); a != d13x.RTCBase {
		t.Errorf("RTC mapped at %#x", a)
	}
	if a := p.SysCfg.Registers().Version.Addr(); a != d13x.SysCfgBase+0xffc {
		t.Errorf("SYSCFG_VERSION mapped at %#x", a)
	}

	// every instance of the memory map has exactly one handle
	v := reflect.ValueOf(*p)
	if v.NumField() != len(d13x.Instances()) {
		t.Errorf("%d handles for %d instances", v.NumField(), len(d13x.Instances()))
	}
	seen := map[uintptr]string{}
	for i := range v.NumField() {
		h, ok := v.Field(i).Interface().(d13x.Handle)
		if !ok {
			continue
		}
		name, base := v.Type().Field(i).Name, h.Base()
		if other, ok := seen[base]; ok {
			t.Errorf("%s and %s share base %#x", name, other, base)
		}
		seen[base] = name
	}
	if len(seen) != 26 {
		t.Errorf("%d handles without register model, want 26", len(seen))
	}

	if reflect.TypeOf(p.QSPI0) == reflect.TypeOf(p.QSPI1) {
		t.Error("QSPI0 and QSPI1 handles have the same type")
	}
	if p.QSPI0.Base() != d13x.QSPI0Base || p.QSPI1.Base() != d13x.QSPI1Base {
		t.Errorf("QSPI0 at %#x, QSPI1 at %#x", p.QSPI0.Base(), p.QSPI1.Base())
	}
	if p.I2C1.Base() != d13x.I2C1Base || p.SDMC1.Base() != d13x.SDMC1Base {
		t.Errorf("I2C1 at %#x, SDMC1 at %#x", p.I2C1.Base(), p.SDMC1.Base())
	}
	d13xtesting.ExpectPanic(t, "d13x: peripherals already taken", func() { d13x.Take() })
}
