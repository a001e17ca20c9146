package rtc_test

import (
	"testing"
	"unsafe"

	"github.com/clktmr/artinchip/d13x/rtc"
	"github.com/clktmr/artinchip/hal"
	d13xtesting "github.com/clktmr/artinchip/testing"
)

func TestRegisterBlock(t *testing.T) {
	var regs rtc.Registers
	offsets := []struct {
		name      string
		got, want uintptr
	}{
		{"ctrl", unsafe.Offsetof(regs.Ctrl), 0x0},
		{"init", unsafe.Offsetof(regs.Init), 0x4},
		{"aon_irq_en", unsafe.Offsetof(regs.IRQEnable), 0x8},
		{"aon_irq_sts", unsafe.Offsetof(regs.IRQStatus), 0xc},
		{"time", unsafe.Offsetof(regs.Time), 0x20},
		{"alarm", unsafe.Offsetof(regs.Alarm), 0x30},
		{"cali0", unsafe.Offsetof(regs.Cali0), 0x40},
		{"cali1", unsafe.Offsetof(regs.Cali1), 0x44},
		{"analog0", unsafe.Offsetof(regs.Analog0), 0x50},
		{"analog1", unsafe.Offsetof(regs.Analog1), 0x54},
		{"analog2", unsafe.Offsetof(regs.Analog2), 0x58},
		{"analog3", unsafe.Offsetof(regs.Analog3), 0x5c},
		{"write_key", unsafe.Offsetof(regs.WriteKey), 0xfc},
		{"boot_info", unsafe.Offsetof(regs.BootInfo), 0x100},
		{"sys_backup", unsafe.Offsetof(regs.SysBackup), 0x104},
		{"tcnt_val", unsafe.Offsetof(regs.TimeCount), 0x800},
		{"detect_32k", unsafe.Offsetof(regs.Detect32k), 0x804},
		{"version", unsafe.Offsetof(regs.Version), 0x8fc},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("%s at %#x, want %#x", o.name, o.got, o.want)
		}
	}

	l := d13xtesting.Layout[rtc.Registers](t, 0x900)
	d13xtesting.Offsets(t, l, map[string]uintptr{
		"RTC_TIME3":     0x2c,
		"RTC_ALARM0":    0x30,
		"RTC_SYS_BAK14": 0x13c,
		"RTC_VERSION":   0x8fc,
	})
	if r, _ := l.Lookup("RTC_TCNT"); !r.ReadOnly {
		t.Error("RTC_TCNT should be read-only")
	}
}

func TestHandle(t *testing.T) {
	base := d13xtesting.Block[rtc.Registers](t)
	p := rtc.New(base)
	regs := p.Registers()
	if regs.Ctrl.Addr() != base || regs.Version.Addr() != base+0x8fc {
		t.Fatal("register block not mapped at base address")
	}

	hal.Modify(&regs.Ctrl, func(c rtc.Control) rtc.Control {
		return c.EnableAlarm().EnableTimeCount()
	})
	if v := regs.Ctrl.Load(); v != 0x05 {
		t.Errorf("ctrl: got %#x, want 0x05", v)
	}
}

func TestControl(t *testing.T) {
	var c rtc.Control

	c = c.EnableRTCIOInput()
	if c != 0x40 || !c.RTCIOInputEnabled() {
		t.Fatalf("enable io input: got %#x", uint32(c))
	}
	c = c.SetRTCIOOutputSelection(rtc.IOClockOutput)
	if c != 0x70 || c.RTCIOOutputSelection() != rtc.IOClockOutput {
		t.Fatalf("io output selection: got %#x", uint32(c))
	}
	c = c.EnableAlarm()
	if c != 0x74 || !c.AlarmEnabled() {
		t.Fatalf("enable alarm: got %#x", uint32(c))
	}
	c = c.EnableTimeCount()
	if c != 0x75 || !c.TimeCountEnabled() {
		t.Fatalf("enable time count: got %#x", uint32(c))
	}
	if !c.RTCIOInputEnabled() || c.RTCIOOutputSelection() != rtc.IOClockOutput || !c.AlarmEnabled() {
		t.Error("previously set fields changed")
	}

	c = c.DisableRTCIOInput().DisableAlarm().DisableTimeCount()
	if c != 0x30 {
		t.Errorf("disable: got %#x, want 0x30", uint32(c))
	}

	for sel, want := range map[rtc.IOOutputSel]rtc.Control{
		rtc.IODisabled:     0x00,
		rtc.IOActiveLow:    0x10,
		rtc.IOAlarmTrigger: 0x20,
		rtc.IOClockOutput:  0x30,
	} {
		c := rtc.Control(0).SetRTCIOOutputSelection(sel)
		if c != want || c.RTCIOOutputSelection() != sel {
			t.Errorf("%v: got %#x, want %#x", sel, uint32(c), uint32(want))
		}
	}

	if !rtc.Control(0x80).RTCIOLevel() || rtc.Control(0x7f).RTCIOLevel() {
		t.Error("RTCIOLevel")
	}
}

func TestDefaults(t *testing.T) {
	if c := rtc.Control(0); c.RTCIOLevel() || c.RTCIOInputEnabled() || c.AlarmEnabled() ||
		c.TimeCountEnabled() || c.RTCIOOutputSelection() != rtc.IODisabled {
		t.Error("Control(0)")
	}
	if a := rtc.Analog0(0); a.RC1MEnabled() || a.LDO18Enabled() || a.LDO18BypassEnabled() ||
		a.RC1MISel() != rtc.RC1MIBias || a.LDO18Voltage() != rtc.LDO18V1_9 {
		t.Error("Analog0(0)")
	}
	if a := rtc.Analog1(0); a.LDO11Enabled() || a.LDO11LowPowerEnabled() ||
		a.PDCurrent() != rtc.LDO11I0_5uA || a.LDO11Voltage() != rtc.LDO11V1_10 {
		t.Error("Analog1(0)")
	}
	if c := rtc.Calibration1(0); c.CaliDirection() != rtc.CaliDecrease || c.CaliValueHigh() != 0 {
		t.Error("Calibration1(0)")
	}
	if s := rtc.IRQStatus(0); s.AlarmIRQPending() || s.RTCIOPending() || s.IRQ32kErrPending() {
		t.Error("IRQStatus(0)")
	}
}

func TestIRQ(t *testing.T) {
	e := rtc.IRQEnable(0).EnableAlarmIRQ().Enable32kErrIRQ()
	if e != 0x5 || !e.AlarmIRQEnabled() || !e.IRQ32kErrEnabled() {
		t.Errorf("enable: got %#x", uint32(e))
	}
	if e = e.DisableAlarmIRQ(); e != 0x4 {
		t.Errorf("disable: got %#x", uint32(e))
	}

	s := rtc.IRQStatus(0x7)
	if !s.AlarmIRQPending() || !s.RTCIOPending() || !s.IRQ32kErrPending() {
		t.Error("pending bits not reported")
	}
	// Writing 1 clears, so clearing must set the bit in the written value.
	if v := rtc.IRQStatus(0).ClearAlarmIRQ().ClearRTCIO().Clear32kErrIRQ(); v != 0x7 {
		t.Errorf("clear: got %#x, want 0x7", uint32(v))
	}
}

func TestCalibration(t *testing.T) {
	c := rtc.Calibration1(0).SetCaliDirection(rtc.CaliIncrease)
	if c != 0x80 || c.CaliDirection() != rtc.CaliIncrease {
		t.Errorf("direction: got %#x", uint32(c))
	}
	for v := range uint8(4) {
		c := c.SetCaliValueHigh(v)
		if c.CaliValueHigh() != v || c.CaliDirection() != rtc.CaliIncrease {
			t.Errorf("value %d: got %#x", v, uint32(c))
		}
	}
	d13xtesting.ExpectPanic(t, "Calibration value out of range (expected 0..=3)", func() {
		rtc.Calibration1(0).SetCaliValueHigh(4)
	})

	if c := rtc.Calibration0(0xffff_ff00).SetCaliValueLow(0xa5); c.CaliValueLow() != 0xa5 || c != 0xffff_ffa5 {
		t.Errorf("low: got %#x", uint32(c))
	}
}

func TestAnalog0(t *testing.T) {
	want := []rtc.Analog0{0x0, 0x2, 0x4, 0x6, 0x8, 0xa, 0xc, 0xe}
	for i, vol := range []rtc.LDO18Voltage{
		rtc.LDO18V1_9, rtc.LDO18V1_8, rtc.LDO18V1_7, rtc.LDO18V1_6,
		rtc.LDO18V1_5, rtc.LDO18V1_4, rtc.LDO18V1_3, rtc.LDO18V1_2,
	} {
		a := rtc.Analog0(0).SetLDO18Voltage(vol)
		if a != want[i] || a.LDO18Voltage() != vol {
			t.Errorf("%v: got %#x, want %#x", vol, uint32(a), uint32(want[i]))
		}
	}

	a := rtc.Analog0(0).SetRC1MISel(rtc.RC1MBandgap).EnableRC1M().EnableLDO18Bypass().EnableLDO18()
	if a != 0xd1 {
		t.Errorf("got %#x, want 0xd1", uint32(a))
	}
	if a.RC1MISel() != rtc.RC1MBandgap || !a.RC1MEnabled() || !a.LDO18BypassEnabled() || !a.LDO18Enabled() {
		t.Error("getters")
	}
	if a = a.DisableRC1M().DisableLDO18Bypass().DisableLDO18(); a != 0x80 {
		t.Errorf("disable: got %#x", uint32(a))
	}
}

func TestAnalog1(t *testing.T) {
	want := []rtc.Analog1{0x0, 0x2, 0x4, 0x6, 0x8, 0xa, 0xc}
	for i, vol := range []rtc.LDO11Voltage{
		rtc.LDO11V1_10, rtc.LDO11V1_05, rtc.LDO11V1_00, rtc.LDO11V0_95,
		rtc.LDO11V0_90, rtc.LDO11V0_85, rtc.LDO11V0_80,
	} {
		a := rtc.Analog1(0).SetLDO11Voltage(vol)
		if a != want[i] || a.LDO11Voltage() != vol {
			t.Errorf("%v: got %#x, want %#x", vol, uint32(a), uint32(want[i]))
		}
	}

	// Code 7 is reserved and must decode without panicking.
	if v := rtc.Analog1(0xe).LDO11Voltage(); v.String() != "LDO11Voltage(7)" {
		t.Errorf("reserved voltage: got %v", v)
	}

	for i, cur := range []rtc.LDO11Current{rtc.LDO11I0_5uA, rtc.LDO11I1_0uA, rtc.LDO11I2_0uA, rtc.LDO11I3_0uA} {
		a := rtc.Analog1(0).SetPDCurrent(cur)
		if a != rtc.Analog1(i<<5) || a.PDCurrent() != cur {
			t.Errorf("%v: got %#x", cur, uint32(a))
		}
	}

	a := rtc.Analog1(0).EnableLDO11().EnableLDO11LowPower()
	if a != 0x11 || !a.LDO11Enabled() || !a.LDO11LowPowerEnabled() {
		t.Errorf("got %#x, want 0x11", uint32(a))
	}
}

func TestAnalog2(t *testing.T) {
	a := rtc.Analog2(0).SetATBSel(rtc.ATBIbgVdet).EnableATB().EnableXtal32kStrengthUp().SetXtal32kDrive(2)
	if a != 0x7a {
		t.Errorf("got %#x, want 0x7a", uint32(a))
	}
	if a.ATBSel() != rtc.ATBIbgVdet || !a.ATBEnabled() || !a.Xtal32kStrengthUpEnabled() || a.Xtal32kDrive() != 2 {
		t.Error("getters")
	}
	d13xtesting.ExpectPanic(t, "XTAL32K_DRV out of range (expected 0..=3)", func() {
		rtc.Analog2(0).SetXtal32kDrive(4)
	})

	b := rtc.Analog3(0).EnableLDO12Xtal32kSwitch().EnableXtal32k()
	if b != 0x3 || !b.LDO12Xtal32kSwitchEnabled() || !b.Xtal32kEnabled() {
		t.Errorf("analog3: got %#x", uint32(b))
	}
	if b = b.DisableXtal32k(); b != 0x2 {
		t.Errorf("analog3 disable: got %#x", uint32(b))
	}
}

func TestBootInfo(t *testing.T) {
	b := rtc.BootInfo(0).SetRebootReason(0xa).SetBootDevice(0x5)
	if b != 0xa5 || b.RebootReason() != 0xa || b.BootDevice() != 0x5 {
		t.Errorf("got %#x, want 0xa5", uint32(b))
	}
	d13xtesting.ExpectPanic(t, "REBOOT_REASON out of range (expected 0..=15)", func() {
		rtc.BootInfo(0).SetRebootReason(16)
	})
	d13xtesting.ExpectPanic(t, "BOOT_DEV out of range (expected 0..=15)", func() {
		rtc.BootInfo(0).SetBootDevice(16)
	})
}

func TestByteRegisters(t *testing.T) {
	if v := rtc.Time(0).SetTime(0x12); v.Time() != 0x12 {
		t.Error("time")
	}
	if v := rtc.Alarm(0).SetAlarm(0x34); v.Alarm() != 0x34 {
		t.Error("alarm")
	}
	if v := rtc.WriteKey(0).SetWriteKey(rtc.WriteKeyUnlock); v != 0xac || v.WriteKey() != 0xac {
		t.Error("write key")
	}
	if v := rtc.SysBackup(0xffff_ff00).SetSysBackup(0x5a); v != 0xffff_ff5a {
		t.Errorf("sys backup: got %#x", uint32(v))
	}
}

func TestDetect32k(t *testing.T) {
	d := rtc.Detect32k(0).SetLevel(0x3ff).Enable()
	if d != 0x03ff_0001 || d.Level() != 0x3ff || !d.Enabled() {
		t.Errorf("got %#x", uint32(d))
	}
	if d = d.Disable(); d.Enabled() || d.Level() != 0x3ff {
		t.Error("disable")
	}
	d13xtesting.ExpectPanic(t, "Detection level out of range (expected 0..=0x3FF)", func() {
		rtc.Detect32k(0).SetLevel(0x400)
	})
}

func TestInit(t *testing.T) {
	i := rtc.Init(0).SetTimeCountInit(true)
	if i != 1 || !i.TimeCountInit() {
		t.Error("set")
	}
	if i.SetTimeCountInit(false) != 0 {
		t.Error("clear")
	}
}

// Setting one field must never disturb the bits of any other field.
func TestIsolation(t *testing.T) {
	for _, x := range []uint32{0, 0xffff_ffff, 0xa5a5_a5a5, 0x5a5a_5a5a} {
		c := rtc.Control(x).SetRTCIOOutputSelection(rtc.IOAlarmTrigger)
		if uint32(c)&^0x30 != x&^0x30 {
			t.Errorf("Control %#x: io selection leaked into %#x", x, uint32(c))
		}
		a := rtc.Analog0(x).SetLDO18Voltage(rtc.LDO18V1_5)
		if uint32(a)&^0xe != x&^0xe || a.LDO18Voltage() != rtc.LDO18V1_5 {
			t.Errorf("Analog0 %#x: got %#x", x, uint32(a))
		}
		d := rtc.Detect32k(x).SetLevel(0x155)
		if uint32(d)&^0x03ff_0000 != x&^0x03ff_0000 || d.Level() != 0x155 {
			t.Errorf("Detect32k %#x: got %#x", x, uint32(d))
		}
	}
}
