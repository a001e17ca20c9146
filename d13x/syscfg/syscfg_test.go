package syscfg_test

import (
	"testing"

	"github.com/clktmr/artinchip/d13x/syscfg"
	"github.com/clktmr/artinchip/hal"
	d13xtesting "github.com/clktmr/artinchip/testing"
)

func TestRegisterBlock(t *testing.T) {
	l := d13xtesting.Layout[syscfg.Registers](t, 0x1000)
	d13xtesting.Offsets(t, l, map[string]uintptr{
		"IRQ_CTL":         0x8,
		"IRQ_STA":         0xc,
		"LDO25_CFG":       0x20,
		"LDO18_CFG":       0x24,
		"LDO1x_CFG":       0x28,
		"CMP_CFG":         0x3c,
		"USB0_REXT":       0x48,
		"PSEN_CFG":        0xc0,
		"PSEN_CNT_VAL":    0xc4,
		"SYS_SRAM_PAR":    0x100,
		"CPU_SRAM_PAR":    0x104,
		"USB_SRAM_PAR":    0x108,
		"VE_SRAM_PAR":     0x10c,
		"GE_SRAM_PAR":     0x110,
		"DE_SRAM_PAR":     0x114,
		"SRAM_CLK_CFG":    0x140,
		"SRAM_MAP_CFG":    0x160,
		"FLASH_CFG":       0x1f0,
		"ENCODER_CFG":     0x1f4,
		"USB0_CFG":        0x40c,
		"EMAC_CFG":        0x410,
		"ATB_CMU_ANA_TOP": 0xf48,
		"ATB_DLL_TOP_C":   0xf4c,
		"ATB_GPADC":       0xf50,
		"ATB_MIPI_DPHY":   0xf54,
		"ATB_RTC_ANA_TOP": 0xf58,
		"ATB_USB_PLL_AFE": 0xf5c,
		"ATB_USB_PHY_AFE": 0xf60,
		"SYSCFG_VER":      0xffc,
	})
}

func TestIRQ(t *testing.T) {
	c := syscfg.IRQControl(0).EnableCmpReset()
	if c != 0x8000_0000 || !c.CmpResetEnabled() {
		t.Errorf("cmp reset: %#x", uint32(c))
	}
	if c = c.DisableCmpReset().EnableCmpIRQ(); c != 1 || !c.CmpIRQEnabled() {
		t.Errorf("cmp irq: %#x", uint32(c))
	}
	if c.DisableCmpIRQ() != 0 {
		t.Error("disable cmp irq")
	}

	st := syscfg.IRQStatus(1)
	if !st.CmpIRQPending() || syscfg.IRQStatus(0).CmpIRQPending() {
		t.Error("pending")
	}
	if syscfg.IRQStatus(0).ClearCmpIRQ() != 1 {
		t.Error("clear")
	}
}

func TestLDO25(t *testing.T) {
	r := syscfg.LDO25Config(0)
	for _, tc := range []struct {
		enable  func(syscfg.LDO25Config) syscfg.LDO25Config
		enabled func(syscfg.LDO25Config) bool
		want    uint32
	}{
		{syscfg.LDO25Config.EnableLVDS0IBias, syscfg.LDO25Config.LVDS0IBiasEnabled, 0x0004_0000},
		{syscfg.LDO25Config.EnableXSPIDLLC1IBias, syscfg.LDO25Config.XSPIDLLC1IBiasEnabled, 0x0002_0000},
		{syscfg.LDO25Config.EnableXSPIDLLC0IBias, syscfg.LDO25Config.XSPIDLLC0IBiasEnabled, 0x0001_0000},
		{syscfg.LDO25Config.EnableLDO25, syscfg.LDO25Config.LDO25Enabled, 0x0000_0010},
	} {
		v := tc.enable(r)
		if uint32(v) != tc.want || !tc.enabled(v) || tc.enabled(r) {
			t.Errorf("got %#x, want %#x", uint32(v), tc.want)
		}
	}
	if r.EnableLVDS0IBias().DisableLVDS0IBias() != 0 || r.EnableLDO25().DisableLDO25() != 0 {
		t.Error("disable")
	}

	if v := r.SetBandgapCtrl(0xff); v != 0xff00 || v.BandgapCtrl() != 0xff {
		t.Errorf("bandgap: %#x", uint32(v))
	}

	names := []string{"2.40V", "2.50V", "2.60V", "2.70V", "2.80V", "2.90V", "3.00V", "3.10V"}
	for i := range 8 {
		v := r.SetLDO25Voltage(syscfg.LDO25Voltage(i))
		if uint32(v) != uint32(i) || v.LDO25Voltage() != syscfg.LDO25Voltage(i) {
			t.Errorf("voltage %d: %#x", i, uint32(v))
		}
		if s := v.LDO25Voltage().String(); s != names[i] {
			t.Errorf("voltage %d: %s, want %s", i, s, names[i])
		}
	}
	// Other fields survive a voltage change.
	v := r.EnableLDO25().SetBandgapCtrl(0x5a).SetLDO25Voltage(syscfg.LDO25V3_10).SetLDO25Voltage(syscfg.LDO25V2_50)
	if v != 0x5a11 {
		t.Errorf("combined: %#x", uint32(v))
	}
}

func TestLDO18(t *testing.T) {
	r := syscfg.LDO18Config(0).EnableATB2Ana()
	if r != 0x0800_0000 || !r.ATB2AnaEnabled() || r.DisableATB2Ana() != 0 {
		t.Errorf("atb2: %#x", uint32(r))
	}
	for i, want := range []uint32{0, 0x0100_0000, 0x0200_0000, 0x0300_0000} {
		v := syscfg.LDO18Config(0).SetATB2AnaSel(syscfg.ATB2AnaSel(i))
		if uint32(v) != want || v.ATB2AnaSel() != syscfg.ATB2AnaSel(i) {
			t.Errorf("atb2 sel %d: %#x", i, uint32(v))
		}
	}
	if r = syscfg.LDO18Config(0).EnableLDO18PDFast(); r != 0x20 || !r.LDO18PDFastEnabled() {
		t.Errorf("pd fast: %#x", uint32(r))
	}
	if r = syscfg.LDO18Config(0).EnableLDO18(); r != 0x10 || !r.LDO18Enabled() || r.DisableLDO18() != 0 {
		t.Errorf("enable: %#x", uint32(r))
	}
	for i := range 8 {
		v := syscfg.LDO18Config(0).SetLDO18Voltage(syscfg.LDO18Voltage(i))
		if uint32(v) != uint32(i) || v.LDO18Voltage() != syscfg.LDO18Voltage(i) {
			t.Errorf("voltage %d: %#x", i, uint32(v))
		}
	}
	if s := syscfg.LDO18V1_80.String(); s != "1.80V" {
		t.Errorf("String: %s", s)
	}
}

func TestLDO1x(t *testing.T) {
	r := syscfg.LDO1xConfig(0)
	if v := r.EnableLDO1xSoftMode(); v != 0x40 || !v.LDO1xSoftModeEnabled() || v.DisableLDO1xSoftMode() != 0 {
		t.Errorf("soft mode: %#x", uint32(v))
	}
	if v := r.EnableLDO1PDFast(); v != 0x20 || !v.LDO1PDFastEnabled() {
		t.Errorf("pd fast: %#x", uint32(v))
	}
	if v := r.EnableLDO1x(); v != 0x10 || !v.LDO1xEnabled() {
		t.Errorf("enable: %#x", uint32(v))
	}
	for i := range 16 {
		v := r.SetLDO1xVoltage(syscfg.LDO1xVoltage(i))
		if uint32(v) != uint32(i) || v.LDO1xVoltage() != syscfg.LDO1xVoltage(i) {
			t.Errorf("voltage %d: %#x", i, uint32(v))
		}
	}
	if s := syscfg.LDO1xV1_50.String(); s != "1.50V" {
		t.Errorf("String: %s", s)
	}
}

func TestCompare(t *testing.T) {
	r := syscfg.CompareConfig(0)
	if v := r.SetCmpDebounce(0xff); v != 0xff00_0000 || v.CmpDebounce() != 0xff {
		t.Errorf("debounce: %#x", uint32(v))
	}
	if v := r.SetCmpMode(syscfg.CmpHighVoltage); v != 0x20 || v.CmpMode() != syscfg.CmpHighVoltage {
		t.Errorf("mode: %#x", uint32(v))
	}
	if v := r.EnableCmp(); v != 0x10 || !v.CmpEnabled() || v.DisableCmp() != 0 {
		t.Errorf("enable: %#x", uint32(v))
	}
	for i := range 8 {
		v := r.SetCmpVoltage(syscfg.CmpVoltage(i))
		if uint32(v) != uint32(i) || v.CmpVoltage() != syscfg.CmpVoltage(i) {
			t.Errorf("voltage %d: %#x", i, uint32(v))
		}
	}
}

func TestUSB0RExt(t *testing.T) {
	r := syscfg.USB0RExt(0).EnableResCal()
	if r != 0x100 || !r.ResCalEnabled() || r.DisableResCal() != 0 {
		t.Errorf("res cal: %#x", uint32(r))
	}
	if v := syscfg.USB0RExt(0).SetResCalVal(0xff); v != 0xff || v.ResCalVal() != 0xff {
		t.Errorf("res cal val: %#x", uint32(v))
	}
}

func TestPsen(t *testing.T) {
	r := syscfg.PsenConfig(0).SetCountTime(0xffff)
	if r != 0xffff_0000 || r.CountTime() != 0xffff {
		t.Errorf("count time: %#x", uint32(r))
	}
	for _, tc := range []struct {
		sel  syscfg.RoSel
		want uint32
		name string
	}{
		{syscfg.RoRVT40, 0x2, "RVT40"},
		{syscfg.RoLVT40, 0x4, "LVT40"},
		{syscfg.RoULVT40, 0x6, "ULVT40"},
		{syscfg.RoRVT50, 0xa, "RVT50"},
		{syscfg.RoLVT50, 0xc, "LVT50"},
		{syscfg.RoULVT50, 0xe, "ULVT50"},
	} {
		v := syscfg.PsenConfig(0).SetRoSel(tc.sel)
		if uint32(v) != tc.want || v.RoSel() != tc.sel || v.RoSel().String() != tc.name {
			t.Errorf("%s: %#x", tc.name, uint32(v))
		}
	}
	// Reserved ring oscillator codes decode without panicking.
	if s := syscfg.PsenConfig(0x8).RoSel().String(); s != "RoSel(4)" {
		t.Errorf("reserved: %s", s)
	}
	if s := syscfg.PsenConfig(0).RoSel().String(); s != "RoSel(0)" {
		t.Errorf("reserved: %s", s)
	}
	if v := syscfg.PsenConfig(0).SetPsenStart(true); v != 1 || !v.PsenStart() || v.SetPsenStart(false) != 0 {
		t.Errorf("start: %#x", uint32(v))
	}
	if syscfg.PsenCount(0xdead_beef).CountValue() != 0xbeef {
		t.Error("count value")
	}
}

func TestSRAM(t *testing.T) {
	if v := syscfg.GESRAMParam(0).SetSRAMParam(0xffff); v != 0xffff || v.SRAMParam() != 0xffff {
		t.Errorf("ge sram param: %#x", uint32(v))
	}

	gates := []syscfg.SRAMClock{
		syscfg.SRAMSys, syscfg.SRAMDDR, syscfg.SRAMDMA, syscfg.SRAMGMAC, syscfg.SRAMDVP,
		syscfg.SRAMVE, syscfg.SRAMGE, syscfg.SRAMDE, syscfg.SRAMCE, syscfg.SRAMSD,
		syscfg.SRAMUART, syscfg.SRAMUSB, syscfg.SRAMSPI, syscfg.SRAMMIPI,
		syscfg.SRAMAudio, syscfg.SRAMSDFM, syscfg.SRAMXSPI,
	}
	all := syscfg.SRAMClkConfig(0)
	for _, g := range gates {
		v := syscfg.SRAMClkConfig(0).Enable(g)
		if uint32(v) != uint32(g) || !v.Enabled(g) || v.Disable(g) != 0 {
			t.Errorf("%v: %#x", g, uint32(v))
		}
		all = all.Enable(g)
	}
	if all != 0x3bfff {
		t.Errorf("all gates: %#x", uint32(all))
	}
	if s := (syscfg.SRAMUART | syscfg.SRAMXSPI).String(); s != "UART|XSPI" {
		t.Errorf("String: %s", s)
	}

	m := syscfg.SRAMMapConfig(0)
	for i := range 8 {
		a := syscfg.AXIMatS0Area(1 << i)
		v := m.EnableAXIMatS0Area(a)
		if uint32(v) != 0x100<<i || !v.AXIMatS0AreaEnabled(a) || v.DisableAXIMatS0Area(a) != 0 {
			t.Errorf("area %d: %#x", i, uint32(v))
		}
	}
	for i := range 7 {
		v := m.SetAXIMatS1Size(syscfg.AXIMatS1Size(i))
		if uint32(v) != uint32(i)<<4 || v.AXIMatS1Size() != syscfg.AXIMatS1Size(i) {
			t.Errorf("s1 size %d: %#x", i, uint32(v))
		}
	}
	if s := syscfg.SRAMMapConfig(0x70).AXIMatS1Size().String(); s != "AXIMatS1Size(7)" {
		t.Errorf("reserved s1 size: %s", s)
	}
	if v := m.SetCPUTCMSRAMAclkGate(true); v != 2 || !v.CPUTCMSRAMAclkGate() {
		t.Errorf("aclk gate: %#x", uint32(v))
	}
	if v := m.EnableCPUTCM(); v != 1 || !v.CPUTCMEnabled() || v.DisableCPUTCM() != 0 {
		t.Errorf("tcm: %#x", uint32(v))
	}
}

func TestFlashAndEncoder(t *testing.T) {
	for i := range 6 {
		v := syscfg.FlashConfig(0).SetFlashIOMap012(syscfg.FlashIOMap012(i))
		if uint32(v) != uint32(i)<<12 || v.FlashIOMap012() != syscfg.FlashIOMap012(i) {
			t.Errorf("iomap012 %d: %#x", i, uint32(v))
		}
		v = syscfg.FlashConfig(0).SetFlashIOMap345(syscfg.FlashIOMap345(i))
		if uint32(v) != uint32(i)<<8 || v.FlashIOMap345() != syscfg.FlashIOMap345(i) {
			t.Errorf("iomap345 %d: %#x", i, uint32(v))
		}
	}
	if s := syscfg.FlashConfig(0x7000).FlashIOMap012().String(); s != "FlashIOMap012(7)" {
		t.Errorf("reserved: %s", s)
	}
	for i := range 4 {
		v := syscfg.FlashConfig(0).SetFlashSrcSel(syscfg.FlashSrcSel(i))
		if uint32(v) != uint32(i) || v.FlashSrcSel() != syscfg.FlashSrcSel(i) {
			t.Errorf("src sel %d: %#x", i, uint32(v))
		}
	}

	e := syscfg.EncoderConfig(0).SetEnc1Sel(syscfg.EncBIS).SetEnc0Sel(syscfg.EncEDAT)
	if e != 0x0003_0001 || e.Enc1Sel() != syscfg.EncBIS || e.Enc0Sel() != syscfg.EncEDAT {
		t.Errorf("encoder: %#x", uint32(e))
	}

	u := syscfg.USB0Config(0).SetDRDMode(syscfg.DRDDevice)
	if u != 1 || u.DRDMode() != syscfg.DRDDevice || u.SetDRDMode(syscfg.DRDHost) != 0 {
		t.Errorf("drd: %#x", uint32(u))
	}
}

func TestEMAC(t *testing.T) {
	r := syscfg.EMACConfig(0)
	if v := r.EnableRefClkInv(); v != 0x2000_0000 || !v.RefClkInvEnabled() {
		t.Errorf("refclk inv: %#x", uint32(v))
	}
	if v := r.SetRefClkDelayChainSel(31); v != 0x1f00_0000 || v.RefClkDelayChainSel() != 31 {
		t.Errorf("refclk dly: %#x", uint32(v))
	}
	if v := r.EnableRxClkInv(); v != 0x0080_0000 || !v.RxClkInvEnabled() {
		t.Errorf("rxclk inv: %#x", uint32(v))
	}
	if v := r.SetRxClkDelaySel(31); v != 0x007c_0000 || v.RxClkDelaySel() != 31 {
		t.Errorf("rxclk dly: %#x", uint32(v))
	}
	if v := r.EnableTxClkInv(); v != 0x0002_0000 || !v.TxClkInvEnabled() {
		t.Errorf("txclk inv: %#x", uint32(v))
	}
	if v := r.SetTxClkDelayChainSel(31); v != 0x0001_f000 || v.TxClkDelayChainSel() != 31 {
		t.Errorf("txclk dly: %#x", uint32(v))
	}
	if v := r.SetSwTxClkDiv2(15).SetSwTxClkDiv1(15); v != 0xff0 || v.SwTxClkDiv2() != 15 || v.SwTxClkDiv1() != 15 {
		t.Errorf("sw div: %#x", uint32(v))
	}
	if v := r.EnableSwTxClkDiv(); v != 0x4 || !v.SwTxClkDivEnabled() {
		t.Errorf("sw div en: %#x", uint32(v))
	}
	if v := r.SetRMIIExtClkSel(syscfg.RMIIExtClk); v != 0x2 || v.RMIIExtClkSel() != syscfg.RMIIExtClk {
		t.Errorf("rmii: %#x", uint32(v))
	}

	for _, tc := range []struct {
		msg string
		f   func()
	}{
		{"Reference clock delay chain selection out of range (expected 0..=31)", func() { r.SetRefClkDelayChainSel(32) }},
		{"Receive clock delay selection out of range (expected 0..=31)", func() { r.SetRxClkDelaySel(32) }},
		{"Transmit clock delay chain selection out of range (expected 0..=31)", func() { r.SetTxClkDelayChainSel(32) }},
		{"Software transmit clock divider 2 out of range (expected 0..=15)", func() { r.SetSwTxClkDiv2(16) }},
		{"Software transmit clock divider 1 out of range (expected 0..=15)", func() { r.SetSwTxClkDiv1(16) }},
	} {
		d13xtesting.ExpectPanic(t, tc.msg, tc.f)
	}
}

func TestAnalogTestBus(t *testing.T) {
	for i := range 29 {
		v := syscfg.ATBCMUAnaTop(0).SetCMUATBSel(syscfg.CMUATBSel(i))
		if uint32(v) != uint32(i) || v.CMUATBSel() != syscfg.CMUATBSel(i) {
			t.Errorf("cmu %d: %#x", i, uint32(v))
		}
	}
	for sel, want := range map[syscfg.CMUATBSel]string{
		syscfg.CMUATBDisable:      "Disable",
		syscfg.CMUATBLdoAvInt0Vbn: "LdoAvInt0Vbn",
		syscfg.CMUATBLdoAvInt1Av:  "LdoAvInt1Av",
		syscfg.CMUATBFra2IbCp:     "Fra2IbCp",
		29:                        "CMUATBSel(29)",
	} {
		if s := sel.String(); s != want {
			t.Errorf("cmu %d: %s, want %s", uint8(sel), s, want)
		}
	}

	d := syscfg.ATBDLLTopC(0).SetDLL1ATBSel(syscfg.DLLATBIcp).EnableDLL1ATB().SetDLL0ATBSel(syscfg.DLLATBVctrl).EnableDLL0ATB()
	if d != 0x6121 || d.DLL1ATBSel() != syscfg.DLLATBIcp || d.DLL0ATBSel() != syscfg.DLLATBVctrl ||
		!d.DLL1ATBEnabled() || !d.DLL0ATBEnabled() {
		t.Errorf("dll: %#x", uint32(d))
	}
	if d.DisableDLL1ATB().DisableDLL0ATB() != 0x6020 {
		t.Error("dll disable")
	}

	if v := syscfg.ATBGPADC(0).SetATBSel(syscfg.GPADCRtpTouch).EnableATB(); v != 0x31 || v.ATBSel() != syscfg.GPADCRtpTouch || !v.ATBEnabled() {
		t.Errorf("gpadc: %#x", uint32(v))
	}
	if v := syscfg.ATBMIPIDPHY(0).SetATBSel(syscfg.DPHYV0p4).EnableATB(); v != 0x21 || v.ATBSel() != syscfg.DPHYV0p4 {
		t.Errorf("dphy: %#x", uint32(v))
	}
	if v := syscfg.ATBRTCAnaTop(0).SetATBSel(syscfg.RTCVosc); v != 0x10 || v.ATBSel() != syscfg.RTCVosc || v.ATBEnabled() {
		t.Errorf("rtc: %#x", uint32(v))
	}

	for i := range 17 {
		v := syscfg.ATBUSBPLLAfe(0).SetSubpllATB(syscfg.SubpllATB(i))
		if uint32(v) != uint32(i) || v.SubpllATB() != syscfg.SubpllATB(i) {
			t.Errorf("subpll %d: %#x", i, uint32(v))
		}
	}
	if s := syscfg.SubpllATBInt0IbCp.String(); s != "Int0IbCp" {
		t.Errorf("subpll String: %s", s)
	}
	if s := syscfg.SubpllATB(17).String(); s != "SubpllATB(17)" {
		t.Errorf("subpll reserved: %s", s)
	}

	p := syscfg.ATBUSBPHYAfe(0)
	for sel, want := range map[syscfg.SqrxTest]uint32{
		syscfg.SqrxOffsetP: 0x100,
		syscfg.SqrxOffsetM: 0x200,
		syscfg.SqrxDp:      0x800,
		syscfg.SqrxDm:      0x1000,
	} {
		v := p.EnableSqrx(sel)
		if uint32(v) != want || !v.SqrxEnabled(sel) || v.DisableSqrx(sel) != 0 {
			t.Errorf("sqrx %#x: %#x", uint8(sel), uint32(v))
		}
	}
	for i := range 4 {
		v := p.SetTxTestSel(syscfg.TxTestSel(i))
		if uint32(v) != uint32(i)<<4 || v.TxTestSel() != syscfg.TxTestSel(i) {
			t.Errorf("tx test %d: %#x", i, uint32(v))
		}
	}
	if v := p.EnableATBOp().EnableAvddATB(); v != 3 || !v.ATBOpEnabled() || !v.AvddATBEnabled() {
		t.Errorf("atb op: %#x", uint32(v))
	}
}

func TestHandle(t *testing.T) {
	p := syscfg.New(d13xtesting.Block[syscfg.Registers](t))
	regs := p.Registers()
	hal.Modify(&regs.LDO25Cfg, func(r syscfg.LDO25Config) syscfg.LDO25Config {
		return r.EnableXSPIDLLC0IBias().SetLDO25Voltage(syscfg.LDO25V2_50)
	})
	hal.Modify(&regs.SRAMClkCfg, func(r syscfg.SRAMClkConfig) syscfg.SRAMClkConfig {
		return r.Enable(syscfg.SRAMXSPI)
	})
	if r := regs.LDO25Cfg.Load(); r != 0x0001_0001 {
		t.Errorf("LDO25_CFG %#x", uint32(r))
	}
	if !regs.SRAMClkCfg.Load().Enabled(syscfg.SRAMXSPI) {
		t.Error("SRAM_CLK_CFG")
	}
	if regs.LDO18Cfg.Load() != 0 || regs.Version.Load() != 0 {
		t.Error("untouched registers changed")
	}
}
