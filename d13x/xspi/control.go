package xspi

import "github.com/clktmr/artinchip/hal"

// ColAddrCtrl selects the column address unit.
type ColAddrCtrl uint8

const (
	ByteAddr ColAddrCtrl = iota
	WordAddr
)

var colAddrCtrlNames = []string{"ByteAddr", "WordAddr"}

func (v ColAddrCtrl) String() string { return hal.EnumString("ColAddrCtrl", colAddrCtrlNames, v) }

// PinWidth is the data bus width.
type PinWidth uint8

const (
	X8 PinWidth = iota
	X16
)

var pinWidthNames = []string{"X8", "X16"}

func (v PinWidth) String() string { return hal.EnumString("PinWidth", pinWidthNames, v) }

// BoundarySize is the page boundary at which transfers are split. Codes 2
// and 3 are reserved.
type BoundarySize uint8

const (
	Boundary2K BoundarySize = iota
	Boundary1K
)

var boundarySizeNames = []string{"2K", "1K"}

func (v BoundarySize) String() string { return hal.EnumString("BoundarySize", boundarySizeNames, v) }

// Mode is the memory protocol family. It determines which protocol error
// bits of the interrupt status register are meaningful.
type Mode uint8

const (
	ModeXccela Mode = iota
	ModeHyperbus
	ModeOPI
	ModeSPI
)

var modeNames = []string{"Xccela", "HyperBus", "OPI", "SPI"}

func (v Mode) String() string { return hal.EnumString("Mode", modeNames, v) }

// Control is the XSPI control register.
type Control uint32

const (
	ctlAXIArbiterEn Control = 1 << 18
	ctlColAddr      Control = 1 << 17
	ctlPinCtl       Control = 1 << 16
	ctlBoundaryCtl  Control = 0x3 << 13
	ctlBoundaryEn   Control = 1 << 12
	ctlResetEn      Control = 1 << 9
	ctlResetLevel   Control = 1 << 8
	ctlTimeoutEn    Control = 1 << 7
	ctlParallelMode Control = 1 << 6
	ctlModeSel      Control = 0x3 << 4
	ctlAXIWrapBurst Control = 1 << 3
	ctlXIPEn        Control = 1 << 2
	ctlIdleLowPower Control = 1 << 1
	ctlXSPIEn       Control = 1 << 0
)

func (r Control) EnableAXIArbiter() Control  { return r | ctlAXIArbiterEn }
func (r Control) DisableAXIArbiter() Control { return r &^ ctlAXIArbiterEn }
func (r Control) AXIArbiterEnabled() bool    { return r&ctlAXIArbiterEn != 0 }

func (r Control) SetColAddrCtrl(c ColAddrCtrl) Control { return hal.SetField(r, ctlColAddr, uint32(c)) }
func (r Control) ColAddrCtrl() ColAddrCtrl             { return ColAddrCtrl(hal.Field(r, ctlColAddr)) }

func (r Control) SetPinWidth(w PinWidth) Control { return hal.SetField(r, ctlPinCtl, uint32(w)) }
func (r Control) PinWidth() PinWidth             { return PinWidth(hal.Field(r, ctlPinCtl)) }

func (r Control) SetBoundarySize(s BoundarySize) Control {
	return hal.SetField(r, ctlBoundaryCtl, uint32(s))
}

func (r Control) BoundarySize() BoundarySize { return BoundarySize(hal.Field(r, ctlBoundaryCtl)) }

// EnableBoundary splits transfers that cross the configured boundary.
func (r Control) EnableBoundary() Control  { return r | ctlBoundaryEn }
func (r Control) DisableBoundary() Control { return r &^ ctlBoundaryEn }
func (r Control) BoundaryEnabled() bool    { return r&ctlBoundaryEn != 0 }

// EnableReset drives the memory reset pin with the configured level.
func (r Control) EnableReset() Control  { return r | ctlResetEn }
func (r Control) DisableReset() Control { return r &^ ctlResetEn }
func (r Control) ResetEnabled() bool    { return r&ctlResetEn != 0 }

func (r Control) SetResetLevel(high bool) Control { return hal.SetFlag(r, ctlResetLevel, high) }
func (r Control) ResetLevel() bool                { return r&ctlResetLevel != 0 }

// EnableTimeout enables the chip select timeout counters.
func (r Control) EnableTimeout() Control  { return r | ctlTimeoutEn }
func (r Control) DisableTimeout() Control { return r &^ ctlTimeoutEn }
func (r Control) TimeoutEnabled() bool    { return r&ctlTimeoutEn != 0 }

// EnableParallelMode drives both chip selects as one 16 line device.
func (r Control) EnableParallelMode() Control  { return r | ctlParallelMode }
func (r Control) DisableParallelMode() Control { return r &^ ctlParallelMode }
func (r Control) ParallelModeEnabled() bool    { return r&ctlParallelMode != 0 }

func (r Control) SetMode(m Mode) Control { return hal.SetField(r, ctlModeSel, uint32(m)) }
func (r Control) Mode() Mode             { return Mode(hal.Field(r, ctlModeSel)) }

func (r Control) EnableAXIWrapBurst() Control  { return r | ctlAXIWrapBurst }
func (r Control) DisableAXIWrapBurst() Control { return r &^ ctlAXIWrapBurst }
func (r Control) AXIWrapBurstEnabled() bool    { return r&ctlAXIWrapBurst != 0 }

// EnableXIP maps the memory for execute in place. LUT_UP must have been
// pulsed after the last LUT change.
func (r Control) EnableXIP() Control  { return r | ctlXIPEn }
func (r Control) DisableXIP() Control { return r &^ ctlXIPEn }
func (r Control) XIPEnabled() bool    { return r&ctlXIPEn != 0 }

func (r Control) EnableIdleLowPower() Control  { return r | ctlIdleLowPower }
func (r Control) DisableIdleLowPower() Control { return r &^ ctlIdleLowPower }
func (r Control) IdleLowPowerEnabled() bool    { return r&ctlIdleLowPower != 0 }

func (r Control) EnableXSPI() Control  { return r | ctlXSPIEn }
func (r Control) DisableXSPI() Control { return r &^ ctlXSPIEn }
func (r Control) XSPIEnabled() bool    { return r&ctlXSPIEn != 0 }

// ClockDivider selects which divider generates the interface clock.
type ClockDivider uint8

const (
	Divider1 ClockDivider = iota // source / 2^M
	Divider2                     // source / (2*(N+1))
)

var clockDividerNames = []string{"Divider1", "Divider2"}

func (v ClockDivider) String() string { return hal.EnumString("ClockDivider", clockDividerNames, v) }

// Clock is the clock divider register.
type Clock uint32

const (
	clkSel  Clock = 1 << 12
	clkCDR1 Clock = 0xf << 8
	clkCDR2 Clock = 0xff
)

func (r Clock) SetClockDivider(d ClockDivider) Clock { return hal.SetField(r, clkSel, uint32(d)) }
func (r Clock) ClockDivider() ClockDivider           { return ClockDivider(hal.Field(r, clkSel)) }

// SetCDR1 sets the exponent of divider 1. It panics unless m < 16.
func (r Clock) SetCDR1(m uint8) Clock {
	hal.CheckRange(m, 0x10, "Clock divider 1 out of range (expected 0..=15)")
	return hal.SetField(r, clkCDR1, uint32(m))
}

func (r Clock) CDR1() uint8 { return uint8(hal.Field(r, clkCDR1)) }

func (r Clock) SetCDR2(n uint8) Clock { return hal.SetField(r, clkCDR2, uint32(n)) }
func (r Clock) CDR2() uint8           { return uint8(hal.Field(r, clkCDR2)) }

// DQSClkGating selects when the DQS clock is gated. Codes 4 to 15 are
// reserved.
type DQSClkGating uint8

const (
	DQSNormal DQSClkGating = iota
	DQSBefore
	DQSDelay
	DQSBypass
)

var dqsClkGatingNames = []string{"Normal", "Before", "Delay", "Bypass"}

func (v DQSClkGating) String() string { return hal.EnumString("DQSClkGating", dqsClkGatingNames, v) }

// DummyType is the level driven during dummy cycles.
type DummyType uint8

const (
	DummyFill0 DummyType = iota
	DummyFill1
)

var dummyTypeNames = []string{"Fill0", "Fill1"}

func (v DummyType) String() string { return hal.EnumString("DummyType", dummyTypeNames, v) }

// CsLevel is the chip select level under software control.
type CsLevel uint8

const (
	CsLow CsLevel = iota
	CsHigh
)

var csLevelNames = []string{"Low", "High"}

func (v CsLevel) String() string { return hal.EnumString("CsLevel", csLevelNames, v) }

// CsOwner selects who drives the chip select.
type CsOwner uint8

const (
	CsOwnerController CsOwner = iota
	CsOwnerSoftware
)

var csOwnerNames = []string{"Controller", "Software"}

func (v CsOwner) String() string { return hal.EnumString("CsOwner", csOwnerNames, v) }

// CsSel selects a chip select.
type CsSel uint8

const (
	Cs0 CsSel = iota
	Cs1
)

var csSelNames = []string{"CS0", "CS1"}

func (v CsSel) String() string { return hal.EnumString("CsSel", csSelNames, v) }

// CsPolarity is the idle level of the chip select.
type CsPolarity uint8

const (
	CsIdleHigh CsPolarity = iota
	CsIdleLow
)

var csPolarityNames = []string{"IdleHigh", "IdleLow"}

func (v CsPolarity) String() string { return hal.EnumString("CsPolarity", csPolarityNames, v) }

// Polarity is the SPI clock polarity (CPOL).
type Polarity uint8

const (
	IdleLow Polarity = iota
	IdleHigh
)

var polarityNames = []string{"IdleLow", "IdleHigh"}

func (v Polarity) String() string { return hal.EnumString("Polarity", polarityNames, v) }

// Phase is the SPI clock phase (CPHA).
type Phase uint8

const (
	CaptureOnFirstTransition Phase = iota
	CaptureOnSecondTransition
)

var phaseNames = []string{"CaptureOnFirstTransition", "CaptureOnSecondTransition"}

func (v Phase) String() string { return hal.EnumString("Phase", phaseNames, v) }

// TransControl is the transfer control register.
type TransControl uint32

const (
	tcrOPIHoldEx TransControl = 0xf << 28
	tcrDQSGating TransControl = 0xf << 24
	tcrCsRdHold  TransControl = 0xf << 20
	tcrCsWrHold  TransControl = 0xf << 16
	tcrCsSetup   TransControl = 0xf << 12
	tcrJumpInsEn TransControl = 1 << 11
	tcrDummyType TransControl = 1 << 8
	tcrCsLevel   TransControl = 1 << 7
	tcrCsOwner   TransControl = 1 << 6
	tcrCsSel     TransControl = 1 << 4
	tcrCsPol     TransControl = 1 << 2
	tcrCPOL      TransControl = 1 << 1
	tcrCPHA      TransControl = 1 << 0
)

// SetOPIHoldEx extends the OPI hold time by n cycles. It panics unless
// n < 16.
func (r TransControl) SetOPIHoldEx(n uint8) TransControl {
	hal.CheckRange(n, 0x10, "OPI hold extension out of range (expected 0..=15)")
	return hal.SetField(r, tcrOPIHoldEx, uint32(n))
}

func (r TransControl) OPIHoldEx() uint8 { return uint8(hal.Field(r, tcrOPIHoldEx)) }

func (r TransControl) SetDQSClkGating(g DQSClkGating) TransControl {
	return hal.SetField(r, tcrDQSGating, uint32(g))
}

func (r TransControl) DQSClkGating() DQSClkGating { return DQSClkGating(hal.Field(r, tcrDQSGating)) }

// SetCsReadHold sets the chip select hold time after reads in cycles. It
// panics unless n < 16.
func (r TransControl) SetCsReadHold(n uint8) TransControl {
	hal.CheckRange(n, 0x10, "CS read hold time out of range (expected 0..=15)")
	return hal.SetField(r, tcrCsRdHold, uint32(n))
}

func (r TransControl) CsReadHold() uint8 { return uint8(hal.Field(r, tcrCsRdHold)) }

func (r TransControl) SetCsWriteHold(n uint8) TransControl {
	hal.CheckRange(n, 0x10, "CS write hold time out of range (expected 0..=15)")
	return hal.SetField(r, tcrCsWrHold, uint32(n))
}

func (r TransControl) CsWriteHold() uint8 { return uint8(hal.Field(r, tcrCsWrHold)) }

func (r TransControl) SetCsSetup(n uint8) TransControl {
	hal.CheckRange(n, 0x10, "CS setup control out of range (expected 0..=15)")
	return hal.SetField(r, tcrCsSetup, uint32(n))
}

func (r TransControl) CsSetup() uint8 { return uint8(hal.Field(r, tcrCsSetup)) }

// EnableJumpIns lets LUT sequences jump between entries.
func (r TransControl) EnableJumpIns() TransControl  { return r | tcrJumpInsEn }
func (r TransControl) DisableJumpIns() TransControl { return r &^ tcrJumpInsEn }
func (r TransControl) JumpInsEnabled() bool         { return r&tcrJumpInsEn != 0 }

func (r TransControl) SetDummyType(t DummyType) TransControl {
	return hal.SetField(r, tcrDummyType, uint32(t))
}

func (r TransControl) DummyType() DummyType { return DummyType(hal.Field(r, tcrDummyType)) }

// SetCsLevel sets the chip select level. It only has an effect while the
// chip select is owned by software.
func (r TransControl) SetCsLevel(l CsLevel) TransControl { return hal.SetField(r, tcrCsLevel, uint32(l)) }
func (r TransControl) CsLevel() CsLevel                  { return CsLevel(hal.Field(r, tcrCsLevel)) }

func (r TransControl) SetCsOwner(o CsOwner) TransControl { return hal.SetField(r, tcrCsOwner, uint32(o)) }
func (r TransControl) CsOwner() CsOwner                  { return CsOwner(hal.Field(r, tcrCsOwner)) }

func (r TransControl) SetCsSel(cs CsSel) TransControl { return hal.SetField(r, tcrCsSel, uint32(cs)) }
func (r TransControl) CsSel() CsSel                   { return CsSel(hal.Field(r, tcrCsSel)) }

func (r TransControl) SetCsPolarity(p CsPolarity) TransControl {
	return hal.SetField(r, tcrCsPol, uint32(p))
}

func (r TransControl) CsPolarity() CsPolarity { return CsPolarity(hal.Field(r, tcrCsPol)) }

func (r TransControl) SetClkPolarity(p Polarity) TransControl {
	return hal.SetField(r, tcrCPOL, uint32(p))
}

func (r TransControl) ClkPolarity() Polarity { return Polarity(hal.Field(r, tcrCPOL)) }

func (r TransControl) SetClkPhase(p Phase) TransControl { return hal.SetField(r, tcrCPHA, uint32(p)) }
func (r TransControl) ClkPhase() Phase                  { return Phase(hal.Field(r, tcrCPHA)) }

// Status is the read-only controller status register.
type Status uint32

const (
	staAHBTrans Status = 1 << 2
	staAXITrans Status = 1 << 1
	staBusy     Status = 1 << 0
)

func (r Status) AHBTransActive() bool { return r&staAHBTrans != 0 }
func (r Status) AXITransActive() bool { return r&staAXITrans != 0 }
func (r Status) Busy() bool           { return r&staBusy != 0 }
