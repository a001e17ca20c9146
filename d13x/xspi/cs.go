package xspi

import "github.com/clktmr/artinchip/hal"

// RdPhase is the read data sampling phase.
type RdPhase uint8

const (
	RdDeg0 RdPhase = iota
	RdDeg90
	RdDeg180
	RdDeg360
)

var rdPhaseNames = []string{"0deg", "90deg", "180deg", "360deg"}

func (v RdPhase) String() string { return hal.EnumString("RdPhase", rdPhaseNames, v) }

// RdSampleCtrl selects the clock read data is sampled with. Codes 2 and 3
// both select the DQS delay chain.
type RdSampleCtrl uint8

const (
	SampleDQSDLL RdSampleCtrl = iota
	SampleInternalDelayChain
	SampleDQSDelayChain
)

var rdSampleCtrlNames = []string{"DqsDll", "InternalDelayChain", "DqsDelayChain"}

func (v RdSampleCtrl) String() string { return hal.EnumString("RdSampleCtrl", rdSampleCtrlNames, v) }

// CsControl is the per chip select timing register.
type CsControl uint32

const (
	csWrDlyChainSel CsControl = 0x1f << 24
	csWrPhaseSel    CsControl = 1 << 21
	csWrDlyChainEn  CsControl = 1 << 20
	csRdPhase       CsControl = 0x3 << 16
	csRdDlyCycle    CsControl = 0x7 << 12
	csRdDlyChainSel CsControl = 0x1f << 4
	csRdValidCtl    CsControl = 1 << 3
	csRdDlyChainEn  CsControl = 1 << 2
	csRdSampleCtl   CsControl = 0x3
)

// SetWrDelayChainSel sets the write data delay chain tap. It panics unless
// sel < 32.
func (r CsControl) SetWrDelayChainSel(sel uint8) CsControl {
	hal.CheckRange(sel, 0x20, "Write delay chain selection out of range (expected 0..=31)")
	return hal.SetField(r, csWrDlyChainSel, uint32(sel))
}

func (r CsControl) WrDelayChainSel() uint8 { return uint8(hal.Field(r, csWrDlyChainSel)) }

// SetWrPhaseSel shifts write data by 90 degrees.
func (r CsControl) SetWrPhaseSel(set bool) CsControl { return hal.SetFlag(r, csWrPhaseSel, set) }
func (r CsControl) WrPhaseSel() bool                 { return r&csWrPhaseSel != 0 }

func (r CsControl) EnableWrDelayChain() CsControl  { return r | csWrDlyChainEn }
func (r CsControl) DisableWrDelayChain() CsControl { return r &^ csWrDlyChainEn }
func (r CsControl) WrDelayChainEnabled() bool      { return r&csWrDlyChainEn != 0 }

func (r CsControl) SetRdPhase(p RdPhase) CsControl { return hal.SetField(r, csRdPhase, uint32(p)) }
func (r CsControl) RdPhase() RdPhase               { return RdPhase(hal.Field(r, csRdPhase)) }

// SetRdDelayCycle delays read sampling by n interface clock cycles. It panics
// unless n < 8.
func (r CsControl) SetRdDelayCycle(n uint8) CsControl {
	hal.CheckRange(n, 0x8, "Read delay cycle out of range (expected 0..=7)")
	return hal.SetField(r, csRdDlyCycle, uint32(n))
}

func (r CsControl) RdDelayCycle() uint8 { return uint8(hal.Field(r, csRdDlyCycle)) }

func (r CsControl) SetRdDelayChainSel(sel uint8) CsControl {
	hal.CheckRange(sel, 0x20, "Read delay chain selection out of range (expected 0..=31)")
	return hal.SetField(r, csRdDlyChainSel, uint32(sel))
}

func (r CsControl) RdDelayChainSel() uint8 { return uint8(hal.Field(r, csRdDlyChainSel)) }

func (r CsControl) SetRdValidControl(set bool) CsControl { return hal.SetFlag(r, csRdValidCtl, set) }
func (r CsControl) RdValidControl() bool                 { return r&csRdValidCtl != 0 }

func (r CsControl) EnableRdDelayChain() CsControl  { return r | csRdDlyChainEn }
func (r CsControl) DisableRdDelayChain() CsControl { return r &^ csRdDlyChainEn }
func (r CsControl) RdDelayChainEnabled() bool      { return r&csRdDlyChainEn != 0 }

func (r CsControl) SetRdSampleCtrl(c RdSampleCtrl) CsControl {
	return hal.SetField(r, csRdSampleCtl, uint32(c))
}

func (r CsControl) RdSampleCtrl() RdSampleCtrl {
	if c := RdSampleCtrl(hal.Field(r, csRdSampleCtl)); c < SampleDQSDelayChain {
		return c
	}
	return SampleDQSDelayChain
}

// DLLBypass is the DLL bypass delay range.
type DLLBypass uint8

const (
	BypassRange0 DLLBypass = iota
	BypassRange1
	BypassRange2
	BypassRange3
)

var dllBypassNames = []string{"Range0", "Range1", "Range2", "Range3"}

func (v DLLBypass) String() string { return hal.EnumString("DLLBypass", dllBypassNames, v) }

// ICP is the DLL charge pump current, chosen by interface clock frequency.
type ICP uint8

const (
	ICP50To100M ICP = iota
	ICP100To150M
	ICP150To200M
	ICP200To266M
)

var icpNames = []string{"50-100MHz", "100-150MHz", "150-200MHz", "200-266MHz"}

func (v ICP) String() string { return hal.EnumString("ICP", icpNames, v) }

// PhaseSel is the DLL output phase in steps of 22.5 degrees. PhaseBypass
// passes the clock through the VCDL only.
type PhaseSel uint8

const (
	Phase22_5 PhaseSel = iota
	Phase45
	Phase67_5
	Phase90
	Phase112_5
	Phase135
	Phase157_5
	Phase180
	Phase202_5
	Phase225
	Phase247_5
	Phase270
	Phase292_5
	Phase315
	Phase337_5
	PhaseBypass
)

var phaseSelNames = []string{
	"22.5deg", "45deg", "67.5deg", "90deg", "112.5deg", "135deg", "157.5deg", "180deg",
	"202.5deg", "225deg", "247.5deg", "270deg", "292.5deg", "315deg", "337.5deg", "Bypass",
}

func (v PhaseSel) String() string { return hal.EnumString("PhaseSel", phaseSelNames, v) }

// CsDLLControl is the per chip select DLL control register.
//
// The enable bits must match the phase: phases 0 to 14 need EN_DLL, EN_VCDL
// and EN_CP set and EN_BYPASS cleared, PhaseBypass needs EN_VCDL and
// EN_BYPASS set and EN_DLL and EN_CP cleared. With all four cleared the clock
// passes at 0 degrees. The register does not check this.
type CsDLLControl uint32

const (
	dllForceLock CsDLLControl = 1 << 29
	dllEnATB     CsDLLControl = 1 << 28
	dllATBSel    CsDLLControl = 0x7 << 24
	dllBypass    CsDLLControl = 0x3 << 20
	dllDelay     CsDLLControl = 0x3 << 16
	dllICP       CsDLLControl = 0x3 << 12
	dllPhaseSel  CsDLLControl = 0xf << 8
	dllEnLVS     CsDLLControl = 1 << 5
	dllEnLDO     CsDLLControl = 1 << 4
	dllEnBypass  CsDLLControl = 1 << 3
	dllEnCP      CsDLLControl = 1 << 2
	dllEnVCDL    CsDLLControl = 1 << 1
	dllEnDLL     CsDLLControl = 1 << 0
)

func (r CsDLLControl) SetForceLock(set bool) CsDLLControl { return hal.SetFlag(r, dllForceLock, set) }
func (r CsDLLControl) ForceLock() bool                    { return r&dllForceLock != 0 }

func (r CsDLLControl) EnableATB() CsDLLControl  { return r | dllEnATB }
func (r CsDLLControl) DisableATB() CsDLLControl { return r &^ dllEnATB }
func (r CsDLLControl) ATBEnabled() bool         { return r&dllEnATB != 0 }

func (r CsDLLControl) SetATBSel(sel uint8) CsDLLControl {
	hal.CheckRange(sel, 0x8, "REG_ATBSEL out of range (expected 0..=7)")
	return hal.SetField(r, dllATBSel, uint32(sel))
}

func (r CsDLLControl) ATBSel() uint8 { return uint8(hal.Field(r, dllATBSel)) }

func (r CsDLLControl) SetBypass(b DLLBypass) CsDLLControl { return hal.SetField(r, dllBypass, uint32(b)) }
func (r CsDLLControl) Bypass() DLLBypass                  { return DLLBypass(hal.Field(r, dllBypass)) }

func (r CsDLLControl) SetDelay(d uint8) CsDLLControl {
	hal.CheckRange(d, 0x4, "Delay out of range (expected 0..=3)")
	return hal.SetField(r, dllDelay, uint32(d))
}

func (r CsDLLControl) Delay() uint8 { return uint8(hal.Field(r, dllDelay)) }

func (r CsDLLControl) SetICP(i ICP) CsDLLControl { return hal.SetField(r, dllICP, uint32(i)) }
func (r CsDLLControl) ICP() ICP                  { return ICP(hal.Field(r, dllICP)) }

func (r CsDLLControl) SetPhaseSel(p PhaseSel) CsDLLControl {
	return hal.SetField(r, dllPhaseSel, uint32(p))
}

func (r CsDLLControl) PhaseSel() PhaseSel { return PhaseSel(hal.Field(r, dllPhaseSel)) }

func (r CsDLLControl) EnableLVS() CsDLLControl  { return r | dllEnLVS }
func (r CsDLLControl) DisableLVS() CsDLLControl { return r &^ dllEnLVS }
func (r CsDLLControl) LVSEnabled() bool         { return r&dllEnLVS != 0 }

func (r CsDLLControl) EnableLDO() CsDLLControl  { return r | dllEnLDO }
func (r CsDLLControl) DisableLDO() CsDLLControl { return r &^ dllEnLDO }
func (r CsDLLControl) LDOEnabled() bool         { return r&dllEnLDO != 0 }

func (r CsDLLControl) EnableBypass() CsDLLControl  { return r | dllEnBypass }
func (r CsDLLControl) DisableBypass() CsDLLControl { return r &^ dllEnBypass }
func (r CsDLLControl) BypassEnabled() bool         { return r&dllEnBypass != 0 }

func (r CsDLLControl) EnableCP() CsDLLControl  { return r | dllEnCP }
func (r CsDLLControl) DisableCP() CsDLLControl { return r &^ dllEnCP }
func (r CsDLLControl) CPEnabled() bool         { return r&dllEnCP != 0 }

func (r CsDLLControl) EnableVCDL() CsDLLControl  { return r | dllEnVCDL }
func (r CsDLLControl) DisableVCDL() CsDLLControl { return r &^ dllEnVCDL }
func (r CsDLLControl) VCDLEnabled() bool         { return r&dllEnVCDL != 0 }

// EnableDLL enables the DLL. It has to be toggled after the interface clock
// frequency changed.
func (r CsDLLControl) EnableDLL() CsDLLControl  { return r | dllEnDLL }
func (r CsDLLControl) DisableDLL() CsDLLControl { return r &^ dllEnDLL }
func (r CsDLLControl) DLLEnabled() bool         { return r&dllEnDLL != 0 }

// DataLine is a physical data line.
type DataLine uint8

const (
	D0 DataLine = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
)

var dataLineNames = []string{"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7"}

func (v DataLine) String() string { return hal.EnumString("DataLine", dataLineNames, v) }

// CsSequence maps logical data lines to physical ones.
type CsSequence uint32

func seldShift(logical DataLine) uint { return uint(logical&7) * 4 }

// SetDataLine routes logical line to the physical line phys.
func (r CsSequence) SetDataLine(logical, phys DataLine) CsSequence {
	mask := CsSequence(0x7) << seldShift(logical)
	return hal.SetField(r, mask, uint32(phys))
}

// DataLine returns the physical line logical is routed to.
func (r CsSequence) DataLine(logical DataLine) DataLine {
	return DataLine(hal.Field(r, CsSequence(0x7)<<seldShift(logical)))
}

// IOControl is the IO control register. A set bit disables the pads of a
// chip select.
type IOControl uint32

const (
	ioCS1Cfg IOControl = 1 << 1
	ioCS0Cfg IOControl = 1 << 0
)

func (r IOControl) EnableCS1IO() IOControl  { return r &^ ioCS1Cfg }
func (r IOControl) DisableCS1IO() IOControl { return r | ioCS1Cfg }
func (r IOControl) CS1IOEnabled() bool      { return r&ioCS1Cfg == 0 }

func (r IOControl) EnableCS0IO() IOControl  { return r &^ ioCS0Cfg }
func (r IOControl) DisableCS0IO() IOControl { return r | ioCS0Cfg }
func (r IOControl) CS0IOEnabled() bool      { return r&ioCS0Cfg == 0 }

// PinPull is a pad pull configuration. Code 1 is reserved.
type PinPull uint8

const (
	PullDisabled PinPull = 0
	PullDown     PinPull = 2
	PullUp       PinPull = 3
)

var pinPullNames = []string{PullDisabled: "Disabled", PullDown: "PullDown", PullUp: "PullUp"}

func (v PinPull) String() string { return hal.EnumString("PinPull", pinPullNames, v) }

// PinDrive is a pad drive strength, Drive0 being the weakest.
type PinDrive uint8

const (
	Drive0 PinDrive = iota
	Drive1
	Drive2
	Drive3
	Drive4
	Drive5
	Drive6
	Drive7
)

var pinDriveNames = []string{"Level0", "Level1", "Level2", "Level3", "Level4", "Level5", "Level6", "Level7"}

func (v PinDrive) String() string { return hal.EnumString("PinDrive", pinDriveNames, v) }

// The pad registers pack four pads per register, one byte each: pull in bits
// 5:4 and drive strength in bits 2:0.
const (
	padPull = 0x3 << 4
	padDrv  = 0x7
)

func padShift(slot uint) uint { return slot * 8 }

func setPull[T ~uint32](r T, slot uint, p PinPull) T {
	return hal.SetField(r, T(padPull)<<padShift(slot), uint32(p))
}

func pull[T ~uint32](r T, slot uint) PinPull {
	return PinPull(hal.Field(r, T(padPull)<<padShift(slot)))
}

func setDrive[T ~uint32](r T, slot uint, d PinDrive) T {
	return hal.SetField(r, T(padDrv)<<padShift(slot), uint32(d))
}

func drive[T ~uint32](r T, slot uint) PinDrive {
	return PinDrive(hal.Field(r, T(padDrv)<<padShift(slot)))
}

func highSlot(line DataLine) uint {
	slot := uint(line - D4)
	hal.CheckRange(slot, 4, "Data line out of range (expected D4..=D7)")
	return slot
}

func lowSlot(line DataLine) uint {
	hal.CheckRange(uint(line), 4, "Data line out of range (expected D0..=D3)")
	return uint(line)
}

func padSlot(pad ControlPad) uint {
	hal.CheckRange(uint(pad), 4, "Control pad out of range (expected 0..=3)")
	return uint(pad)
}

// CsIOConfig1 configures the pads of data lines 4 to 7.
type CsIOConfig1 uint32

// SetPull sets the pull of line, which must be one of D4 to D7.
func (r CsIOConfig1) SetPull(line DataLine, p PinPull) CsIOConfig1 {
	return setPull(r, highSlot(line), p)
}

func (r CsIOConfig1) Pull(line DataLine) PinPull { return pull(r, highSlot(line)) }

func (r CsIOConfig1) SetDrive(line DataLine, d PinDrive) CsIOConfig1 {
	return setDrive(r, highSlot(line), d)
}

func (r CsIOConfig1) Drive(line DataLine) PinDrive { return drive(r, highSlot(line)) }

// CsIOConfig2 configures the pads of data lines 0 to 3.
type CsIOConfig2 uint32

// SetPull sets the pull of line, which must be one of D0 to D3.
func (r CsIOConfig2) SetPull(line DataLine, p PinPull) CsIOConfig2 {
	return setPull(r, lowSlot(line), p)
}

func (r CsIOConfig2) Pull(line DataLine) PinPull { return pull(r, lowSlot(line)) }

func (r CsIOConfig2) SetDrive(line DataLine, d PinDrive) CsIOConfig2 {
	return setDrive(r, lowSlot(line), d)
}

func (r CsIOConfig2) Drive(line DataLine) PinDrive { return drive(r, lowSlot(line)) }

// ControlPad is one of the non-data pads configured by CsIOConfig3.
type ControlPad uint8

const (
	PadCKN ControlPad = iota
	PadCK
	PadDQS
	PadCS
)

var controlPadNames = []string{"CKN", "CK", "DQS", "CS"}

func (v ControlPad) String() string { return hal.EnumString("ControlPad", controlPadNames, v) }

// CsIOConfig3 configures the chip select, DQS and clock pads.
type CsIOConfig3 uint32

func (r CsIOConfig3) SetPull(pad ControlPad, p PinPull) CsIOConfig3 {
	return setPull(r, padSlot(pad), p)
}

func (r CsIOConfig3) Pull(pad ControlPad) PinPull { return pull(r, padSlot(pad)) }

func (r CsIOConfig3) SetDrive(pad ControlPad, d PinDrive) CsIOConfig3 {
	return setDrive(r, padSlot(pad), d)
}

func (r CsIOConfig3) Drive(pad ControlPad) PinDrive { return drive(r, padSlot(pad)) }

// CsIOConfig4 configures the data mask pad.
type CsIOConfig4 uint32

func (r CsIOConfig4) SetDMPull(p PinPull) CsIOConfig4   { return setPull(r, 0, p) }
func (r CsIOConfig4) DMPull() PinPull                   { return pull(r, 0) }
func (r CsIOConfig4) SetDMDrive(d PinDrive) CsIOConfig4 { return setDrive(r, 0, d) }
func (r CsIOConfig4) DMDrive() PinDrive                 { return drive(r, 0) }
