package xspi

import "github.com/clktmr/artinchip/hal"

// FIFOControl is the FIFO control register.
type FIFOControl uint32

const (
	fcrTxReset     FIFOControl = 1 << 31
	fcrTxDRQEn     FIFOControl = 1 << 24
	fcrTxTrigLevel FIFOControl = 0x7f << 16
	fcrRxReset     FIFOControl = 1 << 15
	fcrRxDRQEn     FIFOControl = 1 << 8
	fcrRxTrigLevel FIFOControl = 0x7f
)

// SetTxFIFOReset resets the TX FIFO. The bit clears itself.
func (r FIFOControl) SetTxFIFOReset(set bool) FIFOControl { return hal.SetFlag(r, fcrTxReset, set) }
func (r FIFOControl) TxFIFOReset() bool                   { return r&fcrTxReset != 0 }

func (r FIFOControl) EnableTxDRQ() FIFOControl  { return r | fcrTxDRQEn }
func (r FIFOControl) DisableTxDRQ() FIFOControl { return r &^ fcrTxDRQEn }
func (r FIFOControl) TxDRQEnabled() bool        { return r&fcrTxDRQEn != 0 }

// SetTxTrigLevel sets the TX FIFO level that raises TX_READY. It panics
// unless level < 128.
func (r FIFOControl) SetTxTrigLevel(level uint8) FIFOControl {
	hal.CheckRange(level, 0x80, "TX trigger level out of range (expected 0..=127)")
	return hal.SetField(r, fcrTxTrigLevel, uint32(level))
}

func (r FIFOControl) TxTrigLevel() uint8 { return uint8(hal.Field(r, fcrTxTrigLevel)) }

// SetRxFIFOReset resets the RX FIFO. The bit clears itself.
func (r FIFOControl) SetRxFIFOReset(set bool) FIFOControl { return hal.SetFlag(r, fcrRxReset, set) }
func (r FIFOControl) RxFIFOReset() bool                   { return r&fcrRxReset != 0 }

func (r FIFOControl) EnableRxDRQ() FIFOControl  { return r | fcrRxDRQEn }
func (r FIFOControl) DisableRxDRQ() FIFOControl { return r &^ fcrRxDRQEn }
func (r FIFOControl) RxDRQEnabled() bool        { return r&fcrRxDRQEn != 0 }

func (r FIFOControl) SetRxTrigLevel(level uint8) FIFOControl {
	hal.CheckRange(level, 0x80, "RX trigger level out of range (expected 0..=127)")
	return hal.SetField(r, fcrRxTrigLevel, uint32(level))
}

func (r FIFOControl) RxTrigLevel() uint8 { return uint8(hal.Field(r, fcrRxTrigLevel)) }

// FIFOStatus is the read-only FIFO status register.
type FIFOStatus uint32

const (
	fsrTxBufWr  FIFOStatus = 1 << 31
	fsrTxBufCnt FIFOStatus = 0x7 << 28
	fsrTxCnt    FIFOStatus = 0xff << 16
	fsrRxBufWr  FIFOStatus = 1 << 15
	fsrRxBufCnt FIFOStatus = 0x7 << 12
	fsrRxCnt    FIFOStatus = 0xff
)

// TxBufWriteEnabled reports whether the TX write buffer accepts data.
func (r FIFOStatus) TxBufWriteEnabled() bool { return r&fsrTxBufWr != 0 }
func (r FIFOStatus) TxBufCount() uint8       { return uint8(hal.Field(r, fsrTxBufCnt)) }
func (r FIFOStatus) TxFIFOCount() uint8      { return uint8(hal.Field(r, fsrTxCnt)) }
func (r FIFOStatus) RxBufWriteEnabled() bool { return r&fsrRxBufWr != 0 }
func (r FIFOStatus) RxBufCount() uint8       { return uint8(hal.Field(r, fsrRxBufCnt)) }
func (r FIFOStatus) RxFIFOCount() uint8      { return uint8(hal.Field(r, fsrRxCnt)) }

// Start is the transfer start register.
type Start uint32

const startCtl Start = 0xf

// NumGroups is the number of LUT groups a transfer can start from.
const NumGroups = 8

// SetStartGroup starts a transfer with the sequence at LUT entry 4*group.
// The register clears itself when the transfer completed. It panics unless
// group < 8.
func (r Start) SetStartGroup(group uint8) Start {
	hal.CheckRange(group, NumGroups, "Start group out of range (expected 0..=7)")
	return hal.SetField(r, startCtl, uint32(group))
}

func (r Start) StartGroup() uint8 { return uint8(hal.Field(r, startCtl)) }

// FormatSel selects the shape of the transfers started by the start
// register. Code 7 is reserved.
type FormatSel uint8

const (
	FormatLUT         FormatSel = iota // sequence from the LUT
	FormatCmd1S                        // 1 byte command
	FormatCmd3Addr                     // command and 3 byte address
	FormatCmd4Addr                     // command and 4 byte address
	FormatCmd8D                        // octal DTR command
	FormatCmdEx8D                      // octal DTR command with extension
	FormatCmdExAddr8D                  // octal DTR command with extension and 4 byte address
)

var formatSelNames = []string{
	"LutConfig", "Command1S", "Command3Addr", "Command4Addr", "Command8D", "CommandEx8D", "CommandExAddr8D",
}

func (v FormatSel) String() string { return hal.EnumString("FormatSel", formatSelNames, v) }

// Format is the transfer format register.
type Format uint32

const (
	fmrCmd   Format = 0xff << 24
	fmrCmdEx Format = 0xff << 16
	fmrSel   Format = 0x7
)

func (r Format) SetCommand(cmd uint8) Format     { return hal.SetField(r, fmrCmd, uint32(cmd)) }
func (r Format) Command() uint8                  { return uint8(hal.Field(r, fmrCmd)) }
func (r Format) SetCommandEx(cmd uint8) Format   { return hal.SetField(r, fmrCmdEx, uint32(cmd)) }
func (r Format) CommandEx() uint8                { return uint8(hal.Field(r, fmrCmdEx)) }
func (r Format) SetFormatSel(f FormatSel) Format { return hal.SetField(r, fmrSel, uint32(f)) }
func (r Format) FormatSel() FormatSel            { return FormatSel(hal.Field(r, fmrSel)) }

// BurstType holds the LUT entries used for wrapped and linear bursts.
type BurstType uint32

const (
	btrWrapped BurstType = 0xff << 8
	btrLinear  BurstType = 0xff
)

func (r BurstType) SetWrapped(v uint8) BurstType { return hal.SetField(r, btrWrapped, uint32(v)) }
func (r BurstType) Wrapped() uint8               { return uint8(hal.Field(r, btrWrapped)) }
func (r BurstType) SetLinear(v uint8) BurstType  { return hal.SetField(r, btrLinear, uint32(v)) }
func (r BurstType) Linear() uint8                { return uint8(hal.Field(r, btrLinear)) }

// RdCmdControl configures continuous read mode.
type RdCmdControl uint32

const (
	rccModeByteEn RdCmdControl = 1 << 17
	rccBypassEn   RdCmdControl = 1 << 16
	rccBypassCode RdCmdControl = 0xff << 8
	rccNormalCode RdCmdControl = 0xff
)

func (r RdCmdControl) EnableReadModeByte() RdCmdControl  { return r | rccModeByteEn }
func (r RdCmdControl) DisableReadModeByte() RdCmdControl { return r &^ rccModeByteEn }
func (r RdCmdControl) ReadModeByteEnabled() bool         { return r&rccModeByteEn != 0 }

// EnableRdCmdBypass skips the read command while the memory is in
// continuous read mode.
func (r RdCmdControl) EnableRdCmdBypass() RdCmdControl  { return r | rccBypassEn }
func (r RdCmdControl) DisableRdCmdBypass() RdCmdControl { return r &^ rccBypassEn }
func (r RdCmdControl) RdCmdBypassEnabled() bool         { return r&rccBypassEn != 0 }

func (r RdCmdControl) SetBypassCode(c uint8) RdCmdControl {
	return hal.SetField(r, rccBypassCode, uint32(c))
}

func (r RdCmdControl) BypassCode() uint8 { return uint8(hal.Field(r, rccBypassCode)) }

func (r RdCmdControl) SetNormalCode(c uint8) RdCmdControl {
	return hal.SetField(r, rccNormalCode, uint32(c))
}

func (r RdCmdControl) NormalCode() uint8 { return uint8(hal.Field(r, rccNormalCode)) }

// DMAActiveMode selects the polarity of the normal DMA request line.
type DMAActiveMode uint8

const (
	DMAActiveLow DMAActiveMode = iota
	DMAActiveHigh
	DMAActiveRequest
	DMAActiveController
)

var dmaActiveModeNames = []string{"Low", "High", "DmaRequest", "Controller"}

func (v DMAActiveMode) String() string { return hal.EnumString("DMAActiveMode", dmaActiveModeNames, v) }

// ActiveFallBehavior selects when the DMA request may be deasserted.
type ActiveFallBehavior uint8

const (
	FallDoNotCareAck ActiveFallBehavior = iota
	FallAfterAckHigh
)

var activeFallBehaviorNames = []string{"DoNotCareAck", "MustAfterAckHigh"}

func (v ActiveFallBehavior) String() string {
	return hal.EnumString("ActiveFallBehavior", activeFallBehaviorNames, v)
}

// DMAModeControl is the normal DMA mode control register.
type DMAModeControl uint32

const (
	dmaActiveMode   DMAModeControl = 0x3 << 6
	dmaFallBehavior DMAModeControl = 1 << 5
	dmaDelayClocks  DMAModeControl = 0x1f
)

func (r DMAModeControl) SetActiveMode(m DMAActiveMode) DMAModeControl {
	return hal.SetField(r, dmaActiveMode, uint32(m))
}

func (r DMAModeControl) ActiveMode() DMAActiveMode { return DMAActiveMode(hal.Field(r, dmaActiveMode)) }

func (r DMAModeControl) SetFallBehavior(b ActiveFallBehavior) DMAModeControl {
	return hal.SetField(r, dmaFallBehavior, uint32(b))
}

func (r DMAModeControl) FallBehavior() ActiveFallBehavior {
	return ActiveFallBehavior(hal.Field(r, dmaFallBehavior))
}

// SetDelayClocks sets the request delay in clock cycles. It panics unless
// n < 32.
func (r DMAModeControl) SetDelayClocks(n uint8) DMAModeControl {
	hal.CheckRange(n, 0x20, "Delay clocks out of range (expected 0..=31)")
	return hal.SetField(r, dmaDelayClocks, uint32(n))
}

func (r DMAModeControl) DelayClocks() uint8 { return uint8(hal.Field(r, dmaDelayClocks)) }

// LockCfg is the LUT lock state. Only Locked and Unlocked are defined.
type LockCfg uint8

const (
	Locked   LockCfg = 1 // LUT is read-only
	Unlocked LockCfg = 2 // LUT may be written
)

var lockCfgNames = []string{Locked: "Locked", Unlocked: "Unlocked"}

func (v LockCfg) String() string { return hal.EnumString("LockCfg", lockCfgNames, v) }

// LockConfig is the LUT lock register.
type LockConfig uint32

const lckCfg LockConfig = 0x3

func (r LockConfig) SetLockCfg(c LockCfg) LockConfig { return hal.SetField(r, lckCfg, uint32(c)) }
func (r LockConfig) LockCfg() LockCfg                { return LockCfg(hal.Field(r, lckCfg)) }

// LUTUp is the LUT update register.
type LUTUp uint32

const lutUp LUTUp = 1 << 0

// SetLUTUpdate pushes the LUT to the AXI read path. It must be written after
// changing the LUT and before XIP is enabled. The bit clears itself.
func (r LUTUp) SetLUTUpdate(set bool) LUTUp { return hal.SetFlag(r, lutUp, set) }
func (r LUTUp) LUTUpdate() bool             { return r&lutUp != 0 }

// TrainingPhaseCal selects how the trained phase is computed from the
// first and last passing taps.
type TrainingPhaseCal uint8

const (
	CalRoundDown TrainingPhaseCal = iota // (t1+t2)/2
	CalRoundUp                           // (t1+t2-1)/2+1
)

var trainingPhaseCalNames = []string{"RoundDown", "RoundUp"}

func (v TrainingPhaseCal) String() string {
	return hal.EnumString("TrainingPhaseCal", trainingPhaseCalNames, v)
}

// TrainingPattern is the data pattern used for DLL training. Codes 4 to 15
// are reserved.
type TrainingPattern uint8

const (
	PatternStuckAddress TrainingPattern = iota
	PatternRandom
	PatternInversion
	PatternCustom // from XSPI_TRAINING_PATTERN
)

var trainingPatternNames = []string{"StuckAddress", "Random", "Inversion", "Custom"}

func (v TrainingPattern) String() string {
	return hal.EnumString("TrainingPattern", trainingPatternNames, v)
}

// TrainingConfig is the DLL training configuration register.
type TrainingConfig uint32

const (
	trnPhaseCal   TrainingConfig = 1 << 24
	trnPatternSel TrainingConfig = 0xf << 16
	trnDataLen    TrainingConfig = 0xffff
)

func (r TrainingConfig) SetPhaseCal(c TrainingPhaseCal) TrainingConfig {
	return hal.SetField(r, trnPhaseCal, uint32(c))
}

func (r TrainingConfig) PhaseCal() TrainingPhaseCal {
	return TrainingPhaseCal(hal.Field(r, trnPhaseCal))
}

func (r TrainingConfig) SetPattern(p TrainingPattern) TrainingConfig {
	return hal.SetField(r, trnPatternSel, uint32(p))
}

func (r TrainingConfig) Pattern() TrainingPattern { return TrainingPattern(hal.Field(r, trnPatternSel)) }

func (r TrainingConfig) SetDataLen(n uint16) TrainingConfig {
	return hal.SetField(r, trnDataLen, uint32(n))
}

func (r TrainingConfig) DataLen() uint16 { return uint16(hal.Field(r, trnDataLen)) }

// DebugSel selects the internal signal group shown in XSPI_DEBUG.
type DebugSel uint32

const dbgSel DebugSel = 0xf

func (r DebugSel) SetDebugSel(sel uint8) DebugSel {
	hal.CheckRange(sel, 0x10, "Debug selection out of range (expected 0..=15)")
	return hal.SetField(r, dbgSel, uint32(sel))
}

func (r DebugSel) DebugSel() uint8 { return uint8(hal.Field(r, dbgSel)) }
