package sid

import "github.com/clktmr/artinchip/hal"

// Registers is the SID register block.
type Registers struct {
	Ctrl      hal.R32[Control]   `reg:"EFUSE_CTL" bits:"SID_ERROR:29,BROM_PRIV_LOCK:28,EFUSE_OP_CODE:27-16,EFUSE_STATUS:12-8,EFUSE_READ_START:4,EFUSE_WRITE_START:0"`
	Addr      hal.R32[Address]   `reg:"EFUSE_ADDR" bits:"EFUSE_ADDR:8-0"`
	WData     hal.U32            `reg:"EFUSE_WDATA"`
	RData     hal.RO32[uint32]   `reg:"EFUSE_RDATA"`
	TimingLow hal.R32[TimingLow] `reg:"EFUSE_TIMING_LOW" bits:"TAEN_RD:31-24,TRD:23-16,TAEN_PGM:15-8,TPGM:7-0"`
	_         [0x6c]byte
	BROMPriv  hal.R32[BROMPriv] `reg:"BROM_PRIV" bits:"JTAG_UNLOCK:0"`
	_         [0x78]byte
	Version   hal.RO32[uint32] `reg:"SID_VER"`
	_         [0x100]byte
	Buffer    [64]hal.U32 `reg:"EFUSE_BUFFER"`
}

// EfuseStatus is the state of the eFuse state machine. The hardware encodes
// it one-hot, other values are not defined.
type EfuseStatus uint8

const (
	EfuseBootReading EfuseStatus = 1 << iota
	EfuseIdle
	EfuseProgramming
	EfuseReading
)

var efuseStatusNames = []string{
	EfuseBootReading: "BootReading",
	EfuseIdle:        "Idle",
	EfuseProgramming: "Programming",
	EfuseReading:     "Reading",
}

func (v EfuseStatus) String() string { return hal.EnumString("EfuseStatus", efuseStatusNames, v) }

// Control is the eFuse control register.
type Control uint32

const (
	ctlSIDError     Control = 1 << 29
	ctlBROMPrivLock Control = 1 << 28
	ctlOpCode       Control = 0xfff << 16
	ctlStatus       Control = 0x1f << 8
	ctlReadStart    Control = 1 << 4
	ctlWriteStart   Control = 1 << 0
)

// SIDError is set if a read or write was started while busy.
func (r Control) SetSIDError(set bool) Control { return hal.SetFlag(r, ctlSIDError, set) }
func (r Control) SIDError() bool               { return r&ctlSIDError != 0 }

// SetBROMPrivLock disables the boot ROM privileges until the next power-on
// reset.
func (r Control) SetBROMPrivLock(set bool) Control { return hal.SetFlag(r, ctlBROMPrivLock, set) }
func (r Control) BROMPrivLock() bool               { return r&ctlBROMPrivLock != 0 }

// SetEfuseOpCode panics if code > 0xfff. See EfuseOpCode.
func (r Control) SetEfuseOpCode(code uint16) Control {
	hal.CheckRange(code, 0x1000, "EFUSE_OP_CODE out of range (expected 0..=0xFFF)")
	return hal.SetField(r, ctlOpCode, uint32(code))
}

func (r Control) EfuseOpCode() uint16 { return uint16(hal.Field(r, ctlOpCode)) }

// EfuseStatus is read-only.
func (r Control) EfuseStatus() EfuseStatus { return EfuseStatus(hal.Field(r, ctlStatus)) }

func (r Control) SetEfuseReadStart(set bool) Control { return hal.SetFlag(r, ctlReadStart, set) }
func (r Control) EfuseReadStart() bool               { return r&ctlReadStart != 0 }

func (r Control) SetEfuseWriteStart(set bool) Control { return hal.SetFlag(r, ctlWriteStart, set) }
func (r Control) EfuseWriteStart() bool               { return r&ctlWriteStart != 0 }

// Address is the eFuse address register. Addresses are byte offsets into the
// eFuse array, but accesses are 32 bits wide so the two low bits must be 0.
type Address uint32

const addrEfuse Address = 0x1ff

// SetEfuseAddr panics if addr > 0x1ff.
func (r Address) SetEfuseAddr(addr uint16) Address {
	hal.CheckRange(addr, 0x200, "EFUSE_ADDR out of range (expected 0..=0x1FF)")
	return hal.SetField(r, addrEfuse, uint32(addr))
}

func (r Address) EfuseAddr() uint16 { return uint16(hal.Field(r, addrEfuse)) }

// TimingLow holds the eFuse access timings, in clock cycles.
type TimingLow uint32

const (
	tmgAenRd  TimingLow = 0xff << 24
	tmgRd     TimingLow = 0xff << 16
	tmgAenPgm TimingLow = 0xff << 8
	tmgPgm    TimingLow = 0xff
)

func (r TimingLow) SetReadDataProcTime(cycles uint8) TimingLow {
	return hal.SetField(r, tmgAenRd, uint32(cycles))
}

func (r TimingLow) ReadDataProcTime() uint8 { return uint8(hal.Field(r, tmgAenRd)) }

func (r TimingLow) SetReadHighLevelDuration(cycles uint8) TimingLow {
	return hal.SetField(r, tmgRd, uint32(cycles))
}

func (r TimingLow) ReadHighLevelDuration() uint8 { return uint8(hal.Field(r, tmgRd)) }

func (r TimingLow) SetWriteDataProcTime(cycles uint8) TimingLow {
	return hal.SetField(r, tmgAenPgm, uint32(cycles))
}

func (r TimingLow) WriteDataProcTime() uint8 { return uint8(hal.Field(r, tmgAenPgm)) }

func (r TimingLow) SetWriteHighLevelDuration(cycles uint8) TimingLow {
	return hal.SetField(r, tmgPgm, uint32(cycles))
}

func (r TimingLow) WriteHighLevelDuration() uint8 { return uint8(hal.Field(r, tmgPgm)) }

// BROMPriv is the boot ROM privilege register.
type BROMPriv uint32

const privJTAGUnlock BROMPriv = 1 << 0

// EnableJTAGUnlock overrides the JTAG lock eFuse. It has no effect once the
// BROM privilege lock is set.
func (r BROMPriv) EnableJTAGUnlock() BROMPriv  { return r | privJTAGUnlock }
func (r BROMPriv) DisableJTAGUnlock() BROMPriv { return r &^ privJTAGUnlock }
func (r BROMPriv) JTAGUnlockEnabled() bool     { return r&privJTAGUnlock != 0 }
