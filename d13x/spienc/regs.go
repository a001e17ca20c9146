package spienc

import (
	"strings"

	"github.com/clktmr/artinchip/hal"
)

// Registers is the SPI_ENC register block.
type Registers struct {
	Ctrl      hal.R32[Control]    `reg:"SPIE_CTL" bits:"XIP_EN:16,SPI_SEL:13-12,KEY_START:0"`
	IntCtrl   hal.R32[IntControl] `reg:"SPIE_ICR" bits:"KEY_OVF:5,KEY_UDF:4,READ_HALF_EMPTY:3,READ_EMPTY_DATA:2,ENC_DEC_FINISHED:1,KEY_GEN:0"`
	IntStatus hal.R32[IntStatus]  `reg:"SPIE_ISR" bits:"KEY_OVF:5,KEY_UDF:4,READ_HALF_EMPTY:3,READ_EMPTY_DATA:2,ENC_DEC_FINISHED:1,KEY_GEN:0"`
	KeyCount  hal.RO32[uint32]    `reg:"SPIE_KCNT"`
	OutCount  hal.RO32[uint32]    `reg:"SPIE_OCNT"`
	Addr      hal.U32             `reg:"SPIE_ADDR"`
	Tweak     hal.U32             `reg:"SPIE_TWEAK"`
	CipherPos hal.U32             `reg:"SPIE_CPOS"`
	CipherLen hal.U32             `reg:"SPIE_CLEN"`
	_         [0xfd8]byte
	Version   hal.RO32[uint32] `reg:"SPIE_VER"`
}

// EncBus selects the SPI bus the engine is connected to. Code 3 is reserved.
type EncBus uint8

const (
	EncBypass EncBus = iota
	EncSPI0
	EncSPI1
)

var encBusNames = []string{"Bypass", "SPI0", "SPI1"}

func (v EncBus) String() string { return hal.EnumString("EncBus", encBusNames, v) }

// Control is the SPI_ENC control register.
type Control uint32

const (
	ctlXIPEn    Control = 1 << 16
	ctlSPISel   Control = 0x3 << 12
	ctlKeyStart Control = 1 << 0
)

// EnableXIPEnc enables encryption of XIP accesses. The engine then attaches
// itself to the SPI controller, and the bus selection and key start bit are
// ignored.
func (r Control) EnableXIPEnc() Control  { return r | ctlXIPEn }
func (r Control) DisableXIPEnc() Control { return r &^ ctlXIPEn }
func (r Control) XIPEncEnabled() bool    { return r&ctlXIPEn != 0 }

func (r Control) SetEncBus(bus EncBus) Control { return hal.SetField(r, ctlSPISel, uint32(bus)) }
func (r Control) EncBus() EncBus               { return EncBus(hal.Field(r, ctlSPISel)) }

// SetKeyStart starts or stops the key stream calculation. It must be started
// before a transfer and stopped after it has completed.
func (r Control) SetKeyStart(set bool) Control { return hal.SetFlag(r, ctlKeyStart, set) }
func (r Control) KeyStart() bool               { return r&ctlKeyStart != 0 }

// Interrupt is a set of SPI_ENC interrupt sources. It has the same layout in
// the interrupt control and status registers.
type Interrupt uint32

const (
	IntKeyGen         Interrupt = 1 << iota // first group key generated
	IntEncDecFinished                       // encryption/decryption finished
	IntReadEmptyData                        // read from empty data fifo
	IntReadHalfEmpty                        // data fifo half empty
	IntKeyUnderflow                         // group key fifo underflow
	IntKeyOverflow                          // group key fifo overflow

	intAll = IntKeyGen | IntEncDecFinished | IntReadEmptyData | IntReadHalfEmpty |
		IntKeyUnderflow | IntKeyOverflow
)

var interruptNames = [...]string{
	"KEY_GEN", "ENC_DEC_FINISHED", "READ_EMPTY_DATA", "READ_HALF_EMPTY", "KEY_UDF", "KEY_OVF",
}

func (i Interrupt) String() string {
	var names []string
	for n, name := range interruptNames {
		if i&(1<<n) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// IntControl is the interrupt enable register.
type IntControl uint32

// Enable returns r with the interrupts in i enabled.
func (r IntControl) Enable(i Interrupt) IntControl  { return r | IntControl(i&intAll) }
func (r IntControl) Disable(i Interrupt) IntControl { return r &^ IntControl(i&intAll) }

// Enabled reports whether all interrupts in i are enabled.
func (r IntControl) Enabled(i Interrupt) bool { return Interrupt(r)&i == i }

// IntStatus is the interrupt status register. Status bits are cleared by
// writing 1.
type IntStatus uint32

// Pending returns the pending interrupts.
func (r IntStatus) Pending() Interrupt { return Interrupt(r) & intAll }

// IsPending reports whether any interrupt in i is pending.
func (r IntStatus) IsPending(i Interrupt) bool { return Interrupt(r)&i != 0 }

// Clear returns r with the bits of i set, which clears them when written.
func (r IntStatus) Clear(i Interrupt) IntStatus { return r | IntStatus(i&intAll) }
