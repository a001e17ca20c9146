// Package sid provides the register interface of the secure ID controller,
// which reads and programs the on-chip eFuse array.
//
// A read or write is started by writing EfuseOpCode together with the read or
// write start bit of the control register. The start bit clears itself once
// the operation has completed. The eFuse contents are mirrored into the
// buffer registers by the boot ROM.
package sid

import "github.com/clktmr/artinchip/hal"

// EfuseOpCode must accompany every eFuse read or write start.
const EfuseOpCode = 0xa1c

// SID is a handle to the SID register block.
type SID struct {
	regs *Registers
}

// New returns a handle to the SID register block at base. It must only be
// called once per peripheral.
func New(base uintptr) *SID {
	return &SID{regs: hal.Map[Registers](base)}
}

// Registers returns the register block.
func (p *SID) Registers() *Registers {
	return p.regs
}
