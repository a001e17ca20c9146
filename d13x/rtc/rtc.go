// Package rtc provides the register interface of the real time clock in the
// always-on power domain.
//
// Besides the counter and alarm the block holds the analog controls of the
// always-on LDOs and the 32 kHz crystal, and a few backup registers that
// survive a reset. Writes to the always-on registers are only accepted after
// WriteKeyUnlock was written to the write key register.
package rtc

import "github.com/clktmr/artinchip/hal"

// RTC is a handle to the RTC register block.
type RTC struct {
	regs *Registers
}

// New returns a handle to the RTC register block at base. It must only be
// called once per peripheral.
func New(base uintptr) *RTC {
	return &RTC{regs: hal.Map[Registers](base)}
}

// Registers returns the register block.
func (p *RTC) Registers() *Registers {
	return p.regs
}

// WriteKeyUnlock is the write key value that allows writes to the always-on
// registers.
const WriteKeyUnlock = 0xac
