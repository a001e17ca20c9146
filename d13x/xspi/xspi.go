// Package xspi provides the register interface of the expanded SPI
// controller. The controller drives SPI, OPI, HyperBus and Xccela memories
// on two chip selects. Transactions are either one of the canned formats of
// the format register or custom sequences read from a 32 entry lookup table
// (LUT), two instructions per entry.
//
// The register layer is mechanical. Sequencing rules, like unlocking the LUT
// before writing it and pulsing LUT_UP before enabling XIP, are left to the
// caller; see package drivers/xspi for helpers that follow them.
package xspi

import "github.com/clktmr/artinchip/hal"

// XSPI is a handle to the XSPI register block.
type XSPI struct {
	regs *Registers
}

// New returns a handle to the XSPI register block at base. It must only be
// called once per peripheral.
func New(base uintptr) *XSPI {
	return &XSPI{regs: hal.Map[Registers](base)}
}

// Registers returns the register block.
func (p *XSPI) Registers() *Registers {
	return p.regs
}

// ChipSelect returns the per chip select registers of cs.
func (p *XSPI) ChipSelect(cs CsSel) ChipSelectRegs {
	r := p.regs
	if cs == Cs1 {
		return ChipSelectRegs{
			&r.CS1Ctrl, &r.CS1DLLCtrl, &r.CS1Sequence,
			&r.CS1IOCfg1, &r.CS1IOCfg2, &r.CS1IOCfg3, &r.CS1IOCfg4,
		}
	}
	return ChipSelectRegs{
		&r.CS0Ctrl, &r.CS0DLLCtrl, &r.CS0Sequence,
		&r.CS0IOCfg1, &r.CS0IOCfg2, &r.CS0IOCfg3, &r.CS0IOCfg4,
	}
}

// ChipSelectRegs groups the registers that exist once per chip select.
type ChipSelectRegs struct {
	Ctrl     *hal.R32[CsControl]
	DLLCtrl  *hal.R32[CsDLLControl]
	Sequence *hal.R32[CsSequence]
	IOCfg1   *hal.R32[CsIOConfig1]
	IOCfg2   *hal.R32[CsIOConfig2]
	IOCfg3   *hal.R32[CsIOConfig3]
	IOCfg4   *hal.R32[CsIOConfig4]
}
