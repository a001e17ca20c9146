// Package syscfg provides the register interface of the system configuration
// block. It controls the on-chip LDOs and the voltage comparator, SRAM
// clocking and mapping, the SiP flash and encoder pin routing, the USB0 and
// EMAC PHY interfaces and the analog test bus.
package syscfg

import "github.com/clktmr/artinchip/hal"

// SysCfg is a handle to the SYSCFG register block.
type SysCfg struct {
	regs *Registers
}

// New returns a handle to the SYSCFG register block at base. It must only be
// called once per peripheral.
func New(base uintptr) *SysCfg {
	return &SysCfg{regs: hal.Map[Registers](base)}
}

// Registers returns the register block.
func (p *SysCfg) Registers() *Registers {
	return p.regs
}
