// Package spienc provides the register interface of the SPI encryption
// engine, which encrypts and decrypts data on the fly between a SPI
// controller and the attached flash, including execute-in-place fetches.
package spienc

import "github.com/clktmr/artinchip/hal"

// SPIEnc is a handle to the SPI_ENC register block.
type SPIEnc struct {
	regs *Registers
}

// New returns a handle to the SPI_ENC register block at base. It must only be
// called once per peripheral.
func New(base uintptr) *SPIEnc {
	return &SPIEnc{regs: hal.Map[Registers](base)}
}

// Registers returns the register block.
func (p *SPIEnc) Registers() *Registers {
	return p.regs
}
