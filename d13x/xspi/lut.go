package xspi

import "github.com/clktmr/artinchip/hal"

// LUTSize is the number of LUT entries. Entries are grouped in fours, each
// group holding one sequence.
const LUTSize = 32

// Pads is the number of data lines an instruction uses.
type Pads uint8

const (
	Pads1 Pads = iota
	Pads2
	Pads4
	Pads8
)

var padsNames = []string{"1IO", "2IO", "4IO", "8IO"}

func (v Pads) String() string { return hal.EnumString("Pads", padsNames, v) }

// LUT is one lookup table entry holding two instructions. Instruction 0 in
// the low half executes before instruction 1.
type LUT uint32

const (
	lutInstr1   LUT = 0x3f << 26
	lutIOCfg1   LUT = 0x3 << 24
	lutOperand1 LUT = 0xff << 16
	lutInstr0   LUT = 0x3f << 10
	lutIOCfg0   LUT = 0x3 << 8
	lutOperand0 LUT = 0xff
)

// SetInstr1 sets the opcode of instruction 1. It panics unless op < 64.
func (r LUT) SetInstr1(op uint8) LUT {
	hal.CheckRange(op, 0x40, "Instruction1 out of range (expected 0..=63)")
	return hal.SetField(r, lutInstr1, uint32(op))
}

func (r LUT) Instr1() uint8                 { return uint8(hal.Field(r, lutInstr1)) }
func (r LUT) SetIOCfg1(p Pads) LUT          { return hal.SetField(r, lutIOCfg1, uint32(p)) }
func (r LUT) IOCfg1() Pads                  { return Pads(hal.Field(r, lutIOCfg1)) }
func (r LUT) SetOperand1(operand uint8) LUT { return hal.SetField(r, lutOperand1, uint32(operand)) }
func (r LUT) Operand1() uint8               { return uint8(hal.Field(r, lutOperand1)) }

// SetInstr0 sets the opcode of instruction 0. It panics unless op < 64.
func (r LUT) SetInstr0(op uint8) LUT {
	hal.CheckRange(op, 0x40, "Instruction0 out of range (expected 0..=63)")
	return hal.SetField(r, lutInstr0, uint32(op))
}

func (r LUT) Instr0() uint8                 { return uint8(hal.Field(r, lutInstr0)) }
func (r LUT) SetIOCfg0(p Pads) LUT          { return hal.SetField(r, lutIOCfg0, uint32(p)) }
func (r LUT) IOCfg0() Pads                  { return Pads(hal.Field(r, lutIOCfg0)) }
func (r LUT) SetOperand0(operand uint8) LUT { return hal.SetField(r, lutOperand0, uint32(operand)) }
func (r LUT) Operand0() uint8               { return uint8(hal.Field(r, lutOperand0)) }
