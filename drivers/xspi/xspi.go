// Package xspi sequences the register accesses of the XSPI controller.
//
// The register package exposes every field of the controller but leaves the
// order of accesses to the caller. The helpers here keep the invariants the
// hardware relies on: the LUT is only written while unlocked, LUT_UP is
// pulsed after every edit and before XIP is enabled, and DLL enable bits are
// only set in legal combinations.
package xspi

import (
	"errors"
	"fmt"

	xspireg "github.com/clktmr/artinchip/d13x/xspi"
	"github.com/clktmr/artinchip/hal"
)

// Instr is a single LUT instruction.
type Instr struct {
	Opcode  uint8 // 6 bit
	Pads    xspireg.Pads
	Operand uint8
}

// SeqLen is the number of instructions in one LUT group.
const SeqLen = 2 * 4

// Seq is the instruction sequence of one LUT group. Slots after the last
// instruction are zero.
type Seq []Instr

// Encode packs s into the four LUT entries of a group. Even instructions go
// into the low half of an entry, odd ones into the high half. It panics if s
// is longer than SeqLen, an opcode doesn't fit into 6 bits or Pads isn't one
// of Pads1 to Pads8.
func (s Seq) Encode() (lut [4]xspireg.LUT) {
	if len(s) > SeqLen {
		panic(fmt.Sprintf("xspi: sequence of %d instructions exceeds LUT group", len(s)))
	}
	for i, in := range s {
		hal.CheckRange(in.Pads, xspireg.Pads8+1, "IO configuration out of range (expected 0..=3)")
		e := &lut[i/2]
		if i%2 == 0 {
			*e = e.SetInstr0(in.Opcode).SetIOCfg0(in.Pads).SetOperand0(in.Operand)
		} else {
			*e = e.SetInstr1(in.Opcode).SetIOCfg1(in.Pads).SetOperand1(in.Operand)
		}
	}
	return
}

// Decode is the inverse of Encode. Trailing zero instructions are dropped.
func Decode(lut [4]xspireg.LUT) Seq {
	s := make(Seq, 0, SeqLen)
	for _, e := range lut {
		s = append(s,
			Instr{e.Instr0(), e.IOCfg0(), e.Operand0()},
			Instr{e.Instr1(), e.IOCfg1(), e.Operand1()})
	}
	for len(s) > 0 && s[len(s)-1] == (Instr{}) {
		s = s[:len(s)-1]
	}
	return s
}

func checkGroup(group int) {
	hal.CheckRange(uint(group), xspireg.NumGroups, "Start group out of range (expected 0..=7)")
}

// ProgramLUT writes seq into LUT group. The LUT is unlocked for the write,
// locked again and the update is pushed to the AXI read path.
func ProgramLUT(x *xspireg.XSPI, group int, seq Seq) {
	checkGroup(group)
	lut := seq.Encode()
	r := x.Registers()
	r.LockCfg.Store(xspireg.LockConfig(0).SetLockCfg(xspireg.Unlocked))
	for i, e := range lut {
		r.LUT[group*4+i].Store(e)
	}
	r.LockCfg.Store(xspireg.LockConfig(0).SetLockCfg(xspireg.Locked))
	r.LUTUp.Store(xspireg.LUTUp(0).SetLUTUpdate(true))
}

// ReadLUT returns the sequence stored in LUT group.
func ReadLUT(x *xspireg.XSPI, group int) Seq {
	checkGroup(group)
	r := x.Registers()
	var lut [4]xspireg.LUT
	for i := range lut {
		lut[i] = r.LUT[group*4+i].Load()
	}
	return Decode(lut)
}

// Start starts a transfer with the sequence in LUT group. The start register
// clears itself once the transfer is done.
func Start(x *xspireg.XSPI, group int) {
	checkGroup(group)
	x.Registers().Start.Store(xspireg.Start(0).SetStartGroup(uint8(group)))
}

// EnableXIP pushes the LUT to the AXI read path and enables execute in place.
func EnableXIP(x *xspireg.XSPI) {
	r := x.Registers()
	r.LUTUp.Store(xspireg.LUTUp(0).SetLUTUpdate(true))
	hal.Modify(&r.Ctrl, func(c xspireg.Control) xspireg.Control { return c.EnableXIP() })
}

const protocolErrors = xspireg.IntXccelaErr | xspireg.IntHyperbusErr | xspireg.IntOPIErr

// ProtocolErrors returns the pending error bits of st that are meaningful in
// mode. Protocol error bits of other modes are masked.
func ProtocolErrors(mode xspireg.Mode, st xspireg.IntStatus) xspireg.Interrupt {
	pending := st.Pending()
	errs := pending & xspireg.IntErrors &^ protocolErrors
	switch mode {
	case xspireg.ModeXccela:
		errs |= pending & xspireg.IntXccelaErr
	case xspireg.ModeHyperbus:
		errs |= pending & xspireg.IntHyperbusErr
	case xspireg.ModeOPI:
		errs |= pending & xspireg.IntOPIErr
	}
	return errs
}

var ErrTransfer = errors.New("xspi transfer error")

// CheckErrors clears all pending error bits and returns an error wrapping
// ErrTransfer if any of them is meaningful in the configured mode.
func CheckErrors(x *xspireg.XSPI) error {
	r := x.Registers()
	st := r.IntStatus.Load()
	if !st.IsPending(xspireg.IntErrors) {
		return nil
	}
	r.IntStatus.Store(xspireg.IntStatus(0).Clear(st.Pending() & xspireg.IntErrors))
	if errs := ProtocolErrors(r.Ctrl.Load().Mode(), st); errs != 0 {
		return fmt.Errorf("%w: %v", ErrTransfer, errs)
	}
	return nil
}
