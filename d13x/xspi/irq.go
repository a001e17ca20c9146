package xspi

import "strings"

// Interrupt is a set of XSPI interrupt sources. The interrupt enable and
// status registers share its layout.
type Interrupt uint32

const (
	IntRxReady           Interrupt = 1 << 0 // RX fifo reached its trigger level
	IntRxEmpty           Interrupt = 1 << 1
	IntRxFull            Interrupt = 1 << 2
	IntTxReady           Interrupt = 1 << 4 // TX fifo reached its trigger level
	IntTxEmpty           Interrupt = 1 << 5
	IntTxFull            Interrupt = 1 << 6
	IntRxOverflow        Interrupt = 1 << 8
	IntRxUnderflow       Interrupt = 1 << 9
	IntTxOverflow        Interrupt = 1 << 10
	IntTxUnderflow       Interrupt = 1 << 11
	IntCS0Done           Interrupt = 1 << 12
	IntCS1Done           Interrupt = 1 << 13
	IntCS0Timeout        Interrupt = 1 << 14
	IntCS1Timeout        Interrupt = 1 << 15
	IntLUTAddrOperandErr Interrupt = 1 << 16
	IntLUTInstrErr       Interrupt = 1 << 17
	IntAHBTransErr       Interrupt = 1 << 18
	IntAXITransErr       Interrupt = 1 << 19
	IntXccelaErr         Interrupt = 1 << 20
	IntHyperbusErr       Interrupt = 1 << 21
	IntOPIErr            Interrupt = 1 << 22
	IntAXIErr            Interrupt = 1 << 23
	IntXIPErr            Interrupt = 1 << 24

	// IntAll is the set of all interrupt sources.
	IntAll Interrupt = 0x1ff_ff77

	// IntErrors is the set of error sources, including protocol errors that
	// only apply in one Mode.
	IntErrors = IntRxOverflow | IntRxUnderflow | IntTxOverflow | IntTxUnderflow |
		IntCS0Timeout | IntCS1Timeout | IntLUTAddrOperandErr | IntLUTInstrErr |
		IntAHBTransErr | IntAXITransErr | IntXccelaErr | IntHyperbusErr |
		IntOPIErr | IntAXIErr | IntXIPErr
)

var interruptNames = [...]string{
	0: "RX_READY", 1: "RX_EMP", 2: "RX_FULL",
	4: "TX_READY", 5: "TX_EMP", 6: "TX_FULL",
	8: "RF_OVF", 9: "RF_UDF", 10: "TF_OVF", 11: "TF_UDF",
	12: "CS0_DONE", 13: "CS1_DONE", 14: "CS0_TO", 15: "CS1_TO",
	16: "LUT_ADDR_OPRAND_ERROR", 17: "LUT_INSTRUCTION_ERROR",
	18: "AHB_TRAN_ERROR", 19: "AXI_TRAN_ERROR",
	20: "XCCELA_ERROR", 21: "HYPERBUS_ERROR", 22: "OPI_ERROR",
	23: "AXI_ERROR", 24: "XIP_ERROR",
}

func (i Interrupt) String() string {
	var names []string
	for n, name := range interruptNames {
		if name != "" && i&(1<<n) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// IntEnable is the interrupt enable register.
type IntEnable uint32

// Enable returns r with the interrupts in i enabled.
func (r IntEnable) Enable(i Interrupt) IntEnable  { return r | IntEnable(i&IntAll) }
func (r IntEnable) Disable(i Interrupt) IntEnable { return r &^ IntEnable(i&IntAll) }

// Enabled reports whether all interrupts in i are enabled.
func (r IntEnable) Enabled(i Interrupt) bool { return Interrupt(r)&i == i }

// IntStatus is the interrupt status register. Status bits are cleared by
// writing 1.
type IntStatus uint32

// Pending returns the set of pending interrupts.
func (r IntStatus) Pending() Interrupt { return Interrupt(r) & IntAll }

// IsPending reports whether any interrupt in i is pending.
func (r IntStatus) IsPending(i Interrupt) bool { return Interrupt(r)&i != 0 }

// Clear returns r with the bits of i set, which clears them when written.
func (r IntStatus) Clear(i Interrupt) IntStatus { return r | IntStatus(i&IntAll) }
