package d13x

import "strconv"

// Handle is a peripheral instance without a register model. It only knows
// where the instance lives.
type Handle interface {
	Base() uintptr
	String() string
}

// I0 to I7 select one instance of a peripheral that exists more than once.
// The index is part of the handle type, so a QSPI[I0] can't be used where a
// QSPI[I1] is expected.
type (
	I0 struct{}
	I1 struct{}
	I2 struct{}
	I3 struct{}
	I4 struct{}
	I5 struct{}
	I6 struct{}
	I7 struct{}
)

func (I0) index() int { return 0 }
func (I1) index() int { return 1 }
func (I2) index() int { return 2 }
func (I3) index() int { return 3 }
func (I4) index() int { return 4 }
func (I5) index() int { return 5 }
func (I6) index() int { return 6 }
func (I7) index() int { return 7 }

// The index sets limit each peripheral to the instances the SoC has.
type (
	QSPIIndex interface {
		I0 | I1 | I2 | I3
		index() int
	}
	SDMCIndex interface {
		I0 | I1
		index() int
	}
	UARTIndex interface {
		I0 | I1 | I2 | I3 | I4 | I5 | I6 | I7
		index() int
	}
	I2CIndex interface {
		I0 | I1 | I2
		index() int
	}
)

// QSPI is quad SPI controller I.
type QSPI[I QSPIIndex] struct{}

func (QSPI[I]) Base() uintptr {
	var i I
	return QSPI0Base + uintptr(i.index())*0x1_0000
}

func (QSPI[I]) String() string {
	var i I
	return "QSPI" + strconv.Itoa(i.index())
}

// SDMC is SD/MMC host controller I.
type SDMC[I SDMCIndex] struct{}

func (SDMC[I]) Base() uintptr {
	var i I
	return SDMC0Base + uintptr(i.index())*0x1_0000
}

func (SDMC[I]) String() string {
	var i I
	return "SDMC" + strconv.Itoa(i.index())
}

// UART is UART I.
type UART[I UARTIndex] struct{}

func (UART[I]) Base() uintptr {
	var i I
	return UART0Base + uintptr(i.index())*0x1000
}

func (UART[I]) String() string {
	var i I
	return "UART" + strconv.Itoa(i.index())
}

// I2C is I2C controller I.
type I2C[I I2CIndex] struct{}

func (I2C[I]) Base() uintptr {
	var i I
	return I2C0Base + uintptr(i.index())*0x1000
}

func (I2C[I]) String() string {
	var i I
	return "I2C" + strconv.Itoa(i.index())
}

// Single instance peripherals without a register model.
type (
	DMA    struct{}
	CE     struct{} // crypto engine
	CMU    struct{} // clock management unit
	AXICfg struct{}
	GPIO   struct{}
	WRI    struct{} // warm reset information
	GTC    struct{} // generic timer
	CLINT  struct{}
	CLIC   struct{}
)

func (DMA) Base() uintptr    { return DMABase }
func (CE) Base() uintptr     { return CEBase }
func (CMU) Base() uintptr    { return CMUBase }
func (AXICfg) Base() uintptr { return AXICfgBase }
func (GPIO) Base() uintptr   { return GPIOBase }
func (WRI) Base() uintptr    { return WRIBase }
func (GTC) Base() uintptr    { return GTCBase }
func (CLINT) Base() uintptr  { return CLINTBase }
func (CLIC) Base() uintptr   { return CLICBase }

func (DMA) String() string    { return "DMA" }
func (CE) String() string     { return "CE" }
func (CMU) String() string    { return "CMU" }
func (AXICfg) String() string { return "AXICFG" }
func (GPIO) String() string   { return "GPIO" }
func (WRI) String() string    { return "WRI" }
func (GTC) String() string    { return "GTC" }
func (CLINT) String() string  { return "CLINT" }
func (CLIC) String() string   { return "CLIC" }
