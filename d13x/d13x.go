// Package d13x instantiates the peripherals of the ArtInChip D13x SoC.
//
// It holds the memory map of every peripheral instance and hands out one
// handle per instance through [Take]. RTC, SID, SPI_ENC, SYSCFG and XSPI
// handles give access to their register blocks. The other handles, like
// [QSPI] or [UART], only carry their instance in their type and report their
// base address.
package d13x

import (
	"sync/atomic"

	"github.com/clktmr/artinchip/d13x/rtc"
	"github.com/clktmr/artinchip/d13x/sid"
	"github.com/clktmr/artinchip/d13x/spienc"
	"github.com/clktmr/artinchip/d13x/syscfg"
	"github.com/clktmr/artinchip/d13x/xspi"
)

// Peripherals holds one handle per peripheral instance, in address order.
type Peripherals struct {
	DMA    DMA
	CE     CE
	XSPI   *xspi.XSPI
	QSPI0  QSPI[I0]
	QSPI1  QSPI[I1]
	QSPI2  QSPI[I2]
	QSPI3  QSPI[I3]
	SDMC0  SDMC[I0]
	SDMC1  SDMC[I1]
	SysCfg *syscfg.SysCfg
	CMU    CMU
	SPIEnc *spienc.SPIEnc
	AXICfg AXICfg
	GPIO   GPIO
	UART0  UART[I0]
	UART1  UART[I1]
	UART2  UART[I2]
	UART3  UART[I3]
	UART4  UART[I4]
	UART5  UART[I5]
	UART6  UART[I6]
	UART7  UART[I7]
	WRI    WRI
	SID    *sid.SID
	RTC    *rtc.RTC
	GTC    GTC
	I2C0   I2C[I0]
	I2C1   I2C[I1]
	I2C2   I2C[I2]
	CLINT  CLINT
	CLIC   CLIC
}

var taken atomic.Bool

// Take returns the peripherals of the SoC. It panics if called more than once.
func Take() *Peripherals {
	if !taken.CompareAndSwap(false, true) {
		panic("d13x: peripherals already taken")
	}
	// handles without a register model are zero values
	return &Peripherals{
		XSPI:   xspi.New(XSPIBase),
		SysCfg: syscfg.New(SysCfgBase),
		SPIEnc: spienc.New(SPIEncBase),
		SID:    sid.New(SIDBase),
		RTC:    rtc.New(RTCBase),
	}
}
