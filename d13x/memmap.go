package d13x

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
)

// Base addresses of the peripheral instances.
const (
	DMABase    uintptr = 0x1000_0000
	CEBase     uintptr = 0x1002_0000
	XSPIBase   uintptr = 0x1030_0000
	QSPI0Base  uintptr = 0x1040_0000
	QSPI1Base  uintptr = 0x1041_0000
	QSPI2Base  uintptr = 0x1042_0000
	QSPI3Base  uintptr = 0x1043_0000
	SDMC0Base  uintptr = 0x1044_0000
	SDMC1Base  uintptr = 0x1045_0000
	SysCfgBase uintptr = 0x1800_0000
	CMUBase    uintptr = 0x1802_0000
	SPIEncBase uintptr = 0x1810_0000
	AXICfgBase uintptr = 0x184f_e000
	GPIOBase   uintptr = 0x1870_0000
	UART0Base  uintptr = 0x1871_0000
	UART1Base  uintptr = 0x1871_1000
	UART2Base  uintptr = 0x1871_2000
	UART3Base  uintptr = 0x1871_3000
	UART4Base  uintptr = 0x1871_4000
	UART5Base  uintptr = 0x1871_5000
	UART6Base  uintptr = 0x1871_6000
	UART7Base  uintptr = 0x1871_7000
	WRIBase    uintptr = 0x1900_f000
	SIDBase    uintptr = 0x1901_0000
	RTCBase    uintptr = 0x1903_0000
	GTCBase    uintptr = 0x1905_0000
	I2C0Base   uintptr = 0x1922_0000
	I2C1Base   uintptr = 0x1922_1000
	I2C2Base   uintptr = 0x1922_2000
	CLINTBase  uintptr = 0x2000_0000
	CLICBase   uintptr = 0x2080_0000
)

var instances = map[string]uintptr{
	"DMA":     DMABase,
	"CE":      CEBase,
	"XSPI":    XSPIBase,
	"SDMC0":   SDMC0Base,
	"SDMC1":   SDMC1Base,
	"SYSCFG":  SysCfgBase,
	"CMU":     CMUBase,
	"SPI_ENC": SPIEncBase,
	"AXICFG":  AXICfgBase,
	"GPIO":    GPIOBase,
	"WRI":     WRIBase,
	"SID":     SIDBase,
	"RTC":     RTCBase,
	"GTC":     GTCBase,
	"CLINT":   CLINTBase,
	"CLIC":    CLICBase,
}

func init() {
	for i, base := range []uintptr{QSPI0Base, QSPI1Base, QSPI2Base, QSPI3Base} {
		instances["QSPI"+strconv.Itoa(i)] = base
	}
	for i := range 8 {
		instances["UART"+strconv.Itoa(i)] = UART0Base + uintptr(i)*0x1000
	}
	for i := range 3 {
		instances["I2C"+strconv.Itoa(i)] = I2C0Base + uintptr(i)*0x1000
	}
}

// Instance returns the base address of the peripheral instance with the
// given name, e.g. "QSPI2" or "SPI_ENC".
func Instance(name string) (base uintptr, ok bool) {
	base, ok = instances[name]
	return
}

// Instances returns the names of all peripheral instances in ascending
// address order.
func Instances() []string {
	return slices.SortedFunc(maps.Keys(instances), func(a, b string) int {
		return cmp.Compare(instances[a], instances[b])
	})
}
