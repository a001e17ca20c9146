package syscfg

import (
	"strings"

	"github.com/clktmr/artinchip/hal"
)

// GESRAMParam is the graphics engine SRAM timing parameter register.
type GESRAMParam uint32

const geSRAMPar GESRAMParam = 0xffff

func (r GESRAMParam) SetSRAMParam(v uint16) GESRAMParam { return hal.SetField(r, geSRAMPar, uint32(v)) }
func (r GESRAMParam) SRAMParam() uint16                 { return uint16(hal.Field(r, geSRAMPar)) }

// SRAMClock is a set of SRAM clock gates.
type SRAMClock uint32

const (
	SRAMSys   SRAMClock = 1 << 0
	SRAMDDR   SRAMClock = 1 << 1
	SRAMDMA   SRAMClock = 1 << 2
	SRAMGMAC  SRAMClock = 1 << 3
	SRAMDVP   SRAMClock = 1 << 4
	SRAMVE    SRAMClock = 1 << 5
	SRAMGE    SRAMClock = 1 << 6
	SRAMDE    SRAMClock = 1 << 7
	SRAMCE    SRAMClock = 1 << 8
	SRAMSD    SRAMClock = 1 << 9
	SRAMUART  SRAMClock = 1 << 10
	SRAMUSB   SRAMClock = 1 << 11
	SRAMSPI   SRAMClock = 1 << 12
	SRAMMIPI  SRAMClock = 1 << 13
	SRAMAudio SRAMClock = 1 << 15
	SRAMSDFM  SRAMClock = 1 << 16
	SRAMXSPI  SRAMClock = 1 << 17

	sramClockAll SRAMClock = 0x3bfff
)

var sramClockNames = []string{
	"SYS", "DDR", "DMA", "GMAC", "DVP", "VE", "GE", "DE", "CE",
	"SD", "UART", "USB", "SPI", "MIPI", "", "AUDIO", "SDFM", "XSPI",
}

func (c SRAMClock) String() string {
	var names []string
	for i, name := range sramClockNames {
		if name != "" && c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// SRAMClkConfig is the SRAM clock configuration register. A set bit ungates
// the clock of the SRAM owned by that module.
type SRAMClkConfig uint32

func (r SRAMClkConfig) Enable(c SRAMClock) SRAMClkConfig  { return r | SRAMClkConfig(c&sramClockAll) }
func (r SRAMClkConfig) Disable(c SRAMClock) SRAMClkConfig { return r &^ SRAMClkConfig(c&sramClockAll) }

// Enabled reports whether all clocks in c are ungated.
func (r SRAMClkConfig) Enabled(c SRAMClock) bool { return SRAMClock(r)&c == c }

// AXIMatS0Area is a set of 128 KB areas of AXI matrix slave 0, starting at
// 0x30040000.
type AXIMatS0Area uint8

const (
	AXIArea0 AXIMatS0Area = 1 << iota // 0x30040000-0x3005ffff
	AXIArea1                          // 0x30060000-0x3007ffff
	AXIArea2                          // 0x30080000-0x3009ffff
	AXIArea3                          // 0x300a0000-0x300bffff
	AXIArea4                          // 0x300c0000-0x300dffff
	AXIArea5                          // 0x300e0000-0x300fffff
	AXIArea6                          // 0x30100000-0x3011ffff
	AXIArea7                          // 0x30120000-0x3013ffff
)

// AXIMatS1Size is the size of AXI matrix slave 1. Code 7 is reserved.
type AXIMatS1Size uint8

const (
	S1Size0K AXIMatS1Size = iota
	S1Size128K
	S1Size256K
	S1Size384K
	S1Size512K
	S1Size640K
	S1Size768K
)

var axiMatS1SizeNames = []string{"0KB", "128KB", "256KB", "384KB", "512KB", "640KB", "768KB"}

func (v AXIMatS1Size) String() string { return hal.EnumString("AXIMatS1Size", axiMatS1SizeNames, v) }

// SRAMMapConfig is the SRAM mapping configuration register.
type SRAMMapConfig uint32

const (
	mapS0Cfg       SRAMMapConfig = 0xff << 8
	mapS1Size      SRAMMapConfig = 0x7 << 4
	mapTCMAclkGate SRAMMapConfig = 1 << 1
	mapTCMCfg      SRAMMapConfig = 1 << 0
)

// EnableAXIMatS0Area enables writes to the slave 0 areas in a.
func (r SRAMMapConfig) EnableAXIMatS0Area(a AXIMatS0Area) SRAMMapConfig {
	return r | SRAMMapConfig(a)<<8
}

func (r SRAMMapConfig) DisableAXIMatS0Area(a AXIMatS0Area) SRAMMapConfig {
	return r &^ (SRAMMapConfig(a) << 8)
}

// AXIMatS0AreaEnabled reports whether any area in a is writable.
func (r SRAMMapConfig) AXIMatS0AreaEnabled(a AXIMatS0Area) bool {
	return r&(SRAMMapConfig(a)<<8) != 0
}

// SetAXIMatS1Size sets the size of slave 1. Slave 0 gets the remaining
// 1024 KB, or 768 KB if the CPU TCM is enabled.
func (r SRAMMapConfig) SetAXIMatS1Size(s AXIMatS1Size) SRAMMapConfig {
	return hal.SetField(r, mapS1Size, uint32(s))
}

func (r SRAMMapConfig) AXIMatS1Size() AXIMatS1Size { return AXIMatS1Size(hal.Field(r, mapS1Size)) }

// SetCPUTCMSRAMAclkGate gates the TCM SRAM bus clock. It must be cleared
// before the TCM is enabled to avoid clock glitches.
func (r SRAMMapConfig) SetCPUTCMSRAMAclkGate(set bool) SRAMMapConfig {
	return hal.SetFlag(r, mapTCMAclkGate, set)
}

func (r SRAMMapConfig) CPUTCMSRAMAclkGate() bool { return r&mapTCMAclkGate != 0 }

// EnableCPUTCM maps 128 KB ITCM and 64 KB DTCM out of the system SRAM.
func (r SRAMMapConfig) EnableCPUTCM() SRAMMapConfig  { return r | mapTCMCfg }
func (r SRAMMapConfig) DisableCPUTCM() SRAMMapConfig { return r &^ mapTCMCfg }
func (r SRAMMapConfig) CPUTCMEnabled() bool          { return r&mapTCMCfg != 0 }
