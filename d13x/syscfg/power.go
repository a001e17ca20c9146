package syscfg

import "github.com/clktmr/artinchip/hal"

// IRQControl is the comparator interrupt control register.
type IRQControl uint32

const (
	irqCmpRstEn IRQControl = 1 << 31
	irqCmpIRQEn IRQControl = 1 << 0
)

// EnableCmpReset makes a comparator event reset the system.
func (r IRQControl) EnableCmpReset() IRQControl  { return r | irqCmpRstEn }
func (r IRQControl) DisableCmpReset() IRQControl { return r &^ irqCmpRstEn }
func (r IRQControl) CmpResetEnabled() bool       { return r&irqCmpRstEn != 0 }

func (r IRQControl) EnableCmpIRQ() IRQControl  { return r | irqCmpIRQEn }
func (r IRQControl) DisableCmpIRQ() IRQControl { return r &^ irqCmpIRQEn }
func (r IRQControl) CmpIRQEnabled() bool       { return r&irqCmpIRQEn != 0 }

// IRQStatus is the comparator interrupt status register. The status bit is
// cleared by writing 1.
type IRQStatus uint32

const irqCmpSta IRQStatus = 1 << 0

// CmpIRQPending reports whether the comparator tripped. In low voltage
// detection mode this means the pin voltage dropped below the threshold, in
// high voltage detection mode that it rose above it.
func (r IRQStatus) CmpIRQPending() bool    { return r&irqCmpSta != 0 }
func (r IRQStatus) ClearCmpIRQ() IRQStatus { return r | irqCmpSta }

// LDO25Voltage is the output voltage of the 2.5 V LDO.
type LDO25Voltage uint8

const (
	LDO25V2_40 LDO25Voltage = iota
	LDO25V2_50
	LDO25V2_60
	LDO25V2_70
	LDO25V2_80
	LDO25V2_90
	LDO25V3_00
	LDO25V3_10
)

var ldo25VoltageNames = []string{"2.40V", "2.50V", "2.60V", "2.70V", "2.80V", "2.90V", "3.00V", "3.10V"}

func (v LDO25Voltage) String() string { return hal.EnumString("LDO25Voltage", ldo25VoltageNames, v) }

// LDO25Config is the LDO25 configuration register.
type LDO25Config uint32

const (
	ldo25LVDS0IBias     LDO25Config = 1 << 18
	ldo25XSPIDLLC1IBias LDO25Config = 1 << 17
	ldo25XSPIDLLC0IBias LDO25Config = 1 << 16
	ldo25BGCtrl         LDO25Config = 0xff << 8
	ldo25En             LDO25Config = 1 << 4
	ldo25Val            LDO25Config = 0x7
)

func (r LDO25Config) EnableLVDS0IBias() LDO25Config  { return r | ldo25LVDS0IBias }
func (r LDO25Config) DisableLVDS0IBias() LDO25Config { return r &^ ldo25LVDS0IBias }
func (r LDO25Config) LVDS0IBiasEnabled() bool        { return r&ldo25LVDS0IBias != 0 }

// EnableXSPIDLLC1IBias enables the bias current of the XSPI chip select 1
// DLL. It must be enabled before the DLL is used.
func (r LDO25Config) EnableXSPIDLLC1IBias() LDO25Config  { return r | ldo25XSPIDLLC1IBias }
func (r LDO25Config) DisableXSPIDLLC1IBias() LDO25Config { return r &^ ldo25XSPIDLLC1IBias }
func (r LDO25Config) XSPIDLLC1IBiasEnabled() bool        { return r&ldo25XSPIDLLC1IBias != 0 }

// EnableXSPIDLLC0IBias enables the bias current of the XSPI chip select 0
// DLL.
func (r LDO25Config) EnableXSPIDLLC0IBias() LDO25Config  { return r | ldo25XSPIDLLC0IBias }
func (r LDO25Config) DisableXSPIDLLC0IBias() LDO25Config { return r &^ ldo25XSPIDLLC0IBias }
func (r LDO25Config) XSPIDLLC0IBiasEnabled() bool        { return r&ldo25XSPIDLLC0IBias != 0 }

// SetBandgapCtrl sets the bandgap trimming value.
func (r LDO25Config) SetBandgapCtrl(v uint8) LDO25Config { return hal.SetField(r, ldo25BGCtrl, uint32(v)) }
func (r LDO25Config) BandgapCtrl() uint8                 { return uint8(hal.Field(r, ldo25BGCtrl)) }

func (r LDO25Config) EnableLDO25() LDO25Config  { return r | ldo25En }
func (r LDO25Config) DisableLDO25() LDO25Config { return r &^ ldo25En }
func (r LDO25Config) LDO25Enabled() bool        { return r&ldo25En != 0 }

func (r LDO25Config) SetLDO25Voltage(v LDO25Voltage) LDO25Config {
	return hal.SetField(r, ldo25Val, uint32(v))
}

func (r LDO25Config) LDO25Voltage() LDO25Voltage { return LDO25Voltage(hal.Field(r, ldo25Val)) }

// ATB2AnaSel selects the signal routed to the ATB2 analog test output.
type ATB2AnaSel uint8

const (
	ATB2In0 ATB2AnaSel = iota
	ATB2In1
	ATB2In2
	ATB2In3
)

var atb2AnaSelNames = []string{"ATB2_IN0", "ATB2_IN1", "ATB2_IN2", "ATB2_IN3"}

func (v ATB2AnaSel) String() string { return hal.EnumString("ATB2AnaSel", atb2AnaSelNames, v) }

// LDO18Voltage is the output voltage of the 1.8 V LDO.
type LDO18Voltage uint8

const (
	LDO18V1_71 LDO18Voltage = iota
	LDO18V1_74
	LDO18V1_77
	LDO18V1_80
	LDO18V1_83
	LDO18V1_86
	LDO18V1_89
	LDO18V1_92
)

var ldo18VoltageNames = []string{"1.71V", "1.74V", "1.77V", "1.80V", "1.83V", "1.86V", "1.89V", "1.92V"}

func (v LDO18Voltage) String() string { return hal.EnumString("LDO18Voltage", ldo18VoltageNames, v) }

// LDO18Config is the LDO18 configuration register.
type LDO18Config uint32

const (
	ldo18ATB2AnaEn  LDO18Config = 1 << 27
	ldo18ATB2AnaSel LDO18Config = 0x3 << 24
	ldo18PDFast     LDO18Config = 1 << 5
	ldo18En         LDO18Config = 1 << 4
	ldo18Val        LDO18Config = 0x7
)

func (r LDO18Config) EnableATB2Ana() LDO18Config  { return r | ldo18ATB2AnaEn }
func (r LDO18Config) DisableATB2Ana() LDO18Config { return r &^ ldo18ATB2AnaEn }
func (r LDO18Config) ATB2AnaEnabled() bool        { return r&ldo18ATB2AnaEn != 0 }

func (r LDO18Config) SetATB2AnaSel(sel ATB2AnaSel) LDO18Config {
	return hal.SetField(r, ldo18ATB2AnaSel, uint32(sel))
}

func (r LDO18Config) ATB2AnaSel() ATB2AnaSel { return ATB2AnaSel(hal.Field(r, ldo18ATB2AnaSel)) }

// EnableLDO18PDFast enables fast discharge of the LDO18 output when it is
// powered down.
func (r LDO18Config) EnableLDO18PDFast() LDO18Config  { return r | ldo18PDFast }
func (r LDO18Config) DisableLDO18PDFast() LDO18Config { return r &^ ldo18PDFast }
func (r LDO18Config) LDO18PDFastEnabled() bool        { return r&ldo18PDFast != 0 }

func (r LDO18Config) EnableLDO18() LDO18Config  { return r | ldo18En }
func (r LDO18Config) DisableLDO18() LDO18Config { return r &^ ldo18En }
func (r LDO18Config) LDO18Enabled() bool        { return r&ldo18En != 0 }

func (r LDO18Config) SetLDO18Voltage(v LDO18Voltage) LDO18Config {
	return hal.SetField(r, ldo18Val, uint32(v))
}

func (r LDO18Config) LDO18Voltage() LDO18Voltage { return LDO18Voltage(hal.Field(r, ldo18Val)) }

// LDO1xVoltage is the output voltage of the core LDO. The steps are 50 mV up
// to 1.40 V and 100 mV above.
type LDO1xVoltage uint8

const (
	LDO1xV0_90 LDO1xVoltage = iota
	LDO1xV0_95
	LDO1xV1_00
	LDO1xV1_05
	LDO1xV1_10
	LDO1xV1_15
	LDO1xV1_20
	LDO1xV1_25
	LDO1xV1_30
	LDO1xV1_35
	LDO1xV1_40
	LDO1xV1_50
	LDO1xV1_60
	LDO1xV1_70
	LDO1xV1_80
	LDO1xV1_90
)

var ldo1xVoltageNames = []string{
	"0.90V", "0.95V", "1.00V", "1.05V", "1.10V", "1.15V", "1.20V", "1.25V",
	"1.30V", "1.35V", "1.40V", "1.50V", "1.60V", "1.70V", "1.80V", "1.90V",
}

func (v LDO1xVoltage) String() string { return hal.EnumString("LDO1xVoltage", ldo1xVoltageNames, v) }

// LDO1xConfig is the core LDO configuration register.
type LDO1xConfig uint32

const (
	ldo1xSoftEn LDO1xConfig = 1 << 6
	ldo1PDFast  LDO1xConfig = 1 << 5
	ldo1xEn     LDO1xConfig = 1 << 4
	ldo1xVal    LDO1xConfig = 0xf
)

// EnableLDO1xSoftMode makes voltage changes ramp instead of stepping.
func (r LDO1xConfig) EnableLDO1xSoftMode() LDO1xConfig  { return r | ldo1xSoftEn }
func (r LDO1xConfig) DisableLDO1xSoftMode() LDO1xConfig { return r &^ ldo1xSoftEn }
func (r LDO1xConfig) LDO1xSoftModeEnabled() bool        { return r&ldo1xSoftEn != 0 }

func (r LDO1xConfig) EnableLDO1PDFast() LDO1xConfig  { return r | ldo1PDFast }
func (r LDO1xConfig) DisableLDO1PDFast() LDO1xConfig { return r &^ ldo1PDFast }
func (r LDO1xConfig) LDO1PDFastEnabled() bool        { return r&ldo1PDFast != 0 }

func (r LDO1xConfig) EnableLDO1x() LDO1xConfig  { return r | ldo1xEn }
func (r LDO1xConfig) DisableLDO1x() LDO1xConfig { return r &^ ldo1xEn }
func (r LDO1xConfig) LDO1xEnabled() bool        { return r&ldo1xEn != 0 }

func (r LDO1xConfig) SetLDO1xVoltage(v LDO1xVoltage) LDO1xConfig {
	return hal.SetField(r, ldo1xVal, uint32(v))
}

func (r LDO1xConfig) LDO1xVoltage() LDO1xVoltage { return LDO1xVoltage(hal.Field(r, ldo1xVal)) }

// CmpMode selects the comparator trip direction.
type CmpMode uint8

const (
	CmpLowVoltage CmpMode = iota
	CmpHighVoltage
)

var cmpModeNames = []string{"LowVoltage", "HighVoltage"}

func (v CmpMode) String() string { return hal.EnumString("CmpMode", cmpModeNames, v) }

// CmpVoltage is the comparator threshold.
type CmpVoltage uint8

const (
	CmpV0_90 CmpVoltage = iota
	CmpV0_85
	CmpV0_80
	CmpV0_75
	CmpV0_70
	CmpV0_65
	CmpV0_60
	CmpV0_55
)

var cmpVoltageNames = []string{"0.90V", "0.85V", "0.80V", "0.75V", "0.70V", "0.65V", "0.60V", "0.55V"}

func (v CmpVoltage) String() string { return hal.EnumString("CmpVoltage", cmpVoltageNames, v) }

// CompareConfig is the voltage comparator configuration register.
type CompareConfig uint32

const (
	cmpDB   CompareConfig = 0xff << 24
	cmpMode CompareConfig = 1 << 5
	cmpEn   CompareConfig = 1 << 4
	cmpSel  CompareConfig = 0x7
)

// SetCmpDebounce sets the comparator debounce time in clock cycles.
func (r CompareConfig) SetCmpDebounce(v uint8) CompareConfig { return hal.SetField(r, cmpDB, uint32(v)) }
func (r CompareConfig) CmpDebounce() uint8                   { return uint8(hal.Field(r, cmpDB)) }

func (r CompareConfig) SetCmpMode(m CmpMode) CompareConfig { return hal.SetField(r, cmpMode, uint32(m)) }
func (r CompareConfig) CmpMode() CmpMode                   { return CmpMode(hal.Field(r, cmpMode)) }

func (r CompareConfig) EnableCmp() CompareConfig  { return r | cmpEn }
func (r CompareConfig) DisableCmp() CompareConfig { return r &^ cmpEn }
func (r CompareConfig) CmpEnabled() bool          { return r&cmpEn != 0 }

func (r CompareConfig) SetCmpVoltage(v CmpVoltage) CompareConfig {
	return hal.SetField(r, cmpSel, uint32(v))
}

func (r CompareConfig) CmpVoltage() CmpVoltage { return CmpVoltage(hal.Field(r, cmpSel)) }

// USB0RExt is the USB0 external resistor calibration register.
type USB0RExt uint32

const (
	rextResCalEn  USB0RExt = 1 << 8
	rextResCalVal USB0RExt = 0xff
)

func (r USB0RExt) EnableResCal() USB0RExt  { return r | rextResCalEn }
func (r USB0RExt) DisableResCal() USB0RExt { return r &^ rextResCalEn }
func (r USB0RExt) ResCalEnabled() bool     { return r&rextResCalEn != 0 }

func (r USB0RExt) SetResCalVal(v uint8) USB0RExt { return hal.SetField(r, rextResCalVal, uint32(v)) }
func (r USB0RExt) ResCalVal() uint8              { return uint8(hal.Field(r, rextResCalVal)) }

// RoSel selects the ring oscillator measured by the process sensor. Codes 0
// and 4 are reserved.
type RoSel uint8

const (
	RoRVT40  RoSel = 1
	RoLVT40  RoSel = 2
	RoULVT40 RoSel = 3
	RoRVT50  RoSel = 5
	RoLVT50  RoSel = 6
	RoULVT50 RoSel = 7
)

var roSelNames = []string{
	RoRVT40:  "RVT40",
	RoLVT40:  "LVT40",
	RoULVT40: "ULVT40",
	RoRVT50:  "RVT50",
	RoLVT50:  "LVT50",
	RoULVT50: "ULVT50",
}

func (v RoSel) String() string { return hal.EnumString("RoSel", roSelNames, v) }

// PsenConfig is the process sensor configuration register.
type PsenConfig uint32

const (
	psenCntTime PsenConfig = 0xffff << 16
	psenRoSel   PsenConfig = 0x7 << 1
	psenStart   PsenConfig = 1 << 0
)

// SetCountTime sets the measurement window in APB clock cycles.
func (r PsenConfig) SetCountTime(t uint16) PsenConfig { return hal.SetField(r, psenCntTime, uint32(t)) }
func (r PsenConfig) CountTime() uint16                { return uint16(hal.Field(r, psenCntTime)) }

func (r PsenConfig) SetRoSel(sel RoSel) PsenConfig { return hal.SetField(r, psenRoSel, uint32(sel)) }
func (r PsenConfig) RoSel() RoSel                  { return RoSel(hal.Field(r, psenRoSel)) }

// SetPsenStart starts a measurement. The bit clears itself when it is done.
func (r PsenConfig) SetPsenStart(set bool) PsenConfig { return hal.SetFlag(r, psenStart, set) }
func (r PsenConfig) PsenStart() bool                  { return r&psenStart != 0 }

// PsenCount is the process sensor counter register.
type PsenCount uint32

func (r PsenCount) CountValue() uint16 { return uint16(r) }
