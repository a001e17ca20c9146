package rtc

import "github.com/clktmr/artinchip/hal"

// Registers is the RTC register block.
type Registers struct {
	Ctrl      hal.R32[Control]   `reg:"RTC_CTL" bits:"RTC_IO_LEVEL:7,RTC_IO_IE:6,RTC_IO_SEL:5-4,ALARM_EN:2,TCNT_EN:0"`
	Init      hal.R32[Init]      `reg:"RTC_INIT" bits:"TCNT_INIT:0"`
	IRQEnable hal.R32[IRQEnable] `reg:"AON_IRQ_EN" bits:"RTC_32K_ERR_IRQ_EN:2,ALARM_IRQ_EN:0"`
	IRQStatus hal.R32[IRQStatus] `reg:"AON_IRQ_STS" bits:"RTC_32K_ERR_IRQ_STA:2,RTC_IO_STA:1,ALARM_IRQ_STA:0"`
	_         [0x10]byte
	Time      [4]hal.R32[Time]      `reg:"RTC_TIME" bits:"TIME_SET:7-0"`
	Alarm     [4]hal.R32[Alarm]     `reg:"RTC_ALARM" bits:"ALARM_SET:7-0"`
	Cali0     hal.R32[Calibration0] `reg:"RTC_CALI0" bits:"CALI_VAL:7-0"`
	Cali1     hal.R32[Calibration1] `reg:"RTC_CALI1" bits:"CALI_DIR:7,CALI_VAL:1-0"`
	_         [0x8]byte
	Analog0   hal.R32[Analog0] `reg:"RTC_ANALOG0" bits:"RC1M_ISEL:7,RC1M_EN:6,LDO18_BYPASS:4,LDO18_VOL:3-1,LDO18_EN:0"`
	Analog1   hal.R32[Analog1] `reg:"RTC_ANALOG1" bits:"PD_CUR_SEL:6-5,PD_CUR_EN:4,LDO11_VOL:3-1,LDO11_LPEN:0"`
	Analog2   hal.R32[Analog2] `reg:"RTC_ANALOG2" bits:"ATB_SEL:6-5,ATB_EN:4,XTAL32K_STRENGTH_UP:3,XTAL32K_DRV:1-0"`
	Analog3   hal.R32[Analog3] `reg:"RTC_ANALOG3" bits:"LDO12_XTAL32K_SW:1,XTAL32K_EN:0"`
	_         [0x9c]byte
	WriteKey  hal.R32[WriteKey]      `reg:"RTC_WR_KEY" bits:"WR_KEY:7-0"`
	BootInfo  hal.R32[BootInfo]      `reg:"RTC_BOOTINFO" bits:"REBOOT_REASON:7-4,BOOT_DEV:3-0"`
	SysBackup [15]hal.R32[SysBackup] `reg:"RTC_SYS_BAK" bits:"SYS_BAK:7-0"`
	_         [0x6c0]byte
	TimeCount hal.RO32[uint32]   `reg:"RTC_TCNT"`
	Detect32k hal.R32[Detect32k] `reg:"RTC_32K_DET" bits:"DET_LEVEL:25-16,DET_EN:0"`
	_         [0xf4]byte
	Version   hal.RO32[uint32] `reg:"RTC_VERSION"`
}

// IOOutputSel selects the function of the RTC_IO pin.
type IOOutputSel uint8

const (
	IODisabled IOOutputSel = iota
	IOActiveLow
	IOAlarmTrigger
	IOClockOutput
)

var ioOutputSelNames = []string{"Disabled", "ActiveLow", "AlarmTrigger", "ClockOutput"}

func (v IOOutputSel) String() string { return hal.EnumString("IOOutputSel", ioOutputSelNames, v) }

// Control is the RTC control register.
type Control uint32

const (
	ctlIOLevel Control = 1 << 7
	ctlIOInput Control = 1 << 6
	ctlIOSel   Control = 0x3 << 4
	ctlAlarmEn Control = 1 << 2
	ctlTcntEn  Control = 1 << 0
)

// RTCIOLevel reports the input level of the RTC_IO pin. Read-only.
func (r Control) RTCIOLevel() bool { return r&ctlIOLevel != 0 }

func (r Control) EnableRTCIOInput() Control  { return r | ctlIOInput }
func (r Control) DisableRTCIOInput() Control { return r &^ ctlIOInput }
func (r Control) RTCIOInputEnabled() bool    { return r&ctlIOInput != 0 }

func (r Control) SetRTCIOOutputSelection(sel IOOutputSel) Control {
	return hal.SetField(r, ctlIOSel, uint32(sel))
}

func (r Control) RTCIOOutputSelection() IOOutputSel {
	return IOOutputSel(hal.Field(r, ctlIOSel))
}

func (r Control) EnableAlarm() Control  { return r | ctlAlarmEn }
func (r Control) DisableAlarm() Control { return r &^ ctlAlarmEn }
func (r Control) AlarmEnabled() bool    { return r&ctlAlarmEn != 0 }

// EnableTimeCount starts the time counter.
func (r Control) EnableTimeCount() Control  { return r | ctlTcntEn }
func (r Control) DisableTimeCount() Control { return r &^ ctlTcntEn }
func (r Control) TimeCountEnabled() bool    { return r&ctlTcntEn != 0 }

// Init is the time counter initialization register. Setting TCNT_INIT loads
// the TIME registers into the counter.
type Init uint32

const initTcnt Init = 1 << 0

func (r Init) SetTimeCountInit(set bool) Init { return hal.SetFlag(r, initTcnt, set) }
func (r Init) TimeCountInit() bool            { return r&initTcnt != 0 }

// IRQEnable is the always-on interrupt enable register.
type IRQEnable uint32

const (
	irqEn32kErr IRQEnable = 1 << 2
	irqEnAlarm  IRQEnable = 1 << 0
)

func (r IRQEnable) Enable32kErrIRQ() IRQEnable  { return r | irqEn32kErr }
func (r IRQEnable) Disable32kErrIRQ() IRQEnable { return r &^ irqEn32kErr }
func (r IRQEnable) IRQ32kErrEnabled() bool      { return r&irqEn32kErr != 0 }

func (r IRQEnable) EnableAlarmIRQ() IRQEnable  { return r | irqEnAlarm }
func (r IRQEnable) DisableAlarmIRQ() IRQEnable { return r &^ irqEnAlarm }
func (r IRQEnable) AlarmIRQEnabled() bool      { return r&irqEnAlarm != 0 }

// IRQStatus is the always-on interrupt status register. Status bits are
// cleared by writing 1, so the Clear methods set the bit in the value to be
// written back.
type IRQStatus uint32

const (
	irqSta32kErr IRQStatus = 1 << 2
	irqStaIO     IRQStatus = 1 << 1
	irqStaAlarm  IRQStatus = 1 << 0
)

// IRQ32kErrPending reports a failure of the 32 kHz crystal.
func (r IRQStatus) IRQ32kErrPending() bool    { return r&irqSta32kErr != 0 }
func (r IRQStatus) Clear32kErrIRQ() IRQStatus { return r | irqSta32kErr }

func (r IRQStatus) RTCIOPending() bool    { return r&irqStaIO != 0 }
func (r IRQStatus) ClearRTCIO() IRQStatus { return r | irqStaIO }

func (r IRQStatus) AlarmIRQPending() bool    { return r&irqStaAlarm != 0 }
func (r IRQStatus) ClearAlarmIRQ() IRQStatus { return r | irqStaAlarm }

// Time is one byte of the 32-bit time counter preset. RTC_TIME0 holds the
// least significant byte.
type Time uint32

const timeSet Time = 0xff

func (r Time) SetTime(v uint8) Time { return hal.SetField(r, timeSet, uint32(v)) }
func (r Time) Time() uint8          { return uint8(hal.Field(r, timeSet)) }

// Alarm is one byte of the 32-bit alarm compare value.
type Alarm uint32

const alarmSet Alarm = 0xff

func (r Alarm) SetAlarm(v uint8) Alarm { return hal.SetField(r, alarmSet, uint32(v)) }
func (r Alarm) Alarm() uint8           { return uint8(hal.Field(r, alarmSet)) }

// Calibration0 holds the low byte of the 32 kHz clock calibration value.
type Calibration0 uint32

const cali0Val Calibration0 = 0xff

func (r Calibration0) SetCaliValueLow(v uint8) Calibration0 {
	return hal.SetField(r, cali0Val, uint32(v))
}

func (r Calibration0) CaliValueLow() uint8 { return uint8(hal.Field(r, cali0Val)) }

// CaliDirection is the direction in which the calibration value corrects
// the clock.
type CaliDirection uint8

const (
	CaliDecrease CaliDirection = iota
	CaliIncrease
)

var caliDirectionNames = []string{"Decrease", "Increase"}

func (v CaliDirection) String() string {
	return hal.EnumString("CaliDirection", caliDirectionNames, v)
}

// Calibration1 holds the calibration direction and the two high bits of the
// calibration value.
type Calibration1 uint32

const (
	cali1Dir Calibration1 = 1 << 7
	cali1Val Calibration1 = 0x3
)

func (r Calibration1) SetCaliDirection(dir CaliDirection) Calibration1 {
	return hal.SetField(r, cali1Dir, uint32(dir))
}

func (r Calibration1) CaliDirection() CaliDirection {
	return CaliDirection(hal.Field(r, cali1Dir))
}

// SetCaliValueHigh sets bits 9:8 of the calibration value. Panics if v > 3.
func (r Calibration1) SetCaliValueHigh(v uint8) Calibration1 {
	hal.CheckRange(v, 4, "Calibration value out of range (expected 0..=3)")
	return hal.SetField(r, cali1Val, uint32(v))
}

func (r Calibration1) CaliValueHigh() uint8 { return uint8(hal.Field(r, cali1Val)) }

// RC1MISel selects the bias current source of the 1 MHz RC oscillator.
type RC1MISel uint8

const (
	RC1MIBias RC1MISel = iota
	RC1MBandgap
)

var rc1mISelNames = []string{"IBias", "Bandgap"}

func (v RC1MISel) String() string { return hal.EnumString("RC1MISel", rc1mISelNames, v) }

// LDO18Voltage is the output voltage of the always-on 1.8 V LDO.
type LDO18Voltage uint8

const (
	LDO18V1_9 LDO18Voltage = iota
	LDO18V1_8
	LDO18V1_7
	LDO18V1_6
	LDO18V1_5
	LDO18V1_4
	LDO18V1_3
	LDO18V1_2
)

var ldo18VoltageNames = []string{"1.9V", "1.8V", "1.7V", "1.6V", "1.5V", "1.4V", "1.3V", "1.2V"}

func (v LDO18Voltage) String() string { return hal.EnumString("LDO18Voltage", ldo18VoltageNames, v) }

// Analog0 controls the 1 MHz RC oscillator and the 1.8 V LDO.
type Analog0 uint32

const (
	ana0RC1MISel   Analog0 = 1 << 7
	ana0RC1MEn     Analog0 = 1 << 6
	ana0LDO18Bypas Analog0 = 1 << 4
	ana0LDO18Vol   Analog0 = 0x7 << 1
	ana0LDO18En    Analog0 = 1 << 0
)

func (r Analog0) SetRC1MISel(sel RC1MISel) Analog0 { return hal.SetField(r, ana0RC1MISel, uint32(sel)) }
func (r Analog0) RC1MISel() RC1MISel               { return RC1MISel(hal.Field(r, ana0RC1MISel)) }

func (r Analog0) EnableRC1M() Analog0  { return r | ana0RC1MEn }
func (r Analog0) DisableRC1M() Analog0 { return r &^ ana0RC1MEn }
func (r Analog0) RC1MEnabled() bool    { return r&ana0RC1MEn != 0 }

func (r Analog0) EnableLDO18Bypass() Analog0  { return r | ana0LDO18Bypas }
func (r Analog0) DisableLDO18Bypass() Analog0 { return r &^ ana0LDO18Bypas }
func (r Analog0) LDO18BypassEnabled() bool    { return r&ana0LDO18Bypas != 0 }

func (r Analog0) SetLDO18Voltage(v LDO18Voltage) Analog0 {
	return hal.SetField(r, ana0LDO18Vol, uint32(v))
}

func (r Analog0) LDO18Voltage() LDO18Voltage { return LDO18Voltage(hal.Field(r, ana0LDO18Vol)) }

func (r Analog0) EnableLDO18() Analog0  { return r | ana0LDO18En }
func (r Analog0) DisableLDO18() Analog0 { return r &^ ana0LDO18En }
func (r Analog0) LDO18Enabled() bool    { return r&ana0LDO18En != 0 }

// LDO11Current is the pull-down current of the always-on 1.1 V LDO.
type LDO11Current uint8

const (
	LDO11I0_5uA LDO11Current = iota
	LDO11I1_0uA
	LDO11I2_0uA
	LDO11I3_0uA
)

var ldo11CurrentNames = []string{"0.5uA", "1.0uA", "2.0uA", "3.0uA"}

func (v LDO11Current) String() string { return hal.EnumString("LDO11Current", ldo11CurrentNames, v) }

// LDO11Voltage is the output voltage of the always-on 1.1 V LDO. Code 7 is
// reserved.
type LDO11Voltage uint8

const (
	LDO11V1_10 LDO11Voltage = iota
	LDO11V1_05
	LDO11V1_00
	LDO11V0_95
	LDO11V0_90
	LDO11V0_85
	LDO11V0_80
)

var ldo11VoltageNames = []string{"1.10V", "1.05V", "1.00V", "0.95V", "0.90V", "0.85V", "0.80V"}

func (v LDO11Voltage) String() string { return hal.EnumString("LDO11Voltage", ldo11VoltageNames, v) }

// Analog1 controls the always-on 1.1 V LDO.
type Analog1 uint32

const (
	ana1PDCurSel Analog1 = 0x3 << 5
	ana1PDCurEn  Analog1 = 1 << 4
	ana1LDO11Vol Analog1 = 0x7 << 1
	ana1LDO11LP  Analog1 = 1 << 0
)

func (r Analog1) SetPDCurrent(sel LDO11Current) Analog1 {
	return hal.SetField(r, ana1PDCurSel, uint32(sel))
}

func (r Analog1) PDCurrent() LDO11Current { return LDO11Current(hal.Field(r, ana1PDCurSel)) }

// EnableLDO11 enables the pull-down current of the 1.1 V LDO (PD_CUR_EN).
func (r Analog1) EnableLDO11() Analog1  { return r | ana1PDCurEn }
func (r Analog1) DisableLDO11() Analog1 { return r &^ ana1PDCurEn }
func (r Analog1) LDO11Enabled() bool    { return r&ana1PDCurEn != 0 }

func (r Analog1) SetLDO11Voltage(v LDO11Voltage) Analog1 {
	return hal.SetField(r, ana1LDO11Vol, uint32(v))
}

func (r Analog1) LDO11Voltage() LDO11Voltage { return LDO11Voltage(hal.Field(r, ana1LDO11Vol)) }

func (r Analog1) EnableLDO11LowPower() Analog1  { return r | ana1LDO11LP }
func (r Analog1) DisableLDO11LowPower() Analog1 { return r &^ ana1LDO11LP }
func (r Analog1) LDO11LowPowerEnabled() bool    { return r&ana1LDO11LP != 0 }

// ATBSel selects the analog test bus signal.
type ATBSel uint8

const (
	ATBVref ATBSel = iota
	ATBVosc
	ATBIbgIbi
	ATBIbgVdet
)

var atbSelNames = []string{"Vref", "Vosc", "IbgIbi", "IbgVdet"}

func (v ATBSel) String() string { return hal.EnumString("ATBSel", atbSelNames, v) }

// Analog2 controls the analog test bus and the 32 kHz crystal driver.
type Analog2 uint32

const (
	ana2ATBSel    Analog2 = 0x3 << 5
	ana2ATBEn     Analog2 = 1 << 4
	ana2XtalUp    Analog2 = 1 << 3
	ana2XtalDrive Analog2 = 0x3
)

func (r Analog2) SetATBSel(sel ATBSel) Analog2 { return hal.SetField(r, ana2ATBSel, uint32(sel)) }
func (r Analog2) ATBSel() ATBSel               { return ATBSel(hal.Field(r, ana2ATBSel)) }

func (r Analog2) EnableATB() Analog2  { return r | ana2ATBEn }
func (r Analog2) DisableATB() Analog2 { return r &^ ana2ATBEn }
func (r Analog2) ATBEnabled() bool    { return r&ana2ATBEn != 0 }

func (r Analog2) EnableXtal32kStrengthUp() Analog2  { return r | ana2XtalUp }
func (r Analog2) DisableXtal32kStrengthUp() Analog2 { return r &^ ana2XtalUp }
func (r Analog2) Xtal32kStrengthUpEnabled() bool    { return r&ana2XtalUp != 0 }

// SetXtal32kDrive sets the crystal drive strength. Panics if drv > 3.
func (r Analog2) SetXtal32kDrive(drv uint8) Analog2 {
	hal.CheckRange(drv, 4, "XTAL32K_DRV out of range (expected 0..=3)")
	return hal.SetField(r, ana2XtalDrive, uint32(drv))
}

func (r Analog2) Xtal32kDrive() uint8 { return uint8(hal.Field(r, ana2XtalDrive)) }

// Analog3 switches the 32 kHz crystal and its 1.2 V supply.
type Analog3 uint32

const (
	ana3LDO12Sw Analog3 = 1 << 1
	ana3XtalEn  Analog3 = 1 << 0
)

func (r Analog3) EnableLDO12Xtal32kSwitch() Analog3  { return r | ana3LDO12Sw }
func (r Analog3) DisableLDO12Xtal32kSwitch() Analog3 { return r &^ ana3LDO12Sw }
func (r Analog3) LDO12Xtal32kSwitchEnabled() bool    { return r&ana3LDO12Sw != 0 }

func (r Analog3) EnableXtal32k() Analog3  { return r | ana3XtalEn }
func (r Analog3) DisableXtal32k() Analog3 { return r &^ ana3XtalEn }
func (r Analog3) Xtal32kEnabled() bool    { return r&ana3XtalEn != 0 }

// WriteKey gates writes to the always-on registers, see WriteKeyUnlock.
type WriteKey uint32

const wrKey WriteKey = 0xff

func (r WriteKey) SetWriteKey(key uint8) WriteKey { return hal.SetField(r, wrKey, uint32(key)) }
func (r WriteKey) WriteKey() uint8                { return uint8(hal.Field(r, wrKey)) }

// BootInfo is a backup register reserved for the boot ROM and bootloader.
type BootInfo uint32

const (
	bootRebootReason BootInfo = 0xf << 4
	bootDev          BootInfo = 0xf
)

// SetRebootReason panics if reason > 15.
func (r BootInfo) SetRebootReason(reason uint8) BootInfo {
	hal.CheckRange(reason, 16, "REBOOT_REASON out of range (expected 0..=15)")
	return hal.SetField(r, bootRebootReason, uint32(reason))
}

func (r BootInfo) RebootReason() uint8 { return uint8(hal.Field(r, bootRebootReason)) }

// SetBootDevice panics if dev > 15.
func (r BootInfo) SetBootDevice(dev uint8) BootInfo {
	hal.CheckRange(dev, 16, "BOOT_DEV out of range (expected 0..=15)")
	return hal.SetField(r, bootDev, uint32(dev))
}

func (r BootInfo) BootDevice() uint8 { return uint8(hal.Field(r, bootDev)) }

// SysBackup is a general purpose backup register.
type SysBackup uint32

const sysBak SysBackup = 0xff

func (r SysBackup) SetSysBackup(v uint8) SysBackup { return hal.SetField(r, sysBak, uint32(v)) }
func (r SysBackup) SysBackup() uint8               { return uint8(hal.Field(r, sysBak)) }

// Detect32k configures the 32 kHz clock failure detection.
type Detect32k uint32

const (
	detLevel Detect32k = 0x3ff << 16
	detEn    Detect32k = 1 << 0
)

// SetLevel sets the detection level. Panics if level > 0x3ff.
func (r Detect32k) SetLevel(level uint16) Detect32k {
	hal.CheckRange(level, 0x400, "Detection level out of range (expected 0..=0x3FF)")
	return hal.SetField(r, detLevel, uint32(level))
}

func (r Detect32k) Level() uint16 { return uint16(hal.Field(r, detLevel)) }

func (r Detect32k) Enable() Detect32k  { return r | detEn }
func (r Detect32k) Disable() Detect32k { return r &^ detEn }
func (r Detect32k) Enabled() bool      { return r&detEn != 0 }
