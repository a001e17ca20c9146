package syscfg

import "github.com/clktmr/artinchip/hal"

// FlashIOMap012 maps SiP flash io[0:2]. Codes 6 and 7 are reserved.
type FlashIOMap012 uint8

const (
	IOMapWpSoCs FlashIOMap012 = iota
	IOMapWpCsSo
	IOMapSoWpCs
	IOMapSoCsWp
	IOMapCsWpSo
	IOMapCsSoWp
)

var flashIOMap012Names = []string{"WP-SO-CS", "WP-CS-SO", "SO-WP-CS", "SO-CS-WP", "CS-WP-SO", "CS-SO-WP"}

func (v FlashIOMap012) String() string {
	return hal.EnumString("FlashIOMap012", flashIOMap012Names, v)
}

// FlashIOMap345 maps SiP flash io[3:5]. Codes 6 and 7 are reserved.
type FlashIOMap345 uint8

const (
	IOMapHoldSclkSi FlashIOMap345 = iota
	IOMapHoldSiSclk
	IOMapSclkHoldSi
	IOMapSclkSiHold
	IOMapSiHoldSclk
	IOMapSiSclkHold
)

var flashIOMap345Names = []string{
	"HOLD-SCLK-SI", "HOLD-SI-SCLK", "SCLK-HOLD-SI", "SCLK-SI-HOLD", "SI-HOLD-SCLK", "SI-SCLK-HOLD",
}

func (v FlashIOMap345) String() string {
	return hal.EnumString("FlashIOMap345", flashIOMap345Names, v)
}

// FlashSrcSel selects how the SiP flash is accessed.
type FlashSrcSel uint8

const (
	FlashNone FlashSrcSel = iota // interface disabled
	FlashPin                     // routed to pins for external devices
	FlashSPI0
	FlashSPI1
)

var flashSrcSelNames = []string{"None", "Pin", "SPI0", "SPI1"}

func (v FlashSrcSel) String() string { return hal.EnumString("FlashSrcSel", flashSrcSelNames, v) }

// FlashConfig is the SiP flash configuration register.
type FlashConfig uint32

const (
	flashIOMap012 FlashConfig = 0x7 << 12
	flashIOMap345 FlashConfig = 0x7 << 8
	flashSrcSel   FlashConfig = 0x3
)

// SetFlashIOMap012 sets the io[0:2] mapping. The boot ROM copies it from the
// eFuse.
func (r FlashConfig) SetFlashIOMap012(m FlashIOMap012) FlashConfig {
	return hal.SetField(r, flashIOMap012, uint32(m))
}

func (r FlashConfig) FlashIOMap012() FlashIOMap012 { return FlashIOMap012(hal.Field(r, flashIOMap012)) }

func (r FlashConfig) SetFlashIOMap345(m FlashIOMap345) FlashConfig {
	return hal.SetField(r, flashIOMap345, uint32(m))
}

func (r FlashConfig) FlashIOMap345() FlashIOMap345 { return FlashIOMap345(hal.Field(r, flashIOMap345)) }

func (r FlashConfig) SetFlashSrcSel(s FlashSrcSel) FlashConfig {
	return hal.SetField(r, flashSrcSel, uint32(s))
}

func (r FlashConfig) FlashSrcSel() FlashSrcSel { return FlashSrcSel(hal.Field(r, flashSrcSel)) }

// EncSel selects the position encoder interface routed to an encoder port.
type EncSel uint8

const (
	EncQEP  EncSel = iota // IO0=QEP_A, IO1=QEP_B, IO2=QEP_I
	EncEDAT               // IO0=EDAT_DE, IO1=EDAT_DIO, IO2=EDAT_CLK
	EncTA                 // IO0=TA_DE, IO1=TA_DIO
	EncBIS                // IO0=BIS_MA, IO1=BIS_SLO
)

var encSelNames = []string{"QEP", "EDAT", "TA", "BIS"}

func (v EncSel) String() string { return hal.EnumString("EncSel", encSelNames, v) }

// EncoderConfig is the encoder configuration register.
type EncoderConfig uint32

const (
	enc1Sel EncoderConfig = 0x3 << 16
	enc0Sel EncoderConfig = 0x3
)

func (r EncoderConfig) SetEnc1Sel(s EncSel) EncoderConfig { return hal.SetField(r, enc1Sel, uint32(s)) }
func (r EncoderConfig) Enc1Sel() EncSel                   { return EncSel(hal.Field(r, enc1Sel)) }
func (r EncoderConfig) SetEnc0Sel(s EncSel) EncoderConfig { return hal.SetField(r, enc0Sel, uint32(s)) }
func (r EncoderConfig) Enc0Sel() EncSel                   { return EncSel(hal.Field(r, enc0Sel)) }

// DRDMode is the USB0 dual role mode.
type DRDMode uint8

const (
	DRDHost DRDMode = iota
	DRDDevice
)

var drdModeNames = []string{"Host", "Device"}

func (v DRDMode) String() string { return hal.EnumString("DRDMode", drdModeNames, v) }

// USB0Config is the USB0 configuration register.
type USB0Config uint32

const usb0DRDMode USB0Config = 1 << 0

func (r USB0Config) SetDRDMode(m DRDMode) USB0Config { return hal.SetField(r, usb0DRDMode, uint32(m)) }
func (r USB0Config) DRDMode() DRDMode                { return DRDMode(hal.Field(r, usb0DRDMode)) }

// RMIIExtClkSel selects the RMII reference clock source.
type RMIIExtClkSel uint8

const (
	RMIIIntClk RMIIExtClkSel = iota
	RMIIExtClk
)

var rmiiExtClkSelNames = []string{"IntClk", "ExtClk"}

func (v RMIIExtClkSel) String() string {
	return hal.EnumString("RMIIExtClkSel", rmiiExtClkSelNames, v)
}

// EMACConfig is the EMAC configuration register.
type EMACConfig uint32

const (
	emacRefClkInv    EMACConfig = 1 << 29
	emacRefClkDly    EMACConfig = 0x1f << 24
	emacRxClkInv     EMACConfig = 1 << 23
	emacRxClkDly     EMACConfig = 0x1f << 18
	emacTxClkInv     EMACConfig = 1 << 17
	emacTxClkDly     EMACConfig = 0x1f << 12
	emacSwTxClkDiv2  EMACConfig = 0xf << 8
	emacSwTxClkDiv1  EMACConfig = 0xf << 4
	emacSwTxClkDivEn EMACConfig = 1 << 2
	emacRMIIExtClk   EMACConfig = 1 << 1
)

func (r EMACConfig) EnableRefClkInv() EMACConfig  { return r | emacRefClkInv }
func (r EMACConfig) DisableRefClkInv() EMACConfig { return r &^ emacRefClkInv }
func (r EMACConfig) RefClkInvEnabled() bool       { return r&emacRefClkInv != 0 }

// SetRefClkDelayChainSel sets the reference clock delay chain. It panics
// unless sel < 32.
func (r EMACConfig) SetRefClkDelayChainSel(sel uint8) EMACConfig {
	hal.CheckRange(sel, 0x20, "Reference clock delay chain selection out of range (expected 0..=31)")
	return hal.SetField(r, emacRefClkDly, uint32(sel))
}

func (r EMACConfig) RefClkDelayChainSel() uint8 { return uint8(hal.Field(r, emacRefClkDly)) }

func (r EMACConfig) EnableRxClkInv() EMACConfig  { return r | emacRxClkInv }
func (r EMACConfig) DisableRxClkInv() EMACConfig { return r &^ emacRxClkInv }
func (r EMACConfig) RxClkInvEnabled() bool       { return r&emacRxClkInv != 0 }

func (r EMACConfig) SetRxClkDelaySel(sel uint8) EMACConfig {
	hal.CheckRange(sel, 0x20, "Receive clock delay selection out of range (expected 0..=31)")
	return hal.SetField(r, emacRxClkDly, uint32(sel))
}

func (r EMACConfig) RxClkDelaySel() uint8 { return uint8(hal.Field(r, emacRxClkDly)) }

func (r EMACConfig) EnableTxClkInv() EMACConfig  { return r | emacTxClkInv }
func (r EMACConfig) DisableTxClkInv() EMACConfig { return r &^ emacTxClkInv }
func (r EMACConfig) TxClkInvEnabled() bool       { return r&emacTxClkInv != 0 }

func (r EMACConfig) SetTxClkDelayChainSel(sel uint8) EMACConfig {
	hal.CheckRange(sel, 0x20, "Transmit clock delay chain selection out of range (expected 0..=31)")
	return hal.SetField(r, emacTxClkDly, uint32(sel))
}

func (r EMACConfig) TxClkDelayChainSel() uint8 { return uint8(hal.Field(r, emacTxClkDly)) }

// SetSwTxClkDiv2 sets the second software TX clock divider. It panics unless
// div < 16.
func (r EMACConfig) SetSwTxClkDiv2(div uint8) EMACConfig {
	hal.CheckRange(div, 0x10, "Software transmit clock divider 2 out of range (expected 0..=15)")
	return hal.SetField(r, emacSwTxClkDiv2, uint32(div))
}

func (r EMACConfig) SwTxClkDiv2() uint8 { return uint8(hal.Field(r, emacSwTxClkDiv2)) }

func (r EMACConfig) SetSwTxClkDiv1(div uint8) EMACConfig {
	hal.CheckRange(div, 0x10, "Software transmit clock divider 1 out of range (expected 0..=15)")
	return hal.SetField(r, emacSwTxClkDiv1, uint32(div))
}

func (r EMACConfig) SwTxClkDiv1() uint8 { return uint8(hal.Field(r, emacSwTxClkDiv1)) }

func (r EMACConfig) EnableSwTxClkDiv() EMACConfig  { return r | emacSwTxClkDivEn }
func (r EMACConfig) DisableSwTxClkDiv() EMACConfig { return r &^ emacSwTxClkDivEn }
func (r EMACConfig) SwTxClkDivEnabled() bool       { return r&emacSwTxClkDivEn != 0 }

func (r EMACConfig) SetRMIIExtClkSel(s RMIIExtClkSel) EMACConfig {
	return hal.SetField(r, emacRMIIExtClk, uint32(s))
}

func (r EMACConfig) RMIIExtClkSel() RMIIExtClkSel { return RMIIExtClkSel(hal.Field(r, emacRMIIExtClk)) }
