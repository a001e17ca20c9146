package syscfg

import "github.com/clktmr/artinchip/hal"

// CMUATBSel selects the clock management unit signal on the analog test bus.
// Codes 29 to 31 are reserved.
type CMUATBSel uint8

const (
	CMUATBDisable CMUATBSel = iota
	CMUATBVbiasVbp
	CMUATBVbiasVbpc
	CMUATBVbiasVbn
	CMUATBVbiasVbnc
	CMUATBVbiasVfbb
	CMUATBLdoDvDv
	CMUATBLdoDvVbpc
	CMUATBLdoDvVbp
	CMUATBLdoDvVbnc
	CMUATBLdoDvVbn
	CMUATBLdoAvInt0Av
	CMUATBLdoAvInt0Vbpc
	CMUATBLdoAvInt0Vbp
	CMUATBLdoAvInt0Vbnc
	CMUATBLdoAvInt0Vbn
	CMUATBLdoAvInt1Av
	CMUATBLdoAvFra0Av
	CMUATBLdoAvFra0Vbpc
	CMUATBLdoAvFra0Vbp
	CMUATBLdoAvFra0Vbnc
	CMUATBLdoAvFra0Vbn
	CMUATBLdoAvFra1Av
	CMUATBLdoAvFra2Av
	CMUATBInt0IbCp
	CMUATBInt1IbCp
	CMUATBFra0IbCp
	CMUATBFra1IbCp
	CMUATBFra2IbCp
)

// Shared with SubpllATB up to LdoAvInt0Vbn.
var pllATBNames = []string{
	"Disable", "VbiasVbp", "VbiasVbpc", "VbiasVbn", "VbiasVbnc", "VbiasVfbb",
	"LdoDvDv", "LdoDvVbpc", "LdoDvVbp", "LdoDvVbnc", "LdoDvVbn",
	"LdoAvInt0Av", "LdoAvInt0Vbpc", "LdoAvInt0Vbp", "LdoAvInt0Vbnc", "LdoAvInt0Vbn",
}

var cmuATBSelNames = append(pllATBNames[:len(pllATBNames):len(pllATBNames)],
	"LdoAvInt1Av", "LdoAvFra0Av", "LdoAvFra0Vbpc", "LdoAvFra0Vbp", "LdoAvFra0Vbnc",
	"LdoAvFra0Vbn", "LdoAvFra1Av", "LdoAvFra2Av",
	"Int0IbCp", "Int1IbCp", "Fra0IbCp", "Fra1IbCp", "Fra2IbCp",
)

func (v CMUATBSel) String() string { return hal.EnumString("CMUATBSel", cmuATBSelNames, v) }

// ATBCMUAnaTop is the ATB_CMU_ANA_TOP register.
type ATBCMUAnaTop uint32

const cmuATBSel ATBCMUAnaTop = 0x1f

func (r ATBCMUAnaTop) SetCMUATBSel(s CMUATBSel) ATBCMUAnaTop {
	return hal.SetField(r, cmuATBSel, uint32(s))
}

func (r ATBCMUAnaTop) CMUATBSel() CMUATBSel { return CMUATBSel(hal.Field(r, cmuATBSel)) }

// DLLATBSel selects the XSPI DLL signal on the analog test bus. Code 7 is
// reserved.
type DLLATBSel uint8

const (
	DLLATBLockTest DLLATBSel = iota
	DLLATBVbn
	DLLATBVctrl
	DLLATBVbp
	DLLATBDvdd
	DLLATBLdoVfb
	DLLATBIcp
)

var dllATBSelNames = []string{"LockTest", "Vbn", "Vctrl", "Vbp", "Dvdd", "LdoVfb", "Icp"}

func (v DLLATBSel) String() string { return hal.EnumString("DLLATBSel", dllATBSelNames, v) }

// ATBDLLTopC is the ATB_DLL_TOP_C register.
type ATBDLLTopC uint32

const (
	dll1ATBSel ATBDLLTopC = 0x7 << 12
	dll1ATBEn  ATBDLLTopC = 1 << 8
	dll0ATBSel ATBDLLTopC = 0x7 << 4
	dll0ATBEn  ATBDLLTopC = 1 << 0
)

func (r ATBDLLTopC) SetDLL1ATBSel(s DLLATBSel) ATBDLLTopC { return hal.SetField(r, dll1ATBSel, uint32(s)) }
func (r ATBDLLTopC) DLL1ATBSel() DLLATBSel                { return DLLATBSel(hal.Field(r, dll1ATBSel)) }
func (r ATBDLLTopC) EnableDLL1ATB() ATBDLLTopC            { return r | dll1ATBEn }
func (r ATBDLLTopC) DisableDLL1ATB() ATBDLLTopC           { return r &^ dll1ATBEn }
func (r ATBDLLTopC) DLL1ATBEnabled() bool                 { return r&dll1ATBEn != 0 }

func (r ATBDLLTopC) SetDLL0ATBSel(s DLLATBSel) ATBDLLTopC { return hal.SetField(r, dll0ATBSel, uint32(s)) }
func (r ATBDLLTopC) DLL0ATBSel() DLLATBSel                { return DLLATBSel(hal.Field(r, dll0ATBSel)) }
func (r ATBDLLTopC) EnableDLL0ATB() ATBDLLTopC            { return r | dll0ATBEn }
func (r ATBDLLTopC) DisableDLL0ATB() ATBDLLTopC           { return r &^ dll0ATBEn }
func (r ATBDLLTopC) DLL0ATBEnabled() bool                 { return r&dll0ATBEn != 0 }

// The GPADC, MIPI DPHY and RTC test registers share one layout.
const (
	atbSel = 0x3 << 4
	atbEn  = 1 << 0
)

// GPADCATBSel selects the GPADC signal on the analog test bus.
type GPADCATBSel uint8

const (
	GPADCRtpVin GPADCATBSel = iota
	GPADCVrefp
	GPADCVrefn
	GPADCRtpTouch
)

var gpadcATBSelNames = []string{"RtpVin", "Vrefp", "Vrefn", "RtpTouch"}

func (v GPADCATBSel) String() string { return hal.EnumString("GPADCATBSel", gpadcATBSelNames, v) }

// ATBGPADC is the ATB_GPADC register.
type ATBGPADC uint32

func (r ATBGPADC) SetATBSel(s GPADCATBSel) ATBGPADC { return hal.SetField(r, atbSel, uint32(s)) }
func (r ATBGPADC) ATBSel() GPADCATBSel              { return GPADCATBSel(hal.Field(r, atbSel)) }
func (r ATBGPADC) EnableATB() ATBGPADC              { return r | atbEn }
func (r ATBGPADC) DisableATB() ATBGPADC             { return r &^ atbEn }
func (r ATBGPADC) ATBEnabled() bool                 { return r&atbEn != 0 }

// DPHYATBSel selects the MIPI DPHY signal on the analog test bus.
type DPHYATBSel uint8

const (
	DPHYVres DPHYATBSel = iota
	DPHYIpn5u
	DPHYV0p4
	DPHYVpck
)

var dphyATBSelNames = []string{"VresAtb", "Ipn5uAtb", "V0p4Atb", "Vpck"}

func (v DPHYATBSel) String() string { return hal.EnumString("DPHYATBSel", dphyATBSelNames, v) }

// ATBMIPIDPHY is the ATB_MIPI_DPHY register.
type ATBMIPIDPHY uint32

func (r ATBMIPIDPHY) SetATBSel(s DPHYATBSel) ATBMIPIDPHY { return hal.SetField(r, atbSel, uint32(s)) }
func (r ATBMIPIDPHY) ATBSel() DPHYATBSel                 { return DPHYATBSel(hal.Field(r, atbSel)) }
func (r ATBMIPIDPHY) EnableATB() ATBMIPIDPHY             { return r | atbEn }
func (r ATBMIPIDPHY) DisableATB() ATBMIPIDPHY            { return r &^ atbEn }
func (r ATBMIPIDPHY) ATBEnabled() bool                   { return r&atbEn != 0 }

// RTCATBSel selects the RTC analog signal on the analog test bus.
type RTCATBSel uint8

const (
	RTCVrefOut RTCATBSel = iota
	RTCVosc
	RTCIbpIbas
	RTCIbpVdet
)

var rtcATBSelNames = []string{"VrefOut", "Vosc", "IbpIbas", "IbpVdet"}

func (v RTCATBSel) String() string { return hal.EnumString("RTCATBSel", rtcATBSelNames, v) }

// ATBRTCAnaTop is the ATB_RTC_ANA_TOP register.
type ATBRTCAnaTop uint32

func (r ATBRTCAnaTop) SetATBSel(s RTCATBSel) ATBRTCAnaTop { return hal.SetField(r, atbSel, uint32(s)) }
func (r ATBRTCAnaTop) ATBSel() RTCATBSel                  { return RTCATBSel(hal.Field(r, atbSel)) }
func (r ATBRTCAnaTop) EnableATB() ATBRTCAnaTop            { return r | atbEn }
func (r ATBRTCAnaTop) DisableATB() ATBRTCAnaTop           { return r &^ atbEn }
func (r ATBRTCAnaTop) ATBEnabled() bool                   { return r&atbEn != 0 }

// SubpllATB selects the USB sub-PLL signal on the analog test bus. Codes 17
// to 31 are reserved.
type SubpllATB uint8

const (
	SubpllATBDisable SubpllATB = iota
	SubpllATBVbiasVbp
	SubpllATBVbiasVbpc
	SubpllATBVbiasVbn
	SubpllATBVbiasVbnc
	SubpllATBVbiasVfbb
	SubpllATBLdoDvDv
	SubpllATBLdoDvVbpc
	SubpllATBLdoDvVbp
	SubpllATBLdoDvVbnc
	SubpllATBLdoDvVbn
	SubpllATBLdoAvInt0Av
	SubpllATBLdoAvInt0Vbpc
	SubpllATBLdoAvInt0Vbp
	SubpllATBLdoAvInt0Vbnc
	SubpllATBLdoAvInt0Vbn
	SubpllATBInt0IbCp
)

var subpllATBNames = append(pllATBNames[:len(pllATBNames):len(pllATBNames)], "Int0IbCp")

func (v SubpllATB) String() string { return hal.EnumString("SubpllATB", subpllATBNames, v) }

// ATBUSBPLLAfe is the ATB_USB_PLL_AFE register.
type ATBUSBPLLAfe uint32

const subpllATB ATBUSBPLLAfe = 0x1f

func (r ATBUSBPLLAfe) SetSubpllATB(s SubpllATB) ATBUSBPLLAfe {
	return hal.SetField(r, subpllATB, uint32(s))
}

func (r ATBUSBPLLAfe) SubpllATB() SubpllATB { return SubpllATB(hal.Field(r, subpllATB)) }

// SqrxTest is a set of USB PHY squelch receiver test points.
type SqrxTest uint8

const (
	SqrxOffsetP SqrxTest = 0x01
	SqrxOffsetM SqrxTest = 0x02
	SqrxDp      SqrxTest = 0x08
	SqrxDm      SqrxTest = 0x10
)

// TxTestSel selects the USB PHY transmitter test point.
type TxTestSel uint8

const (
	TxTestATBOpAvddATB TxTestSel = iota // ATB_OP and AVDD_ATB outputs
	TxTestVref
	TxTestVreg
	TxTestRtune
)

var txTestSelNames = []string{"AtbOpAvddAtb", "Vref", "Vreg", "Rtune"}

func (v TxTestSel) String() string { return hal.EnumString("TxTestSel", txTestSelNames, v) }

// ATBUSBPHYAfe is the ATB_USB_PHY_AFE register.
type ATBUSBPHYAfe uint32

const (
	phySqrxTest ATBUSBPHYAfe = 0x1f << 8
	phyTxTest   ATBUSBPHYAfe = 0x3 << 4
	phyATBOp    ATBUSBPHYAfe = 1 << 1
	phyAvddATB  ATBUSBPHYAfe = 1 << 0
)

func (r ATBUSBPHYAfe) EnableSqrx(s SqrxTest) ATBUSBPHYAfe {
	return r | ATBUSBPHYAfe(s)<<8&phySqrxTest
}

func (r ATBUSBPHYAfe) DisableSqrx(s SqrxTest) ATBUSBPHYAfe {
	return r &^ (ATBUSBPHYAfe(s) << 8 & phySqrxTest)
}

// SqrxEnabled reports whether any test point in s is enabled.
func (r ATBUSBPHYAfe) SqrxEnabled(s SqrxTest) bool {
	return r&(ATBUSBPHYAfe(s)<<8&phySqrxTest) != 0
}

func (r ATBUSBPHYAfe) SetTxTestSel(s TxTestSel) ATBUSBPHYAfe {
	return hal.SetField(r, phyTxTest, uint32(s))
}

func (r ATBUSBPHYAfe) TxTestSel() TxTestSel { return TxTestSel(hal.Field(r, phyTxTest)) }

// EnableATBOp routes the LDO power transistor gate voltage to the test bus.
func (r ATBUSBPHYAfe) EnableATBOp() ATBUSBPHYAfe  { return r | phyATBOp }
func (r ATBUSBPHYAfe) DisableATBOp() ATBUSBPHYAfe { return r &^ phyATBOp }
func (r ATBUSBPHYAfe) ATBOpEnabled() bool         { return r&phyATBOp != 0 }

// EnableAvddATB routes the LDO output to the test bus.
func (r ATBUSBPHYAfe) EnableAvddATB() ATBUSBPHYAfe  { return r | phyAvddATB }
func (r ATBUSBPHYAfe) DisableAvddATB() ATBUSBPHYAfe { return r &^ phyAvddATB }
func (r ATBUSBPHYAfe) AvddATBEnabled() bool         { return r&phyAvddATB != 0 }
