package syscfg

import "github.com/clktmr/artinchip/hal"

// Registers is the SYSCFG register block.
type Registers struct {
	_           [0x8]byte
	IRQCtrl     hal.R32[IRQControl] `reg:"IRQ_CTL" bits:"CMP_RST_EN:31,CMP_IRQ_EN:0"`
	IRQStatus   hal.R32[IRQStatus]  `reg:"IRQ_STA" bits:"CMP_IRQ_STA:0"`
	_           [0x10]byte
	LDO25Cfg    hal.R32[LDO25Config] `reg:"LDO25_CFG" bits:"LVDS0_IBIAS_EN:18,XSPI_DLLC1_IBIAS_EN:17,XSPI_DLLC0_IBIAS_EN:16,BG_CTRL:15-8,LDO25_EN:4,LDO25_VAL:2-0"`
	LDO18Cfg    hal.R32[LDO18Config] `reg:"LDO18_CFG" bits:"ATB2_ANA_EN:27,ATB2_ANA_SEL:25-24,LDO18_PD_FAST:5,LDO18_EN:4,LDO18_VAL:2-0"`
	LDO1xCfg    hal.R32[LDO1xConfig] `reg:"LDO1x_CFG" bits:"LDO1X_SOFT_EN:6,LDO1_PD_FAST:5,LDO1X_EN:4,LDO1X_VAL:3-0"`
	_           [0x10]byte
	CmpCfg      hal.R32[CompareConfig] `reg:"CMP_CFG" bits:"CMP_DB:31-24,CMP_MODE:5,CMP_EN:4,CMP_SEL:2-0"`
	_           [0x8]byte
	USB0RExt    hal.R32[USB0RExt] `reg:"USB0_REXT" bits:"RES_CAL_EN:8,RES_CAL_VAL:7-0"`
	_           [0x74]byte
	PsenCfg     hal.R32[PsenConfig] `reg:"PSEN_CFG" bits:"CNT_TIME:31-16,RO_SEL:3-1,PSEN_START:0"`
	PsenCntVal  hal.RO32[PsenCount] `reg:"PSEN_CNT_VAL" bits:"CNT_VAL:15-0"`
	_           [0x38]byte
	SysSRAMPar  hal.U32              `reg:"SYS_SRAM_PAR"`
	CPUSRAMPar  hal.U32              `reg:"CPU_SRAM_PAR"`
	USBSRAMPar  hal.U32              `reg:"USB_SRAM_PAR"`
	VESRAMPar   hal.U32              `reg:"VE_SRAM_PAR"`
	GESRAMPar   hal.R32[GESRAMParam] `reg:"GE_SRAM_PAR" bits:"SRAM_PAR:15-0"`
	DESRAMPar   hal.U32              `reg:"DE_SRAM_PAR"`
	_           [0x28]byte
	SRAMClkCfg  hal.R32[SRAMClkConfig] `reg:"SRAM_CLK_CFG" bits:"XSPI:17,SDFM:16,AUDIO:15,MIPI:13,SPI:12,USB:11,UART:10,SD:9,CE:8,DE:7,GE:6,VE:5,DVP:4,GMAC:3,DMA:2,DDR:1,SYS:0"`
	_           [0x1c]byte
	SRAMMapCfg  hal.R32[SRAMMapConfig] `reg:"SRAM_MAP_CFG" bits:"AXI_MAT_S0_CFG:15-8,AXI_MAT_S1_SIZE:6-4,CPU_TCM_SRAM_ACLK_GATE:1,CPU_TCM_SRAM_CFG:0"`
	_           [0x8c]byte
	FlashCfg    hal.R32[FlashConfig]   `reg:"FLASH_CFG" bits:"FLASH_IOMAP_012:14-12,FLASH_IOMAP_345:10-8,FLASH_SRC_SEL:1-0"`
	EncoderCfg  hal.R32[EncoderConfig] `reg:"ENCODER_CFG" bits:"ENC1_SEL:17-16,ENC0_SEL:1-0"`
	_           [0x214]byte
	USB0Cfg     hal.R32[USB0Config] `reg:"USB0_CFG" bits:"DRD_MODE:0"`
	EMACCfg     hal.R32[EMACConfig] `reg:"EMAC_CFG" bits:"REFCLK_INV:29,REFCLK_DLY_CHAIN_SEL:28-24,RXCLK_INV:23,RXCLK_DLY_SEL:22-18,TXCLK_INV:17,TXCLK_DLY_CHAIN_SEL:16-12,SW_TXCLK_DIV2:11-8,SW_TXCLK_DIV1:7-4,SW_TXCLK_DIV_EN:2,RMII_EXTCLK_SEL:1"`
	_           [0xb34]byte
	ATBCMU      hal.R32[ATBCMUAnaTop] `reg:"ATB_CMU_ANA_TOP" bits:"CMU_ATBSEL:4-0"`
	ATBDLL      hal.R32[ATBDLLTopC]   `reg:"ATB_DLL_TOP_C" bits:"DLL1_ATB_SEL:14-12,DLL1_EN_ATB:8,DLL0_ATB_SEL:6-4,DLL0_EN_ATB:0"`
	ATBGPADC    hal.R32[ATBGPADC]     `reg:"ATB_GPADC" bits:"ATB_SEL:5-4,ATB_EN:0"`
	ATBMIPIDPHY hal.R32[ATBMIPIDPHY]  `reg:"ATB_MIPI_DPHY" bits:"ATB_SEL:5-4,ATB_EN:0"`
	ATBRTC      hal.R32[ATBRTCAnaTop] `reg:"ATB_RTC_ANA_TOP" bits:"ATB_SEL:5-4,ATB_EN:0"`
	ATBUSBPLL   hal.R32[ATBUSBPLLAfe] `reg:"ATB_USB_PLL_AFE" bits:"SUBPLL_ATB:4-0"`
	ATBUSBPHY   hal.R32[ATBUSBPHYAfe] `reg:"ATB_USB_PHY_AFE" bits:"SQRX_TEST:12-8,TX_TEST:5-4,ATB_OP:1,AVDD_ATB:0"`
	_           [0x98]byte
	Version     hal.RO32[uint32] `reg:"SYSCFG_VER"`
}
