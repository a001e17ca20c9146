package xspi

import "github.com/clktmr/artinchip/hal"

// Registers is the XSPI register block.
type Registers struct {
	Ctrl        hal.R32[Control]      `reg:"XSPI_CTL" bits:"AXI_ABITER_EN:18,COLUMN_ADDRESS_CONTROL:17,PIN_CTL:16,BOUNDARY_CONTROL:14-13,BOUNDARY_EN:12,RESET_EN:9,RESET_LEVEL:8,TIMEOUT_EN:7,PARALLEL_MODE:6,XSPI_MODE_SEL:5-4,AXI_WRAP_BURST_CTL:3,XIP_EN:2,IDL_LOW_POWER_EN:1,XSPI_EN:0"`
	Clk         hal.R32[Clock]        `reg:"XSPI_CLK" bits:"CLK_SEL:12,CDR1_M:11-8,CDR2_N:7-0"`
	TransCtrl   hal.R32[TransControl] `reg:"XSPI_TCR" bits:"OPI_HOLD_EX:31-28,DQS_CLK_GATING_CTL:27-24,CS_RD_HOLD_CTL:23-20,CS_WR_HOLD_CTL:19-16,CS_SETUP_CTL:15-12,JUMP_INS_EN:11,DUMMY_TYPE:8,CS_LEVEL:7,CS_OWNER:6,CS_SEL:4,CS_POL:2,CPOL:1,CPHA:0"`
	Status      hal.RO32[Status]      `reg:"XSPI_STAS" bits:"AHB_TRANS:2,AXI_TRANS:1,XSPI_BUSY:0"`
	CS0Ctrl     hal.R32[CsControl]    `reg:"XSPI_CS0_CTL" bits:"WR_DELAY_CHAIN_SEL:28-24,WR_PHASE_SEL:21,WR_DELAY_CHAIN_EN:20,RD_PHASE:17-16,RD_DELAY_CYCLE:14-12,RD_DELAY_CHAIN_SEL:8-4,RD_VALID_CONTROL:3,RD_DELAY_CHAIN_EN:2,RD_SAMPLE_CTL:1-0"`
	CS0DLLCtrl  hal.R32[CsDLLControl] `reg:"XSPI_CS0_DCTL" bits:"FORCE_LOCK:29,EN_ATB:28,REG_ATBSEL:26-24,REG_BYPASS:21-20,REG_DLY:17-16,REG_ICP:13-12,PHASE_SEL:11-8,EN_LVS:5,EN_LDO:4,EN_BYPASS:3,EN_CP:2,EN_VCDL:1,EN_DLL:0"`
	CS1Ctrl     hal.R32[CsControl]    `reg:"XSPI_CS1_CTL" bits:"WR_DELAY_CHAIN_SEL:28-24,WR_PHASE_SEL:21,WR_DELAY_CHAIN_EN:20,RD_PHASE:17-16,RD_DELAY_CYCLE:14-12,RD_DELAY_CHAIN_SEL:8-4,RD_VALID_CONTROL:3,RD_DELAY_CHAIN_EN:2,RD_SAMPLE_CTL:1-0"`
	CS1DLLCtrl  hal.R32[CsDLLControl] `reg:"XSPI_CS1_DCTL" bits:"FORCE_LOCK:29,EN_ATB:28,REG_ATBSEL:26-24,REG_BYPASS:21-20,REG_DLY:17-16,REG_ICP:13-12,PHASE_SEL:11-8,EN_LVS:5,EN_LDO:4,EN_BYPASS:3,EN_CP:2,EN_VCDL:1,EN_DLL:0"`
	IntEnable   hal.R32[IntEnable]    `reg:"XSPI_IER" bits:"XIP_ERROR:24,AXI_ERROR:23,OPI_ERROR:22,HYPERBUS_ERROR:21,XCCELA_ERROR:20,AXI_TRAN_ERROR:19,AHB_TRAN_ERROR:18,LUT_INSTRUCTION_ERROR:17,LUT_ADDR_OPRAND_ERROR:16,CS1_TO:15,CS0_TO:14,CS1_DONE:13,CS0_DONE:12,TF_UDF:11,TF_OVF:10,RF_UDF:9,RF_OVF:8,TX_FULL:6,TX_EMP:5,TX_ERQ:4,RX_FULL:2,RX_EMP:1,RX_ERQ:0"`
	IntStatus   hal.R32[IntStatus]    `reg:"XSPI_ISR" bits:"XIP_ERROR:24,AXI_ERROR:23,OPI_ERROR:22,HYPERBUS_ERROR:21,XCCELA_ERROR:20,AXI_TRAN_ERROR:19,AHB_TRAN_ERROR:18,LUT_INSTRUCTION_ERROR:17,LUT_ADDR_OPRAND_ERROR:16,CS1_TO:15,CS0_TO:14,CS1_DONE:13,CS0_DONE:12,TF_UDF:11,TF_OVF:10,RF_UDF:9,RF_OVF:8,TX_FULL:6,TX_EMP:5,TX_READY:4,RX_FULL:2,RX_EMP:1,RX_READY:0"`
	FIFOCtrl    hal.R32[FIFOControl]  `reg:"XSPI_FCR" bits:"TX_FIFO_RST:31,TF_DRQ_EN:24,TX_TRIG_LEVEL:22-16,RF_RST:15,RF_DRQ_EN:8,RX_TRIG_LEVEL:6-0"`
	FIFOStatus  hal.RO32[FIFOStatus]  `reg:"XSPI_FSR" bits:"TB_WR:31,TB_CNT:30-28,TF_CNT:23-16,RB_WR:15,RB_CNT:14-12,RF_CNT:7-0"`
	Start       hal.R32[Start]        `reg:"XSPI_START" bits:"START_CTL:3-0"`
	Addr        hal.U32               `reg:"XSPI_ADDR"`
	Format      hal.R32[Format]       `reg:"XSPI_FMR" bits:"FORMAT_CMD:31-24,FORMAT_CMD_EX:23-16,FORMAT_SEL:2-0"`
	_           [0x4]byte
	BurstType   hal.R32[BurstType]      `reg:"XSPI_BTR" bits:"SPI_BURST_WRAPPED:15-8,SPI_BURST_LINEAR:7-0"`
	RdCmdCtrl   hal.R32[RdCmdControl]   `reg:"XSPI_RCC" bits:"READ_MODE_BYTE_EN:17,RDCMD_BYPASS_EN:16,RDCMD_BYPASS_CODE:15-8,RDCMD_NORMAL_CODE:7-0"`
	DMAModeCtrl hal.R32[DMAModeControl] `reg:"XSPI_NDMA_MODE_CTL" bits:"DMA_ACTIVE_MODE:7-6,ACTIVE_FALL_BEHAVIOR:5,DELAY_CLOCKS:4-0"`
	_           [0x4]byte
	Timeout     hal.U32             `reg:"XSPI_TO"`
	LockCfg     hal.R32[LockConfig] `reg:"XSPI_LCKCR" bits:"LOCK_CFG:1-0"`
	LUTUp       hal.R32[LUTUp]      `reg:"XSPI_LUT_UP" bits:"LUT_UP:0"`
	_           [0x4]byte
	CS0Sequence hal.R32[CsSequence] `reg:"XSPI_CS0_SEQUENCE" bits:"D7_SELD:30-28,D6_SELD:26-24,D5_SELD:22-20,D4_SELD:18-16,D3_SELD:14-12,D2_SELD:10-8,D1_SELD:6-4,D0_SELD:2-0"`
	CS1Sequence hal.R32[CsSequence] `reg:"XSPI_CS1_SEQUENCE" bits:"D7_SELD:30-28,D6_SELD:26-24,D5_SELD:22-20,D4_SELD:18-16,D3_SELD:14-12,D2_SELD:10-8,D1_SELD:6-4,D0_SELD:2-0"`
	IOCtrl      hal.R32[IOControl]  `reg:"XSPI_IO_CTL" bits:"CS1_IO_CFG:1,CS0_IO_CFG:0"`
	_           [0x4]byte
	CS0IOCfg1   hal.R32[CsIOConfig1]    `reg:"XSPI_CS0_IOCFG1" bits:"D7_PIN_PULL:29-28,D7_PIN_DRV:26-24,D6_PIN_PULL:21-20,D6_PIN_DRV:18-16,D5_PIN_PULL:13-12,D5_PIN_DRV:10-8,D4_PIN_PULL:5-4,D4_PIN_DRV:2-0"`
	CS0IOCfg2   hal.R32[CsIOConfig2]    `reg:"XSPI_CS0_IOCFG2" bits:"D3_PIN_PULL:29-28,D3_PIN_DRV:26-24,D2_PIN_PULL:21-20,D2_PIN_DRV:18-16,D1_PIN_PULL:13-12,D1_PIN_DRV:10-8,D0_PIN_PULL:5-4,D0_PIN_DRV:2-0"`
	CS0IOCfg3   hal.R32[CsIOConfig3]    `reg:"XSPI_CS0_IOCFG3" bits:"CS_PIN_PULL:29-28,CS_PIN_DRV:26-24,DQS_PIN_PULL:21-20,DQS_PIN_DRV:18-16,CK_PIN_PULL:13-12,CK_PIN_DRV:10-8,CKN_PIN_PULL:5-4,CKN_PIN_DRV:2-0"`
	CS0IOCfg4   hal.R32[CsIOConfig4]    `reg:"XSPI_CS0_IOCFG4" bits:"DM_PIN_PULL:5-4,DM_PIN_DRV:2-0"`
	CS1IOCfg1   hal.R32[CsIOConfig1]    `reg:"XSPI_CS1_IOCFG1" bits:"D7_PIN_PULL:29-28,D7_PIN_DRV:26-24,D6_PIN_PULL:21-20,D6_PIN_DRV:18-16,D5_PIN_PULL:13-12,D5_PIN_DRV:10-8,D4_PIN_PULL:5-4,D4_PIN_DRV:2-0"`
	CS1IOCfg2   hal.R32[CsIOConfig2]    `reg:"XSPI_CS1_IOCFG2" bits:"D3_PIN_PULL:29-28,D3_PIN_DRV:26-24,D2_PIN_PULL:21-20,D2_PIN_DRV:18-16,D1_PIN_PULL:13-12,D1_PIN_DRV:10-8,D0_PIN_PULL:5-4,D0_PIN_DRV:2-0"`
	CS1IOCfg3   hal.R32[CsIOConfig3]    `reg:"XSPI_CS1_IOCFG3" bits:"CS_PIN_PULL:29-28,CS_PIN_DRV:26-24,DQS_PIN_PULL:21-20,DQS_PIN_DRV:18-16,CK_PIN_PULL:13-12,CK_PIN_DRV:10-8,CKN_PIN_PULL:5-4,CKN_PIN_DRV:2-0"`
	CS1IOCfg4   hal.R32[CsIOConfig4]    `reg:"XSPI_CS1_IOCFG4" bits:"DM_PIN_PULL:5-4,DM_PIN_DRV:2-0"`
	TrainingCfg hal.R32[TrainingConfig] `reg:"XSPI_TRAINING_CFG" bits:"TRAINING_PHASE_CAL:24,TRAINING_PATTERN_SEL:19-16,DATA_LEN:15-0"`
	TrainingPat hal.U32                 `reg:"XSPI_TRAINING_PATTERN"`
	_           [0x68]byte
	LUT         [32]hal.R32[LUT] `reg:"XSPI_LUT" bits:"INSTR1:31-26,IO_CFG1:25-24,OPERAND1:23-16,INSTR0:15-10,IO_CFG0:9-8,OPERAND0:7-0"`
	_           [0x80]byte
	TxData      hal.U32 `reg:"XSPI_TDR"`
	_           [0xfc]byte
	RxData      hal.RO32[uint32] `reg:"XSPI_RDR"`
	_           [0xfc]byte
	Debug       hal.U32           `reg:"XSPI_DEBUG"`
	DebugSel    hal.R32[DebugSel] `reg:"XSPI_DEBUG_SEL" bits:"DEBUG_SEL:3-0"`
	_           [0xbf4]byte
	Version     hal.RO32[uint32] `reg:"XSPI_VERSION"`
}
