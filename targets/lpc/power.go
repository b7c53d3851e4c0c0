package lpc

// Power gates the converter's supply and bus clock.
type Power interface {
	PowerOn()
}

// System control block offsets (LPC17xx/23xx)
const (
	scPCONP    = 0x0C4
	scPCLKSEL0 = 0x1A8
)

const (
	pconpADC         = 1 << 12
	pclkADCPos       = 24
	pclkADCMask      = 0x3 << pclkADCPos
	pclkADCDivideBy1 = 0x1 << pclkADCPos
)

// SCPower powers the converter through PCONP and feeds it CCLK/1 through
// PCLKSEL0, as on the LPC1768 and LPC2368.
type SCPower struct {
	pconp    Register
	pclksel0 Register
}

func NewSCPower(sc Block) *SCPower {
	return &SCPower{
		pconp:    sc.Reg(scPCONP),
		pclksel0: sc.Reg(scPCLKSEL0),
	}
}

func (p *SCPower) PowerOn() {
	setBits(p.pconp, pconpADC)
	replaceBits(p.pclksel0, pclkADCDivideBy1, pclkADCMask)
}

// SYSCON offsets (LPC11Uxx)
const (
	sysconSYSAHBCLKCTRL = 0x080
	sysconPDRUNCFG      = 0x238
)

const (
	pdrunADC  = 1 << 4  // ADC_PD: 1 = powered down
	ahbClkADC = 1 << 13 // ADC register interface clock
)

// SysconPower clears the ADC power-down bit and enables its AHB clock,
// as on the LPC11U24.
type SysconPower struct {
	pdruncfg      Register
	sysahbclkctrl Register
}

func NewSysconPower(syscon Block) *SysconPower {
	return &SysconPower{
		pdruncfg:      syscon.Reg(sysconPDRUNCFG),
		sysahbclkctrl: syscon.Reg(sysconSYSAHBCLKCTRL),
	}
}

func (p *SysconPower) PowerOn() {
	clearBits(p.pdruncfg, pdrunADC)
	setBits(p.sysahbclkctrl, ahbClkADC)
}
