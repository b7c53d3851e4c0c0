package lpc

import "github.com/DaveGadgeteer/Smoothieware/core"

// ADC register offsets
const (
	adcCR  = 0x00 // A/D control register (ADCR on LPC17xx/23xx)
	adcGDR = 0x04 // A/D global data register (ADGDR)
)

// ADC control register fields
const (
	crSelMask    = 0xFF
	crClkDivPos  = 8
	crClkDivMask = 0xFF << crClkDivPos
	crBurst      = 1 << 16
	crPDN        = 1 << 21 // LPC17xx/23xx only
	crStartNow   = 1 << 24
)

// gdrDone is set once the result field holds a finished conversion.
const gdrDone = 1 << 31

// ADC drives the LPC software-triggered converter. It implements
// core.ADCPeripheral.
type ADC struct {
	cr    Register
	gdr   Register
	power Power

	// hasPDN marks parts whose converter is powered through CR.PDN.
	hasPDN bool

	last uint32
}

var _ core.ADCPeripheral = (*ADC)(nil)

// NewADC binds the converter registers in regs.
func NewADC(regs Block, power Power, hasPDN bool) *ADC {
	return &ADC{
		cr:     regs.Reg(adcCR),
		gdr:    regs.Reg(adcGDR),
		power:  power,
		hasPDN: hasPDN,
	}
}

func (a *ADC) PowerOn() {
	a.power.PowerOn()
}

// SetClockDivider writes the whole control register: SEL=0, CLKDIV=div,
// BURST=0 and START=0, with PDN=1 where the part has it.
func (a *ADC) SetClockDivider(div uint32) {
	cr := (div << crClkDivPos) & crClkDivMask
	if a.hasPDN {
		cr |= crPDN
	}
	a.cr.Set(cr)
}

func (a *ADC) SelectChannel(ch core.Channel) {
	replaceBits(a.cr, 1<<uint32(ch), crSelMask)
}

func (a *ADC) Start() {
	setBits(a.cr, crStartNow)
}

func (a *ADC) PollDone() bool {
	a.last = a.gdr.Get()
	return a.last&gdrDone != 0
}

func (a *ADC) ReadData() uint32 {
	return a.last
}

func (a *ADC) Stop() {
	clearBits(a.cr, crStartNow)
}
