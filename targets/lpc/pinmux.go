package lpc

import "github.com/DaveGadgeteer/Smoothieware/core"

// Pin connect block layout (LPC17xx/23xx): PINSELn at 4n, PINMODEn at
// 0x40+4n, two bits per pin, sixteen pins per register.
const (
	pinconPINSEL  = 0x00
	pinconPINMODE = 0x40

	pinModeNone = 0x2 // neither pull-up nor pull-down
)

// PinSelect routes pins through the PINSEL/PINMODE registers.
type PinSelect struct {
	block Block
}

var _ core.PinConfigurer = PinSelect{}

func NewPinSelect(pincon Block) PinSelect {
	return PinSelect{block: pincon}
}

func (p PinSelect) ConfigureFunction(pin core.Pin, fn uint8) {
	n := uint32(pin)
	idx := uintptr(n>>4) * 4
	shift := (n & 0xF) << 1

	replaceBits(p.block.Reg(pinconPINSEL+idx), uint32(fn)<<shift, 0x3<<shift)
	replaceBits(p.block.Reg(pinconPINMODE+idx), pinModeNone<<shift, 0x3<<shift)
}

// IOCON layout (LPC11Uxx): one word per pin, port 1 starts at 0x60.
const (
	ioconPort1 = 0x60

	ioconFuncMask = 0x7
	ioconModeMask = 0x3 << 3 // 0 = no pull resistor
	ioconADMODE   = 1 << 7   // 0 = analog input
)

// IOCON routes pins through the per-pin IOCON words.
type IOCON struct {
	block Block
}

var _ core.PinConfigurer = IOCON{}

func NewIOCON(iocon Block) IOCON {
	return IOCON{block: iocon}
}

func ioconOffset(pin core.Pin) uintptr {
	n := uintptr(pin)
	if n < 32 {
		return 4 * n
	}
	return ioconPort1 + 4*(n-32)
}

// ConfigureFunction selects fn, drops the pull resistor and puts the pin
// in analog mode.
func (p IOCON) ConfigureFunction(pin core.Pin, fn uint8) {
	r := p.block.Reg(ioconOffset(pin))
	v := r.Get() &^ (ioconFuncMask | ioconModeMask | ioconADMODE)
	r.Set(v | uint32(fn)&ioconFuncMask)
}
