package lpc

import "github.com/DaveGadgeteer/Smoothieware/core"

// Chip is one supported part: its converter description plus where its
// register blocks live and how they power up.
type Chip struct {
	Target core.Target

	// Register block base addresses.
	ADCBase   uintptr
	PowerBase uintptr
	PinBase   uintptr

	// CoreClockHz is the core clock the startup code configures.
	CoreClockHz uint32

	sysconPower bool // LPC11Uxx style PDRUNCFG/SYSAHBCLKCTRL gating
}

// LPC1768: 12-bit result at ADGDR[15:4], ADC clock at most 13 MHz.
var LPC1768 = Chip{
	Target: core.Target{
		Name:               "LPC1768",
		Peripheral:         "ADC0",
		Resolution:         12,
		MaxConversionClock: 13000000,
		DataShift:          4,
		Pins: core.PinMap{
			{Pin: P0_23, Channel: 0, Function: 1},
			{Pin: P0_24, Channel: 1, Function: 1},
			{Pin: P0_25, Channel: 2, Function: 1},
			{Pin: P0_26, Channel: 3, Function: 1},
			{Pin: P1_30, Channel: 4, Function: 3},
			{Pin: P1_31, Channel: 5, Function: 3},
			{Pin: P0_2, Channel: 7, Function: 2},
			{Pin: P0_3, Channel: 6, Function: 2},
		},
	},
	ADCBase:     0x40034000,
	PowerBase:   0x400FC000,
	PinBase:     0x4002C000,
	CoreClockHz: 96000000,
}

// LPC2368: 10-bit result at AD0GDR[15:6], ADC clock at most 13 MHz.
var LPC2368 = Chip{
	Target: core.Target{
		Name:               "LPC2368",
		Peripheral:         "ADC0",
		Resolution:         10,
		MaxConversionClock: 13000000,
		DataShift:          6,
		Pins: core.PinMap{
			{Pin: P0_23, Channel: 0, Function: 1},
			{Pin: P0_24, Channel: 1, Function: 1},
			{Pin: P0_25, Channel: 2, Function: 1},
			{Pin: P0_26, Channel: 3, Function: 1},
			{Pin: P1_30, Channel: 4, Function: 3},
			{Pin: P1_31, Channel: 5, Function: 3},
		},
	},
	ADCBase:     0xE0034000,
	PowerBase:   0xE01FC000,
	PinBase:     0xE002C000,
	CoreClockHz: 72000000,
}

// LPC11U24: 10-bit result at GDR[15:6], ADC clock at most 4.5 MHz.
var LPC11U24 = Chip{
	Target: core.Target{
		Name:               "LPC11U24",
		Peripheral:         "ADC0",
		Resolution:         10,
		MaxConversionClock: 4500000,
		DataShift:          6,
		Pins: core.PinMap{
			{Pin: P0_11, Channel: 0, Function: 0x02},
			{Pin: P0_12, Channel: 1, Function: 0x02},
			{Pin: P0_13, Channel: 2, Function: 0x02},
			{Pin: P0_14, Channel: 3, Function: 0x02},
			{Pin: P0_15, Channel: 4, Function: 0x02},
			{Pin: P0_16, Channel: 5, Function: 0x01},
			{Pin: P0_22, Channel: 6, Function: 0x01},
			{Pin: P0_23, Channel: 7, Function: 0x01},
		},
	},
	ADCBase:     0x4001C000,
	PowerBase:   0x40048000,
	PinBase:     0x40044000,
	CoreClockHz: 48000000,
	sysconPower: true,
}

// Chips lists every supported part.
var Chips = []*Chip{&LPC1768, &LPC2368, &LPC11U24}

// FindChip returns the part with this name, or nil.
func FindChip(name string) *Chip {
	for _, c := range Chips {
		if c.Target.Name == name {
			return c
		}
	}
	return nil
}

// Peripheral binds the chip's converter to the given register blocks.
func (c *Chip) Peripheral(adc, power Block) *ADC {
	if c.sysconPower {
		return NewADC(adc, NewSysconPower(power), false)
	}
	return NewADC(adc, NewSCPower(power), true)
}

// PinConfigurer binds the chip's pin function registers.
func (c *Chip) PinConfigurer(pins Block) core.PinConfigurer {
	if c.sysconPower {
		return NewIOCON(pins)
	}
	return NewPinSelect(pins)
}

// Config wires a core.Config for the chip over the given register blocks.
func (c *Chip) Config(adc, power, pins Block) core.Config {
	return core.Config{
		Target:     &c.Target,
		Peripheral: c.Peripheral(adc, power),
		Pins:       c.PinConfigurer(pins),
		Clock:      core.FixedClock(c.CoreClockHz),
	}
}
