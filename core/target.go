package core

// PinMapping ties a pin to the converter channel it feeds and to the pin
// function that routes it there.
type PinMapping struct {
	Pin      Pin
	Channel  Channel
	Function uint8
}

// PinMap is the static pin to channel table of one target.
type PinMap []PinMapping

// Lookup returns the mapping entry for pin.
func (m PinMap) Lookup(pin Pin) (PinMapping, bool) {
	if pin == NC {
		return PinMapping{}, false
	}
	for _, e := range m {
		if e.Pin == pin {
			return e, true
		}
	}
	return PinMapping{}, false
}

// Target describes one chip's converter: everything that differs between
// variants lives here, the conversion logic is written once against it.
type Target struct {
	// Name of the chip, e.g. "LPC1768".
	Name string

	// Peripheral names the converter block, e.g. "ADC0".
	Peripheral string

	// Resolution is the raw sample width in bits.
	Resolution uint8

	// MaxConversionClock is the highest clock in Hz the converter may be fed.
	MaxConversionClock uint32

	// DataShift is the position of the result field in the data register.
	DataShift uint8

	// Pins is the analog pin table.
	Pins PinMap
}

// FullScale returns the largest raw sample, 2^Resolution - 1.
func (t *Target) FullScale() uint32 {
	return 1<<t.Resolution - 1
}

// Validate checks that the target can be scaled to 16 bits by bit
// replication and that a conversion clock is set.
func (t *Target) Validate() error {
	// Replication fills 16-r low bits from the top of v, which needs r >= 8.
	if t.Resolution < 8 || t.Resolution > 16 {
		return ErrUnsupportedResolution
	}
	if t.MaxConversionClock == 0 {
		return ErrNoConversionClock
	}
	if len(t.Pins) == 0 {
		return ErrEmptyPinMap
	}
	return nil
}

func (t *Target) key() string {
	return t.Name + "/" + t.Peripheral
}

// divRoundUp returns ceil(x / y).
func divRoundUp(x, y uint32) uint32 {
	return (x + (y - 1)) / y
}

// ClockDivider returns the smallest CLKDIV value that keeps the conversion
// clock at or below the target's maximum: ceil(coreClock/max) - 1.
func (t *Target) ClockDivider(coreClock uint32) (uint32, error) {
	if coreClock == 0 {
		return 0, ErrNoCoreClock
	}
	div := divRoundUp(coreClock, t.MaxConversionClock) - 1
	if div > MaxClockDivider {
		return 0, ErrClockDivider
	}
	return div, nil
}

// MaxClockDivider is the largest value the 8-bit CLKDIV field holds.
const MaxClockDivider = 0xFF
