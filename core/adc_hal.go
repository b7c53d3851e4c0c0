package core

// Pin identifies a physical MCU pin, encoded as port<<5 | bit.
type Pin uint32

// NC marks an unconnected pin.
const NC Pin = 0xFFFFFFFF

// P builds a Pin from its port and bit number (P(0, 23) is P0_23).
func P(port, bit uint8) Pin {
	return Pin(port)<<5 | Pin(bit&0x1F)
}

// Port returns the GPIO port of the pin.
func (p Pin) Port() uint8 {
	return uint8(p >> 5)
}

// Bit returns the bit position of the pin within its port.
func (p Pin) Bit() uint8 {
	return uint8(p & 0x1F)
}

func (p Pin) String() string {
	if p == NC {
		return "NC"
	}
	return "P" + utoa(uint32(p.Port())) + "_" + utoa(uint32(p.Bit()))
}

// Channel identifies one converter input channel.
type Channel uint8

// ADCPeripheral is the register-level ADC interface that core code uses.
// Each target implements it once over its own register block.
type ADCPeripheral interface {
	// PowerOn enables the peripheral's power and clock gating.
	PowerOn()

	// SetClockDivider programs the control register into its idle state:
	// no channel selected, the given divider, powered, software-triggered,
	// conversion not started.
	SetClockDivider(div uint32)

	// SelectChannel clears any previous channel selection and selects ch.
	SelectChannel(ch Channel)

	// Start begins a single conversion on the selected channel.
	Start()

	// PollDone reads the data register and reports whether the conversion
	// finished. The polled word is kept for ReadData.
	PollDone() bool

	// ReadData returns the data register word captured by the last PollDone.
	ReadData() uint32

	// Stop clears the start bits.
	Stop()
}

// PinConfigurer switches a pin into one of its alternate functions.
type PinConfigurer interface {
	// ConfigureFunction selects function fn for the pin, with no pull
	// resistor and, where the chip has one, the analog mode bit set.
	ConfigureFunction(pin Pin, fn uint8)
}

// CoreClock reports the current core clock frequency in Hz.
type CoreClock func() uint32

// FixedClock returns a CoreClock that always reports hz.
func FixedClock(hz uint32) CoreClock {
	return func() uint32 { return hz }
}

// Global singleton used by firmware code.
var adc *ADC

// SetADC is called by target-specific code to register its converter.
func SetADC(a *ADC) {
	adc = a
}

// MustADC returns the configured converter or panics if missing.
func MustADC() *ADC {
	if adc == nil {
		panic("ADC not configured")
	}
	return adc
}

// InitAnalogIn initializes pin as an analog input on the registered
// converter. Unmapped pins are fatal.
func InitAnalogIn(pin Pin) *AnalogIn {
	return MustADC().Init(pin)
}
