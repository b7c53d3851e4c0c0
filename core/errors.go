package core

import "errors"

var (
	// Build/config
	ErrMissingTarget         = errors.New("missing ADC target")
	ErrUnmappedPin           = errors.New("ADC pin mapping failed")
	ErrUnsupportedResolution = errors.New("unsupported ADC resolution")
	ErrNoConversionClock     = errors.New("missing max conversion clock")
	ErrEmptyPinMap           = errors.New("empty ADC pin map")
	ErrNoCoreClock           = errors.New("core clock unknown")
	ErrClockDivider          = errors.New("ADC clock divider out of range")
	ErrPeripheralInUse       = errors.New("ADC peripheral in use")
	ErrMissingPeripheral     = errors.New("missing ADC peripheral")

	// Conversion
	ErrConversionTimeout = errors.New("ADC conversion timeout")
)
