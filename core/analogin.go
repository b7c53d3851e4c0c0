// Analog input support
// Single-shot, software-triggered conversions with a median-of-three filter
package core

// Config wires a converter to its target description and collaborators.
type Config struct {
	Target     *Target
	Peripheral ADCPeripheral
	Pins       PinConfigurer
	Clock      CoreClock

	// Wait polls the done flag. Nil means BusyWait.
	Wait WaitStrategy
}

// ADC owns one converter peripheral. All AnalogIn handles created from it
// share that ownership; callers must serialize access.
type ADC struct {
	target *Target
	periph ADCPeripheral
	pins   PinConfigurer
	clock  CoreClock
	wait   WaitStrategy
	filter bool
}

// AnalogIn is one initialized analog input.
type AnalogIn struct {
	adc *ADC
	pin Pin
	ch  Channel
}

// Peripheral blocks already owned by an ADC, keyed by target/peripheral.
var claims = make(map[string]*ADC)

// NewADC validates cfg and claims its peripheral block. A block can be
// claimed once.
func NewADC(cfg Config) (*ADC, error) {
	if cfg.Target == nil {
		return nil, ErrMissingTarget
	}
	if err := cfg.Target.Validate(); err != nil {
		return nil, err
	}
	if cfg.Peripheral == nil || cfg.Pins == nil {
		return nil, ErrMissingPeripheral
	}
	if cfg.Clock == nil {
		return nil, ErrNoCoreClock
	}
	key := cfg.Target.key()
	if _, ok := claims[key]; ok {
		return nil, ErrPeripheralInUse
	}

	wait := cfg.Wait
	if wait == nil {
		wait = BusyWait{}
	}
	a := &ADC{
		target: cfg.Target,
		periph: cfg.Peripheral,
		pins:   cfg.Pins,
		clock:  cfg.Clock,
		wait:   wait,
		filter: medianFilter,
	}
	claims[key] = a
	return a, nil
}

// MustNewADC is NewADC with configuration errors sent to the fatal handler.
func MustNewADC(cfg Config) *ADC {
	a, err := NewADC(cfg)
	if err != nil {
		Fail(err.Error())
	}
	return a
}

// Release gives up the claim on the peripheral block. Handles created
// from a must not be used afterwards.
func (a *ADC) Release() {
	if claims[a.target.key()] == a {
		delete(claims, a.target.key())
	}
}

// Target returns the converter's target description.
func (a *ADC) Target() *Target {
	return a.target
}

// Configure resolves pin to its channel, brings the converter up and
// switches the pin to its analog function. Run it once per pin.
func (a *ADC) Configure(pin Pin) (*AnalogIn, error) {
	m, ok := a.target.Pins.Lookup(pin)
	if !ok {
		return nil, ErrUnmappedPin
	}

	// Power and clock gating must precede register programming.
	a.periph.PowerOn()

	div, err := a.target.ClockDivider(a.clock())
	if err != nil {
		return nil, err
	}
	a.periph.SetClockDivider(div)

	a.pins.ConfigureFunction(pin, m.Function)

	DebugPrintln("[ADC] " + pin.String() + " ch=" + utoa(uint32(m.Channel)) + " clkdiv=" + utoa(div))

	return &AnalogIn{adc: a, pin: pin, ch: m.Channel}, nil
}

// Init is Configure with failures sent to the fatal handler. It does not
// return on an unmapped pin.
func (a *ADC) Init(pin Pin) *AnalogIn {
	in, err := a.Configure(pin)
	if err != nil {
		Fail(err.Error())
	}
	return in
}

// Pin returns the pin the input was initialized on.
func (in *AnalogIn) Pin() Pin {
	return in.pin
}

// Channel returns the resolved converter channel.
func (in *AnalogIn) Channel() Channel {
	return in.ch
}

// convert runs one software-triggered conversion and returns the raw sample.
func (in *AnalogIn) convert() (uint32, error) {
	p := in.adc.periph
	p.SelectChannel(in.ch)
	p.Start()

	err := in.adc.wait.Wait(p.PollDone)
	data := p.ReadData()

	p.Stop()

	if err != nil {
		return 0, err
	}
	t := in.adc.target
	return (data >> t.DataShift) & t.FullScale(), nil
}

// Sample returns one raw sample in [0, FullScale], median filtered over
// three conversions unless the filter is compiled out.
func (in *AnalogIn) Sample() (uint32, error) {
	if !in.adc.filter {
		return in.convert()
	}
	var v [3]uint32
	for i := range v {
		s, err := in.convert()
		if err != nil {
			return 0, err
		}
		v[i] = s
	}
	return median3(v[0], v[1], v[2]), nil
}

// Read returns the input as a fraction of full scale, in [0, 1].
func (in *AnalogIn) Read() float32 {
	v, err := in.Sample()
	if err != nil {
		Fail(err.Error())
	}
	return normalize(v, in.adc.target.FullScale())
}

// ReadU16 returns the input scaled to the full 16-bit range.
func (in *AnalogIn) ReadU16() uint16 {
	v, err := in.Sample()
	if err != nil {
		Fail(err.Error())
	}
	return scaleU16(v, in.adc.target.Resolution)
}
