package core

// mockPeripheral is a software ADC: each conversion returns the next queued
// sample (the last one repeats) after a configurable number of polls.
type mockPeripheral struct {
	shift           uint8
	samples         []uint32
	next            int
	pollsBeforeDone int
	never           bool

	powered  bool
	div      uint32
	selected Channel
	started  bool
	polls    int
	word     uint32

	calls []string
}

func (m *mockPeripheral) PowerOn() {
	m.calls = append(m.calls, "power")
	m.powered = true
}

func (m *mockPeripheral) SetClockDivider(div uint32) {
	m.calls = append(m.calls, "clkdiv")
	m.div = div
	m.started = false
}

func (m *mockPeripheral) SelectChannel(ch Channel) {
	m.calls = append(m.calls, "select")
	m.selected = ch
}

func (m *mockPeripheral) Start() {
	m.calls = append(m.calls, "start")
	m.started = true
	m.polls = 0
	m.word = 0
}

func (m *mockPeripheral) PollDone() bool {
	m.polls++
	if m.never || m.polls <= m.pollsBeforeDone {
		return false
	}
	var v uint32
	if len(m.samples) > 0 {
		i := m.next
		if i >= len(m.samples) {
			i = len(m.samples) - 1
		}
		v = m.samples[i]
		m.next++
	}
	m.word = 1<<31 | v<<m.shift | uint32(m.selected)<<24
	return true
}

func (m *mockPeripheral) ReadData() uint32 {
	return m.word
}

func (m *mockPeripheral) Stop() {
	m.calls = append(m.calls, "stop")
	m.started = false
}

func (m *mockPeripheral) conversions() int {
	n := 0
	for _, c := range m.calls {
		if c == "start" {
			n++
		}
	}
	return n
}

type pinCall struct {
	pin Pin
	fn  uint8
}

type mockPins struct {
	calls []pinCall
}

func (m *mockPins) ConfigureFunction(pin Pin, fn uint8) {
	m.calls = append(m.calls, pinCall{pin, fn})
}

// testTarget12 mirrors a 12-bit part with the result at bit 4.
func testTarget12() *Target {
	return &Target{
		Name:               "TEST12",
		Peripheral:         "ADC0",
		Resolution:         12,
		MaxConversionClock: 13000000,
		DataShift:          4,
		Pins: PinMap{
			{P(0, 23), 0, 1},
			{P(0, 24), 1, 1},
			{P(1, 30), 4, 3},
			{P(0, 3), 6, 2},
		},
	}
}

// testTarget10 mirrors a 10-bit part with the result at bit 6.
func testTarget10() *Target {
	return &Target{
		Name:               "TEST10",
		Peripheral:         "ADC0",
		Resolution:         10,
		MaxConversionClock: 4500000,
		DataShift:          6,
		Pins: PinMap{
			{P(0, 11), 0, 2},
			{P(0, 16), 5, 1},
		},
	}
}

type testRig struct {
	adc    *ADC
	periph *mockPeripheral
	pins   *mockPins
}

func newTestRig(target *Target, clockHz uint32) (*testRig, error) {
	claims = make(map[string]*ADC)
	periph := &mockPeripheral{shift: target.DataShift}
	pins := &mockPins{}
	a, err := NewADC(Config{
		Target:     target,
		Peripheral: periph,
		Pins:       pins,
		Clock:      FixedClock(clockHz),
	})
	if err != nil {
		return nil, err
	}
	a.filter = true
	return &testRig{adc: a, periph: periph, pins: pins}, nil
}
