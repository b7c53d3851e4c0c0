package core

import "tinygo.org/x/drivers"

// VoltageSensor exposes an analog input as a TinyGo drivers.Sensor. Update
// takes a fresh filtered sample; Voltage reports the last one.
type VoltageSensor struct {
	in           *AnalogIn
	refMilliVolt uint32
	microVolts   int32
}

var _ drivers.Sensor = (*VoltageSensor)(nil)

// NewVoltageSensor wraps in, scaling full scale to refMilliVolt.
func NewVoltageSensor(in *AnalogIn, refMilliVolt uint32) *VoltageSensor {
	return &VoltageSensor{in: in, refMilliVolt: refMilliVolt}
}

// Update samples the input if which includes drivers.Voltage.
func (s *VoltageSensor) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	v, err := s.in.Sample()
	if err != nil {
		return err
	}
	fs := uint64(s.in.adc.target.FullScale())
	s.microVolts = int32(uint64(v) * uint64(s.refMilliVolt) * 1000 / fs)
	return nil
}

// Voltage returns the last sampled voltage in microvolts.
func (s *VoltageSensor) Voltage() int32 {
	return s.microVolts
}
