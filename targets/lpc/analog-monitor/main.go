//go:build tinygo && (lpc1768 || lpc2368 || lpc11u24)

// analog-monitor samples one analog input and prints it over the debug
// console twice a second.
package main

import (
	"time"

	"github.com/DaveGadgeteer/Smoothieware/core"
	"github.com/DaveGadgeteer/Smoothieware/targets/lpc"
	"tinygo.org/x/drivers"
)

const (
	monitorPin   = lpc.P0_23
	refMilliVolt = 3300
	period       = 500 * time.Millisecond
)

func main() {
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetDebugEnabled(true)

	// Configuration errors are unrecoverable: report and halt.
	core.SetFatalHandler(func(msg string) {
		println("FATAL: " + msg)
		for {
		}
	})

	chip := lpc.Selected()
	core.SetADC(core.MustNewADC(chip.Hardware()))
	core.DebugPrintln("[ADC] " + chip.Target.Name + " core clock " + core.Utoa(chip.CoreClockHz) + " Hz")

	in := core.InitAnalogIn(monitorPin)
	sensor := core.NewVoltageSensor(in, refMilliVolt)

	for {
		frac := in.Read()
		u16 := in.ReadU16()
		if err := sensor.Update(drivers.Voltage); err != nil {
			core.Fail(err.Error())
		}
		core.DebugPrintln("[ADC] " + monitorPin.String() +
			" read=" + core.Milli(frac) +
			" u16=" + core.Hex16(u16) +
			" uV=" + core.Utoa(uint32(sensor.Voltage())))
		time.Sleep(period)
	}
}
