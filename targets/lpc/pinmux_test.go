package lpc

import (
	"testing"

	"github.com/DaveGadgeteer/Smoothieware/core"
	"github.com/stretchr/testify/assert"
)

func TestPinSelect(t *testing.T) {
	testCases := []struct {
		name   string
		pin    core.Pin
		fn     uint8
		selOff uintptr
		shift  uint32
	}{
		{"P0_23 -> AD0.0", P0_23, 1, 0x04, 14},
		{"P0_26 -> AD0.3", P0_26, 1, 0x04, 20},
		{"P1_30 -> AD0.4", P1_30, 3, 0x0C, 28},
		{"P1_31 -> AD0.5", P1_31, 3, 0x0C, 30},
		{"P0_2 -> AD0.7", P0_2, 2, 0x00, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pincon := memBlock{}
			pincon.set(pinconPINSEL+tc.selOff, 0xFFFFFFFF)
			pincon.set(pinconPINMODE+tc.selOff, 0xFFFFFFFF)

			NewPinSelect(pincon).ConfigureFunction(tc.pin, tc.fn)

			mask := uint32(0x3) << tc.shift
			sel := pincon.get(pinconPINSEL + tc.selOff)
			mode := pincon.get(pinconPINMODE + tc.selOff)
			assert.Equal(t, uint32(tc.fn)<<tc.shift, sel&mask)
			assert.Equal(t, ^mask, sel&^mask, "neighbouring pins changed")
			assert.Equal(t, uint32(pinModeNone)<<tc.shift, mode&mask)
			assert.Equal(t, ^mask, mode&^mask)
		})
	}
}

func TestIOCON(t *testing.T) {
	iocon := memBlock{}
	// FUNC=0, MODE=pull-up, ADMODE=digital, bit 6 reserved-one.
	iocon.set(0x2C, 0xD0)

	NewIOCON(iocon).ConfigureFunction(P0_11, 2)
	assert.Equal(t, uint32(0x42), iocon.get(0x2C))

	NewIOCON(iocon).ConfigureFunction(P0_23, 1)
	assert.Equal(t, uint32(0x01), iocon.get(0x5C))
}

func TestIOCONOffset(t *testing.T) {
	assert.Equal(t, uintptr(0x00), ioconOffset(core.P(0, 0)))
	assert.Equal(t, uintptr(0x40), ioconOffset(P0_16))
	assert.Equal(t, uintptr(0x60), ioconOffset(core.P(1, 0)))
	assert.Equal(t, uintptr(0x74), ioconOffset(core.P(1, 5)))
}
