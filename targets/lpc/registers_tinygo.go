//go:build tinygo

package lpc

import (
	"runtime/volatile"
	"unsafe"

	"github.com/DaveGadgeteer/Smoothieware/core"
)

// mmio is a register block at a fixed physical address.
type mmio uintptr

func (b mmio) Reg(offset uintptr) Register {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(b) + offset))
}

// Hardware wires a core.Config to the chip's real register blocks.
func (c *Chip) Hardware() core.Config {
	return c.Config(mmio(c.ADCBase), mmio(c.PowerBase), mmio(c.PinBase))
}
