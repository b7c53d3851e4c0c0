package lpc

import (
	"math/bits"

	"github.com/DaveGadgeteer/Smoothieware/core"
)

// memReg is a plain in-memory register.
type memReg struct {
	v uint32
}

func (r *memReg) Get() uint32  { return r.v }
func (r *memReg) Set(v uint32) { r.v = v }

// memBlock is a register block backed by memory; registers spring into
// existence as zero on first access.
type memBlock map[uintptr]*memReg

func (b memBlock) Reg(offset uintptr) Register {
	r, ok := b[offset]
	if !ok {
		r = &memReg{}
		b[offset] = r
	}
	return r
}

func (b memBlock) get(offset uintptr) uint32 {
	return b.Reg(offset).Get()
}

func (b memBlock) set(offset uintptr, v uint32) {
	b.Reg(offset).Set(v)
}

// simADC models the converter: while CR.START is set, the data register
// reports DONE with the selected channel's input after latency polls.
type simADC struct {
	regs    memBlock
	shift   uint8
	input   map[core.Channel]uint32
	latency int
	polls   int
}

func newSimADC(shift uint8) *simADC {
	return &simADC{
		regs:  memBlock{},
		shift: shift,
		input: make(map[core.Channel]uint32),
	}
}

type simGDR struct {
	sim *simADC
}

func (g simGDR) Get() uint32 {
	s := g.sim
	cr := s.regs.get(adcCR)
	if cr&crStartNow == 0 || cr&crSelMask == 0 {
		return 0
	}
	s.polls++
	if s.polls <= s.latency {
		return 0
	}
	s.polls = 0
	ch := core.Channel(bits.TrailingZeros32(cr & crSelMask))
	return gdrDone | uint32(ch)<<24 | s.input[ch]<<s.shift
}

func (g simGDR) Set(uint32) {}

func (s *simADC) Reg(offset uintptr) Register {
	if offset == adcGDR {
		return simGDR{sim: s}
	}
	return s.regs.Reg(offset)
}
