package lpc

// Register is a 32-bit memory-mapped register. *volatile.Register32
// satisfies it.
type Register interface {
	Get() uint32
	Set(value uint32)
}

// Block is a peripheral register block addressed by byte offset.
type Block interface {
	Reg(offset uintptr) Register
}

func setBits(r Register, bits uint32) {
	r.Set(r.Get() | bits)
}

func clearBits(r Register, bits uint32) {
	r.Set(r.Get() &^ bits)
}

func replaceBits(r Register, value, mask uint32) {
	r.Set(r.Get()&^mask | value&mask)
}
