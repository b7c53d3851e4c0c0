package core

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// Utoa is the exported form of utoa for target code.
func Utoa(n uint32) string {
	return utoa(n)
}

const hexDigits = "0123456789ABCDEF"

// Hex16 formats v as four upper-case hex digits with a 0x prefix.
func Hex16(v uint16) string {
	buf := [6]byte{'0', 'x'}
	for i := 0; i < 4; i++ {
		buf[5-i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}

// Milli formats a [0, 1] fraction as thousandths ("0.500").
func Milli(f float32) string {
	if f < 0 {
		f = 0
	}
	m := uint32(f*1000 + 0.5)
	frac := utoa(m % 1000)
	for len(frac) < 3 {
		frac = "0" + frac
	}
	return utoa(m/1000) + "." + frac
}
