//go:build tinygo && lpc11u24

package lpc

// Selected returns the part this firmware is built for.
func Selected() *Chip {
	return &LPC11U24
}
