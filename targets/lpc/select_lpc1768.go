//go:build tinygo && lpc1768

package lpc

// Selected returns the part this firmware is built for.
func Selected() *Chip {
	return &LPC1768
}
