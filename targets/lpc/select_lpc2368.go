//go:build tinygo && lpc2368

package lpc

// Selected returns the part this firmware is built for.
func Selected() *Chip {
	return &LPC2368
}
