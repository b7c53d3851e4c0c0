//go:build analogin_nofilter

package core

// medianFilter is disabled: every read is a single conversion.
const medianFilter = false
