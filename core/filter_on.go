//go:build !analogin_nofilter

package core

// medianFilter makes every read take three conversions and keep the median.
const medianFilter = true
