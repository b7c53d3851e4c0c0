package lpc

import "github.com/DaveGadgeteer/Smoothieware/core"

// Analog-capable pins of the supported parts.
const (
	P0_2  core.Pin = 0<<5 | 2
	P0_3  core.Pin = 0<<5 | 3
	P0_11 core.Pin = 0<<5 | 11
	P0_12 core.Pin = 0<<5 | 12
	P0_13 core.Pin = 0<<5 | 13
	P0_14 core.Pin = 0<<5 | 14
	P0_15 core.Pin = 0<<5 | 15
	P0_16 core.Pin = 0<<5 | 16
	P0_22 core.Pin = 0<<5 | 22
	P0_23 core.Pin = 0<<5 | 23
	P0_24 core.Pin = 0<<5 | 24
	P0_25 core.Pin = 0<<5 | 25
	P0_26 core.Pin = 0<<5 | 26
	P1_30 core.Pin = 1<<5 | 30
	P1_31 core.Pin = 1<<5 | 31
)
