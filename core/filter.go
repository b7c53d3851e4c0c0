package core

// order swaps *a and *b so that *a <= *b.
func order(a, b *uint32) {
	if *a > *b {
		*a, *b = *b, *a
	}
}

// median3 returns the middle of three samples using the three-element
// sorting network (1,2) (2,3) (1,2).
func median3(v1, v2, v3 uint32) uint32 {
	order(&v1, &v2)
	order(&v2, &v3)
	order(&v1, &v2)
	return v2
}

// normalize scales v to [0, 1] of fullScale.
func normalize(v, fullScale uint32) float32 {
	if v >= fullScale {
		return 1
	}
	return float32(v) / float32(fullScale)
}

// scaleU16 widens an r-bit sample to 16 bits, filling the vacated low bits
// with the sample's top bits. Needs 8 <= r <= 16.
func scaleU16(v uint32, r uint8) uint16 {
	if r >= 16 {
		return uint16(v)
	}
	return uint16(v<<(16-r) | v>>(2*r-16))
}
