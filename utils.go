package joydev

// escapeString strips NUL bytes from a fixed-size kernel string buffer and
// returns the remainder.
func escapeString(src []byte) string {
	n := 0
	for _, b := range src {
		if b != 0 {
			src[n] = b
			n++
		}
	}
	return string(src[:n])
}

// bitSet reports whether bit i is set in a capability bitmask as returned by
// EVIOCGBIT.
func bitSet(mask []byte, i uint16) bool {
	return mask[i/8]&(1<<(i%8)) != 0
}
