package kernel

// div255 divides x by 255 rounding to nearest, exact for x <= 255*255+127.
//
// Formula: (t + (t >> 8)) >> 8 with t = x + 128
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// lerp255 interpolates from a toward b by t/255.
func lerp255(a, b byte, t uint32) byte {
	return byte(div255(uint32(a)*(255-t) + uint32(b)*t))
}

// mulDiv255 multiplies two bytes and divides by 255, rounding to nearest.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// mean returns (a+b)>>1 without overflow.
func mean(a, b byte) byte {
	return byte((uint16(a) + uint16(b)) >> 1)
}

// maxThreshold is the largest threshold that still changes the result:
// above it every mask value yields level 255.
const maxThreshold = 255 + 255

// maskLevel converts a mask value and a threshold into a blend level.
// Pixels whose mask is at or above the threshold keep s1 (level 0); pixels
// far enough below it take s2 (level 255); the band in between blends.
func maskLevel(threshold uint32, m byte) uint32 {
	if threshold <= uint32(m) {
		return 0
	}
	d := threshold - uint32(m)
	if d > 255 {
		return 255
	}
	return d
}

// constLevel is maskLevel for a mask that is zero everywhere.
func constLevel(threshold uint32) uint32 {
	if threshold > 255 {
		return 255
	}
	return threshold
}
