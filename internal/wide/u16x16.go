package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Channel values are kept in 0-255; intermediate products fit in 16 bits
// up to 255*255.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// AddSat adds element-wise and clamps each lane to 255.
func (v U16x16) AddSat(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		s := v[i] + other[i]
		if s > 255 {
			s = 255
		}
		result[i] = s
	}
	return result
}

// SubSat subtracts element-wise and clamps each lane at zero.
func (v U16x16) SubSat(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		if other[i] >= v[i] {
			result[i] = 0
		} else {
			result[i] = v[i] - other[i]
		}
	}
	return result
}

// Avg computes the truncating mean (v+other)>>1 for each lane.
func (v U16x16) Avg(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = (v[i] + other[i]) >> 1
	}
	return result
}

// MulDiv255 performs round(v * other / 255) for each element.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := uint32(v[i])*uint32(other[i]) + 128
		result[i] = uint16((t + (t >> 8)) >> 8) // #nosec G115
	}
	return result
}

// Lerp interpolates from v toward other by a/255 in each lane:
// round((v*(255-a) + other*a) / 255). a must be in 0-255.
func (v U16x16) Lerp(other, a U16x16) U16x16 {
	var result U16x16
	for i := range v {
		t := uint32(v[i])*uint32(255-a[i]) + uint32(other[i])*uint32(a[i]) + 128
		result[i] = uint16((t + (t >> 8)) >> 8) // #nosec G115
	}
	return result
}

// Clamp clamps each element to [0, maxVal].
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var result U16x16
	for i := range v {
		if v[i] > maxVal {
			result[i] = maxVal
		} else {
			result[i] = v[i]
		}
	}
	return result
}
