package kernel

import "encoding/binary"

// SWAR accelerates the byte-wise primitives by treating eight channel bytes
// as one 64-bit word ("SIMD within a register"). The pixel primitives fall
// back to Reference.
type SWAR struct {
	Reference
}

const (
	lo7 = 0x7f7f7f7f7f7f7f7f
	hi1 = 0x8080808080808080
)

// swarMean returns the per-byte truncating mean of a and b.
func swarMean(a, b uint64) uint64 {
	return (a & b) + (((a ^ b) >> 1) & lo7)
}

// swarAddSat returns the per-byte saturating sum of a and b.
func swarAddSat(a, b uint64) uint64 {
	sum := ((a & lo7) + (b & lo7)) ^ ((a ^ b) & hi1)
	carry := ((a & b) | ((a | b) &^ sum)) & hi1
	return sum | (carry>>7)*0xff
}

// swarSubSat returns the per-byte saturating difference a-b.
func swarSubSat(a, b uint64) uint64 {
	diff := ((a | hi1) - (b & lo7)) ^ ((a ^ ^b) & hi1)
	borrow := ((^a & b) | (^(a ^ b) & diff)) & hi1
	return diff &^ ((borrow >> 7) * 0xff)
}

// Mean implements Kernels.
func (SWAR) Mean(dst, a, b []byte) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		w := swarMean(binary.LittleEndian.Uint64(a[i:]), binary.LittleEndian.Uint64(b[i:]))
		binary.LittleEndian.PutUint64(dst[i:], w)
	}
	for ; i < n; i++ {
		dst[i] = mean(a[i], b[i])
	}
}

// AddTo implements Kernels.
func (SWAR) AddTo(dst, src []byte) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		w := swarAddSat(binary.LittleEndian.Uint64(dst[i:]), binary.LittleEndian.Uint64(src[i:]))
		binary.LittleEndian.PutUint64(dst[i:], w)
	}
	for ; i < n; i++ {
		dst[i] = addClamp(dst[i], src[i])
	}
}

// SubFrom implements Kernels.
func (SWAR) SubFrom(dst, src []byte) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		w := swarSubSat(binary.LittleEndian.Uint64(dst[i:]), binary.LittleEndian.Uint64(src[i:]))
		binary.LittleEndian.PutUint64(dst[i:], w)
	}
	for ; i < n; i++ {
		dst[i] = subClamp(dst[i], src[i])
	}
}
