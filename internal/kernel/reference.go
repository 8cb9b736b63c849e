package kernel

// Reference is the portable scalar implementation of every primitive.
// It defines the expected output for all other backends.
type Reference struct{}

// Mean implements Kernels.
func (Reference) Mean(dst, a, b []byte) {
	n := min(len(dst), len(a), len(b))
	for i := 0; i < n; i++ {
		dst[i] = mean(a[i], b[i])
	}
}

// AddTo implements Kernels.
func (Reference) AddTo(dst, src []byte) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = addClamp(dst[i], src[i])
	}
}

// SubFrom implements Kernels.
func (Reference) SubFrom(dst, src []byte) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = subClamp(dst[i], src[i])
	}
}

// Blend implements Kernels.
func (Reference) Blend(dst, src, plane []byte, alpha uint8) {
	blendScalar(dst, src, plane, alpha, 0, pixels(dst))
}

// MaskBlend implements Kernels.
func (Reference) MaskBlend(dst, s1, s2, mask []byte, threshold uint32) {
	maskBlendScalar(dst, s1, s2, mask, threshold, 0, pixels(dst))
}

// MaskBlendConst implements Kernels.
func (Reference) MaskBlendConst(dst, s1, s2 []byte, threshold uint32) {
	maskBlendConstScalar(dst, s1, s2, threshold, 0, pixels(dst))
}

// blendScalar blends pixels [from, to).
func blendScalar(dst, src, plane []byte, alpha uint8, from, to int) {
	a := uint32(alpha)
	for i := from; i < to; i++ {
		if plane != nil {
			a = uint32(mulDiv255(alpha, plane[i]))
		}
		o := i * 4
		dst[o+0] = lerp255(dst[o+0], src[o+0], a)
		dst[o+1] = lerp255(dst[o+1], src[o+1], a)
		dst[o+2] = lerp255(dst[o+2], src[o+2], a)
		dst[o+3] = lerp255(dst[o+3], src[o+3], a)
	}
}

// maskBlendScalar mask-blends pixels [from, to).
func maskBlendScalar(dst, s1, s2, mask []byte, threshold uint32, from, to int) {
	for i := from; i < to; i++ {
		o := i * 4
		a := maskLevel(threshold, mask[o])
		dst[o+0] = lerp255(s1[o+0], s2[o+0], a)
		dst[o+1] = lerp255(s1[o+1], s2[o+1], a)
		dst[o+2] = lerp255(s1[o+2], s2[o+2], a)
		dst[o+3] = lerp255(s1[o+3], s2[o+3], a)
	}
}

// maskBlendConstScalar blends pixels [from, to) at a uniform level.
func maskBlendConstScalar(dst, s1, s2 []byte, threshold uint32, from, to int) {
	a := constLevel(threshold)
	for o := from * 4; o < to*4; o++ {
		dst[o] = lerp255(s1[o], s2[o], a)
	}
}
