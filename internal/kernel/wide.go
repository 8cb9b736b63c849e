package kernel

import "github.com/gogpu/gg-transit/internal/wide"

// Wide processes sixteen pixels per step using the SoA lanes of
// wide.BatchState, which the compiler can auto-vectorize. Remainders are
// handled by the scalar reference code, so output is byte-identical.
type Wide struct{}

// Mean implements Kernels.
func (Wide) Mean(dst, a, b []byte) {
	n := min(len(dst), len(a), len(b))
	var batch wide.BatchState
	i := 0
	for ; i+wide.BatchBytes <= n; i += wide.BatchBytes {
		batch.LoadS1(a[i:])
		batch.LoadS2(b[i:])
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].Avg(batch.S2[ch])
		}
		batch.StoreD(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = mean(a[i], b[i])
	}
}

// AddTo implements Kernels.
func (Wide) AddTo(dst, src []byte) {
	n := min(len(dst), len(src))
	var batch wide.BatchState
	i := 0
	for ; i+wide.BatchBytes <= n; i += wide.BatchBytes {
		batch.LoadS1(dst[i:])
		batch.LoadS2(src[i:])
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].AddSat(batch.S2[ch])
		}
		batch.StoreD(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = addClamp(dst[i], src[i])
	}
}

// SubFrom implements Kernels.
func (Wide) SubFrom(dst, src []byte) {
	n := min(len(dst), len(src))
	var batch wide.BatchState
	i := 0
	for ; i+wide.BatchBytes <= n; i += wide.BatchBytes {
		batch.LoadS1(dst[i:])
		batch.LoadS2(src[i:])
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].SubSat(batch.S2[ch])
		}
		batch.StoreD(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = subClamp(dst[i], src[i])
	}
}

// Blend implements Kernels.
func (Wide) Blend(dst, src, plane []byte, alpha uint8) {
	n := pixels(dst)
	var batch wide.BatchState
	global := wide.SplatU16(uint16(alpha))
	i := 0
	for ; i+wide.BatchPixels <= n; i += wide.BatchPixels {
		o := i * 4
		batch.LoadS1(dst[o:])
		batch.LoadS2(src[o:])
		a := global
		if plane != nil {
			batch.LoadPlane(plane[i:])
			a = global.MulDiv255(batch.M)
		}
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].Lerp(batch.S2[ch], a)
		}
		batch.StoreD(dst[o:])
	}
	blendScalar(dst, src, plane, alpha, i, n)
}

// MaskBlend implements Kernels.
func (Wide) MaskBlend(dst, s1, s2, mask []byte, threshold uint32) {
	n := pixels(dst)
	var batch wide.BatchState
	thr := wide.SplatU16(uint16(min(threshold, maxThreshold)))
	i := 0
	for ; i+wide.BatchPixels <= n; i += wide.BatchPixels {
		o := i * 4
		batch.LoadS1(s1[o:])
		batch.LoadS2(s2[o:])
		batch.LoadMaskChannel(mask[o:], 0)
		// level = clamp(thr - m, 0, 255)
		a := thr.SubSat(batch.M).Clamp(255)
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].Lerp(batch.S2[ch], a)
		}
		batch.StoreD(dst[o:])
	}
	maskBlendScalar(dst, s1, s2, mask, threshold, i, n)
}

// MaskBlendConst implements Kernels.
func (Wide) MaskBlendConst(dst, s1, s2 []byte, threshold uint32) {
	n := pixels(dst)
	var batch wide.BatchState
	a := wide.SplatU16(uint16(constLevel(threshold)))
	i := 0
	for ; i+wide.BatchPixels <= n; i += wide.BatchPixels {
		o := i * 4
		batch.LoadS1(s1[o:])
		batch.LoadS2(s2[o:])
		for ch := range batch.D {
			batch.D[ch] = batch.S1[ch].Lerp(batch.S2[ch], a)
		}
		batch.StoreD(dst[o:])
	}
	maskBlendConstScalar(dst, s1, s2, threshold, i, n)
}
