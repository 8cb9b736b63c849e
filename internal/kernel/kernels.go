package kernel

// Kernels is the set of compositing primitives.
//
// Byte-wise primitives (Mean, AddTo, SubFrom) process min(len) bytes of their
// arguments. Pixel primitives process len(dst)/4 pixels; the other slices must
// be at least as long (plane: one byte per pixel).
type Kernels interface {
	// Mean stores (a+b)>>1 per byte into dst.
	Mean(dst, a, b []byte)

	// AddTo adds src to dst per byte, saturating at 255.
	AddTo(dst, src []byte)

	// SubFrom subtracts src from dst per byte, saturating at 0.
	SubFrom(dst, src []byte)

	// Blend moves every dst pixel toward src by alpha/255.
	// A non-nil plane scales alpha per pixel: a = alpha*plane[i]/255.
	Blend(dst, src, plane []byte, alpha uint8)

	// MaskBlend stores lerp(s1, s2, level) into dst where level is derived
	// from the first channel of the mask pixel and the threshold.
	MaskBlend(dst, s1, s2, mask []byte, threshold uint32)

	// MaskBlendConst is MaskBlend with a uniform zero mask:
	// level = min(threshold, 255) for every pixel.
	MaskBlendConst(dst, s1, s2 []byte, threshold uint32)
}

// Primitive names one compositing primitive.
type Primitive int

const (
	// PrimMean is the byte-wise mean.
	PrimMean Primitive = iota
	// PrimAddTo is the saturating add.
	PrimAddTo
	// PrimSubFrom is the saturating subtract.
	PrimSubFrom
	// PrimBlend is the constant-alpha blend with optional alpha plane.
	PrimBlend
	// PrimMaskBlend is the mask-gated blend.
	PrimMaskBlend
	// PrimMaskBlendConst is the uniform-threshold blend.
	PrimMaskBlendConst

	numPrimitives
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimMean:
		return "mean"
	case PrimAddTo:
		return "addTo"
	case PrimSubFrom:
		return "subFrom"
	case PrimBlend:
		return "blend"
	case PrimMaskBlend:
		return "maskBlend"
	case PrimMaskBlendConst:
		return "maskBlendConst"
	default:
		return "unknown"
	}
}

// Primitives lists every primitive in table order.
func Primitives() []Primitive {
	return []Primitive{PrimMean, PrimAddTo, PrimSubFrom, PrimBlend, PrimMaskBlend, PrimMaskBlendConst}
}

// pixels returns the number of whole pixels in a row slice.
func pixels(row []byte) int {
	return len(row) / 4
}
