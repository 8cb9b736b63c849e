package wide

// BatchState holds 16 RGBA pixels from two sources and a destination.
// Uses Structure-of-Arrays (SoA) layout for SIMD-friendly access.
//
// Traditional Array-of-Structures (AoS) layout:
//
//	[R0, G0, B0, A0, R1, G1, B1, A1, ...]
//
// Structure-of-Arrays (SoA) layout:
//
//	S1[0]: [R0, R1, R2, ..., R15]
//	S1[1]: [G0, G1, G2, ..., G15]
//	...
//
// S1 and S2 are the two inputs of a binary kernel (for in-place kernels S1
// is the destination's previous contents). M holds one alpha lane per pixel.
type BatchState struct {
	S1 [4]U16x16 // first input, one U16x16 per channel
	S2 [4]U16x16 // second input
	D  [4]U16x16 // output
	M  U16x16    // per-pixel alpha or mask level
}

// BatchPixels is the number of pixels processed by one BatchState.
const BatchPixels = 16

// BatchBytes is the number of RGBA bytes covered by one BatchState.
const BatchBytes = BatchPixels * 4

// load deinterleaves 16 RGBA pixels into four channel lanes.
func load(lanes *[4]U16x16, px []byte) {
	_ = px[BatchBytes-1]
	for i := 0; i < BatchPixels; i++ {
		offset := i * 4
		lanes[0][i] = uint16(px[offset+0])
		lanes[1][i] = uint16(px[offset+1])
		lanes[2][i] = uint16(px[offset+2])
		lanes[3][i] = uint16(px[offset+3])
	}
}

// LoadS1 loads 16 RGBA pixels into the first input lanes.
// px must have at least 64 bytes.
func (b *BatchState) LoadS1(px []byte) { load(&b.S1, px) }

// LoadS2 loads 16 RGBA pixels into the second input lanes.
// px must have at least 64 bytes.
func (b *BatchState) LoadS2(px []byte) { load(&b.S2, px) }

// LoadMaskChannel loads channel ch (0-3) of 16 RGBA pixels into M.
// This is how a grayscale mask image is read: every channel holds the level.
func (b *BatchState) LoadMaskChannel(px []byte, ch int) {
	_ = px[BatchBytes-1]
	for i := 0; i < BatchPixels; i++ {
		b.M[i] = uint16(px[i*4+ch])
	}
}

// LoadPlane loads 16 one-byte-per-pixel alpha values into M.
func (b *BatchState) LoadPlane(plane []byte) {
	_ = plane[BatchPixels-1]
	for i := 0; i < BatchPixels; i++ {
		b.M[i] = uint16(plane[i])
	}
}

// StoreD stores the output lanes as 16 RGBA pixels.
// px must have at least 64 bytes.
func (b *BatchState) StoreD(px []byte) {
	_ = px[BatchBytes-1]
	for i := 0; i < BatchPixels; i++ {
		offset := i * 4
		// Intentional truncation - lanes are guaranteed to be in [0, 255] range
		px[offset+0] = uint8(b.D[0][i]) // #nosec G115
		px[offset+1] = uint8(b.D[1][i]) // #nosec G115
		px[offset+2] = uint8(b.D[2][i]) // #nosec G115
		px[offset+3] = uint8(b.D[3][i]) // #nosec G115
	}
}
