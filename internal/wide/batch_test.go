package wide

import (
	"bytes"
	"testing"
)

func TestBatchState_LoadStore(t *testing.T) {
	src := make([]byte, BatchBytes)
	for i := 0; i < BatchPixels; i++ {
		src[i*4+0] = uint8(i * 10)   // R
		src[i*4+1] = uint8(i*10 + 1) // G
		src[i*4+2] = uint8(i*10 + 2) // B
		src[i*4+3] = uint8(i*10 + 3) // A
	}

	var batch BatchState
	batch.LoadS1(src)

	for i := 0; i < BatchPixels; i++ {
		for ch := 0; ch < 4; ch++ {
			if want := uint16(i*10 + ch); batch.S1[ch][i] != want {
				t.Errorf("S1[%d][%d] = %d, want %d", ch, i, batch.S1[ch][i], want)
			}
		}
	}

	batch.D = batch.S1
	out := make([]byte, BatchBytes)
	batch.StoreD(out)
	if !bytes.Equal(out, src) {
		t.Errorf("StoreD round trip mismatch:\n got %v\nwant %v", out, src)
	}
}

func TestBatchState_LoadMask(t *testing.T) {
	px := make([]byte, BatchBytes)
	plane := make([]byte, BatchPixels)
	for i := 0; i < BatchPixels; i++ {
		px[i*4] = uint8(i * 16)
		px[i*4+1] = 0xEE
		plane[i] = uint8(255 - i)
	}

	var batch BatchState
	batch.LoadMaskChannel(px, 0)
	for i := 0; i < BatchPixels; i++ {
		if batch.M[i] != uint16(i*16) {
			t.Errorf("M[%d] = %d, want %d", i, batch.M[i], i*16)
		}
	}

	batch.LoadPlane(plane)
	for i := 0; i < BatchPixels; i++ {
		if batch.M[i] != uint16(255-i) {
			t.Errorf("M[%d] = %d, want %d", i, batch.M[i], 255-i)
		}
	}
}
