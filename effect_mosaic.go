package transit

// mosaicLevels is the number of block sizes; level 0 is the coarsest.
const mosaicLevels = 6

// mosaicBase is the block size at level 0.
const mosaicBase = 160

// mosaic pixelates one frame into square blocks. Mosaic out coarsens the
// source, mosaic in refines the destination.
type mosaic struct{ in bool }

func (m mosaic) render(e *Engine, c, d int) {
	b := e.bufs
	if m.in {
		generateMosaic(b.Accumulation, b.Destination, mosaicLevels*c/d)
	} else {
		generateMosaic(b.Accumulation, b.Source, mosaicLevels-1-mosaicLevels*c/d)
	}
}

// generateMosaic fills dst with blocks of mosaicBase>>level pixels, each
// the color of one sampled src pixel. Blocks are anchored at the bottom
// row and sample their bottom-left pixel, so the bottom-left corner stays
// fixed while the block size changes.
func generateMosaic(dst, src *ImageBuf, level int) {
	size := mosaicBase >> max(level, 0)
	if size < 1 {
		size = 1
	}
	w, h := min(dst.Width(), src.Width()), min(dst.Height(), src.Height())

	for i := h - 1; i >= 0; i -= size {
		bh := min(size, i+1)
		for j := 0; j < w; j += size {
			bw := min(size, w-j)
			p := src.RowSpan(i, j, 1)
			row := dst.RowSpan(i, j, bw)
			for x := 0; x < len(row); x += 4 {
				copy(row[x:x+4], p)
			}
			for y := i - 1; y > i-bh; y-- {
				copy(dst.RowSpan(y, j, bw), row)
			}
		}
	}
}
