package stillcount

import "math/bits"

// FlipHorizontally mirrors gg's content left-right in place.
func (gg *GoLGrid) FlipHorizontally() {
	colCnt := int32(len(gg.columns))
	reversed := make([]column, colCnt)
	for c := range reversed {
		reversed[c] = make(column, gg.GridRect.Height)
	}

	for c := int32(0); c < colCnt; c++ {
		srcCol := gg.columns[c]
		dstC := colCnt - 1 - c
		for y := int32(0); y < gg.GridRect.Height; y++ {
			reversed[dstC][y] = bits.Reverse64(srcCol[y])
		}
	}

	gg.columns = reversed
	oldXOn, oldXOff := gg.PopXOn, gg.PopXOff
	gg.PopXOn = gg.GridRect.Width - oldXOff
	gg.PopXOff = gg.GridRect.Width - oldXOn
}

// FlipVertically mirrors gg's content top-bottom in place.
func (gg *GoLGrid) FlipVertically() {
	h := gg.GridRect.Height
	for _, col := range gg.columns {
		for y := int32(0); y < h/2; y++ {
			col[y], col[h-1-y] = col[h-1-y], col[y]
		}
	}

	oldYOn, oldYOff := gg.PopYOn, gg.PopYOff
	gg.PopYOn = h - oldYOff
	gg.PopYOff = h - oldYOn
}

// FlipDiagonally transposes gg (swaps x and y) into dst. dst must have
// width equal to gg's height and height equal to gg's width, both already
// multiples of 64 (the granularity transpose64 operates on in one block).
func (gg *GoLGrid) FlipDiagonally(dst *GoLGrid) {
	dst.Clear()

	srcColCnt := int32(len(gg.columns))
	dstColCnt := int32(len(dst.columns))

	for srcC := int32(0); srcC < srcColCnt; srcC++ {
		for blockY := int32(0); blockY*64 < gg.GridRect.Height; blockY++ {
			var block [64]uint64
			for i := int32(0); i < 64; i++ {
				y := blockY*64 + i
				if y < gg.GridRect.Height {
					block[i] = gg.columns[srcC][y]
				}
			}

			bitTranspose64(&block)

			dstC := blockY
			if dstC >= dstColCnt {
				continue
			}
			for i := int32(0); i < 64; i++ {
				destY := srcC*64 + i
				if destY < dst.GridRect.Height {
					dst.columns[dstC][destY] = block[i]
				}
			}
		}
	}

	dst.tightenWholeGrid()
}

// bitTranspose64 transposes the 64x64 bit matrix held in a, where bit
// (63-i) of a[r] is matrix cell (r, i) (the grid's own leftmost-bit-first
// column convention). Built bit by bit rather than with the classic
// divide-and-conquer word shuffle: this engine's bit order runs the
// opposite way from that trick's usual column-0-in-bit-0 assumption, and
// a direct bit-by-bit build is easier to get right than re-deriving the
// mask sequence for a mirrored bit order.
func bitTranspose64(a *[64]uint64) {
	var out [64]uint64
	for r := 0; r < 64; r++ {
		word := a[r]
		for word != 0 {
			b := bits.LeadingZeros64(word)
			word &^= uint64(1) << (63 - uint(b))
			out[b] |= uint64(1) << (63 - uint(r))
		}
	}
	*a = out
}

// tightenWholeGrid rescans the entire grid to recompute its tight
// population box. Used after whole-grid rebuilds (FlipDiagonally) where no
// prior pop box is available to seed an incremental scan.
func (gg *GoLGrid) tightenWholeGrid() {
	gg.PopXOn, gg.PopXOff = 0, gg.GridRect.Width
	gg.PopYOn, gg.PopYOff = 0, gg.GridRect.Height
	gg.tightenPopBox()
}

// CopyToTopLeft copies src into gg with its bounding box's top-left corner
// placed at gg's physical origin (0, 0).
func (gg *GoLGrid) CopyToTopLeft(src *GoLGrid) {
	gg.Clear()
	if src.PopXOff <= src.PopXOn {
		return
	}

	var obj ObjCellList
	obj.MaxCells = int(src.GetPopulation())
	src.ToObjCellList(&obj)
	obj.ObjRect.LeftX = 0
	obj.ObjRect.TopY = 0

	gg.OrObjCellList(&obj, -gg.GridRect.LeftX, -gg.GridRect.TopY)
}
