package stillcount

// Or sets gg to the union of gg and src. gg and src must have equal
// dimensions and virtual position.
func (gg *GoLGrid) Or(src *GoLGrid) {
	if src.PopXOff <= src.PopXOn {
		return
	}

	colOn := src.PopXOn >> 6
	colOff := (src.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := src.PopYOn; y < src.PopYOff; y++ {
			dstCol[y] |= srcCol[y]
		}
	}

	gg.adjustPopRectOredBoundingBox(src.PopXOn, src.PopXOff, src.PopYOn, src.PopYOff)
}

// And sets gg to the intersection of gg and src.
func (gg *GoLGrid) And(src *GoLGrid) {
	colOn := min32(gg.PopXOn, src.PopXOn) >> 6
	colOff := (max32(gg.PopXOff, src.PopXOff) + 63) >> 6
	yOn := min32(gg.PopYOn, src.PopYOn)
	yOff := max32(gg.PopYOff, src.PopYOff)

	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := yOn; y < yOff; y++ {
			dstCol[y] &= srcCol[y]
		}
	}

	gg.tightenPopBox()
}

// Subtract sets gg to gg with src's on-cells removed.
func (gg *GoLGrid) Subtract(src *GoLGrid) {
	if src.PopXOff <= src.PopXOn {
		return
	}

	colOn := src.PopXOn >> 6
	colOff := (src.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := src.PopYOn; y < src.PopYOff; y++ {
			dstCol[y] &^= srcCol[y]
		}
	}

	gg.tightenPopBox()
}

// Xor sets gg to the symmetric difference of gg and src.
func (gg *GoLGrid) Xor(src *GoLGrid) {
	colOn := min32(gg.PopXOn, src.PopXOn) >> 6
	colOff := (max32(gg.PopXOff, src.PopXOff) + 63) >> 6
	yOn := min32(gg.PopYOn, src.PopYOn)
	yOff := max32(gg.PopYOff, src.PopYOff)

	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := yOn; y < yOff; y++ {
			dstCol[y] ^= srcCol[y]
		}
	}

	if src.PopXOff > src.PopXOn {
		gg.adjustPopRectOredBoundingBox(src.PopXOn, src.PopXOff, src.PopYOn, src.PopYOff)
	}
	gg.tightenPopBox()
}

// Copy sets gg's content and generation to src's. gg and src must have
// equal dimensions.
func (gg *GoLGrid) Copy(src *GoLGrid) {
	for c := range gg.columns {
		copy(gg.columns[c], src.columns[c])
	}
	gg.PopXOn, gg.PopXOff = src.PopXOn, src.PopXOff
	gg.PopYOn, gg.PopYOff = src.PopYOn, src.PopYOff
	gg.Generation = src.Generation
}

// CopyUnmatched copies src's on-cells into gg at src's virtual position,
// clearing gg first. Unlike the other paired-grid operations, gg and src
// need not share dimensions or virtual position; cells that fall outside gg
// are silently clipped. Returns false if any cell was clipped.
func (gg *GoLGrid) CopyUnmatched(src *GoLGrid) bool {
	gg.Clear()
	if src.PopXOff <= src.PopXOn {
		return true
	}

	var obj ObjCellList
	obj.MaxCells = int(src.GetPopulation())
	if !src.ToObjCellList(&obj) {
		obj.MaxCells = int(src.GetPopulation())
		src.ToObjCellList(&obj)
	}

	xOffs := src.GridRect.LeftX + src.PopXOn
	yOffs := src.GridRect.TopY + src.PopYOn
	obj.ObjRect.LeftX = 0
	obj.ObjRect.TopY = 0

	return gg.OrObjCellList(&obj, xOffs, yOffs)
}

// IsEqual reports whether gg and src have identical on-cells, in physical
// coordinates (virtual position is ignored).
func (gg *GoLGrid) IsEqual(src *GoLGrid) bool {
	if gg.PopXOn != src.PopXOn || gg.PopXOff != src.PopXOff ||
		gg.PopYOn != src.PopYOn || gg.PopYOff != src.PopYOff {
		return false
	}

	if gg.PopXOff <= gg.PopXOn {
		return true
	}

	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			if dstCol[y] != srcCol[y] {
				return false
			}
		}
	}
	return true
}

// IsSubsetOf reports whether every on-cell of gg is also on in src.
func (gg *GoLGrid) IsSubsetOf(src *GoLGrid) bool {
	if gg.PopXOff <= gg.PopXOn {
		return true
	}

	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			if dstCol[y]&^srcCol[y] != 0 {
				return false
			}
		}
	}
	return true
}

// AreDisjoint reports whether gg and src share no on-cell.
func (gg *GoLGrid) AreDisjoint(src *GoLGrid) bool {
	colOn := max32(gg.PopXOn, src.PopXOn) >> 6
	colOff := (min32(gg.PopXOff, src.PopXOff) + 63) >> 6
	yOn := max32(gg.PopYOn, src.PopYOn)
	yOff := min32(gg.PopYOff, src.PopYOff)

	for c := colOn; c < colOff; c++ {
		dstCol, srcCol := gg.columns[c], src.columns[c]
		for y := yOn; y < yOff; y++ {
			if dstCol[y]&srcCol[y] != 0 {
				return false
			}
		}
	}
	return true
}
