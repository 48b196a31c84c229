package stillcount

import "math/bits"

// GridWidthGranularity and GridHeightGranularity are the required
// divisors of a GoLGrid's width and height, matching the reference grid
// engine's word/vector alignment rules.
const (
	GridWidthGranularity  = 64
	GridHeightGranularity = 16
)

// column is one 64-cell-wide vertical strip of a grid: column[y] packs the
// 64 cells of row y into a single word, bit 63 the strip's leftmost cell.
type column []uint64

// GoLGrid is a bit-packed, column-major Game of Life grid. Coordinates
// passed to its exported methods are in the grid's own virtual coordinate
// system (GridRect.LeftX/TopY may be anything); internally all bit
// addressing uses physical (0-based) coordinates.
//
// All functions taking two GoLGrid arguments require equal-sized grids;
// when both are sources their virtual positions must also match. A
// destination keeps its own virtual position: no operation copies the
// sources' GridRect into it. The only
// exception is CopyUnmatched, which works across differently sized and
// positioned grids.
type GoLGrid struct {
	GridRect Rect
	columns  []column

	PopXOn  int32
	PopXOff int32
	PopYOn  int32
	PopYOff int32

	Generation int64
}

// NewGoLGrid allocates a grid over gridRect, whose width must be a
// multiple of GridWidthGranularity and height a multiple of
// GridHeightGranularity.
func NewGoLGrid(gridRect Rect) *GoLGrid {
	if gridRect.Width <= 0 || gridRect.Width%GridWidthGranularity != 0 ||
		gridRect.Height <= 0 || gridRect.Height%GridHeightGranularity != 0 {
		panic("stillcount: grid dimensions must be positive and granularity-aligned")
	}

	colCnt := gridRect.Width / GridWidthGranularity
	gg := &GoLGrid{GridRect: gridRect, columns: make([]column, colCnt)}
	for i := range gg.columns {
		gg.columns[i] = make(column, gridRect.Height)
	}
	gg.setEmptyPopulationRect()
	return gg
}

func (gg *GoLGrid) setEmptyPopulationRect() {
	gg.PopXOn = gg.GridRect.Width >> 1
	gg.PopXOff = gg.GridRect.Width >> 1
	gg.PopYOn = gg.GridRect.Height >> 1
	gg.PopYOff = gg.GridRect.Height >> 1
}

func (gg *GoLGrid) adjustPopRectNewOnCell(x, y int32) {
	if gg.PopXOff <= gg.PopXOn {
		gg.PopXOn = x
		gg.PopXOff = x + 1
		gg.PopYOn = y
		gg.PopYOff = y + 1
		return
	}

	if gg.PopXOn > x {
		gg.PopXOn = x
	} else if gg.PopXOff < x+1 {
		gg.PopXOff = x + 1
	}

	if gg.PopYOn > y {
		gg.PopYOn = y
	} else if gg.PopYOff < y+1 {
		gg.PopYOff = y + 1
	}
}

func (gg *GoLGrid) adjustPopRectOredBoundingBox(oredXOn, oredXOff, oredYOn, oredYOff int32) {
	if gg.PopXOff <= gg.PopXOn {
		gg.PopXOn, gg.PopXOff, gg.PopYOn, gg.PopYOff = oredXOn, oredXOff, oredYOn, oredYOff
		return
	}

	gg.PopXOn = min32(gg.PopXOn, oredXOn)
	gg.PopXOff = max32(gg.PopXOff, oredXOff)
	gg.PopYOn = min32(gg.PopYOn, oredYOn)
	gg.PopYOff = max32(gg.PopYOff, oredYOff)
}

// tightenPopBox rescans the declared pop-box area and shrinks it to the
// tightest box containing all on-cells (or collapses to an empty box).
// This stands in for the reference engine's incremental per-edge
// tightening: since this port always recomputes whole columns rather than
// tracking edits cell by cell, a full rescan after each mutating op is both
// simpler and no less correct.
func (gg *GoLGrid) tightenPopBox() {
	if gg.PopXOff <= gg.PopXOn {
		return
	}

	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6

	minX, maxX := int32(-1), int32(-1)
	minRow, maxRow := int32(-1), int32(-1)

	for c := colOn; c < colOff; c++ {
		col := gg.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			w := col[y]
			if w == 0 {
				continue
			}
			if x := 64*c + int32(bits.LeadingZeros64(w)); minX < 0 || x < minX {
				minX = x
			}
			if x := 64*c + 64 - int32(bits.TrailingZeros64(w)); x > maxX {
				maxX = x
			}
			if minRow < 0 || y < minRow {
				minRow = y
			}
			if y > maxRow {
				maxRow = y
			}
		}
	}

	if minX < 0 {
		gg.setEmptyPopulationRect()
		return
	}

	gg.PopXOn = minX
	gg.PopXOff = maxX
	gg.PopYOn = minRow
	gg.PopYOff = maxRow + 1
}

// GetGridRect returns the grid's virtual-coordinate rectangle.
func (gg *GoLGrid) GetGridRect() Rect {
	return gg.GridRect
}

// SetGridCoords relocates the grid's virtual origin without touching its
// content.
func (gg *GoLGrid) SetGridCoords(leftX, topY int32) {
	gg.GridRect.LeftX = leftX
	gg.GridRect.TopY = topY
}

// GetBoundingBox returns the tight population bounding box in virtual
// coordinates, and whether the grid is non-empty.
func (gg *GoLGrid) GetBoundingBox() (Rect, bool) {
	box := NewRect(gg.PopXOn+gg.GridRect.LeftX, gg.PopYOn+gg.GridRect.TopY, gg.PopXOff-gg.PopXOn, gg.PopYOff-gg.PopYOn)
	return box, gg.PopXOff > gg.PopXOn
}

// IsEmpty reports whether the grid has no on-cells.
func (gg *GoLGrid) IsEmpty() bool {
	return gg.PopXOff <= gg.PopXOn
}

// GetCell returns whether the cell at virtual (x, y) is on. Out-of-range
// coordinates are treated as off.
func (gg *GoLGrid) GetCell(x, y int32) bool {
	physX := x - gg.GridRect.LeftX
	physY := y - gg.GridRect.TopY
	if uint32(physX) >= uint32(gg.GridRect.Width) || uint32(physY) >= uint32(gg.GridRect.Height) {
		return false
	}
	return gg.columns[physX>>6][physY]>>(63-uint(physX&0x3f))&1 != 0
}

// SetCellOn turns the cell at virtual (x, y) on. Returns false if (x, y) is
// outside the grid.
func (gg *GoLGrid) SetCellOn(x, y int32) bool {
	physX := x - gg.GridRect.LeftX
	physY := y - gg.GridRect.TopY
	if uint32(physX) >= uint32(gg.GridRect.Width) || uint32(physY) >= uint32(gg.GridRect.Height) {
		return false
	}
	gg.columns[physX>>6][physY] |= uint64(1) << (63 - uint(physX&0x3f))
	gg.adjustPopRectNewOnCell(physX, physY)
	return true
}

// SetCellOff turns the cell at virtual (x, y) off. Returns false if (x, y)
// is outside the grid.
func (gg *GoLGrid) SetCellOff(x, y int32) bool {
	physX := x - gg.GridRect.LeftX
	physY := y - gg.GridRect.TopY
	if uint32(physX) >= uint32(gg.GridRect.Width) || uint32(physY) >= uint32(gg.GridRect.Height) {
		return false
	}
	gg.columns[physX>>6][physY] &^= uint64(1) << (63 - uint(physX&0x3f))
	if physX == gg.PopXOn || physX == gg.PopXOff-1 || physY == gg.PopYOn || physY == gg.PopYOff-1 {
		gg.tightenPopBox()
	}
	return true
}

// Clear empties the grid and resets its generation counter.
func (gg *GoLGrid) Clear() {
	gg.Generation = 0
	if gg.PopXOff <= gg.PopXOn {
		return
	}
	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		col := gg.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			col[y] = 0
		}
	}
	gg.setEmptyPopulationRect()
}

// GetPopulation returns the number of on-cells.
func (gg *GoLGrid) GetPopulation() uint64 {
	if gg.PopXOff <= gg.PopXOn {
		return 0
	}
	var pop uint64
	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6
	for c := colOn; c < colOff; c++ {
		col := gg.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			pop += uint64(bits.OnesCount64(col[y]))
		}
	}
	return pop
}

// ToObjCellList fills obj with the grid's on-cells in row-major order,
// relative to the grid's tight bounding box. Returns false (with obj
// cleared) if the bounding box exceeds 256 in either dimension or obj's
// capacity is too small.
func (gg *GoLGrid) ToObjCellList(obj *ObjCellList) bool {
	if gg.PopXOff <= gg.PopXOn {
		obj.Clear()
		return true
	}

	if gg.PopXOff-gg.PopXOn > 256 || gg.PopYOff-gg.PopYOn > 256 {
		obj.Clear()
		return false
	}

	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6

	cells := make([]Cell, 0, obj.MaxCells)

	for y := gg.PopYOn; y < gg.PopYOff; y++ {
		for c := colOn; c < colOff; c++ {
			word := gg.columns[c][y]
			for word != 0 {
				bit := bits.LeadingZeros64(word)
				word &^= uint64(1) << (63 - uint(bit))

				if len(cells) >= obj.MaxCells {
					obj.Clear()
					return false
				}

				x := (64*c + int32(bit)) - gg.PopXOn
				cells = append(cells, Cell{X: uint8(x), Y: uint8(y - gg.PopYOn)})
			}
		}
	}

	box, _ := gg.GetBoundingBox()
	obj.ObjRect = box
	obj.Cells = cells
	return true
}

// OrObjCellList draws obj's on-cells onto gg, offset by (xOffs, yOffs),
// silently clipping any cell that falls outside the grid. Returns false if
// any cell was clipped.
func (gg *GoLGrid) OrObjCellList(obj *ObjCellList, xOffs, yOffs int32) bool {
	if len(obj.Cells) == 0 {
		return true
	}

	physLeftX := (obj.ObjRect.LeftX + xOffs) - gg.GridRect.LeftX
	physTopY := (obj.ObjRect.TopY + yOffs) - gg.GridRect.TopY

	notClipped := true
	for _, cell := range obj.Cells {
		x := obj.ObjRect.LeftX + xOffs + int32(cell.X)
		y := obj.ObjRect.TopY + yOffs + int32(cell.Y)
		if !gg.SetCellOn(x, y) {
			notClipped = false
		}
	}

	if notClipped {
		gg.adjustPopRectOredBoundingBox(physLeftX, physLeftX+obj.ObjRect.Width, physTopY, physTopY+obj.ObjRect.Height)
	}

	return notClipped
}
