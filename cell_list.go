package stillcount

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is an on-cell's position relative to an ObjCellList's ObjRect.
// Coordinates are bounded to [0, 255], matching the 256x256 cap an
// ObjCellList ever needs to represent a still-life candidate.
type Cell struct {
	X uint8
	Y uint8
}

// ObjCellList is a sorted (row-major: y then x), capacity-bounded list of
// on-cells, used for compact storage, comparison and hashing of small
// objects (still lifes, gliders) without the overhead of a full GoLGrid.
type ObjCellList struct {
	ObjRect  Rect
	Cells    []Cell
	MaxCells int
}

// NewObjCellList returns an empty list with room for up to maxCells cells.
func NewObjCellList(maxCells int) *ObjCellList {
	return &ObjCellList{Cells: make([]Cell, 0, maxCells), MaxCells: maxCells}
}

// Clear empties the list, keeping its capacity.
func (o *ObjCellList) Clear() {
	o.ObjRect = Rect{}
	o.Cells = o.Cells[:0]
}

// CellCount returns the number of on-cells.
func (o *ObjCellList) CellCount() int {
	return len(o.Cells)
}

// AddOnCell inserts (x, y) in sorted order, growing ObjRect as needed.
// Returns false if the list has reached MaxCells or the bounding box would
// exceed 256 in either dimension; in both cases the cell is not added, but
// existing content is left intact (unlike the reference implementation's
// in-place array shifting, which can't partially fail after capacity is
// confirmed).
func (o *ObjCellList) AddOnCell(x, y int32) bool {
	if len(o.Cells) == 0 {
		if o.MaxCells <= 0 {
			return false
		}
		o.ObjRect = NewRect(x, y, 1, 1)
		o.Cells = append(o.Cells, Cell{0, 0})
		return true
	}

	newRect := o.ObjRect.Include(x, y)
	if newRect.Width > 256 || newRect.Height > 256 {
		return false
	}

	relX := x - newRect.LeftX
	relY := y - newRect.TopY

	shiftX := o.ObjRect.LeftX - newRect.LeftX
	shiftY := o.ObjRect.TopY - newRect.TopY

	insertAt := len(o.Cells)
	for i, c := range o.Cells {
		cx := int32(c.X) + shiftX
		cy := int32(c.Y) + shiftY
		if cy > relY || (cy == relY && cx >= relX) {
			if cy == relY && cx == relX {
				o.ObjRect = newRect
				if shiftX != 0 || shiftY != 0 {
					for j := range o.Cells {
						o.Cells[j].X = uint8(int32(o.Cells[j].X) + shiftX)
						o.Cells[j].Y = uint8(int32(o.Cells[j].Y) + shiftY)
					}
				}
				return true
			}
			insertAt = i
			break
		}
	}

	if len(o.Cells) >= o.MaxCells {
		return false
	}

	if shiftX != 0 || shiftY != 0 {
		for j := range o.Cells {
			o.Cells[j].X = uint8(int32(o.Cells[j].X) + shiftX)
			o.Cells[j].Y = uint8(int32(o.Cells[j].Y) + shiftY)
		}
	}

	o.ObjRect = newRect
	o.Cells = append(o.Cells, Cell{})
	copy(o.Cells[insertAt+1:], o.Cells[insertAt:len(o.Cells)-1])
	o.Cells[insertAt] = Cell{X: uint8(relX), Y: uint8(relY)}

	return true
}

// Copy replaces dst's content with src's. Fails (leaving dst cleared) if
// dst's capacity is too small.
func (o *ObjCellList) Copy(dst *ObjCellList) bool {
	if dst.MaxCells < len(o.Cells) {
		dst.Clear()
		return false
	}
	dst.Cells = append(dst.Cells[:0], o.Cells...)
	dst.ObjRect = o.ObjRect
	return true
}

// SetTopLeft moves ObjRect's position without touching the cell data.
func (o *ObjCellList) SetTopLeft(leftX, topY int32) {
	o.ObjRect.LeftX = leftX
	o.ObjRect.TopY = topY
}

func cellLess(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func (o *ObjCellList) sort() {
	cells := o.Cells
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cellLess(cells[j], cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}

// FlipHorizontally mirrors the list left-right within its bounding box.
func (o *ObjCellList) FlipHorizontally() {
	for i := range o.Cells {
		o.Cells[i].X = uint8(o.ObjRect.Width - 1 - int32(o.Cells[i].X))
	}
	o.sort()
}

// FlipVertically mirrors the list top-bottom within its bounding box.
func (o *ObjCellList) FlipVertically() {
	for i := range o.Cells {
		o.Cells[i].Y = uint8(o.ObjRect.Height - 1 - int32(o.Cells[i].Y))
	}
	o.sort()
}

// FlipDiagonally transposes the list about its main diagonal, swapping
// width and height.
func (o *ObjCellList) FlipDiagonally() {
	for i := range o.Cells {
		o.Cells[i].X, o.Cells[i].Y = o.Cells[i].Y, o.Cells[i].X
	}
	o.ObjRect.Width, o.ObjRect.Height = o.ObjRect.Height, o.ObjRect.Width
	o.sort()
}

// EvolveSlow applies one B3/S23 generation via a direct O(n^2) neighbour
// count, used only to cross-check the bit-packed grid engine's fast
// Evolve on small patterns. Returns false if out has insufficient capacity
// or in is too large (width/height over 254) to evolve safely.
func (o *ObjCellList) EvolveSlow(out *ObjCellList) bool {
	if o.ObjRect.Width > 254 || o.ObjRect.Height > 254 {
		return false
	}

	out.Clear()

	type born struct{ x, y int32 }
	var results []born

	for midY := int32(-1); midY < o.ObjRect.Height+1; midY++ {
		for midX := int32(-1); midX < o.ObjRect.Width+1; midX++ {
			midCnt := 0
			neighbourCnt := 0

			for _, c := range o.Cells {
				cx, cy := int32(c.X), int32(c.Y)
				if cx == midX && cy == midY {
					midCnt++
				} else if cx >= midX-1 && cx <= midX+1 && cy >= midY-1 && cy <= midY+1 {
					neighbourCnt++
				}
			}

			if neighbourCnt == 3 || (midCnt == 1 && neighbourCnt == 2) {
				results = append(results, born{midX + 1, midY + 1})
			}
		}
	}

	if len(results) == 0 {
		return true
	}
	if len(results) > out.MaxCells {
		out.Clear()
		return false
	}

	popXOn, popXOff := results[0].x, results[0].x+1
	for _, r := range results {
		if r.x < popXOn {
			popXOn = r.x
		}
		if r.x+1 > popXOff {
			popXOff = r.x + 1
		}
	}
	popYOn, popYOff := results[0].y, results[len(results)-1].y+1

	for _, r := range results {
		out.Cells = append(out.Cells, Cell{X: uint8(r.x - popXOn), Y: uint8(r.y - popYOn)})
	}

	out.ObjRect = NewRect(o.ObjRect.LeftX-1+popXOn, o.ObjRect.TopY-1+popYOn, popXOff-popXOn, popYOff-popYOn)
	return true
}

// ParseRLE populates o from a run-length-encoded cell spec ("bo$2o!" style,
// without a header line): digits give a repeat count, 'o', 'O', 'A', 'C',
// 'E', '*' and '@' mark on-cells, '\n' and '\r' are skipped, any other
// non-digit/non-'$'/non-'!' symbol (including 'B', 'D' and 'F') is an
// off-run, '$' ends a row, '!' or end-of-string ends the pattern.
func (o *ObjCellList) ParseRLE(spec string) bool {
	cellIx := 0
	y := int32(0)
	x := int32(0)

	popXOn, popXOff := int32(256), int32(0)
	popYOn, popYOff := int32(256), int32(0)

	cells := make([]Cell, 0, o.MaxCells)

	i := 0
	for i < len(spec) {
		c := spec[i]
		i++

		reps := int32(1)
		if c >= '0' && c <= '9' {
			j := i - 1
			for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
				i++
			}
			n, err := strconv.ParseInt(spec[j:i], 10, 64)
			if err != nil || n == 0 || n > 256 || i >= len(spec) {
				o.Clear()
				return false
			}
			reps = int32(n)
			c = spec[i]
			i++
		}

		switch {
		case c == 'o' || c == 'A' || c == 'C' || c == 'E' || c == 'O' || c == '*' || c == '@':
			for r := int32(0); r < reps; r++ {
				if cellIx >= o.MaxCells || x >= 256 || y >= 256 {
					o.Clear()
					return false
				}
				cells = append(cells, Cell{X: uint8(x), Y: uint8(y)})
				cellIx++

				if popXOn > x {
					popXOn = x
				}
				if popXOff < x+1 {
					popXOff = x + 1
				}
				if popYOn > y {
					popYOn = y
				}
				if popYOff < y+1 {
					popYOff = y + 1
				}
				x++
			}
		case c == '$':
			y += reps
			x = 0
		case c == '!' || c == 0:
			i = len(spec) + 1 // force loop exit
		case c == '\n' || c == '\r':
			// ignore
		default:
			x += reps
		}
	}

	if cellIx == 0 {
		o.Clear()
		return true
	}

	for i := range cells {
		cells[i].X = uint8(int32(cells[i].X) - popXOn)
		cells[i].Y = uint8(int32(cells[i].Y) - popYOn)
	}

	o.Cells = cells
	o.ObjRect = NewRect(0, 0, popXOff-popXOn, popYOff-popYOn)
	return true
}

// PrintRLE renders o in the same comma-free RLE grammar ParseRLE accepts,
// terminated with "!".
func (o *ObjCellList) PrintRLE() string {
	var sb strings.Builder

	cellIx := 0
	for row := int32(0); row < o.ObjRect.Height; row++ {
		col := int32(0)
		for cellIx < len(o.Cells) && int32(o.Cells[cellIx].Y) == row {
			cell := o.Cells[cellIx]
			if int32(cell.X) > col {
				writeRun(&sb, int32(cell.X)-col, 'b')
			}
			runLen := int32(0)
			for cellIx < len(o.Cells) && int32(o.Cells[cellIx].Y) == row && int32(o.Cells[cellIx].X) == col+runLen {
				runLen++
				cellIx++
			}
			writeRun(&sb, runLen, 'o')
			col += int32(cell.X) - col + runLen
		}
		if row < o.ObjRect.Height-1 {
			sb.WriteByte('$')
		}
	}
	sb.WriteByte('!')
	return sb.String()
}

func writeRun(sb *strings.Builder, count int32, symbol byte) {
	if count <= 0 {
		return
	}
	if count > 1 {
		fmt.Fprintf(sb, "%d", count)
	}
	sb.WriteByte(symbol)
}
