package stillcount

// The reference engine combines adjacent columns with a sliding, arbitrary
// bit-offset "strip" so it can avoid touching words outside a tight
// population box. Since this port always recomputes whole columns, that
// machinery collapses to something much simpler: columns within one grid
// are always exactly 64-bit aligned with each other, so propagating a
// neighbour's contribution across a column boundary only ever needs the
// single bit nearest that boundary, carried from the adjacent column.

func leftColumnOf(gg *GoLGrid, c int32, y int32) uint64 {
	if c <= 0 {
		return 0
	}
	return gg.columns[c-1][y]
}

func rightColumnOf(gg *GoLGrid, c int32, y int32) uint64 {
	if c >= int32(len(gg.columns))-1 {
		return 0
	}
	return gg.columns[c+1][y]
}

// shiftLeftNeighbours returns mid shifted so each bit holds its
// left-hand neighbour (mid >> 1 in this engine's bit order, since bit 63
// is the leftmost cell), carrying in the rightmost bit of the column to
// the left.
func shiftLeftNeighbours(mid, left uint64) uint64 {
	return (mid >> 1) | ((left & 1) << 63)
}

// shiftRightNeighbours returns mid shifted so each bit holds its
// right-hand neighbour, carrying in the leftmost bit of the column to the
// right.
func shiftRightNeighbours(mid, right uint64) uint64 {
	return (mid << 1) | (right >> 63)
}

func bleed4Word(upper, mid, lower, left, right uint64) uint64 {
	return upper | lower | mid | shiftLeftNeighbours(mid, left) | shiftRightNeighbours(mid, right)
}

func bleed8WordImpl(upper, mid, lower, left, right uint64) uint64 {
	return upper | lower | mid |
		shiftLeftNeighbours(mid, left) | shiftRightNeighbours(mid, right) |
		shiftLeftNeighbours(upper, left) | shiftRightNeighbours(upper, right) |
		shiftLeftNeighbours(lower, left) | shiftRightNeighbours(lower, right)
}

// bleed3OrMoreWord returns mid's on-cells together with the set of cells
// with at least 3 of their 8 neighbours on, the latter via ripple-carry bit
// counting over the 8 neighbour contributions (so such an output bit is 1
// exactly when 3 or more of the 8 per-bit neighbour indicators were 1).
func bleed3OrMoreWord(upper, mid, lower, left, right uint64) uint64 {
	n := [8]uint64{
		upper,
		lower,
		shiftLeftNeighbours(mid, left),
		shiftRightNeighbours(mid, right),
		shiftLeftNeighbours(upper, left),
		shiftRightNeighbours(upper, right),
		shiftLeftNeighbours(lower, left),
		shiftRightNeighbours(lower, right),
	}

	var c0, c1, c2, c3 uint64
	for _, x := range n {
		carry := c0 & x
		c0 ^= x
		carry2 := c1 & carry
		c1 ^= carry
		carry3 := c2 & carry2
		c2 ^= carry2
		c3 |= carry3
	}
	return mid | c3 | c2 | (c0 & c1)
}

// evolveWord returns the next-generation state of mid given its upper,
// lower and horizontally-adjacent neighbour words, applying B3/S23: a cell
// survives or is born iff it has exactly 3 on neighbours, or exactly 2 and
// is already on.
func evolveWord(upper, mid, lower, left, right uint64) uint64 {
	n := [8]uint64{
		upper,
		lower,
		shiftLeftNeighbours(mid, left),
		shiftRightNeighbours(mid, right),
		shiftLeftNeighbours(upper, left),
		shiftRightNeighbours(upper, right),
		shiftLeftNeighbours(lower, left),
		shiftRightNeighbours(lower, right),
	}

	var c0, c1, c2, c3 uint64
	for _, x := range n {
		carry0 := c0 & x
		c0 ^= x
		carry1 := c1 & carry0
		c1 ^= carry0
		carry2 := c2 & carry1
		c2 ^= carry1
		c3 |= carry2
	}

	exactlyTwo := c1 & ^c0 &^ c2 &^ c3
	exactlyThree := c0 & c1 &^ c2 &^ c3
	return exactlyThree | (exactlyTwo & mid)
}

func (gg *GoLGrid) colRange(borders int32) (int32, int32) {
	if gg.PopXOff <= gg.PopXOn {
		return 0, 0
	}
	colOn := max32(0, (gg.PopXOn>>6)-borders)
	colOff := min32(int32(len(gg.columns)), ((gg.PopXOff+63)>>6)+borders)
	return colOn, colOff
}

func (gg *GoLGrid) rowRange(borders int32) (int32, int32) {
	if gg.PopYOff <= gg.PopYOn {
		return 0, 0
	}
	yOn := max32(0, gg.PopYOn-borders)
	yOff := min32(gg.GridRect.Height, gg.PopYOff+borders)
	return yOn, yOff
}

type wordOp func(upper, mid, lower, left, right uint64) uint64

func (gg *GoLGrid) applyWordOp(dst *GoLGrid, op wordOp) {
	dst.Clear()
	colOn, colOff := gg.colRange(1)
	yOn, yOff := gg.rowRange(1)

	for c := colOn; c < colOff; c++ {
		midCol := gg.columns[c]
		dstCol := dst.columns[c]
		for y := yOn; y < yOff; y++ {
			var upper, lower uint64
			if y > 0 {
				upper = midCol[y-1]
			}
			if y < gg.GridRect.Height-1 {
				lower = midCol[y+1]
			}
			dstCol[y] = op(upper, midCol[y], lower, leftColumnOf(gg, c, y), rightColumnOf(gg, c, y))
		}
	}

	dst.tightenWholeGrid()
}

// Bleed4 sets dst to gg dilated by one cell in each of the 4
// (von Neumann) neighbour directions.
func (gg *GoLGrid) Bleed4(dst *GoLGrid) { gg.applyWordOp(dst, bleed4Word) }

// Bleed8 sets dst to gg dilated by one cell in each of the 8 (Moore)
// neighbour directions.
func (gg *GoLGrid) Bleed8(dst *GoLGrid) { gg.applyWordOp(dst, bleed8WordImpl) }

// Bleed3OrMoreNeighbours sets dst to gg's on-cells plus every cell that
// has at least 3 on neighbours in gg (the support set a birth needs),
// regardless of gg's own state there.
func (gg *GoLGrid) Bleed3OrMoreNeighbours(dst *GoLGrid) { gg.applyWordOp(dst, bleed3OrMoreWord) }

// Evolve sets dst to gg advanced one generation under B3/S23, with dst's
// generation counter one past gg's.
func (gg *GoLGrid) Evolve(dst *GoLGrid) {
	gg.applyWordOp(dst, evolveWord)
	dst.Generation = gg.Generation + 1
}
