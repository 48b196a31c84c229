package stillcount

// CanonicalScratch holds the two working grids MakeCanonical needs, sized
// equally and large enough to hold the biggest object it will be asked to
// canonicalize in any of its 8 orientations. Callers reuse one
// CanonicalScratch across many MakeCanonical calls to avoid reallocating.
type CanonicalScratch struct {
	a, b *GoLGrid
}

// NewCanonicalScratch allocates a scratch pair sized to gridRect, which
// must be square (MakeCanonical relies on every orientation, including the
// diagonal flip, fitting the same working grid).
func NewCanonicalScratch(gridRect Rect) *CanonicalScratch {
	if gridRect.Width != gridRect.Height {
		panic("stillcount: canonical scratch grids must be square")
	}
	return &CanonicalScratch{a: NewGoLGrid(gridRect), b: NewGoLGrid(gridRect)}
}

// MakeCanonical writes to dst the lexicographically-lowest-hash member of
// src's D4 symmetry orbit (independent of translation, since src is first
// moved to the scratch grids' top-left corner). Ties keep whichever
// orientation was found first.
//
// The orbit is walked in a fixed order - matching the reference
// implementation exactly so that two equal-hash candidates always resolve
// to the same winner: horizontal flip, vertical flip, horizontal flip
// again, then (only for a square bounding box) a diagonal flip, then
// horizontal, vertical, horizontal again.
func MakeCanonical(src, dst *GoLGrid, rda *RandomDataArray, scratch *CanonicalScratch) {
	current, temp := scratch.a, scratch.b

	current.CopyToTopLeft(src)
	box, nonEmpty := current.GetBoundingBox()
	if !nonEmpty {
		dst.Clear()
		return
	}

	if box.Height > box.Width {
		current.FlipDiagonally(temp)
		current, temp = temp, current
		box, _ = current.GetBoundingBox()
	}

	lowestHash := current.GetHash(rda)
	dst.CopyToTopLeft(current)

	try := func() {
		temp.CopyToTopLeft(current)
		h := temp.GetHash(rda)
		if h < lowestHash {
			lowestHash = h
			dst.CopyToTopLeft(current)
		}
	}

	if box.Width == box.Height {
		current.FlipHorizontally()
		try()
		current.FlipVertically()
		try()
		current.FlipHorizontally()
		try()

		current.FlipDiagonally(temp)
		current, temp = temp, current
		try()
	}

	current.FlipHorizontally()
	try()
	current.FlipVertically()
	try()
	current.FlipHorizontally()
	try()
}

// GetSafeGliderProgression picks a Timing for glider g such that g does
// not collide with any on-cell of occupied within the next considerGens
// generations of straight-line flight, by checking progressively later
// launch timings until a clean one is found. It panics if none of the
// first searchLimit candidate timings work, which signals a caller bug
// (occupied far too dense or considerGens far too large for this grid).
func GetSafeGliderProgression(g Glider, occupied *GoLGrid, considerGens int32, searchLimit int32) int32 {
	for progression := int32(0); progression < searchLimit; progression++ {
		candidate := g
		candidate.SetProgression(progression)
		if gliderPathIsClear(candidate, occupied, considerGens) {
			return progression
		}
	}
	panic("stillcount: no safe glider progression found within search limit")
}

func gliderPathIsClear(g Glider, occupied *GoLGrid, considerGens int32) bool {
	for gen := int32(0); gen < considerGens; gen++ {
		step := g
		step.Timing += gen
		cells := step.CellList()
		for _, cell := range cells.Cells {
			x := cells.ObjRect.LeftX + int32(cell.X)
			y := cells.ObjRect.TopY + int32(cell.Y)
			if occupied.GetCell(x, y) {
				return false
			}
		}
	}
	return true
}
