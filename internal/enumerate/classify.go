package enumerate

import stillcount "github.com/418Coffee/stillcount"

// connectedComponent returns the on-cells joined to the cell at
// (seedX, seedY), where two on-cells are joined when they are 8-adjacent or
// share a neighbouring cell that has at least 3 on neighbours: repeatedly
// dilate the running component through the grid's "could plausibly still
// connect" support set (≥3-neighbour support, since any fewer could never
// bridge a gap under B3/S23) and re-intersect with on, until it stops
// growing.
func connectedComponent(on *stillcount.GoLGrid, seedX, seedY int32) *stillcount.GoLGrid {
	gridRect := on.GetGridRect()
	support := stillcount.NewGoLGrid(gridRect)
	on.Bleed3OrMoreNeighbours(support)

	component := stillcount.NewGoLGrid(gridRect)
	component.SetCellOn(seedX, seedY)

	scratch1 := stillcount.NewGoLGrid(gridRect)
	scratch2 := stillcount.NewGoLGrid(gridRect)

	for {
		component.Bleed8(scratch1)
		scratch1.And(support)
		scratch1.Bleed8(scratch2)
		scratch2.And(on)

		if scratch2.IsEqual(component) {
			return component
		}
		component.Copy(scratch2)
	}
}

// isConnectable reports whether the seed component could still grow,
// through the undefined region plus the rest of the on-cells, into a
// single connected pattern, via a two-step dilation and meeting-zone test.
// A false result means the current branch can never produce a connected
// still life and should be abandoned.
func isConnectable(on, undef *stillcount.GoLGrid, component *stillcount.GoLGrid) bool {
	gridRect := on.GetGridRect()

	reach := stillcount.NewGoLGrid(gridRect)
	component.Bleed8(reach)
	if !reach.AreDisjoint(undef) {
		return true
	}

	other := stillcount.NewGoLGrid(gridRect)
	other.Copy(on)
	other.Subtract(component)
	other.Or(undef)

	reach2 := stillcount.NewGoLGrid(gridRect)
	reach.Bleed8(reach2)

	otherReach := stillcount.NewGoLGrid(gridRect)
	other.Bleed8(otherReach)

	meetingZone := stillcount.NewGoLGrid(gridRect)
	meetingZone.Copy(otherReach)
	meetingZone.And(reach2)

	union := stillcount.NewGoLGrid(gridRect)
	union.Copy(component)
	union.Or(other)

	support := stillcount.NewGoLGrid(gridRect)
	union.Bleed3OrMoreNeighbours(support)

	return !meetingZone.AreDisjoint(support)
}

// unstableCells returns the cells where on and its one-generation evolve
// disagree — the pattern's currently "active" frontier, where the search
// still has work left to do.
func unstableCells(on *stillcount.GoLGrid) *stillcount.GoLGrid {
	gridRect := on.GetGridRect()
	next := stillcount.NewGoLGrid(gridRect)
	on.Evolve(next)
	next.Xor(on)
	return next
}

// isStable reports whether on is already a still life: evolving it
// changes nothing.
func isStable(on *stillcount.GoLGrid) bool {
	gridRect := on.GetGridRect()
	next := stillcount.NewGoLGrid(gridRect)
	on.Evolve(next)
	return next.IsEqual(on)
}

// cellListLess performs a row-major (y, then x) lexicographic compare of
// two equal-length, equal-length sorted cell lists.
func cellListLess(a, b *stillcount.ObjCellList) bool {
	for i := range a.Cells {
		if a.Cells[i].Y != b.Cells[i].Y {
			return a.Cells[i].Y < b.Cells[i].Y
		}
		if a.Cells[i].X != b.Cells[i].X {
			return a.Cells[i].X < b.Cells[i].X
		}
	}
	return false
}

// isCanonicalForm reports whether obj's bounding box is at least as wide
// as tall, and every other D4 image with the same box shape (3 of them for
// a non-square box, 7 for a square one) compares
// greater-or-equal to it in row-major lexicographic order — a direct
// (non-hash) canonical-form filter.
func isCanonicalForm(obj *stillcount.ObjCellList) bool {
	if obj.ObjRect.Width < obj.ObjRect.Height {
		return false
	}
	if len(obj.Cells) == 0 {
		return true
	}

	candidate := *obj
	candidate.Cells = append([]stillcount.Cell(nil), obj.Cells...)

	check := func() bool { return !cellListLess(&candidate, obj) }

	if !check() {
		return false
	}
	candidate.FlipHorizontally()
	if !check() {
		return false
	}
	candidate.FlipVertically()
	if !check() {
		return false
	}
	candidate.FlipHorizontally()
	if !check() {
		return false
	}

	if obj.ObjRect.Width == obj.ObjRect.Height {
		candidate.FlipDiagonally()
		if !check() {
			return false
		}
		candidate.FlipHorizontally()
		if !check() {
			return false
		}
		candidate.FlipVertically()
		if !check() {
			return false
		}
		candidate.FlipHorizontally()
		if !check() {
			return false
		}
	}

	return true
}

// islands partitions on into its 8-connected components, by repeatedly
// peeling off the component containing an arbitrary remaining on-cell.
func islands(on *stillcount.GoLGrid) []*stillcount.GoLGrid {
	gridRect := on.GetGridRect()
	remaining := stillcount.NewGoLGrid(gridRect)
	remaining.Copy(on)

	var parts []*stillcount.GoLGrid
	for !remaining.IsEmpty() {
		box, _ := remaining.GetBoundingBox()
		var fx, fy int32
		found := false
		for y := box.TopY; y < box.TopY+box.Height && !found; y++ {
			for x := box.LeftX; x < box.LeftX+box.Width; x++ {
				if remaining.GetCell(x, y) {
					fx, fy = x, y
					found = true
					break
				}
			}
		}

		part := stillcount.NewGoLGrid(gridRect)
		part.SetCellOn(fx, fy)
		grown := stillcount.NewGoLGrid(gridRect)
		for {
			part.Bleed8(grown)
			grown.And(remaining)
			if grown.IsEqual(part) {
				break
			}
			part.Copy(grown)
		}
		parts = append(parts, part)
		remaining.Subtract(part)
	}
	return parts
}

// Classification is the result of the strict/pseudo/complex-pseudo test.
type Classification int

const (
	StrictStillLife Classification = iota
	PseudoStillLife
	ComplexPseudoStillLife
)

func (c Classification) String() string {
	switch c {
	case StrictStillLife:
		return "strict"
	case PseudoStillLife:
		return "pseudo"
	case ComplexPseudoStillLife:
		return "complex pseudo"
	default:
		return "unknown"
	}
}

// ClassifyStillLife decides whether a stable, connected pattern is a
// strict still life, a pseudo still life splittable into exactly two
// stable parts, or a "complex" pseudo still life (pseudo, but only
// splittable into three or more).
func ClassifyStillLife(on *stillcount.GoLGrid) Classification {
	parts := islands(on)
	if len(parts) < 2 {
		return StrictStillLife
	}

	if hasTwoPartStableSplit(parts) {
		return PseudoStillLife
	}
	if hasStablePartitioning(parts) {
		return ComplexPseudoStillLife
	}
	return StrictStillLife
}

// hasTwoPartStableSplit reports whether parts can be grouped into exactly
// two non-empty subsets whose unions are each themselves stable.
func hasTwoPartStableSplit(parts []*stillcount.GoLGrid) bool {
	n := len(parts)
	if n < 2 {
		return false
	}
	gridRect := parts[0].GetGridRect()

	for mask := 1; mask < (1 << uint(n-1)); mask++ {
		a := stillcount.NewGoLGrid(gridRect)
		b := stillcount.NewGoLGrid(gridRect)
		for i, p := range parts {
			if mask&(1<<uint(i)) != 0 {
				a.Or(p)
			} else {
				b.Or(p)
			}
		}
		if isStable(a) && isStable(b) {
			return true
		}
	}
	return false
}

// hasStablePartitioning reports whether parts can be grouped into two or
// more non-empty subsets whose unions are each themselves stable (the
// general, not-necessarily-two-way, pseudo still life condition). Unlike
// hasTwoPartStableSplit, a group peeled off here can leave a remainder
// that itself still needs splitting further, so three or more stable
// groups are reachable, not just two.
func hasStablePartitioning(parts []*stillcount.GoLGrid) bool {
	return stablePartitionExists(parts, false)
}

// stablePartitionExists tries every non-empty, non-full subset containing
// parts[0] as one candidate group, and recurses on whatever parts are left
// over. isAlreadyAPartition is true once at least one group has already
// been peeled off; in that case the remainder is first checked as a single
// stable group on its own (completing a partition at this depth) before
// trying to split it any further.
func stablePartitionExists(parts []*stillcount.GoLGrid, isAlreadyAPartition bool) bool {
	if isAlreadyAPartition && isStableGroup(parts) {
		return true
	}

	n := len(parts)
	if n < 2 {
		return false
	}

	full := 1 << uint(n)
	for mask := 1; mask < full-1; mask++ {
		if mask&1 == 0 {
			continue // parts[0] always anchors the group side, so its complement isn't tried twice
		}
		var group, rest []*stillcount.GoLGrid
		for i, p := range parts {
			if mask&(1<<uint(i)) != 0 {
				group = append(group, p)
			} else {
				rest = append(rest, p)
			}
		}
		if isStableGroup(group) && stablePartitionExists(rest, true) {
			return true
		}
	}
	return false
}

// isStableGroup reports whether the union of parts (islands or groups of
// islands) is itself stable.
func isStableGroup(parts []*stillcount.GoLGrid) bool {
	if len(parts) == 0 {
		return true
	}
	union := stillcount.NewGoLGrid(parts[0].GetGridRect())
	for _, p := range parts {
		union.Or(p)
	}
	return isStable(union)
}
