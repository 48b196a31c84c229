package enumerate

import stillcount "github.com/418Coffee/stillcount"

// Reporter receives every still life the search accepts, already rendered
// to Life-History-style RLE, along with a hash of its canonical (D4- and
// translation-independent) form — useful for a caller that wants to
// cross-check accepted patterns against a separately maintained catalogue.
// The hash is 0 when the search state has no RandomDataArray.
type Reporter interface {
	Report(onCnt int32, kind Classification, rle string, canonicalHash uint64)
}

// Run drives a full backtracking search over st's grid layout, accepting
// patterns with on-cell counts in [st.MinWantedBitCnt, st.MaxWantedBitCnt]
// and reporting every accepted one to r. It returns once the search space
// (restricted to st's subset bounds, if any) is exhausted.
func Run(st *SearchState, r Reporter) {
	doSearch(st, r)
}

// doSearch is the recursive depth-first step: select a cell to branch on,
// try it on before off, and at every node check whether the current
// partial pattern is a complete, acceptable still life.
func doSearch(st *SearchState, r Reporter) {
	st.OpCnt++
	if st.Visualizer != nil {
		st.Visualizer.OnVisit(st)
	}

	if st.OnCnt >= st.MinWantedBitCnt && st.OnCnt <= st.MaxWantedBitCnt {
		tryAccept(st, r)
	}

	if st.OnCnt >= st.MaxWantedBitCnt {
		return
	}
	if st.WantedTagOff > 0 && st.OnCnt >= TagSize && st.CurTagIx >= st.WantedTagOff {
		return
	}

	x, y, ok := selectCell(st)
	if !ok {
		return
	}

	if st.OnCnt < TagSize || st.CurTagIx >= st.WantedTagOn {
		mark := len(st.stack)
		if st.propagate(x, y, true, false) {
			doSearch(st, r)
		}
		st.undoTo(mark)
	}

	mark := len(st.stack)
	if st.propagate(x, y, false, false) {
		doSearch(st, r)
	}
	st.undoTo(mark)
}

// tryAccept runs the full acceptance checks against st's current on-cells
// (stable, connected, canonical form) and reports the
// pattern to r if they all pass.
func tryAccept(st *SearchState, r Reporter) {
	if !isStable(st.On) {
		return
	}

	component := connectedComponent(st.On, SeedX, SeedY)
	if component.GetPopulation() != st.On.GetPopulation() {
		return
	}

	obj := stillcount.NewObjCellList(MaxOnCells)
	if !st.On.ToObjCellList(obj) {
		return
	}
	if !isCanonicalForm(obj) {
		return
	}

	kind := ClassifyStillLife(st.On)

	switch kind {
	case StrictStillLife:
		st.StrictCount[st.OnCnt]++
	default:
		st.PseudoCount[st.OnCnt]++
	}

	if r != nil {
		var canonicalHash uint64
		if st.rda != nil {
			stillcount.MakeCanonical(st.On, st.canonicalDst, st.rda, st.scratch)
			canonicalHash = st.canonicalDst.GetHash(st.rda)
		}
		r.Report(st.OnCnt, kind, obj.PrintRLE(), canonicalHash)
	}
}

// selectCell picks which undefined cell to branch on next: prefer one near
// the currently unstable region of the seed's connected piece (if the
// pattern is still disconnected, this keeps growth focused on the piece
// containing the seed rather than any stray defined cells elsewhere),
// falling back to any undefined cell reachable from the on-cells by one or
// two bleeds. Returns ok=false when no cell can extend the current branch.
func selectCell(st *SearchState) (x, y int32, ok bool) {
	var seedComponent *stillcount.GoLGrid
	if st.OnCnt <= st.MaxWantedBitCnt-remainingCellsThresholdForUnconnectableCheck {
		component := connectedComponent(st.On, SeedX, SeedY)
		if component.GetPopulation() != st.On.GetPopulation() {
			if !isConnectable(st.On, st.Undef, component) {
				return 0, 0, false
			}
		}
		seedComponent = component
	}

	base := st.On
	if seedComponent != nil {
		base = seedComponent
	}

	unstable := unstableCells(base)
	frontier := stillcount.NewGoLGrid(st.On.GetGridRect())
	unstable.Bleed8(frontier)
	if x, y, ok := nearestUndefined(st, frontier); ok {
		return x, y, true
	}

	ring1 := stillcount.NewGoLGrid(st.On.GetGridRect())
	base.Bleed8(ring1)
	if x, y, ok := nearestUndefined(st, ring1); ok {
		return x, y, true
	}

	ring2 := stillcount.NewGoLGrid(st.On.GetGridRect())
	ring1.Bleed4(ring2)
	if x, y, ok := nearestUndefined(st, ring2); ok {
		return x, y, true
	}

	return 0, 0, false
}

// nearestUndefined returns the undefined cell within region closest to
// the seed by squared Euclidean distance, scanning region's tight
// bounding box.
func nearestUndefined(st *SearchState, region *stillcount.GoLGrid) (x, y int32, ok bool) {
	box, nonEmpty := region.GetBoundingBox()
	if !nonEmpty {
		return 0, 0, false
	}

	bestDist := int64(-1)
	for cy := box.TopY; cy < box.TopY+box.Height; cy++ {
		for cx := box.LeftX; cx < box.LeftX+box.Width; cx++ {
			if !region.GetCell(cx, cy) || !st.Undef.GetCell(cx, cy) {
				continue
			}
			dx := int64(cx - SeedX)
			dy := int64(cy - SeedY)
			dist := dx*dx + dy*dy
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				x, y, ok = cx, cy, true
			}
		}
	}
	return x, y, ok
}
