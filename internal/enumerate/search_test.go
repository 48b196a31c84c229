package enumerate

import "testing"

type collectingReporter struct {
	rles []string
}

func (r *collectingReporter) Report(onCnt int32, kind Classification, rle string, canonicalHash uint64) {
	r.rles = append(r.rles, rle)
}

// TestRunFindsAllFourCellStillLifes is an end-to-end regression check: the
// only two still lifes with exactly 4 cells are the block and the tub, and
// both are strict (no 4-cell pattern splits into two stable islands, since
// the smallest possible island is itself 4 cells). An unrestricted search
// over [4, 4] should find exactly those two canonical forms and report no
// pseudo still lifes.
func TestRunFindsAllFourCellStillLifes(t *testing.T) {
	st := NewSearchState(4, 4, 0, 0, nil)
	rep := &collectingReporter{}

	Run(st, rep)

	if got := st.StrictCount[4]; got != 2 {
		t.Errorf("got %d strict 4-cell still lifes, want 2 (block, tub)", got)
	}
	if got := st.PseudoCount[4]; got != 0 {
		t.Errorf("got %d pseudo 4-cell still lifes, want 0", got)
	}
	if len(rep.rles) != 2 {
		t.Errorf("got %d reported patterns, want 2", len(rep.rles))
	}
}

// TestRunRespectsMaxWantedBitCnt checks that the search never reports a
// pattern with more on-cells than MaxWantedBitCnt, and that it terminates
// (doSearch's `st.OnCnt >= st.MaxWantedBitCnt` guard stops branching once
// the cap is reached).
func TestRunRespectsMaxWantedBitCnt(t *testing.T) {
	st := NewSearchState(1, 4, 0, 0, nil)
	rep := &collectingReporter{}

	Run(st, rep)

	for bit := int32(5); bit <= MaxBitCnt; bit++ {
		if st.StrictCount[bit] != 0 || st.PseudoCount[bit] != 0 {
			t.Fatalf("bit count %d: got nonzero counts above MaxWantedBitCnt=4", bit)
		}
	}
}

func TestTryAcceptRejectsUnstablePattern(t *testing.T) {
	st := NewSearchState(3, 3, 0, 0, nil)

	// A vertical tromino is the blinker: it oscillates rather than
	// staying put, so tryAccept's isStable check must reject it before
	// ever counting or reporting it.
	st.On.SetCellOn(SeedX, SeedY)
	st.On.SetCellOn(SeedX, SeedY+1)
	st.On.SetCellOn(SeedX, SeedY+2)
	st.OnCnt = 3

	rep := &collectingReporter{}
	tryAccept(st, rep)

	if st.StrictCount[3] != 0 || st.PseudoCount[3] != 0 {
		t.Fatal("expected an unstable pattern to never be counted")
	}
	if len(rep.rles) != 0 {
		t.Fatal("expected no pattern to be reported for an unstable blinker")
	}
}

func TestSelectCellReturnsFalseWhenFullyDefined(t *testing.T) {
	st := NewSearchState(4, 4, 0, 0, nil)

	// Force every remaining undefined cell off, leaving nothing to branch
	// on.
	box, ok := st.Undef.GetBoundingBox()
	if ok {
		for cy := box.TopY; cy < box.TopY+box.Height; cy++ {
			for cx := box.LeftX; cx < box.LeftX+box.Width; cx++ {
				st.Undef.SetCellOff(cx, cy)
			}
		}
	}

	if _, _, ok := selectCell(st); ok {
		t.Fatal("expected selectCell to report no candidate when Undef is empty")
	}
}
