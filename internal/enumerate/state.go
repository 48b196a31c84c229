package enumerate

import stillcount "github.com/418Coffee/stillcount"

// Grid layout constants, matching the reference search's fixed-size
// working grid and the seed cell's fixed anchor position.
const (
	GridWidth  = 64
	GridHeight = 128
	GridBorder = 4

	SeedX = GridBorder
	SeedY = GridHeight / 2

	MaxOnCells = 64
	MaxBitCnt  = MaxOnCells - 16

	TagSize               = 9
	SelectedSearchSubsets = 100

	// TagCountAtTagSize9 is the total number of distinct 9-cell prefixes
	// this search enumerates (a fixed property of the grid layout and
	// seed placement, not of min/max bit count). Used to split subsets
	// into roughly equal-sized tag ranges without first running
	// Calibrate; Calibrate's op-count-weighted table is the more
	// accurate split when search time, not tag count, needs to be even.
	TagCountAtTagSize9 = 3006

	remainingCellsThresholdForUnconnectableCheck = 5
)

// undoEntry records enough to reverse one cell's define: its position and
// whether it was defined on. forced records whether the define came from
// propagation rather than the branch itself; undoTo does not read it, since
// it always unwinds to an explicit stack mark.
type undoEntry struct {
	x, y   int32
	wasOn  bool
	forced bool
}

// SearchState is one in-progress search: the partial pattern (On) and
// which cells are still undecided (Undef), an undo log of every tentative
// define so branches can be unwound, and the bookkeeping (tag index,
// subset bounds, op/solution counts) the backtracking loop threads
// through.
type SearchState struct {
	On    *stillcount.GoLGrid
	Undef *stillcount.GoLGrid

	OnCnt int32

	stack []undoEntry

	CurTagIx     int64
	WantedTagOn  int64
	WantedTagOff int64

	MinWantedBitCnt int32
	MaxWantedBitCnt int32

	StrictCount [MaxBitCnt + 1]int64
	PseudoCount [MaxBitCnt + 1]int64

	OpCnt int64

	rda          *stillcount.RandomDataArray
	scratch      *stillcount.CanonicalScratch
	canonicalDst *stillcount.GoLGrid

	// onTagReached, if set, is called every time on-cell count first
	// reaches TagSize along a branch, with the new tag index and the
	// op count at that moment. Calibrate uses this to build its subset
	// division table; normal searches leave it nil.
	onTagReached func(tagIx, opCnt int64)

	// Visualizer, if set, is notified on every doSearch node visit.
	// Left nil in cmd/stillcount; NoopVisualizer is the default collaborator
	// callers wire in to exercise the call site without opening a window.
	Visualizer Visualizer
}

// NewSearchState allocates a fresh search over the fixed grid layout, with
// every interior candidate cell in the seed's half-plane (the other half
// is excluded since any still life there is just a translation of one the
// search already covers) marked undefined and the seed cell defined on.
func NewSearchState(minBitCnt, maxBitCnt int32, wantedTagOn, wantedTagOff int64, rda *stillcount.RandomDataArray) *SearchState {
	gridRect := stillcount.NewRect(0, 0, GridWidth, GridHeight)

	st := &SearchState{
		On:              stillcount.NewGoLGrid(gridRect),
		Undef:           stillcount.NewGoLGrid(gridRect),
		MinWantedBitCnt: minBitCnt,
		MaxWantedBitCnt: maxBitCnt,
		WantedTagOn:     wantedTagOn,
		WantedTagOff:    wantedTagOff,
		rda:             rda,
		scratch:         stillcount.NewCanonicalScratch(stillcount.NewRect(0, 0, GridWidth, GridWidth)),
		canonicalDst:    stillcount.NewGoLGrid(stillcount.NewRect(0, 0, GridWidth, GridWidth)),
	}

	for y := int32(GridBorder); y < GridHeight-GridBorder; y++ {
		for x := int32(GridBorder); x < GridWidth-GridBorder; x++ {
			if x > SeedX || y <= SeedY {
				st.Undef.SetCellOn(x, y)
			}
		}
	}
	st.Undef.SetCellOff(SeedX, SeedY)
	st.On.SetCellOn(SeedX, SeedY)
	st.OnCnt = 1

	return st
}

// neighbourCounts returns, for the 8 neighbours of (x, y), how many are
// already known on and how many are still undefined.
func (st *SearchState) neighbourCounts(x, y int32) (on, undef int) {
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if st.Undef.GetCell(nx, ny) {
				undef++
			} else if st.On.GetCell(nx, ny) {
				on++
			}
		}
	}
	return on, undef
}

// define tentatively sets (x, y) to on/off, pushing an undo entry, and
// returns false (leaving the entry in place, for the caller to roll back
// as part of a larger chain) if the cell's own neighbourhood already rules
// the assignment out.
func (st *SearchState) define(x, y int32, on, forced bool) bool {
	st.Undef.SetCellOff(x, y)
	if on {
		st.On.SetCellOn(x, y)
		st.OnCnt++
		if st.OnCnt == TagSize {
			st.CurTagIx++
			if st.onTagReached != nil {
				st.onTagReached(st.CurTagIx, st.OpCnt)
			}
		}
	}
	st.stack = append(st.stack, undoEntry{x: x, y: y, wasOn: on, forced: forced})

	onCnt, undefCnt := st.neighbourCounts(x, y)
	return definedTable[undefCnt][onCnt][boolIndex(on)] != Dead
}

// undoTo unwinds the undo stack back to length mark, restoring On/Undef
// and OnCnt for every entry popped.
func (st *SearchState) undoTo(mark int) {
	for len(st.stack) > mark {
		e := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]

		if e.wasOn {
			st.On.SetCellOff(e.x, e.y)
			st.OnCnt--
		}
		st.Undef.SetCellOn(e.x, e.y)
	}
}

// propagate defines (x, y) and then breadth-first propagates the moves
// that undefinedTable forces on undefined cells in its own neighbourhood
// and in the neighbourhoods of every cell the chain defines. Already
// defined cells in those neighbourhoods are only checked against
// definedTable for Dead; their ForceOn/ForceOff entries are not acted on,
// so no undefined cell is forced because of a defined neighbour's state.
// Returns false if the chain hits a dead cell anywhere; the caller is
// responsible for undoing back to its own mark in that case.
func (st *SearchState) propagate(x, y int32, on bool, forced bool) bool {
	if !st.define(x, y, on, forced) {
		return false
	}

	queue := []int32{x, y}
	for len(queue) > 0 {
		cx, cy := queue[0], queue[1]
		queue = queue[2:]

		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				nx, ny := cx+dx, cy+dy

				if st.Undef.GetCell(nx, ny) {
					onCnt, undefCnt := st.neighbourCounts(nx, ny)
					switch undefinedTable[undefCnt][onCnt] {
					case Dead:
						return false
					case ForceOff:
						if !st.define(nx, ny, false, true) {
							return false
						}
						queue = append(queue, nx, ny)
					case ForceOn:
						if !st.define(nx, ny, true, true) {
							return false
						}
						queue = append(queue, nx, ny)
					}
					continue
				}

				// Already defined (on, off, or permanently-off border):
				// re-examine its own viability now that one more of its
				// neighbours (cx, cy) has just been pinned down.
				onCnt, undefCnt := st.neighbourCounts(nx, ny)
				cellOn := st.On.GetCell(nx, ny)
				if definedTable[undefCnt][onCnt][boolIndex(cellOn)] == Dead {
					return false
				}
			}
		}
	}

	return true
}
