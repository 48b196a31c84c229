// Package enumerate implements the backtracking still-life search: it
// grows a partial pattern one cell at a time, using precomputed per-cell
// stability tables to force moves and prune dead branches long before a
// full evolve() check could tell the same thing.
package enumerate

import "math/bits"

// StabilityResult is the outcome of looking up a cell's neighbour counts
// in one of the precomputed stability tables.
type StabilityResult int

const (
	// Dead means no assignment of the unknown neighbours involved keeps
	// the cell in question stable: the branch that reached this state
	// must be abandoned.
	Dead StabilityResult = iota
	// EitherOK means stability is achievable, but not forced: both 0 and
	// 1 remain live possibilities, so nothing propagates from this cell.
	EitherOK
	// ForceOff means stability requires every relevant unknown to be 0.
	ForceOff
	// ForceOn means stability requires every relevant unknown to be 1.
	ForceOn
)

const maxNeighbours = 8

// definedTable[undef][on][cellState] covers a cell whose own state
// (off=0, on=1) is already fixed, with on of its 8 neighbours already
// known on and undef still unknown: it says whether, and how, those
// undef unknown neighbours must resolve for the cell to end up stable.
var definedTable [maxNeighbours + 1][maxNeighbours + 1][2]StabilityResult

// undefinedTable[undef][on] covers a cell whose own state is itself still
// unknown, with on neighbours already known on and undef still unknown
// (not counting the cell itself): it says whether the cell's own state is
// forced for it to end up stable.
var undefinedTable [maxNeighbours + 1][maxNeighbours + 1]StabilityResult

func init() {
	buildStabilityTables()
}

// survives reports whether a cell committed to state cellOn, with
// neighbourOn of its neighbours already on, is consistent with
// stability: under B3/S23, its next-generation state (on iff it has 2 or
// 3 on-neighbours and was already on, or exactly 3 regardless) must equal
// cellOn itself. For an on cell that's the familiar "2 or 3 neighbours";
// for an off cell it's "not exactly 3" (3 would force a birth).
func survives(cellOn bool, neighbourOn int) bool {
	nextOn := neighbourOn == 3 || (cellOn && neighbourOn == 2)
	return nextOn == cellOn
}

// feasible reports whether, among the 2^undef ways to resolve undef
// unknown neighbours (each contributing 0 or 1 on-neighbours), at least
// one leaves the cell at cellOn stable — and whether that holds when all
// of them resolve to 0, and when they all resolve to 1.
func feasible(undef, on int, cellOn bool) (any, allZero, allOne bool) {
	full := (1 << uint(undef)) - 1
	anyWorks, zeroWorks, oneWorks := false, false, false
	for mask := 0; mask <= full; mask++ {
		if survives(cellOn, on+bits.OnesCount(uint(mask))) {
			anyWorks = true
			if mask == 0 {
				zeroWorks = true
			}
			if mask == full {
				oneWorks = true
			}
		}
	}
	return anyWorks, zeroWorks, oneWorks
}

func buildStabilityTables() {
	for undef := 0; undef <= maxNeighbours; undef++ {
		for on := 0; on+undef <= maxNeighbours; on++ {
			for _, cellOn := range [2]bool{false, true} {
				definedTable[undef][on][boolIndex(cellOn)] = classifyDefined(undef, on, cellOn)
			}
			undefinedTable[undef][on] = classifyUndefined(undef, on)
		}
	}
	verifyStabilityTables()
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// workingPopcounts reports, for each possible count of the undef unknown
// neighbours resolving on (0..undef), whether that resolution leaves the
// cell at cellOn stable.
func workingPopcounts(undef, on int, cellOn bool) []bool {
	working := make([]bool, undef+1)
	for p := 0; p <= undef; p++ {
		working[p] = survives(cellOn, on+p)
	}
	return working
}

// classifyDefined decides, for a cell already fixed at cellOn, whether its
// undef unknown neighbours are forced off, forced on, unconstrained, or
// make the branch dead. A move is only forced when exactly one popcount of
// the undef unknowns keeps the cell stable, and that popcount is one of the
// two extremes (all 0 or all undef) — any other single working popcount,
// or more than one working popcount, leaves every unknown unconstrained:
// nothing about any individual one of them is forced, even though the
// branch as a whole isn't dead.
func classifyDefined(undef, on int, cellOn bool) StabilityResult {
	if undef == 0 {
		if survives(cellOn, on) {
			return EitherOK
		}
		return Dead
	}

	working := workingPopcounts(undef, on, cellOn)
	count, only := 0, -1
	for p, ok := range working {
		if ok {
			count++
			only = p
		}
	}

	switch {
	case count == 0:
		return Dead
	case count == 1 && only == 0:
		return ForceOff
	case count == 1 && only == undef:
		return ForceOn
	default:
		return EitherOK
	}
}

// classifyUndefined decides, for a cell whose own state is unknown, which
// of off/on (if either) can still keep it stable given its undef unknown
// neighbours.
func classifyUndefined(undef, on int) StabilityResult {
	offAny, _, _ := feasible(undef, on, false)
	onAny, _, _ := feasible(undef, on, true)

	switch {
	case !offAny && !onAny:
		return Dead
	case offAny && !onAny:
		return ForceOff
	case onAny && !offAny:
		return ForceOn
	default:
		return EitherOK
	}
}

// verifyStabilityTables asserts that the two tables never disagree about
// whether a definitely-off or definitely-on cell is viable: if
// definedTable says a fixed state is Dead, undefinedTable must not claim
// that exact state is forced, and vice versa. A failure here means the
// stability logic itself has a bug, not the search.
func verifyStabilityTables() {
	for undef := 0; undef <= maxNeighbours; undef++ {
		for on := 0; on+undef <= maxNeighbours; on++ {
			off := definedTable[undef][on][boolIndex(false)]
			onRes := definedTable[undef][on][boolIndex(true)]
			u := undefinedTable[undef][on]

			offViable := off != Dead
			onViable := onRes != Dead
			uOffViable := u != Dead && u != ForceOn
			uOnViable := u != Dead && u != ForceOff

			if offViable != uOffViable || onViable != uOnViable {
				panic("stillcount: stability tables disagree on cell viability")
			}
		}
	}
}
