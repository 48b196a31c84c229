package stillcount

// Glider describes a glider by direction, lane and timing rather than a
// concrete cell list, so it can be shifted and time-stepped with plain
// arithmetic.
//
// Dir is 0 for NW, 1 for NE, 2 for SE and 3 for SW bound.
// Lane is the x-coordinate of the glider's center cell if it is moved
// backwards/forwards in time until that cell has y == 0, in the phase
// with three cells in a horizontal line.
// Timing is the generation count to reach y == 0 in that same phase,
// instead measured via x == 0.
type Glider struct {
	Dir    int32
	Lane   int32
	Timing int32
}

type gliderData struct {
	cells       [5]Cell
	xOffs       int32
	yOffs       int32
	laneYDir    int32
	timingXDir  int32
	timingYDir  int32
}

// gliderTable[dir][timingPhase] mirrors the static data table in the
// reference glider object code: for each of the 4 directions and 4 phases
// of a glider's 4-generation cycle, the 5 on-cells (relative to a 3x3 box)
// and the direction vectors used to reposition that box as lane/timing
// change.
var gliderTable = [4][4]gliderData{
	{
		{cells: [5]Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 2}}, xOffs: -1, yOffs: -1, laneYDir: -1, timingXDir: 1, timingYDir: 1},
		{cells: [5]Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 2}}, xOffs: -1, yOffs: -1, laneYDir: -1, timingXDir: 1, timingYDir: 1},
		{cells: [5]Cell{{0, 0}, {1, 0}, {0, 1}, {2, 1}, {0, 2}}, xOffs: 0, yOffs: -1, laneYDir: -1, timingXDir: 1, timingYDir: 1},
		{cells: [5]Cell{{1, 0}, {0, 1}, {1, 1}, {0, 2}, {2, 2}}, xOffs: 0, yOffs: -1, laneYDir: -1, timingXDir: 1, timingYDir: 1},
	},
	{
		{cells: [5]Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}, xOffs: -1, yOffs: -1, laneYDir: 1, timingXDir: -1, timingYDir: 1},
		{cells: [5]Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {0, 2}}, xOffs: -1, yOffs: -1, laneYDir: 1, timingXDir: -1, timingYDir: 1},
		{cells: [5]Cell{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {2, 2}}, xOffs: -2, yOffs: -1, laneYDir: 1, timingXDir: -1, timingYDir: 1},
		{cells: [5]Cell{{1, 0}, {1, 1}, {2, 1}, {0, 2}, {2, 2}}, xOffs: -2, yOffs: -1, laneYDir: 1, timingXDir: -1, timingYDir: 1},
	},
	{
		{cells: [5]Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, xOffs: -1, yOffs: -1, laneYDir: -1, timingXDir: -1, timingYDir: -1},
		{cells: [5]Cell{{0, 0}, {1, 1}, {2, 1}, {0, 2}, {1, 2}}, xOffs: -1, yOffs: -1, laneYDir: -1, timingXDir: -1, timingYDir: -1},
		{cells: [5]Cell{{2, 0}, {0, 1}, {2, 1}, {1, 2}, {2, 2}}, xOffs: -2, yOffs: -1, laneYDir: -1, timingXDir: -1, timingYDir: -1},
		{cells: [5]Cell{{0, 0}, {2, 0}, {1, 1}, {2, 1}, {1, 2}}, xOffs: -2, yOffs: -1, laneYDir: -1, timingXDir: -1, timingYDir: -1},
	},
	{
		{cells: [5]Cell{{1, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, xOffs: -1, yOffs: -1, laneYDir: 1, timingXDir: 1, timingYDir: -1},
		{cells: [5]Cell{{2, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}, xOffs: -1, yOffs: -1, laneYDir: 1, timingXDir: 1, timingYDir: -1},
		{cells: [5]Cell{{0, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}}, xOffs: 0, yOffs: -1, laneYDir: 1, timingXDir: 1, timingYDir: -1},
		{cells: [5]Cell{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}, xOffs: 0, yOffs: -1, laneYDir: 1, timingXDir: 1, timingYDir: -1},
	},
}

// SetProgression repositions the glider's Timing so that it is progression
// generations ahead of its lane-0, timing-phase-0 reference position.
func (g *Glider) SetProgression(progression int32) {
	g.Timing = -progression + gliderTable[g.Dir][0].timingXDir*(2*g.Lane)
}

// Shift translates the glider by (offsX, offsY) grid cells, adjusting Lane
// and Timing so its apparent cell positions move accordingly.
func (g *Glider) Shift(offsX, offsY int32) {
	g.Lane += offsX + gliderTable[g.Dir][0].laneYDir*offsY
	g.Timing += 4 * gliderTable[g.Dir][0].timingXDir * offsX
}

// Mirror reflects the glider's lane about the axis, keeping its timing
// phase consistent with the original.
func (g *Glider) Mirror() {
	laneOffs := (-g.Lane - 1) - g.Lane
	g.Lane += laneOffs
	g.Timing += 2 * gliderTable[g.Dir][0].timingXDir * laneOffs
}

// CellList renders g as a 5-cell ObjCellList positioned at its current
// lane/timing.
func (g Glider) CellList() ObjCellList {
	timingPhase := ((g.Timing % 4) + 4) % 4
	timingStep := (g.Timing - timingPhase) / 4

	data := gliderTable[g.Dir][timingPhase]

	leftX := data.xOffs + data.timingXDir*timingStep
	topY := data.yOffs + data.laneYDir*g.Lane + data.timingYDir*timingStep

	cells := make([]Cell, 5)
	copy(cells, data.cells[:])

	return ObjCellList{
		ObjRect:  NewRect(leftX, topY, 3, 3),
		Cells:    cells,
		MaxCells: 5,
	}
}

// OrGlider draws g onto gg, compensating for gg's accumulated generation
// count if considerGeneration is set (so that a glider "anchored" at
// construction time still lands in the right phase after gg has evolved).
func OrGlider(gg *GoLGrid, g Glider, considerGeneration bool) bool {
	toUse := g
	if considerGeneration {
		toUse.Timing = g.Timing - int32(gg.Generation)
	}

	ocl := toUse.CellList()
	return gg.OrObjCellList(&ocl, 0, 0)
}
