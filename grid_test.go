package stillcount

import "testing"

func newTestGrid() *GoLGrid {
	return NewGoLGrid(NewRect(0, 0, 64, 64))
}

func TestGoLGridSetGetCell(t *testing.T) {
	gg := newTestGrid()
	if gg.GetCell(10, 10) {
		t.Fatal("expected fresh grid to be empty")
	}
	gg.SetCellOn(10, 10)
	if !gg.GetCell(10, 10) {
		t.Fatal("expected cell to be on after SetCellOn")
	}
	gg.SetCellOff(10, 10)
	if gg.GetCell(10, 10) {
		t.Fatal("expected cell to be off after SetCellOff")
	}
}

func TestGoLGridOutOfRange(t *testing.T) {
	gg := newTestGrid()
	if gg.GetCell(-1, 0) || gg.GetCell(64, 0) {
		t.Fatal("expected out-of-range cells to read as off")
	}
	if gg.SetCellOn(-1, 0) || gg.SetCellOn(64, 0) {
		t.Fatal("expected out-of-range SetCellOn to fail")
	}
}

func TestGoLGridBoundingBox(t *testing.T) {
	gg := newTestGrid()
	if _, nonEmpty := gg.GetBoundingBox(); nonEmpty {
		t.Fatal("expected empty grid to report no bounding box")
	}

	gg.SetCellOn(5, 7)
	gg.SetCellOn(9, 3)
	box, nonEmpty := gg.GetBoundingBox()
	if !nonEmpty {
		t.Fatal("expected non-empty bounding box")
	}
	want := NewRect(5, 3, 5, 5)
	if box != want {
		t.Fatalf("got bounding box %v, want %v", box, want)
	}
}

func TestGoLGridBoundingBoxShrinksOnRemoval(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(5, 5)
	gg.SetCellOn(10, 10)
	gg.SetCellOff(10, 10)

	box, nonEmpty := gg.GetBoundingBox()
	if !nonEmpty {
		t.Fatal("expected grid to still be non-empty")
	}
	want := NewRect(5, 5, 1, 1)
	if box != want {
		t.Fatalf("got bounding box %v, want %v after removing the outlying cell", box, want)
	}
}

func TestGoLGridClear(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(1, 1)
	gg.SetCellOn(20, 30)
	gg.Generation = 5
	gg.Clear()

	if !gg.IsEmpty() {
		t.Fatal("expected grid to be empty after Clear")
	}
	if gg.Generation != 0 {
		t.Fatal("expected Clear to reset generation")
	}
	if gg.GetPopulation() != 0 {
		t.Fatal("expected zero population after Clear")
	}
}

func TestGoLGridPopulation(t *testing.T) {
	gg := newTestGrid()
	coords := [][2]int32{{0, 0}, {1, 1}, {2, 2}, {63, 63}}
	for _, c := range coords {
		gg.SetCellOn(c[0], c[1])
	}
	if got := gg.GetPopulation(); got != uint64(len(coords)) {
		t.Fatalf("got population %d, want %d", got, len(coords))
	}
}

func TestGoLGridToFromObjCellList(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(10, 10)
	gg.SetCellOn(11, 10)
	gg.SetCellOn(10, 11)

	obj := NewObjCellList(16)
	if !gg.ToObjCellList(obj) {
		t.Fatal("expected ToObjCellList to succeed")
	}
	if obj.CellCount() != 3 {
		t.Fatalf("got %d cells, want 3", obj.CellCount())
	}

	rebuilt := newTestGrid()
	if !rebuilt.OrObjCellList(obj, 0, 0) {
		t.Fatal("expected OrObjCellList to succeed without clipping")
	}
	if !rebuilt.IsEqual(gg) {
		t.Fatal("expected round-tripped grid to equal the original")
	}
}
