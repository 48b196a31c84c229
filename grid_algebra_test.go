package stillcount

import "testing"

func TestGoLGridOr(t *testing.T) {
	a := newTestGrid()
	b := newTestGrid()
	a.SetCellOn(1, 1)
	b.SetCellOn(2, 2)

	a.Or(b)
	if !a.GetCell(1, 1) || !a.GetCell(2, 2) {
		t.Fatal("expected Or to include both grids' on-cells")
	}
	if a.GetPopulation() != 2 {
		t.Fatalf("got population %d, want 2", a.GetPopulation())
	}
}

func TestGoLGridAnd(t *testing.T) {
	a := newTestGrid()
	b := newTestGrid()
	a.SetCellOn(1, 1)
	a.SetCellOn(2, 2)
	b.SetCellOn(2, 2)
	b.SetCellOn(3, 3)

	a.And(b)
	if a.GetPopulation() != 1 || !a.GetCell(2, 2) {
		t.Fatal("expected And to keep only the shared cell")
	}
}

func TestGoLGridSubtract(t *testing.T) {
	a := newTestGrid()
	b := newTestGrid()
	a.SetCellOn(1, 1)
	a.SetCellOn(2, 2)
	b.SetCellOn(2, 2)

	a.Subtract(b)
	if a.GetPopulation() != 1 || !a.GetCell(1, 1) || a.GetCell(2, 2) {
		t.Fatal("expected Subtract to remove only the shared cell")
	}
}

func TestGoLGridXor(t *testing.T) {
	a := newTestGrid()
	b := newTestGrid()
	a.SetCellOn(1, 1)
	a.SetCellOn(2, 2)
	b.SetCellOn(2, 2)
	b.SetCellOn(3, 3)

	a.Xor(b)
	if a.GetCell(1, 1) != true || a.GetCell(2, 2) != false || a.GetCell(3, 3) != true {
		t.Fatal("expected Xor to keep cells present in exactly one grid")
	}
}

func TestGoLGridCopy(t *testing.T) {
	a := newTestGrid()
	a.SetCellOn(5, 5)
	a.Generation = 3

	b := newTestGrid()
	b.Copy(a)
	if !b.IsEqual(a) {
		t.Fatal("expected Copy to produce an equal grid")
	}
	if b.Generation != 3 {
		t.Fatal("expected Copy to carry over Generation")
	}
}

func TestGoLGridIsSubsetOfAndDisjoint(t *testing.T) {
	a := newTestGrid()
	b := newTestGrid()
	a.SetCellOn(1, 1)
	b.SetCellOn(1, 1)
	b.SetCellOn(2, 2)

	if !a.IsSubsetOf(b) {
		t.Fatal("expected a to be a subset of b")
	}
	if b.IsSubsetOf(a) {
		t.Fatal("did not expect b to be a subset of a")
	}

	c := newTestGrid()
	c.SetCellOn(10, 10)
	if !a.AreDisjoint(c) {
		t.Fatal("expected a and c to be disjoint")
	}
	if a.AreDisjoint(b) {
		t.Fatal("did not expect a and b to be disjoint")
	}
}

func TestGoLGridCopyUnmatchedPreservesVirtualPosition(t *testing.T) {
	src := NewGoLGrid(NewRect(100, 100, 64, 64))
	src.SetCellOn(105, 110)

	dst := NewGoLGrid(NewRect(0, 0, 256, 256))
	if !dst.CopyUnmatched(src) {
		t.Fatal("expected CopyUnmatched to not clip when dst is large enough")
	}
	if !dst.GetCell(105, 110) {
		t.Fatal("expected CopyUnmatched to preserve src's virtual cell position")
	}
}

func TestGoLGridCopyToTopLeftNormalizesPosition(t *testing.T) {
	src := NewGoLGrid(NewRect(100, 100, 64, 64))
	src.SetCellOn(105, 110)

	dst := NewGoLGrid(NewRect(0, 0, 64, 64))
	dst.CopyToTopLeft(src)

	box, nonEmpty := dst.GetBoundingBox()
	if !nonEmpty {
		t.Fatal("expected non-empty result")
	}
	if box.LeftX != 0 || box.TopY != 0 {
		t.Fatalf("expected CopyToTopLeft to place content at (0,0), got %v", box)
	}
}
