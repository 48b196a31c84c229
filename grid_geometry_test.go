package stillcount

import "testing"

func TestGoLGridFlipHorizontallyTwiceIsIdentity(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(3, 5)
	gg.SetCellOn(40, 5)

	before := newTestGrid()
	before.Copy(gg)

	gg.FlipHorizontally()
	gg.FlipHorizontally()

	if !gg.IsEqual(before) {
		t.Fatal("expected two horizontal flips to be the identity")
	}
}

func TestGoLGridFlipVerticallyTwiceIsIdentity(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(3, 5)
	gg.SetCellOn(3, 40)

	before := newTestGrid()
	before.Copy(gg)

	gg.FlipVertically()
	gg.FlipVertically()

	if !gg.IsEqual(before) {
		t.Fatal("expected two vertical flips to be the identity")
	}
}

func TestGoLGridFlipHorizontallyMirrorsColumns(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(0, 0)
	gg.FlipHorizontally()
	if !gg.GetCell(63, 0) {
		t.Fatal("expected leftmost cell to land at the rightmost column after a horizontal flip")
	}
}

func TestGoLGridFlipDiagonallyTwiceIsIdentity(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(3, 50)
	gg.SetCellOn(20, 5)
	gg.SetCellOn(1, 1)

	once := newTestGrid()
	gg.FlipDiagonally(once)

	twice := newTestGrid()
	once.FlipDiagonally(twice)

	if !twice.IsEqual(gg) {
		t.Fatal("expected two diagonal flips to be the identity")
	}
}

func TestGoLGridFlipDiagonallySwapsCoordinates(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(5, 20)

	dst := newTestGrid()
	gg.FlipDiagonally(dst)

	if !dst.GetCell(20, 5) {
		t.Fatal("expected (x, y) to land at (y, x) after a diagonal flip")
	}
}

func TestGoLGridCopyToTopLeftIdempotentOnAlreadyTopLeft(t *testing.T) {
	gg := newTestGrid()
	gg.SetCellOn(0, 0)
	gg.SetCellOn(5, 3)

	dst := newTestGrid()
	dst.CopyToTopLeft(gg)

	if !dst.IsEqual(gg) {
		t.Fatal("expected CopyToTopLeft to be a no-op when content is already at the origin")
	}
}
