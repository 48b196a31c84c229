package stillcount

import "testing"

func newTestRDA(t *testing.T, height int32) *RandomDataArray {
	t.Helper()
	prng := NewPRNG(42)
	return NewRandomDataArray(prng, 1*int(height))
}

func TestGetHashIgnoresVirtualPosition(t *testing.T) {
	rda := newTestRDA(t, 64)

	a := NewGoLGrid(NewRect(0, 0, 64, 64))
	a.SetCellOn(10, 10)
	a.SetCellOn(11, 10)

	b := NewGoLGrid(NewRect(100, 100, 64, 64))
	b.SetCellOn(110, 110)
	b.SetCellOn(111, 110)

	if a.GetHash(rda) != b.GetHash(rda) {
		t.Fatal("expected identical physical-coordinate content to hash equal regardless of virtual position")
	}
}

func TestGetHashDiffersOnDifferentContent(t *testing.T) {
	rda := newTestRDA(t, 64)

	a := NewGoLGrid(NewRect(0, 0, 64, 64))
	a.SetCellOn(10, 10)

	b := NewGoLGrid(NewRect(0, 0, 64, 64))
	b.SetCellOn(20, 20)

	if a.GetHash(rda) == b.GetHash(rda) {
		t.Fatal("expected different content to hash differently (extremely unlikely collision)")
	}
}

func TestGetHashEmptyGrid(t *testing.T) {
	rda := newTestRDA(t, 64)
	a := NewGoLGrid(NewRect(0, 0, 64, 64))
	b := NewGoLGrid(NewRect(50, 50, 64, 64))

	if a.GetHash(rda) != b.GetHash(rda) {
		t.Fatal("expected two empty grids to hash equal")
	}
}
