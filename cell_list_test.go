package stillcount

import "testing"

func TestObjCellListParsePrintRoundTrip(t *testing.T) {
	specs := []string{"3o!", "bo$2bo$3o!", "2o$2o!", "o$bo$3o!"}
	for _, spec := range specs {
		obj := NewObjCellList(32)
		if !obj.ParseRLE(spec) {
			t.Fatalf("failed to parse %q", spec)
		}
		got := obj.PrintRLE()

		reparsed := NewObjCellList(32)
		if !reparsed.ParseRLE(got) {
			t.Fatalf("failed to reparse printed RLE %q (from %q)", got, spec)
		}
		if len(reparsed.Cells) != len(obj.Cells) {
			t.Fatalf("cell count mismatch after round trip: got %d want %d (printed %q)", len(reparsed.Cells), len(obj.Cells), got)
		}
		for i := range obj.Cells {
			if obj.Cells[i] != reparsed.Cells[i] {
				t.Fatalf("cell %d mismatch after round trip: got %v want %v (printed %q)", i, reparsed.Cells[i], obj.Cells[i], got)
			}
		}
	}
}

func TestObjCellListAddOnCellKeepsSortedOrder(t *testing.T) {
	obj := NewObjCellList(8)
	obj.AddOnCell(5, 5)
	obj.AddOnCell(2, 2)
	obj.AddOnCell(5, 2)
	obj.AddOnCell(2, 5)

	want := []Cell{{0, 0}, {3, 0}, {0, 3}, {3, 3}}
	if len(obj.Cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(obj.Cells), len(want))
	}
	for i, c := range want {
		if obj.Cells[i] != c {
			t.Fatalf("cell %d = %v, want %v", i, obj.Cells[i], c)
		}
	}
}

func TestObjCellListAddOnCellRejectsDuplicates(t *testing.T) {
	obj := NewObjCellList(8)
	obj.AddOnCell(5, 5)
	if !obj.AddOnCell(5, 5) {
		t.Fatal("expected re-adding the same cell to report success")
	}
	if obj.CellCount() != 1 {
		t.Fatal("expected re-adding the same cell to not duplicate it")
	}
}

func TestObjCellListFlipHorizontallyTwiceIsIdentity(t *testing.T) {
	obj := NewObjCellList(16)
	obj.ParseRLE("bo$2bo$3o!")

	before := make([]Cell, len(obj.Cells))
	copy(before, obj.Cells)
	beforeRect := obj.ObjRect

	obj.FlipHorizontally()
	obj.FlipHorizontally()

	if obj.ObjRect != beforeRect {
		t.Fatalf("rect changed after two flips: got %v want %v", obj.ObjRect, beforeRect)
	}
	for i := range before {
		if obj.Cells[i] != before[i] {
			t.Fatalf("cell %d changed after two flips: got %v want %v", i, obj.Cells[i], before[i])
		}
	}
}

func TestObjCellListFlipDiagonallySwapsDimensions(t *testing.T) {
	obj := NewObjCellList(16)
	obj.ParseRLE("3o$o!")
	w, h := obj.ObjRect.Width, obj.ObjRect.Height

	obj.FlipDiagonally()
	if obj.ObjRect.Width != h || obj.ObjRect.Height != w {
		t.Fatalf("expected dimensions to swap, got %dx%d from %dx%d", obj.ObjRect.Width, obj.ObjRect.Height, w, h)
	}
}

func TestObjCellListEvolveSlowBlockIsStable(t *testing.T) {
	obj := NewObjCellList(8)
	obj.ParseRLE("2o$2o!")

	out := NewObjCellList(8)
	if !obj.EvolveSlow(out) {
		t.Fatal("expected EvolveSlow to succeed")
	}
	if len(out.Cells) != 4 {
		t.Fatalf("expected a block to remain 4 cells, got %d", len(out.Cells))
	}
}

func TestObjCellListCopy(t *testing.T) {
	obj := NewObjCellList(8)
	obj.ParseRLE("3o!")

	dst := NewObjCellList(8)
	if !obj.Copy(dst) {
		t.Fatal("expected Copy to succeed")
	}
	if dst.ObjRect != obj.ObjRect || len(dst.Cells) != len(obj.Cells) {
		t.Fatal("expected Copy to duplicate rect and cells")
	}

	tooSmall := NewObjCellList(1)
	if obj.Copy(tooSmall) {
		t.Fatal("expected Copy to fail when dst capacity is too small")
	}
	if tooSmall.CellCount() != 0 {
		t.Fatal("expected a failed Copy to leave dst cleared")
	}
}
