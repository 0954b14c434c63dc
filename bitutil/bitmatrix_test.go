package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixSetValue(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.SetValue(1, 1, true)
	if !bm.Get(1, 1) {
		t.Error("bit should be set after SetValue(true)")
	}
	bm.SetValue(1, 1, false)
	if bm.Get(1, 1) {
		t.Error("bit should be unset after SetValue(false)")
	}
}

func TestBitMatrixFlip(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Flip(1, 2)
	if !bm.Get(1, 2) {
		t.Error("bit should be set after flip")
	}
	bm.Flip(1, 2)
	if bm.Get(1, 2) {
		t.Error("bit should be unset after double flip")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixDimensions(t *testing.T) {
	bm := NewBitMatrixWithSize(5, 9)
	w, h := bm.Dimensions()
	if w != 5 || h != 9 {
		t.Errorf("Dimensions() = (%d,%d), want (5,9)", w, h)
	}
	if bm.Width() != 5 || bm.Height() != 9 {
		t.Errorf("Width/Height = %d/%d, want 5/9", bm.Width(), bm.Height())
	}
}

func TestBitMatrixCount(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	if bm.Count() != 0 {
		t.Errorf("Count() = %d, want 0", bm.Count())
	}
	bm.Set(0, 0)
	bm.Set(3, 3)
	bm.Set(1, 2)
	if bm.Count() != 3 {
		t.Errorf("Count() = %d, want 3", bm.Count())
	}
}

func TestBitMatrixToListFromList(t *testing.T) {
	bm := NewBitMatrixWithSize(3, 2)
	bm.Set(0, 0)
	bm.Set(2, 1)
	list := bm.ToList()
	want := []bool{true, false, false, false, false, true}
	if len(list) != len(want) {
		t.Fatalf("ToList() len = %d, want %d", len(list), len(want))
	}
	for i, v := range want {
		if list[i] != v {
			t.Errorf("ToList()[%d] = %v, want %v", i, list[i], v)
		}
	}

	rebuilt := FromList(3, 2, list)
	if !bm.Equals(rebuilt) {
		t.Error("FromList(ToList()) should round-trip to an equal matrix")
	}
}

func TestBitMatrixFromListPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromList should panic on a list length mismatch")
		}
	}()
	FromList(3, 2, []bool{true, false})
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	b := NewBitMatrixWithSize(4, 4)
	a.Set(1, 2)
	b.Set(1, 2)
	if !a.Equals(b) {
		t.Error("equal matrices should be equal")
	}
	b.Set(3, 3)
	if a.Equals(b) {
		t.Error("different matrices should not be equal")
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 2)
	bm.Set(0, 0)
	s := bm.String()
	if s == "" {
		t.Error("String() should not be empty")
	}
	s2 := bm.StringWithChars("#", ".")
	if s2 == "" {
		t.Error("StringWithChars() should not be empty")
	}
}

func TestNewBitMatrixWithSizePanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBitMatrixWithSize should panic on negative dimensions")
		}
	}()
	NewBitMatrixWithSize(-1, 4)
}
