package climate

import "testing"

func TestFactorStaysInBand(t *testing.T) {
	f := New(42, 0.15, 0.05)
	for turn := 0; turn < 500; turn++ {
		for civIdx := 0; civIdx < 3; civIdx++ {
			got := f.Factor(turn, civIdx)
			if got < 0.85 || got > 1.15 {
				t.Fatalf("Factor(%d, %d) = %g, want within [0.85, 1.15]", turn, civIdx, got)
			}
		}
	}
}

func TestFactorDeterministic(t *testing.T) {
	a := New(7, 0.2, 0.05)
	b := New(7, 0.2, 0.05)
	for turn := 0; turn < 100; turn++ {
		if av, bv := a.Factor(turn, 0), b.Factor(turn, 0); av != bv {
			t.Fatalf("turn %d: same seed produced %g and %g", turn, av, bv)
		}
	}

	c := New(8, 0.2, 0.05)
	same := true
	for turn := 0; turn < 100; turn++ {
		if a.Factor(turn, 0) != c.Factor(turn, 0) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical factor series")
	}
}

func TestFactorVaries(t *testing.T) {
	f := New(42, 0.15, 0.05)
	first := f.Factor(0, 0)
	varies := false
	for turn := 1; turn < 200; turn++ {
		if f.Factor(turn, 0) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("factor never moved over 200 turns")
	}
}

func TestNilFieldIsNeutral(t *testing.T) {
	var f *Field
	if got := f.Factor(10, 1); got != 1 {
		t.Errorf("nil field Factor = %g, want 1", got)
	}
}

func TestNewSanitizesArguments(t *testing.T) {
	f := New(1, -0.5, -1)
	for turn := 0; turn < 50; turn++ {
		got := f.Factor(turn, 0)
		if got < 0.85 || got > 1.15 {
			t.Fatalf("defaulted field Factor(%d, 0) = %g, want within [0.85, 1.15]", turn, got)
		}
	}
}
