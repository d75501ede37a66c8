package palette

import "testing"

func TestGet(t *testing.T) {
	p := Get("fire")
	if p.Name != "fire" {
		t.Errorf("expected fire, got %s", p.Name)
	}

	p = Get("nonexistent")
	if p.Name != "electric" {
		t.Errorf("unknown name should fall back to electric, got %s", p.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(Palettes) {
		t.Fatalf("expected %d names, got %d", len(Palettes), len(names))
	}
	for i, p := range Palettes {
		if names[i] != p.Name {
			t.Errorf("names[%d] = %s, want %s", i, names[i], p.Name)
		}
	}
}

func TestColorInterior(t *testing.T) {
	for _, p := range Palettes {
		if p.Color(100, 100) != p.Inside {
			t.Errorf("%s: interior point should use inside color", p.Name)
		}
		if p.Color(99, 100) == p.Inside {
			t.Errorf("%s: escaping point should not use inside color", p.Name)
		}
	}
}

func TestColorDeterministic(t *testing.T) {
	p := Get("electric")
	for n := 0; n < 50; n++ {
		if p.Color(n, 100) != p.Color(n, 100) {
			t.Fatalf("color for n=%d not deterministic", n)
		}
	}
}

func TestShadeBounds(t *testing.T) {
	p := Get("electric")

	if p.Shade(-1) != p.Ramp[0] {
		t.Error("negative brightness should clamp to the dimmest entry")
	}
	if p.Shade(2) != p.Ramp[len(p.Ramp)-1] {
		t.Error("brightness above 1 should clamp to the brightest entry")
	}
	if p.Shade(0) != p.Ramp[0] {
		t.Error("zero brightness should map to the dimmest entry")
	}
	if p.Shade(1) != p.Ramp[len(p.Ramp)-1] {
		t.Error("full brightness should map to the brightest entry")
	}
}

func TestSymbolMonotonic(t *testing.T) {
	maxIter := 100
	ramp := []rune(densityRamp)

	prev := -1
	for n := 0; n < maxIter; n++ {
		sym := Symbol(n, maxIter)
		idx := -1
		for i, r := range ramp {
			if r == sym {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("Symbol(%d, %d) = %q not in the density ramp", n, maxIter, sym)
		}
		if idx < prev {
			t.Fatalf("density decreased at n=%d", n)
		}
		prev = idx
	}

	if Symbol(maxIter, maxIter) != '█' {
		t.Error("interior points should render as a solid block")
	}
}
