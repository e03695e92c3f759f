package anchormark

import "testing"

func TestPointApproxEqual(t *testing.T) {
	anchor := Pt(100, 200)
	tests := []struct {
		name string
		q    Point
		want bool
	}{
		{"identical", Pt(100, 200), true},
		{"both axes 0.0099", Pt(100.0099, 200.0099), true},
		{"negative 0.0099", Pt(99.9901, 199.9901), true},
		{"x 0.0101", Pt(100.0101, 200), false},
		{"y 0.0101", Pt(100, 200.0101), false},
		{"x 0.0101 y 0.0099", Pt(100.0101, 200.0099), false},
		{"far", Pt(90, 200), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := anchor.ApproxEqual(tt.q, HandleTolerance); got != tt.want {
				t.Errorf("ApproxEqual(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add = %v, want (4,5)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(Pt(10, 20), 4)

	// Left moves toward -X, Top toward +Y.
	if b.Left != 8 || b.Top != 22 {
		t.Errorf("top-left = (%v,%v), want (8,22)", b.Left, b.Top)
	}
	if b.Width != 4 || b.Height != 4 {
		t.Errorf("size = %vx%v, want 4x4", b.Width, b.Height)
	}
	if b.Right() != 12 || b.Bottom() != 18 {
		t.Errorf("right/bottom = (%v,%v), want (12,18)", b.Right(), b.Bottom())
	}
	if c := b.Center(); c != Pt(10, 20) {
		t.Errorf("Center() = %v, want (10,20)", c)
	}
}

func TestBoxInset(t *testing.T) {
	b := CenteredBox(Pt(0, 0), 2).Inset(1)
	want := Box{Left: -2, Top: 2, Width: 4, Height: 4}
	if b != want {
		t.Errorf("Inset(1) = %+v, want %+v", b, want)
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{Left: 0, Top: 10, Width: 5, Height: 5}
	b := Box{Left: 3, Top: 4, Width: 10, Height: 8}
	got := a.Union(b)
	want := Box{Left: 0, Top: 10, Width: 13, Height: 14}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if a.Union(a) != a {
		t.Error("Union with itself should be identity")
	}
}

func TestBoxOf(t *testing.T) {
	got := BoxOf(Pt(10, 0), Pt(4, 6))
	want := Box{Left: 4, Top: 6, Width: 6, Height: 6}
	if got != want {
		t.Errorf("BoxOf = %+v, want %+v", got, want)
	}
}
