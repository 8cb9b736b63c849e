package image

import "testing"

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 3, 4, 5}, Rect{2, 3, 4, 5}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 0, 5, 5}, Rect{}},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 5, 5}, Rect{}},
		{"empty operand", Rect{0, 0, 10, 10}, Rect{2, 2, 0, 5}, Rect{}},
		{"negative origin", Rect{-5, -5, 10, 10}, Rect{0, 0, 100, 100}, Rect{0, 0, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect (swapped) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 5, 5, 20}
	if got, want := a.Union(b), (Rect{0, 0, 25, 25}); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestRect_Contains(t *testing.T) {
	outer := RectWH(100, 50)
	if !outer.Contains(Rect{10, 10, 90, 40}) {
		t.Error("Contains(inner) = false, want true")
	}
	if outer.Contains(Rect{10, 10, 91, 40}) {
		t.Error("Contains(overhanging) = true, want false")
	}
	if !outer.Contains(Rect{}) {
		t.Error("Contains(empty) = false, want true")
	}
	if got := outer.Area(); got != 5000 {
		t.Errorf("Area = %d, want 5000", got)
	}
}
