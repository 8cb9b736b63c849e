package wide

import "testing"

func TestSplatU16(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
	}{
		{"zero", 0},
		{"max", 255},
		{"mid", 128},
		{"one", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatU16(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %d, want %d", i, v, tt.value)
				}
			}
		})
	}
}

func TestU16x16_Saturating(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint16
		addWant uint16
		subWant uint16
		avgWant uint16
	}{
		{"zeros", 0, 0, 0, 0, 0},
		{"max plus max", 255, 255, 255, 0, 255},
		{"overflow", 200, 100, 255, 100, 150},
		{"underflow", 10, 20, 30, 0, 15},
		{"odd mean", 1, 2, 3, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := SplatU16(tt.a), SplatU16(tt.b)
			if got := a.AddSat(b); got != SplatU16(tt.addWant) {
				t.Errorf("AddSat(%d, %d) = %d, want %d", tt.a, tt.b, got[0], tt.addWant)
			}
			if got := a.SubSat(b); got != SplatU16(tt.subWant) {
				t.Errorf("SubSat(%d, %d) = %d, want %d", tt.a, tt.b, got[0], tt.subWant)
			}
			if got := a.Avg(b); got != SplatU16(tt.avgWant) {
				t.Errorf("Avg(%d, %d) = %d, want %d", tt.a, tt.b, got[0], tt.avgWant)
			}
		})
	}
}

func TestU16x16_MulDiv255Exact(t *testing.T) {
	// MulDiv255 must round to nearest for every product of two channel values.
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			got := SplatU16(uint16(a)).MulDiv255(SplatU16(uint16(b)))[0]
			want := uint16((a*b + 127) / 255)
			if got != want {
				t.Fatalf("MulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestU16x16_Lerp(t *testing.T) {
	from := SplatU16(40)
	to := SplatU16(200)

	if got := from.Lerp(to, SplatU16(0)); got != from {
		t.Errorf("Lerp(a=0) = %d, want %d", got[0], from[0])
	}
	if got := from.Lerp(to, SplatU16(255)); got != to {
		t.Errorf("Lerp(a=255) = %d, want %d", got[0], to[0])
	}
	// 40 + (200-40)*128/255 = 120.31...
	if got := from.Lerp(to, SplatU16(128)); got[0] != 120 {
		t.Errorf("Lerp(a=128) = %d, want 120", got[0])
	}
}

func TestU16x16_MulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want uint16
	}{
		{255, 255, 255},
		{0, 255, 0},
		{128, 255, 128},
		{128, 128, 64},
	}
	for _, tt := range tests {
		got := SplatU16(tt.a).MulDiv255(SplatU16(tt.b))
		if got[0] != tt.want {
			t.Errorf("MulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got[0], tt.want)
		}
	}
}

func TestU16x16_Clamp(t *testing.T) {
	v := SplatU16(300)
	if got := v.Clamp(255); got != SplatU16(255) {
		t.Errorf("Clamp(255) = %d, want 255", got[0])
	}
	if got := SplatU16(55).Clamp(255); got != SplatU16(55) {
		t.Errorf("Clamp(55) = %d, want 55", got[0])
	}
}
