package kernel

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		f        Features
		b        Backend
		byteWise string
		pixel    string
	}{
		{"nothing", Features{}, BackendAuto, "reference", "reference"},
		{"word64", Features{Word64: true}, BackendAuto, "swar", "reference"},
		{"sse2", Features{Word64: true, SSE2: true}, BackendAuto, "wide", "wide"},
		{"asimd", Features{ASIMD: true}, BackendAuto, "wide", "wide"},
		{"force reference", Features{Word64: true, AVX2: true}, BackendReference, "reference", "reference"},
		{"force swar", Features{}, BackendSWAR, "swar", "reference"},
		{"force wide", Features{}, BackendWide, "wide", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := Select(tt.f, tt.b)
			for _, p := range []Primitive{PrimMean, PrimAddTo, PrimSubFrom} {
				if got := tab.Name(p); got != tt.byteWise {
					t.Errorf("Name(%v) = %q, want %q", p, got, tt.byteWise)
				}
			}
			for _, p := range []Primitive{PrimBlend, PrimMaskBlend, PrimMaskBlendConst} {
				if got := tab.Name(p); got != tt.pixel {
					t.Errorf("Name(%v) = %q, want %q", p, got, tt.pixel)
				}
			}
		})
	}
}

func TestDefaultIsStable(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Fatal("Default returned different tables")
	}
	for _, p := range Primitives() {
		if a.Name(p) == "unknown" {
			t.Errorf("primitive %v unbound", p)
		}
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendAuto, false},
		{"auto", BackendAuto, false},
		{"Reference", BackendReference, false},
		{" swar ", BackendSWAR, false},
		{"wide", BackendWide, false},
		{"gpu", BackendAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" {
			if _, err := ParseBackend(got.String()); err != nil {
				t.Errorf("round trip of %v failed", got)
			}
		}
	}
}
