package anim

import (
	"errors"
	"testing"

	"github.com/gogpu/gg-transit/internal/image"
)

func TestSetCels(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		durations []int
		want      []int
		wantErr   error
	}{
		{"single duration", 3, []int{50}, []int{50, 50, 50}, nil},
		{"list", 3, []int{100, 150, 200}, []int{100, 150, 200}, nil},
		{"zero cels", 0, []int{10}, nil, ErrNoCels},
		{"wrong count", 3, []int{1, 2}, nil, ErrDurations},
		{"negative", 2, []int{1, -1}, nil, ErrDurations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSprite(LayerSprite, 0)
			err := sp.SetCels(nil, tt.n, tt.durations, LoopForever)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				if sp.Cels() != 0 {
					t.Error("failed SetCels modified the sprite")
				}
				return
			}
			got := sp.Durations()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("durations = %v, want %v", got, tt.want)
					break
				}
			}
			if sp.Cel() != 0 || sp.Remaining() != tt.want[0] {
				t.Errorf("cel %d remaining %d after SetCels", sp.Cel(), sp.Remaining())
			}
		})
	}
}

func TestAdvanceLoopModes(t *testing.T) {
	tests := []struct {
		loop LoopMode
		want []int // cel after each Advance
	}{
		{LoopForever, []int{1, 2, 0, 1}},
		{LoopOnce, []int{1, 2, 2, 2}},
		{LoopOnceAlt, []int{1, 2, 2, 2}},
		{LoopNone, []int{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.loop.String(), func(t *testing.T) {
			sp := NewSprite(LayerSprite, 0)
			if err := sp.SetCels(nil, 3, []int{10, 20, 30}, tt.loop); err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.want {
				sp.Advance()
				if sp.Cel() != want {
					t.Fatalf("advance %d: cel = %d, want %d", i, sp.Cel(), want)
				}
			}
		})
	}
}

func TestSpriteRects(t *testing.T) {
	sp := NewSprite(LayerSprite, 1)
	if err := sp.SetCels(image.MustNew(90, 20), 3, []int{10}, LoopForever); err != nil {
		t.Fatal(err)
	}
	sp.X, sp.Y = 5, 7
	sp.Advance()
	if got, want := sp.CelRect(), (image.Rect{X: 30, Width: 30, Height: 20}); got != want {
		t.Errorf("CelRect = %+v, want %+v", got, want)
	}
	if got, want := sp.Rect(), (image.Rect{X: 5, Y: 7, Width: 30, Height: 20}); got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
}
