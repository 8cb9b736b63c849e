package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	transit "github.com/gogpu/gg-transit"
	"github.com/gogpu/gg-transit/anim"
	"github.com/gogpu/gg-transit/internal/asset"
)

func TestAddSpriteKeepsSlotOnBadDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		warn string
	}{
		{":a/0,100,0;x.png", "zero cell count"},
		{":mmask.bmp", "terminator"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var logs bytes.Buffer
			transit.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
			t.Cleanup(func() { transit.SetLogger(nil) })

			strip, err := transit.NewImageBuf(4, 2)
			if err != nil {
				t.Fatal(err)
			}
			sched := anim.NewScheduler(nil)
			prior, err := sched.Assign(anim.LayerSprite, 0, strip, 2, []int{100}, anim.LoopForever)
			if err != nil {
				t.Fatal(err)
			}

			if err := addSprite(sched, asset.NewLoader(fstest.MapFS{}), tt.desc, 8, 8); err != nil {
				t.Fatalf("addSprite: %v", err)
			}
			if sp := sched.Sprite(anim.LayerSprite, 0); sp != prior || sp.Cels() != 2 || sp.Image() != strip {
				t.Error("slot changed")
			}
			if !strings.Contains(logs.String(), tt.warn) {
				t.Errorf("log %q does not mention %q", logs.String(), tt.warn)
			}
		})
	}
}
