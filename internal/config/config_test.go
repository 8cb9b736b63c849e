package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg-transit/internal/kernel"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Screen.Width != 640 || c.Screen.Height != 480 {
		t.Errorf("screen %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Effect.StripeWidth != 16 || c.Effect.CurtainWidth != 24 || c.Effect.QuakeAmplitude != 12 {
		t.Errorf("effect geometry %+v", c.Effect)
	}
	if b, _ := c.Backend(); b != kernel.BackendAuto {
		t.Errorf("backend %v", b)
	}
	if l, _ := c.LogLevel(); l != slog.LevelWarn {
		t.Errorf("level %v", l)
	}
}

func TestOverlay(t *testing.T) {
	c, err := LoadBytes([]byte("[Screen]\nWidth = 800\nRatioNum = 2\n\n[Kernel]\nBackend = swar\n\n[Effect]\nEffectCut = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Screen.Width != 800 || c.Screen.Height != 480 || c.Screen.RatioNum != 2 {
		t.Errorf("screen %+v", c.Screen)
	}
	if !c.Effect.EffectCut || c.Effect.StripeWidth != 16 {
		t.Errorf("effect %+v", c.Effect)
	}
	if b, _ := c.Backend(); b != kernel.BackendSWAR {
		t.Errorf("backend %v", b)
	}
}

func TestInvalid(t *testing.T) {
	for _, in := range []string{
		"[Screen]\nWidth = 0\n",
		"[Screen]\nRatioDen = 0\n",
		"[Kernel]\nBackend = gpu\n",
		"[Log]\nLevel = loud\n",
		"[Effect]\nStripeWidth = -1\n",
		"[Effect]\nQuakeAmplitude = 0\n",
	} {
		if _, err := LoadBytes([]byte(in)); err == nil {
			t.Errorf("LoadBytes(%q) succeeded", in)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(filepath.Join(dir, "missing.ini"))
	if err != nil || c.Screen.Width != 640 {
		t.Fatalf("missing file: %v %+v", err, c)
	}
	path := filepath.Join(dir, "transit.ini")
	if err := os.WriteFile(path, []byte("[Log]\nLevel = debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l, _ := c.LogLevel(); l != slog.LevelDebug {
		t.Errorf("level %v", l)
	}
}
