package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/paperplane/internal/flight"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected addr %s, got %s", DefaultAddr, cfg.Server.Addr)
	}
	if cfg.Animation.FPS != 20 {
		t.Errorf("expected fps 20, got %d", cfg.Animation.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.yaml")
	data := []byte(`
animation:
  fps: 10
plane:
  wing: long
  body: Medium
  shape: Delta
  material: Glossy
  humidity: normal
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Animation.FPS != 10 {
		t.Errorf("expected fps 10, got %d", cfg.Animation.FPS)
	}
	if cfg.Animation.Width != DefaultWidth {
		t.Errorf("expected default width to survive, got %d", cfg.Animation.Width)
	}
	if cfg.Plane != flight.OptimalPlane() {
		t.Errorf("expected canonical optimal plane, got %+v", cfg.Plane)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero fps", "animation: {fps: 0}", ErrInvalidFPS},
		{"negative width", "animation: {width: -1}", ErrInvalidSize},
		{"zero x_max", "animation: {x_max: 0}", ErrInvalidXMax},
		{"bad wing", "plane: {wing: Huge}", flight.ErrUnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Plane = flight.OptimalPlane()

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 42 || got.Plane != cfg.Plane {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("optimal")
	if !ok {
		t.Fatal("expected preset, got none")
	}
	if flight.Base(p) != 24 {
		t.Errorf("expected base 24, got %f", flight.Base(p))
	}

	p, ok = GetPreset("worst")
	if !ok || flight.Base(p) != 5 {
		t.Errorf("expected worst preset with base 5, got %v %f", ok, flight.Base(p))
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for unknown name")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		p, _ := GetPreset(name)
		if _, err := p.Normalize(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
