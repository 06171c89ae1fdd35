package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadMeteor("")
	if err != nil {
		t.Fatalf("LoadMeteor() failed: %v", err)
	}
	hard := DefaultMeteorConfig()

	for id, want := range hard.Variants {
		got, err := cfg.Variant(id)
		if err != nil {
			t.Fatalf("Variant(%q) failed: %v", id, err)
		}
		if got != want {
			t.Errorf("variant %q: embedded %+v, hardcoded %+v", id, got, want)
		}
	}
}

func TestVariantDefaults(t *testing.T) {
	cfg := DefaultMeteorConfig()

	classic, err := cfg.Variant("meteor")
	if err != nil {
		t.Fatalf("Variant(meteor) failed: %v", err)
	}
	if classic.Timing.TickInterval() != 100*time.Millisecond {
		t.Errorf("tick = %v, expected 100ms", classic.Timing.TickInterval())
	}
	if classic.Timing.SpawnInterval() != 3*time.Second {
		t.Errorf("spawn = %v, expected 3s", classic.Timing.SpawnInterval())
	}
	if classic.Gameplay.Points != 100 || classic.Gameplay.Lives != 3 {
		t.Errorf("classic gameplay = %+v", classic.Gameplay)
	}

	for id, v := range cfg.Variants {
		spawn := v.Timing.SpawnInterval()
		if spawn < time.Second || spawn > 10*time.Second {
			t.Errorf("variant %q spawns every %v, outside 1s-10s", id, spawn)
		}
	}

	if _, err := cfg.Variant("missing"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`variants:
  meteor:
    title: Custom
    timing: {tick_ms: 50, spawn_ms: 2000, fall_ms: 50}
    gameplay: {lives: 1, track_lives: true, points: 5, target: 0}
    player: {width: 5, height: 1, speed: 1, step: 1, y_ratio: 0.5}
    obstacles: {width: 1, height: 1, fall_step: 1}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMeteor(path)
	if err != nil {
		t.Fatalf("LoadMeteor() failed: %v", err)
	}
	v, err := cfg.Variant("meteor")
	if err != nil {
		t.Fatalf("Variant(meteor) failed: %v", err)
	}
	if v.Title != "Custom" || v.Gameplay.Points != 5 {
		t.Errorf("custom variant not loaded: %+v", v)
	}

	// Variants missing from the file fall back to defaults
	if _, err := cfg.Variant("meteor_rush"); err != nil {
		t.Errorf("missing variant should fall back to defaults: %v", err)
	}

	if ResolvePath(path) != path {
		t.Error("ResolvePath should return the custom path")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMeteor(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("variants: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMeteor(bad); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	base := DefaultMeteorConfig().Variants["meteor"]

	tests := []struct {
		name   string
		mutate func(v *Variant)
	}{
		{"zero tick", func(v *Variant) { v.Timing.TickMs = 0 }},
		{"tracked lives without lives", func(v *Variant) { v.Gameplay.Lives = 0 }},
		{"negative target", func(v *Variant) { v.Gameplay.Target = -1 }},
		{"empty player", func(v *Variant) { v.Player.Width = 0 }},
		{"zero fall step", func(v *Variant) { v.Obstacles.FallStep = 0 }},
		{"player below field", func(v *Variant) { v.Player.YRatio = 1.2 }},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("default variant should be valid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := base
			tc.mutate(&v)
			if err := v.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultMeteorConfig().Variants["meteor"]

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Timing.SpawnMs != 4500 || easy.Timing.FallMs != 133 || easy.Player.Speed != 3 {
		t.Errorf("easy preset = %+v", easy)
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 1 || hard.Timing.SpawnMs != 1800 || hard.Timing.FallMs != 75 || hard.Player.Speed != 1 {
		t.Errorf("hard preset = %+v", hard)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the variant")
	}

	drift := DefaultMeteorConfig().Variants["meteor_drift"]
	ApplyPreset(&drift, DifficultyHard)
	if drift.Gameplay.Lives != 0 {
		t.Error("presets must not add lives to a variant that does not track them")
	}
	if drift.Player.Speed != 1 {
		t.Errorf("hard preset speed = %d, expected the floor of 1", drift.Player.Speed)
	}
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		v := base
		ApplyPreset(&v, preset)
		if err := v.Validate(); err != nil {
			t.Errorf("%s preset produced an invalid variant: %v", preset, err)
		}
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("brutal") != "" {
		t.Error("ParsePreset returned unexpected values")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Clean(name) != w.Path() {
			t.Errorf("event for %q, expected %q", name, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for config write")
	}
}
