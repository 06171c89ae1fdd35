// Package config provides YAML-based game configuration loading,
// difficulty presets and hot reload for meteorfall.
package config

import (
	"fmt"
	"time"
)

// MeteorConfig holds the settings of every meteor variant, keyed by game id.
type MeteorConfig struct {
	Variants map[string]Variant `yaml:"variants"`
}

// Variant contains all configuration for one meteor game variant.
type Variant struct {
	Title     string         `yaml:"title"`
	Timing    Timing         `yaml:"timing"`
	Gameplay  Gameplay       `yaml:"gameplay"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// Timing defines the three independent timer periods of a round.
type Timing struct {
	TickMs  int `yaml:"tick_ms"`  // Main loop period
	SpawnMs int `yaml:"spawn_ms"` // Obstacle spawn period
	FallMs  int `yaml:"fall_ms"`  // Per-obstacle fall period
}

// Gameplay defines scoring and round length.
type Gameplay struct {
	Lives      int  `yaml:"lives"`
	TrackLives bool `yaml:"track_lives"` // When false, missed obstacles are just dropped
	Points     int  `yaml:"points"`      // Score per caught obstacle
	Target     int  `yaml:"target"`      // Obstacles per round; 0 = endless
}

// PlayerConfig defines the catcher.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  int     `yaml:"speed"`   // Cells per main tick while a direction is held
	Step   int     `yaml:"step"`    // Cells per discrete step on key release
	YRatio float64 `yaml:"y_ratio"` // Vertical position as a fraction of the field height
}

// ObstacleConfig defines the falling meteors.
type ObstacleConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	FallStep int `yaml:"fall_step"` // Cells per fall tick
}

// TickInterval returns the main loop period.
func (t Timing) TickInterval() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// SpawnInterval returns the obstacle spawn period.
func (t Timing) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnMs) * time.Millisecond
}

// FallInterval returns the per-obstacle fall period.
func (t Timing) FallInterval() time.Duration {
	return time.Duration(t.FallMs) * time.Millisecond
}

// Validate checks that a variant can drive a round.
func (v Variant) Validate() error {
	switch {
	case v.Timing.TickMs <= 0 || v.Timing.SpawnMs <= 0 || v.Timing.FallMs <= 0:
		return fmt.Errorf("config: timing periods must be positive")
	case v.Gameplay.TrackLives && v.Gameplay.Lives <= 0:
		return fmt.Errorf("config: lives must be positive when tracked")
	case v.Gameplay.Points < 0 || v.Gameplay.Target < 0:
		return fmt.Errorf("config: points and target must not be negative")
	case v.Player.Width <= 0 || v.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	case v.Obstacles.Width <= 0 || v.Obstacles.Height <= 0 || v.Obstacles.FallStep <= 0:
		return fmt.Errorf("config: obstacle size and fall step must be positive")
	case v.Player.YRatio <= 0 || v.Player.YRatio >= 1:
		return fmt.Errorf("config: player y_ratio must be in (0, 1)")
	}
	return nil
}

// Variant returns the variant configured for id.
func (c MeteorConfig) Variant(id string) (Variant, error) {
	v, ok := c.Variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("config: no variant %q", id)
	}
	if err := v.Validate(); err != nil {
		return Variant{}, fmt.Errorf("variant %q: %w", id, err)
	}
	return v, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values select no preset.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// ApplyPreset adjusts lives, spawn interval, fall interval and catcher speed of a variant.
// Lives are only touched when the variant tracks them.
func ApplyPreset(v *Variant, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if v.Gameplay.TrackLives {
			v.Gameplay.Lives += 2
		}
		v.Timing.SpawnMs = v.Timing.SpawnMs * 3 / 2
		v.Timing.FallMs = v.Timing.FallMs * 4 / 3
		v.Player.Speed++
	case DifficultyHard:
		if v.Gameplay.TrackLives {
			v.Gameplay.Lives = max(1, v.Gameplay.Lives-2)
		}
		v.Timing.SpawnMs = max(v.Timing.TickMs, v.Timing.SpawnMs*3/5)
		v.Timing.FallMs = max(v.Timing.TickMs/2, v.Timing.FallMs*3/4)
		v.Player.Speed = max(1, v.Player.Speed-1)
	}
}
