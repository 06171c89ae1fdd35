package config

import (
	_ "embed"
)

//go:embed defaults/meteor.yaml
var defaultMeteorYAML []byte

// DefaultMeteorConfig returns the hardcoded default configuration.
// It mirrors defaults/meteor.yaml and is used if the embedded file cannot be parsed.
func DefaultMeteorConfig() MeteorConfig {
	player := PlayerConfig{Width: 9, Height: 1, Speed: 2, Step: 2, YRatio: 0.75}
	obstacles := ObstacleConfig{Width: 3, Height: 2, FallStep: 1}

	return MeteorConfig{
		Variants: map[string]Variant{
			"meteor": {
				Title:     "Meteor Catch",
				Timing:    Timing{TickMs: 100, SpawnMs: 3000, FallMs: 100},
				Gameplay:  Gameplay{Lives: 3, TrackLives: true, Points: 100},
				Player:    player,
				Obstacles: obstacles,
			},
			"meteor_rush": {
				Title:     "Meteor Rush",
				Timing:    Timing{TickMs: 100, SpawnMs: 1000, FallMs: 100},
				Gameplay:  Gameplay{Lives: 3, TrackLives: true, Points: 10, Target: 25},
				Player:    PlayerConfig{Width: 9, Height: 1, Speed: 3, Step: 2, YRatio: 0.75},
				Obstacles: obstacles,
			},
			"meteor_drift": {
				Title:     "Meteor Drift",
				Timing:    Timing{TickMs: 100, SpawnMs: 5000, FallMs: 200},
				Gameplay:  Gameplay{Points: 10, Target: 8},
				Player:    PlayerConfig{Width: 9, Height: 1, Speed: 1, Step: 1, YRatio: 0.75},
				Obstacles: obstacles,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMeteorYAML
}
