package meteor

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteorfall/internal/assets"
	"github.com/vovakirdan/meteorfall/internal/config"
)

// settings are process-wide defaults applied to games created by the registry.
type settings struct {
	configPath string
	preset     config.DifficultyPreset
	audio      assets.Output
	logger     *log.Logger
}

var (
	settingsMu sync.RWMutex
	global     settings
)

func currentSettings() settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return global
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	global.configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select none.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	global.preset = config.ParsePreset(preset)
}

// SetAudioOutput routes sounds of new games to out. Nil keeps them silent.
func SetAudioOutput(out assets.Output) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	global.audio = out
}

// SetLogger sets the logger of new games.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	global.logger = l
}

// fromSettings builds the options carried by the process-wide settings.
func fromSettings() []Option {
	s := currentSettings()
	var opts []Option
	if s.audio != nil {
		opts = append(opts, WithAudio(s.audio))
	}
	if s.logger != nil {
		opts = append(opts, WithLogger(s.logger))
	}
	return opts
}
