// Package assets resolves the sprites and sounds a game draws and plays.
// Assets are described by a YAML manifest and loaded concurrently; callers
// wait for every asset before starting a game loop.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vovakirdan/meteorfall/internal/core"
)

//go:embed data
var embedded embed.FS

// DefaultFS returns the embedded asset tree (manifest.yaml at its root).
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed directive guarantees data exists
		panic(err)
	}
	return sub
}

// Manifest lists the assets to resolve.
type Manifest struct {
	Sprites map[string]SpriteSpec `yaml:"sprites"`
	Sounds  map[string]SoundSpec  `yaml:"sounds"`
}

// SpriteSpec describes a sprite either inline or by file.
type SpriteSpec struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
	File  string   `yaml:"file"`
}

// SoundSpec describes a synthesized tone.
type SoundSpec struct {
	Frequency  int     `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"` // Base-2 gain, 0 = unchanged
}

// Sprite is a multi-cell character image.
type Sprite struct {
	id    string
	rows  [][]rune
	color core.Color
	w     int
}

// NewSprite builds a sprite from text rows.
func NewSprite(id string, rows []string, color core.Color) *Sprite {
	s := &Sprite{id: id, color: color}
	for _, r := range rows {
		rr := []rune(r)
		s.rows = append(s.rows, rr)
		s.w = core.Max(s.w, len(rr))
	}
	return s
}

// ID returns the manifest id of the sprite.
func (s *Sprite) ID() string { return s.id }

// Size returns the sprite dimensions in cells.
func (s *Sprite) Size() (int, int) {
	return s.w, len(s.rows)
}

// At returns the rune and color at (x, y); cells past a short row are transparent.
func (s *Sprite) At(x, y int) (rune, core.Color) {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return ' ', s.color
	}
	return s.rows[y][x], s.color
}

var _ core.Image = (*Sprite)(nil)

// resolveSprite turns a spec into a sprite, reading its file from fsys if set.
func resolveSprite(fsys fs.FS, id string, spec SpriteSpec) (*Sprite, error) {
	rows := spec.Rows
	if spec.File != "" {
		data, err := fs.ReadFile(fsys, spec.File)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", id, err)
		}
		rows = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no rows", id)
	}
	return NewSprite(id, rows, core.ParseColor(spec.Color)), nil
}
