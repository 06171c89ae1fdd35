// Package entity defines the drawable, movable objects of a falling-object game.
// Player and Obstacle are distinct variants selected by an explicit Kind tag
// and share the Actor capability interface.
package entity

import "github.com/vovakirdan/meteorfall/internal/core"

// Kind tags the variant of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Entity is the shared shape of every game object.
type Entity struct {
	X, Y   int
	W, H   int
	Alive  bool
	Sprite core.Image // Not owned; provided by the asset pack
	Glyph  rune       // Fallback fill when Sprite is nil
	Color  core.Color // Fallback fill color
}

// Bounds returns the axis-aligned rectangle covered by the entity.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Draw blits the entity's sprite at its bounds. Dead entities draw nothing.
func (e *Entity) Draw(dst core.Surface) {
	if !e.Alive {
		return
	}
	if e.Sprite != nil {
		dst.DrawImage(e.Sprite, e.Bounds())
		return
	}
	glyph := e.Glyph
	if glyph == 0 {
		glyph = '#'
	}
	dst.FillRect(e.Bounds(), glyph, e.Color)
}

// Kill marks the entity dead.
func (e *Entity) Kill() {
	e.Alive = false
}

// Actor is implemented by every entity variant.
type Actor interface {
	Base() *Entity
	Kind() Kind
	Bounds() core.Rect
	Draw(dst core.Surface)
	// Advance performs one movement step inside field.
	Advance(field core.Rect)
}

// Alive filters actors, keeping only live ones. The input slice is not modified.
func Alive(actors []Actor) []Actor {
	out := make([]Actor, 0, len(actors))
	for _, a := range actors {
		if a.Base().Alive {
			out = append(out, a)
		}
	}
	return out
}

// Obstacles returns the live obstacles in actors, in order.
func Obstacles(actors []Actor) []*Obstacle {
	var out []*Obstacle
	for _, a := range actors {
		if a.Kind() != KindObstacle || !a.Base().Alive {
			continue
		}
		if o, ok := a.(*Obstacle); ok {
			out = append(out, o)
		}
	}
	return out
}

// Compile-time checks that both variants are Actors.
var (
	_ Actor = (*Player)(nil)
	_ Actor = (*Obstacle)(nil)
)
