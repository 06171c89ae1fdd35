package entity

import "github.com/vovakirdan/meteorfall/internal/core"

// Player is the catcher controlled by input events.
type Player struct {
	Entity
	Speed    int // Current horizontal velocity in cells per main tick
	MaxSpeed int // Velocity applied while a direction is held
	StepSize int // Distance of a single discrete step
}

// NewPlayer creates a live player.
func NewPlayer(x, y, w, h, maxSpeed, step int, sprite core.Image) *Player {
	return &Player{
		Entity: Entity{
			X: x, Y: y, W: w, H: h,
			Alive:  true,
			Sprite: sprite,
			Glyph:  '=',
			Color:  core.ColorCyan,
		},
		MaxSpeed: maxSpeed,
		StepSize: step,
	}
}

// Base returns the shared entity data.
func (p *Player) Base() *Entity { return &p.Entity }

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// SpeedLeft starts moving left.
func (p *Player) SpeedLeft() { p.Speed = -p.MaxSpeed }

// SpeedRight starts moving right.
func (p *Player) SpeedRight() { p.Speed = p.MaxSpeed }

// Stop zeroes the velocity.
func (p *Player) Stop() { p.Speed = 0 }

// StepLeft moves one discrete step left, clamped to field.
func (p *Player) StepLeft(field core.Rect) {
	p.moveBy(-p.StepSize, field)
}

// StepRight moves one discrete step right, clamped to field.
func (p *Player) StepRight(field core.Rect) {
	p.moveBy(p.StepSize, field)
}

// Advance applies the current velocity, clamped to field.
func (p *Player) Advance(field core.Rect) {
	if p.Speed != 0 {
		p.moveBy(p.Speed, field)
	}
}

func (p *Player) moveBy(dx int, field core.Rect) {
	p.X = core.Clamp(p.X+dx, field.Left(), core.Max(field.Left(), field.Right()-p.W))
}
