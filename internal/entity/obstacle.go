package entity

import (
	"time"

	"github.com/vovakirdan/meteorfall/internal/core"
	"github.com/vovakirdan/meteorfall/internal/sched"
)

// FallTimerName labels the per-obstacle fall timers on the scheduler.
const FallTimerName = "obstacle-fall"

// Obstacle falls on its own timer until it rests on the floor or dies.
type Obstacle struct {
	Entity
	FallStep int
	timer    *sched.Timer
}

// NewObstacle creates a live obstacle.
func NewObstacle(x, y, w, h, fallStep int, sprite core.Image) *Obstacle {
	return &Obstacle{
		Entity: Entity{
			X: x, Y: y, W: w, H: h,
			Alive:  true,
			Sprite: sprite,
			Glyph:  '@',
			Color:  core.ColorOrange,
		},
		FallStep: fallStep,
	}
}

// Base returns the shared entity data.
func (o *Obstacle) Base() *Entity { return &o.Entity }

// Kind returns KindObstacle.
func (o *Obstacle) Kind() Kind { return KindObstacle }

// Advance moves the obstacle down one step, never below the floor of field.
func (o *Obstacle) Advance(field core.Rect) {
	o.Y = core.Min(o.Y+o.FallStep, field.Bottom()-o.H)
}

// PastFloor reports whether the obstacle has reached the bottom of field.
func (o *Obstacle) PastFloor(field core.Rect) bool {
	return o.Y+o.H >= field.Bottom()
}

// Arm starts the obstacle's own fall timer on s.
// Each firing checks Alive first and stops the timer once the obstacle is dead;
// the timer also stops once the obstacle rests on the floor.
func (o *Obstacle) Arm(s *sched.Scheduler, interval time.Duration, field core.Rect) *sched.Timer {
	o.timer = s.Every(FallTimerName, interval, func(t *sched.Timer) {
		if !o.Alive {
			t.Stop()
			return
		}
		o.Advance(field)
		if o.PastFloor(field) {
			t.Stop()
		}
	})
	return o.timer
}

// Falling reports whether the obstacle's fall timer is still armed.
func (o *Obstacle) Falling() bool {
	return o.timer.Active()
}
