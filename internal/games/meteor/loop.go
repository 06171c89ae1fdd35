package meteor

import (
	"github.com/vovakirdan/meteorfall/internal/core"
	"github.com/vovakirdan/meteorfall/internal/entity"
)

// tick runs one main loop iteration: update, detect, react, purge, win check, draw.
// A panic is recovered and logged; the live set then keeps its pre-purge value.
func (g *Game) tick() {
	st := g.state
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("tick panic recovered", "game", g.id, "tick", st.Ticks, "panic", r)
		}
	}()

	st.Ticks++
	field := g.field()

	// Update
	if st.Player != nil && st.Player.Alive {
		st.Player.Advance(field)
	}

	// Detect
	hits, missed := detect(st.Player, st.LiveObstacles(), field)

	// React
	for _, o := range hits {
		g.bus.Publish(ObstacleHit{Obstacle: o})
	}
	for _, o := range missed {
		g.bus.Publish(ObstacleOutOfBounds{Obstacle: o})
	}
	if st.Phase == PhaseRunning && g.cfg.Gameplay.TrackLives && st.Lives == 0 {
		g.bus.Publish(GameLost{})
	}

	// Purge
	st.Live = entity.Alive(st.Live)

	// Win check
	if st.Phase == PhaseRunning && g.targetSpawned() && len(st.LiveObstacles()) == 0 {
		g.bus.Publish(GameWon{})
	}

	g.draw()
}

// detect splits live obstacles into those caught by the player and those on the floor.
// An obstacle touching the player counts as caught even if it is also on the floor.
func detect(player *entity.Player, obstacles []*entity.Obstacle, field core.Rect) (hits, missed []*entity.Obstacle) {
	for _, o := range obstacles {
		switch {
		case player != nil && player.Alive && core.Intersects(player.Bounds(), o.Bounds()):
			hits = append(hits, o)
		case o.PastFloor(field):
			missed = append(missed, o)
		}
	}
	return hits, missed
}
