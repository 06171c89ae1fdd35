package meteor

import "github.com/vovakirdan/meteorfall/internal/bus"

// subscribe wires the game's handlers to its bus.
func (g *Game) subscribe() {
	bus.Subscribe(g.bus, func(GameStart) {
		if g.state.Phase != PhaseRunning && g.frame != nil {
			g.Start()
		}
	})

	bus.Subscribe(g.bus, func(PlayerSpeedLeft) {
		if p := g.state.Player; p != nil {
			p.SpeedLeft()
		}
	})
	bus.Subscribe(g.bus, func(PlayerSpeedRight) {
		if p := g.state.Player; p != nil {
			p.SpeedRight()
		}
	})
	bus.Subscribe(g.bus, func(PlayerSpeedZero) {
		if p := g.state.Player; p != nil {
			p.Stop()
		}
	})
	bus.Subscribe(g.bus, func(PlayerMoveLeft) {
		if p := g.state.Player; p != nil {
			p.StepLeft(g.field())
			g.draw()
		}
	})
	bus.Subscribe(g.bus, func(PlayerMoveRight) {
		if p := g.state.Player; p != nil {
			p.StepRight(g.field())
			g.draw()
		}
	})

	bus.Subscribe(g.bus, func(e ObstacleHit) {
		e.Obstacle.Kill()
		g.state.Score += g.cfg.Gameplay.Points
		g.play(SoundHit)
	})
	bus.Subscribe(g.bus, func(e ObstacleOutOfBounds) {
		e.Obstacle.Kill()
		if g.cfg.Gameplay.TrackLives && g.state.Lives > 0 {
			g.state.Lives--
		}
	})

	bus.Subscribe(g.bus, func(GameLost) {
		g.end(false)
	})
	bus.Subscribe(g.bus, func(GameWon) {
		g.end(true)
	})
}

// end finishes a running round and cancels every timer, including fall timers.
func (g *Game) end(won bool) {
	st := g.state
	if st.Phase != PhaseRunning {
		return
	}
	st.Phase = PhaseEnded
	st.Won = won
	st.Paused = false
	g.sched.StopAll()

	if won {
		st.Message = MessageWon
	} else {
		st.Message = MessageLost
		if st.Player != nil {
			st.Player.Kill()
		}
		g.play(SoundLose)
	}

	g.logger.Debug("round ended", "game", g.id, "won", won, "score", st.Score, "ticks", st.Ticks)
	g.draw()
}
