package meteor

import "github.com/vovakirdan/meteorfall/internal/entity"

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Terminal and intro messages.
const (
	MessageIntro  = "Press [Enter] to start the game"
	MessageLost   = "You died... Press [Enter] to start the game"
	MessageWon    = "Victory!!! Press [Enter] to start a new game"
	MessagePaused = "PAUSED - press P to resume"
)

// State is the mutable state of one game. It is created once per Game
// and shared by pointer with the loop, the handlers and the renderer.
type State struct {
	Phase   Phase
	Score   int
	Lives   int
	Won     bool
	Paused  bool
	Spawned int // Obstacles spawned in the current round
	Ticks   int // Main ticks in the current round
	Live    []entity.Actor
	Player  *entity.Player
	Message string
}

// reset prepares the state for a new round.
func (s *State) reset(lives int) {
	s.Phase = PhaseRunning
	s.Score = 0
	s.Lives = lives
	s.Won = false
	s.Paused = false
	s.Spawned = 0
	s.Ticks = 0
	s.Live = nil
	s.Player = nil
	s.Message = ""
}

// LiveObstacles returns the live obstacles in spawn order.
func (s *State) LiveObstacles() []*entity.Obstacle {
	return entity.Obstacles(s.Live)
}
