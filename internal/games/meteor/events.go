package meteor

import (
	"github.com/vovakirdan/meteorfall/internal/bus"
	"github.com/vovakirdan/meteorfall/internal/entity"
)

// Topics of the meteor event catalog.
const (
	TopicGameStart bus.Topic = iota + 1
	TopicPlayerSpeedLeft
	TopicPlayerSpeedRight
	TopicPlayerSpeedZero
	TopicPlayerMoveLeft
	TopicPlayerMoveRight
	TopicObstacleHit
	TopicObstacleOutOfBounds
	TopicGameLost
	TopicGameWon
)

// GameStart asks for a new round.
type GameStart struct{}

// PlayerSpeedLeft starts continuous movement to the left.
type PlayerSpeedLeft struct{}

// PlayerSpeedRight starts continuous movement to the right.
type PlayerSpeedRight struct{}

// PlayerSpeedZero stops continuous movement.
type PlayerSpeedZero struct{}

// PlayerMoveLeft moves the player one step left.
type PlayerMoveLeft struct{}

// PlayerMoveRight moves the player one step right.
type PlayerMoveRight struct{}

// ObstacleHit reports an obstacle caught by the player.
type ObstacleHit struct {
	Obstacle *entity.Obstacle
}

// ObstacleOutOfBounds reports an obstacle that reached the floor.
type ObstacleOutOfBounds struct {
	Obstacle *entity.Obstacle
}

// GameLost ends the round without a win.
type GameLost struct{}

// GameWon ends the round with a win.
type GameWon struct{}

func (GameStart) Topic() bus.Topic { return TopicGameStart }
func (PlayerSpeedLeft) Topic() bus.Topic { return TopicPlayerSpeedLeft }
func (PlayerSpeedRight) Topic() bus.Topic { return TopicPlayerSpeedRight }
func (PlayerSpeedZero) Topic() bus.Topic { return TopicPlayerSpeedZero }
func (PlayerMoveLeft) Topic() bus.Topic { return TopicPlayerMoveLeft }
func (PlayerMoveRight) Topic() bus.Topic { return TopicPlayerMoveRight }
func (ObstacleHit) Topic() bus.Topic { return TopicObstacleHit }
func (ObstacleOutOfBounds) Topic() bus.Topic { return TopicObstacleOutOfBounds }
func (GameLost) Topic() bus.Topic { return TopicGameLost }
func (GameWon) Topic() bus.Topic { return TopicGameWon }
