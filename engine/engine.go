package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves caps a game: an 8x8 board holds at most 60 placements, so hitting
// the cap means a player misbehaved.
const MaxMoves = 100

type Engine interface {
	// Run plays a game till it is over or the move cap is reached
	Run() (winner game.Disc, moves []metrics.MoveRecord)
}
