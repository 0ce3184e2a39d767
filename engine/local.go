package engine

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two in-process players on an authoritative
// state. Players only ever see clones; every returned move is re-validated
// by applying it to the real state.
type Local struct {
	State   game.State
	Players map[game.Disc]Player
}

func NewLocal(black, white Player) *Local {
	return &Local{
		State: game.NewGameState(),
		Players: map[game.Disc]Player{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run executes the game loop until the game is over.
func (l *Local) Run() (game.Disc, []metrics.MoveRecord) {
	log.Info().Msgf("%s is starting", l.State.Player())

	var records []metrics.MoveRecord
	step := 1
	for !l.State.GameOver() && step <= MaxMoves {
		mover := l.State.Player()
		player := l.Players[mover]

		start := time.Now()
		info, metric, ok := player.FindMove(l.State.Clone())
		if !ok {
			log.Warn().Msgf("%s found no move in a live position", mover)
			break
		}

		if _, applied := l.State.MakeMove(info.Move); !applied {
			log.Warn().Msgf("%s returned illegal move %s", mover, info.Move)
			break
		}

		records = append(records, metrics.MoveRecord{
			Step:     step,
			Player:   mover.String(),
			Move:     info.Move.String(),
			Score:    info.Score,
			Nodes:    metric.Nodes,
			Leaves:   metric.Leaves,
			Cutoffs:  metric.Cutoffs,
			Duration: time.Since(start),
		})
		step++
	}

	winner := l.State.Winner()
	log.Info().Msgf("game over after %d moves, winner: %s (%d-%d)",
		step-1, winner, l.State.DiscCount(game.Black), l.State.DiscCount(game.White))
	return winner, records
}
