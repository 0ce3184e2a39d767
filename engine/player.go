package engine

import (
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

// Player picks a move for the side to move. The second result is false when
// the player has nothing to play (the state is terminal).
type Player interface {
	FindMove(state game.State) (game.MoveInfo, searcher.SearchMetric, bool)
}

// SearchPlayer plays the iterative-deepening alpha-beta searcher's choice.
type SearchPlayer struct {
	searcher *searcher.Searcher
}

func NewSearchPlayer(s *searcher.Searcher) *SearchPlayer {
	return &SearchPlayer{searcher: s}
}

func (p *SearchPlayer) FindMove(state game.State) (game.MoveInfo, searcher.SearchMetric, bool) {
	p.searcher.ResetMetrics()
	info := p.searcher.FindBestMove(state)
	return info, p.searcher.SearchMetric(), info.HasMove
}

// RandomPlayer plays a uniformly random legal move, a baseline opponent for
// experiments.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) FindMove(state game.State) (game.MoveInfo, searcher.SearchMetric, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.MoveInfo{}, searcher.SearchMetric{}, false
	}
	move := moves[p.rng.Intn(len(moves))]
	return game.MoveInfo{Move: move.Pos, HasMove: true}, searcher.SearchMetric{}, true
}
