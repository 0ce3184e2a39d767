package searcher

import "othello/game"

// Infinity seeds the alpha/beta bounds. It lies outside any score the
// evaluator can produce, so its negation is also a safe bound.
const Infinity = 1 << 30

// WinScore is the terminal-outcome sentinel: a decided game scores +WinScore
// for the side to move if it won, -WinScore if it lost, and 0 on a draw.
const WinScore = 1 << 20

// Weights are the four fixed coefficients combining the heuristic signals.
// They are constant for the lifetime of a Searcher.
type Weights struct {
	CoinParity int
	Mobility   int
	Corners    int
	Stability  int
}

// DefaultWeights favors corners and stability over raw disc count, the usual
// Othello ordering: discs are volatile until the endgame.
var DefaultWeights = Weights{
	CoinParity: 25,
	Mobility:   5,
	Corners:    30,
	Stability:  25,
}

// Evaluator scores a position from the perspective of the player to move.
// The result is an evaluation-only MoveInfo: score set, no move attached.
type Evaluator interface {
	Evaluate(game.State) game.MoveInfo
}

type weightedEvaluator struct {
	weights    Weights
	heuristics game.Heuristics
}

// NewWeightedEvaluator combines the four heuristic signals with fixed
// weights. It is a pure function of the state and the weights.
func NewWeightedEvaluator(weights Weights, heuristics game.Heuristics) Evaluator {
	return &weightedEvaluator{weights: weights, heuristics: heuristics}
}

func (e *weightedEvaluator) Evaluate(state game.State) game.MoveInfo {
	if state.GameOver() {
		return game.MoveInfo{Score: outcomeScore(state)}
	}

	score := e.weights.CoinParity*e.heuristics.CoinParity(state) +
		e.weights.Mobility*e.heuristics.Mobility(state) +
		e.weights.Corners*e.heuristics.Corners(state) +
		e.weights.Stability*e.heuristics.Stability(state)
	return game.MoveInfo{Score: score}
}

func outcomeScore(state game.State) int {
	switch state.Winner() {
	case state.Player():
		return WinScore
	case game.Empty:
		return 0
	}
	return -WinScore
}
