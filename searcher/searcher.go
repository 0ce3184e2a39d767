package searcher

import "othello/game"

type Option func(*Searcher)

// Searcher finds the best move for the player to move by depth-limited
// adversarial search. The evaluator and its weights are fixed at
// construction, so independently configured searchers can run side by side.
type Searcher struct {
	maxDepth  int
	evaluator Evaluator
	metrics   Collector
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithEvaluator(evaluator Evaluator) Option {
	return func(s *Searcher) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

func WithWeights(weights Weights) Option {
	return func(s *Searcher) {
		s.evaluator = NewWeightedEvaluator(weights, game.BoardHeuristics{})
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:  DefaultMaxDepth,
		evaluator: NewWeightedEvaluator(DefaultWeights, game.BoardHeuristics{}),
		metrics:   NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

const DefaultMaxDepth = 5

// FindBestMove runs iterative-deepening alpha-beta up to the configured
// maximum depth.
func (s *Searcher) FindBestMove(state game.State) game.MoveInfo {
	return s.AlphaBetaWithIterativeDeepening(state, s.maxDepth)
}

// SearchMetric returns the counters accumulated since the last reset. With
// metrics disabled it is always zero.
func (s *Searcher) SearchMetric() SearchMetric {
	return s.metrics.Complete()
}

func (s *Searcher) ResetMetrics() {
	s.metrics.Reset()
}

// expand clones state and applies move to the clone, leaving the original
// untouched. A false result means the move was rejected at application time;
// the caller skips it without affecting sibling moves.
func expand(state game.State, move game.LegalMove) (game.State, game.MoveInfo, bool) {
	child := state.Clone()
	info, ok := child.MakeMove(move.Pos)
	return child, info, ok
}
