package searcher

import "othello/game"

// AlphaBeta searches to the given depth with alpha-beta pruning, seeding the
// window at (-Infinity, +Infinity) for the player to move. Pruning never
// changes the returned score relative to Minimax at the same depth; only the
// chosen move may differ among equally scored moves.
func (s *Searcher) AlphaBeta(state game.State, depth int) game.MoveInfo {
	return s.alphaBeta(state, depth, -Infinity, Infinity)
}

// AlphaBetaWithIterativeDeepening restarts AlphaBeta at every depth from 1 to
// maxDepth, keeping the last completed result. A depth that yields no move
// means the search is exhausted; the loop stops early and the previous
// depth's answer stands. Restart-from-scratch trades recomputation for an
// anytime result: every completed depth is a usable answer.
func (s *Searcher) AlphaBetaWithIterativeDeepening(state game.State, maxDepth int) game.MoveInfo {
	if maxDepth <= 0 {
		return s.evaluator.Evaluate(state)
	}

	var best game.MoveInfo
	for depth := 1; depth <= maxDepth; depth++ {
		result := s.AlphaBeta(state, depth)
		if depth == 1 {
			best = result
		}
		if !result.HasMove {
			break
		}
		best = result
	}
	return best
}

// alphaBeta is negamax with a pruning window: alpha is the score the side to
// move can already guarantee, beta the bound its opponent will allow. The
// window is negated and swapped across each ply, matching the score negation.
func (s *Searcher) alphaBeta(state game.State, depth, alpha, beta int) game.MoveInfo {
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		s.metrics.AddLeaf()
		return s.evaluator.Evaluate(state)
	}

	var best, last game.MoveInfo
	bestScore := -Infinity

	for _, move := range moves {
		child, info, ok := expand(state, move)
		if !ok {
			continue
		}

		result := s.alphaBeta(child, depth-1, -beta, -alpha)
		info.Score = -result.Score
		last = info

		if info.Score > bestScore {
			bestScore = info.Score
			best = info
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta { // Remaining siblings cannot improve on the window
			s.metrics.AddCutoff()
			break
		}
	}

	return s.settle(state, best, last)
}
