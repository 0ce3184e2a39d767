package searcher

import "othello/game"

// Minimax searches to the given depth without pruning. Scores follow the
// negamax convention: a node's score is always from the perspective of its
// side to move, so each child's score is negated on the way up and every
// node keeps the maximum. +X at a node always means "+X for the player whose
// turn it is there".
func (s *Searcher) Minimax(state game.State, depth int) game.MoveInfo {
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

		result := s.Minimax(child, depth-1)
		info.Score = -result.Score
		last = info

		// Strictly greater: ties keep the first move found
		if info.Score > bestScore {
			bestScore = info.Score
			best = info
		}
	}

	return s.settle(state, best, last)
}

// settle picks the node's result when iteration is done. If no move improved
// on the running best, the last successfully applied move stands in; if no
// move applied at all, the node degenerates to a static evaluation.
func (s *Searcher) settle(state game.State, best, last game.MoveInfo) game.MoveInfo {
	if best.HasMove {
		return best
	}
	if last.HasMove {
		return last
	}
	return s.evaluator.Evaluate(state)
}
