package game

// BoardHeuristics is the standard set of Othello signals. Each returns a
// value in [-100, 100] from the side-to-move's perspective.
type BoardHeuristics struct{}

// CoinParity compares raw disc counts.
func (BoardHeuristics) CoinParity(s State) int {
	own := s.DiscCount(s.Player())
	opp := s.DiscCount(s.Player().Opponent())
	return ratio(own, opp)
}

// Mobility compares the number of legal moves available to each side.
func (BoardHeuristics) Mobility(s State) int {
	board := s.Board()
	own := len(movesFor(board, s.Player()))
	opp := len(movesFor(board, s.Player().Opponent()))
	return ratio(own, opp)
}

// Corners compares captured corners. Corners can never be flipped, so they
// anchor stable territory.
func (BoardHeuristics) Corners(s State) int {
	board := s.Board()
	player := s.Player()
	corners := [4]Position{
		{0, 0}, {0, BoardSize - 1},
		{BoardSize - 1, 0}, {BoardSize - 1, BoardSize - 1},
	}

	own, opp := 0, 0
	for _, c := range corners {
		switch board[c.Row][c.Col] {
		case player:
			own++
		case player.Opponent():
			opp++
		}
	}
	return ratio(own, opp)
}

// Stability compares discs that can never be flipped again, found by growing
// a closure outward from the corners.
func (BoardHeuristics) Stability(s State) int {
	board := s.Board()
	player := s.Player()
	own := len(stableDiscs(board, player))
	opp := len(stableDiscs(board, player.Opponent()))
	return ratio(own, opp)
}

// ratio maps two tallies to a signed percentage: 100*(own-opp)/(own+opp),
// or 0 when both are zero.
func ratio(own, opp int) int {
	if own+opp == 0 {
		return 0
	}
	return 100 * (own - opp) / (own + opp)
}

// axes pairs the four line directions with their opposites.
var axes = [4][2][2]int{
	{{0, -1}, {0, 1}},
	{{-1, 0}, {1, 0}},
	{{-1, -1}, {1, 1}},
	{{-1, 1}, {1, -1}},
}

// stableDiscs returns player's discs that cannot be flipped by any future
// move. Corners seed the set; a disc joins it when, along every axis, at
// least one side is off the board or already stable. The closure grows until
// a full pass adds nothing.
func stableDiscs(b Board, player Disc) []Position {
	stable := [BoardSize][BoardSize]bool{}

	supported := func(pos Position) bool {
		for _, axis := range axes {
			ok := false
			for _, dir := range axis {
				p := Position{pos.Row + dir[0], pos.Col + dir[1]}
				if !p.onBoard() || (stable[p.Row][p.Col] && b[p.Row][p.Col] == player) {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
		return true
	}

	changed := true
	for changed {
		changed = false
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				pos := Position{row, col}
				if b[row][col] != player || stable[row][col] {
					continue
				}
				if supported(pos) {
					stable[row][col] = true
					changed = true
				}
			}
		}
	}

	var discs []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if stable[row][col] {
				discs = append(discs, Position{row, col})
			}
		}
	}
	return discs
}
