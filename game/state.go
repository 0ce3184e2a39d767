package game

// GameState is the dynamic state of an Othello game: the board, whose turn it
// is, a running disc count per player, and the current player's legal moves.
// The legal-move cache is refreshed after every applied move.
type GameState struct {
	board      Board
	current    Disc
	discCounts map[Disc]int
	legal      []LegalMove
}

// NewGameState returns the standard starting position with Black to move.
func NewGameState() *GameState {
	gs := &GameState{current: Black}
	mid := BoardSize / 2
	gs.board[mid-1][mid-1] = White
	gs.board[mid][mid] = White
	gs.board[mid-1][mid] = Black
	gs.board[mid][mid-1] = Black
	gs.discCounts = map[Disc]int{Black: 2, White: 2}
	gs.legal = movesFor(gs.board, gs.current)
	return gs
}

func (gs *GameState) Player() Disc {
	return gs.current
}

// LegalMoves returns the current player's moves in row-major order. Callers
// must not mutate the returned slice.
func (gs *GameState) LegalMoves() []LegalMove {
	return gs.legal
}

// MakeMove applies a move in place: places the disc, flips the captured
// discs, and advances the turn. A player with no legal reply is passed over;
// when neither side can move the game is over. Returns false, without
// mutating the state, if pos is not a legal move.
func (gs *GameState) MakeMove(pos Position) (MoveInfo, bool) {
	var flips []Position
	for _, move := range gs.legal {
		if move.Pos == pos {
			flips = move.Flips
			break
		}
	}
	if flips == nil {
		return MoveInfo{}, false
	}

	mover := gs.current
	gs.board[pos.Row][pos.Col] = mover
	for _, f := range flips {
		gs.board[f.Row][f.Col] = mover
	}
	gs.discCounts[mover] += 1 + len(flips)
	gs.discCounts[mover.Opponent()] -= len(flips)

	gs.advanceTurn()

	return MoveInfo{Move: pos, HasMove: true}, true
}

// advanceTurn hands the turn to the opponent, passing back to the mover if
// the opponent has no reply. With no moves on either side the legal-move
// cache stays empty and the game is over.
func (gs *GameState) advanceTurn() {
	opponent := gs.current.Opponent()
	if moves := movesFor(gs.board, opponent); len(moves) > 0 {
		gs.current = opponent
		gs.legal = moves
		return
	}
	gs.legal = movesFor(gs.board, gs.current)
}

// Clone deep-copies the state: the board array, the disc-count map, and the
// legal-move cache share nothing with the source.
func (gs *GameState) Clone() State {
	counts := make(map[Disc]int, len(gs.discCounts))
	for disc, n := range gs.discCounts {
		counts[disc] = n
	}

	legal := make([]LegalMove, len(gs.legal))
	for i, move := range gs.legal {
		flips := make([]Position, len(move.Flips))
		copy(flips, move.Flips)
		legal[i] = LegalMove{Pos: move.Pos, Flips: flips}
	}

	return &GameState{
		board:      gs.board,
		current:    gs.current,
		discCounts: counts,
		legal:      legal,
	}
}

// GameOver reports whether neither player has a legal move.
func (gs *GameState) GameOver() bool {
	return len(gs.legal) == 0
}

// Winner returns the player with the disc majority, or Empty on a draw.
func (gs *GameState) Winner() Disc {
	switch {
	case gs.discCounts[Black] > gs.discCounts[White]:
		return Black
	case gs.discCounts[White] > gs.discCounts[Black]:
		return White
	}
	return Empty
}

func (gs *GameState) DiscCount(disc Disc) int {
	return gs.discCounts[disc]
}

func (gs *GameState) Board() Board {
	return gs.board
}
