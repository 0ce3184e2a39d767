package game

// State is one board position. Search code clones a State before mutating it,
// so branches never observe each other's changes.
type State interface {
	Player() Disc
	LegalMoves() []LegalMove
	MakeMove(Position) (MoveInfo, bool)
	Clone() State
	GameOver() bool
	Winner() Disc
	DiscCount(Disc) int
	Board() Board
}

// Heuristics computes the four positional signals of an Othello board, each a
// signed integer from the side-to-move's perspective. Implementations must be
// pure so alternative weighting schemes can reuse them.
type Heuristics interface {
	CoinParity(State) int
	Mobility(State) int
	Corners(State) int
	Stability(State) int
}
