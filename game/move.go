package game

import "fmt"

const BoardSize = 8

type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Position identifies a square on the board.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), p.Row+1)
}

func (p Position) onBoard() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// LegalMove is a playable position together with the opponent discs it would
// flip. Moves are enumerated in row-major scan order; that order is also the
// tie-break order when several moves score equally in search.
type LegalMove struct {
	Pos   Position
	Flips []Position
}

// MoveInfo is a search result: the move that was played and its backed-up
// score from the perspective of the player to move at the node that produced
// it. Evaluation-only results carry a score but no move (HasMove is false).
type MoveInfo struct {
	Move    Position
	HasMove bool
	Score   int
}

type Board [BoardSize][BoardSize]Disc

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flipsAt returns the opponent discs flipped by player placing at pos, or nil
// if the square is occupied or the placement flips nothing.
func flipsAt(b Board, player Disc, pos Position) []Position {
	if b[pos.Row][pos.Col] != Empty {
		return nil
	}
	opponent := player.Opponent()

	var flips []Position
	for _, dir := range directions {
		var line []Position
		p := Position{pos.Row + dir[0], pos.Col + dir[1]}
		for p.onBoard() && b[p.Row][p.Col] == opponent {
			line = append(line, p)
			p = Position{p.Row + dir[0], p.Col + dir[1]}
		}
		if len(line) > 0 && p.onBoard() && b[p.Row][p.Col] == player {
			flips = append(flips, line...)
		}
	}
	return flips
}

// movesFor enumerates every legal move for player in row-major order.
func movesFor(b Board, player Disc) []LegalMove {
	var moves []LegalMove
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{row, col}
			if flips := flipsAt(b, player, pos); len(flips) > 0 {
				moves = append(moves, LegalMove{Pos: pos, Flips: flips})
			}
		}
	}
	return moves
}
