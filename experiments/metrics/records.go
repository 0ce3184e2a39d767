package metrics

import "time"

// MoveRecord captures one move of a game: who played what, the backed-up
// score, and how much search work it took.
type MoveRecord struct {
	Game     int
	Step     int
	Player   string
	Move     string
	Score    int
	Nodes    int64
	Leaves   int64
	Cutoffs  int64
	Duration time.Duration
}

type GameRecord struct {
	ID         int
	Black      string // Player descriptions
	White      string
	Winner     string
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}
