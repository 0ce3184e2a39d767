package searcher

import "othello/game"

// stubNode is one position in a hand-built game tree. Leaves carry a static
// score from their own side-to-move's perspective.
type stubNode struct {
	score    int
	moves    []game.LegalMove
	children map[game.Position]*stubNode
	failing  map[game.Position]bool
	over     bool
	winner   game.Disc
	player   game.Disc
}

// stubState walks a stubNode tree through the game.State interface. Clone
// copies the cursor, so branches advance independently.
type stubState struct {
	node *stubNode
}

func (s *stubState) Player() game.Disc             { return s.node.player }
func (s *stubState) LegalMoves() []game.LegalMove  { return s.node.moves }
func (s *stubState) Clone() game.State             { return &stubState{node: s.node} }
func (s *stubState) GameOver() bool                { return s.node.over }
func (s *stubState) Winner() game.Disc             { return s.node.winner }
func (s *stubState) DiscCount(game.Disc) int       { return 0 }
func (s *stubState) Board() game.Board             { return game.Board{} }

func (s *stubState) MakeMove(pos game.Position) (game.MoveInfo, bool) {
	if s.node.failing[pos] {
		return game.MoveInfo{}, false
	}
	child, ok := s.node.children[pos]
	if !ok {
		return game.MoveInfo{}, false
	}
	s.node = child
	return game.MoveInfo{Move: pos, HasMove: true}, true
}

// leaf builds a childless node with a fixed evaluation.
func leaf(score int) *stubNode {
	return &stubNode{score: score}
}

// branch builds a node whose i-th move (row 0, col i) leads to children[i].
// Move order is the enumeration and tie-break order.
func branch(children ...*stubNode) *stubNode {
	node := &stubNode{
		children: make(map[game.Position]*stubNode, len(children)),
		failing:  map[game.Position]bool{},
	}
	for i, child := range children {
		pos := game.Position{Row: 0, Col: i}
		node.moves = append(node.moves, game.LegalMove{Pos: pos})
		node.children[pos] = child
	}
	return node
}

// fail marks the i-th move as failing at application time.
func (n *stubNode) fail(i int) *stubNode {
	n.failing[n.moves[i].Pos] = true
	return n
}

// stubEvaluator returns each node's static score, ignoring weights.
type stubEvaluator struct{}

func (stubEvaluator) Evaluate(state game.State) game.MoveInfo {
	return game.MoveInfo{Score: state.(*stubState).node.score}
}

// stubHeuristics returns four fixed signals regardless of the position.
type stubHeuristics struct {
	coinParity, mobility, corners, stability int
}

func (h stubHeuristics) CoinParity(game.State) int { return h.coinParity }
func (h stubHeuristics) Mobility(game.State) int   { return h.mobility }
func (h stubHeuristics) Corners(game.State) int    { return h.corners }
func (h stubHeuristics) Stability(game.State) int  { return h.stability }
