package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestAlphaBetaWithIterativeDeepening(t *testing.T) {
	t.Run("final answer matches a direct search at the maximum depth", func(t *testing.T) {
		state := game.NewGameState()
		for _, pos := range []game.Position{{Row: 2, Col: 3}, {Row: 2, Col: 2}, {Row: 3, Col: 2}} {
			_, ok := state.MakeMove(pos)
			require.True(t, ok)
		}

		deepened := New().AlphaBetaWithIterativeDeepening(state, 3)
		direct := New().AlphaBeta(state, 3)

		require.Equal(t, direct.Score, deepened.Score)
		require.Equal(t, direct.Move, deepened.Move)
		require.True(t, deepened.HasMove)
	})

	t.Run("terminal root returns the evaluation with no move", func(t *testing.T) {
		root := &stubState{node: leaf(7)}
		s := newStubSearcher()

		got := s.AlphaBetaWithIterativeDeepening(root, 4)

		require.False(t, got.HasMove)
		require.Equal(t, 7, got.Score)
	})

	t.Run("non-positive depth evaluates without searching", func(t *testing.T) {
		root := &stubState{node: branch(leaf(-1), leaf(-2))}
		root.node.score = 9
		s := newStubSearcher(WithMetrics())

		got := s.AlphaBetaWithIterativeDeepening(root, 0)

		require.False(t, got.HasMove)
		require.Equal(t, 9, got.Score)
		require.Equal(t, int64(0), s.SearchMetric().Nodes)
	})
}

func TestFindBestMove(t *testing.T) {
	t.Run("opening move is one of the four legal replies", func(t *testing.T) {
		state := game.NewGameState()
		s := New(WithMaxDepth(3))

		got := s.FindBestMove(state)

		require.True(t, got.HasMove)
		_, ok := state.MakeMove(got.Move)
		require.True(t, ok, "Chosen move must be applicable")
	})

	t.Run("configured depth matches an explicit deepening run", func(t *testing.T) {
		state := game.NewGameState()

		configured := New(WithMaxDepth(2)).FindBestMove(state)
		explicit := New().AlphaBetaWithIterativeDeepening(state, 2)

		require.Equal(t, explicit, configured)
	})
}
