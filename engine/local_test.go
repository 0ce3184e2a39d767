package engine

import (
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func TestLocalRun(t *testing.T) {
	t.Run("random players finish a full game", func(t *testing.T) {
		e := NewLocal(NewRandomPlayer(1), NewRandomPlayer(2))

		winner, records := e.Run()

		require.True(t, e.State.GameOver())
		require.NotEmpty(t, records)
		require.LessOrEqual(t, len(records), MaxMoves)

		black := e.State.DiscCount(game.Black)
		white := e.State.DiscCount(game.White)
		switch {
		case black > white:
			require.Equal(t, game.Black, winner)
		case white > black:
			require.Equal(t, game.White, winner)
		default:
			require.Equal(t, game.Empty, winner)
		}
	})

	t.Run("move records track step order and the side to move", func(t *testing.T) {
		e := NewLocal(NewRandomPlayer(7), NewRandomPlayer(8))

		_, records := e.Run()

		require.Equal(t, game.Black.String(), records[0].Player, "Black moves first")
		for i, record := range records {
			require.Equal(t, i+1, record.Step)
			require.NotEmpty(t, record.Move)
		}
	})

	t.Run("search player reports its search work per move", func(t *testing.T) {
		s := searcher.New(searcher.WithMaxDepth(2), searcher.WithMetrics())
		e := NewLocal(NewSearchPlayer(s), NewRandomPlayer(3))

		_, records := e.Run()

		require.NotEmpty(t, records)
		for _, record := range records {
			if record.Player == game.Black.String() {
				require.Greater(t, record.Nodes, int64(0),
					"Search moves must report explored nodes")
			} else {
				require.Zero(t, record.Nodes, "Random moves do no search")
			}
		}
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("picks an applicable move in a live position", func(t *testing.T) {
		state := game.NewGameState()
		p := NewRandomPlayer(42)

		info, metric, ok := p.FindMove(state.Clone())

		require.True(t, ok)
		require.True(t, info.HasMove)
		require.Equal(t, searcher.SearchMetric{}, metric)
		_, applied := state.MakeMove(info.Move)
		require.True(t, applied)
	})

	t.Run("reports no move on a terminal position", func(t *testing.T) {
		e := NewLocal(NewRandomPlayer(1), NewRandomPlayer(2))
		e.Run()
		require.True(t, e.State.GameOver())

		_, _, ok := NewRandomPlayer(5).FindMove(e.State.Clone())

		require.False(t, ok)
	})
}

func TestSearchPlayer(t *testing.T) {
	t.Run("resets metrics between moves", func(t *testing.T) {
		s := searcher.New(searcher.WithMaxDepth(2), searcher.WithMetrics())
		p := NewSearchPlayer(s)
		state := game.NewGameState()

		_, first, ok := p.FindMove(state.Clone())
		require.True(t, ok)
		_, second, ok := p.FindMove(state.Clone())
		require.True(t, ok)

		require.Equal(t, first.Nodes, second.Nodes,
			"Identical positions cost identical work after a reset")
	})
}
