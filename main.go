package main

import (
	"os"
	"time"

	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	runPruningExperiment(cfg)
	runGameExperiment(cfg)
}

// runPruningExperiment compares the work done by plain minimax and alpha-beta
// at increasing depths from the starting position. Both must agree on the
// root score; alpha-beta should visit far fewer nodes.
func runPruningExperiment(cfg config.Config) {
	state := game.NewGameState()

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		plain := searcher.New(searcher.WithWeights(cfg.SearchWeights()), searcher.WithMetrics())
		minimax := plain.Minimax(state, depth)
		minimaxWork := plain.SearchMetric()

		pruned := searcher.New(searcher.WithWeights(cfg.SearchWeights()), searcher.WithMetrics())
		alphabeta := pruned.AlphaBeta(state, depth)
		alphabetaWork := pruned.SearchMetric()

		log.Info().
			Int("depth", depth).
			Int("score", alphabeta.Score).
			Int64("minimax_nodes", minimaxWork.Nodes).
			Int64("alphabeta_nodes", alphabetaWork.Nodes).
			Int64("cutoffs", alphabetaWork.Cutoffs).
			Msg("pruning comparison")

		if minimax.Score != alphabeta.Score {
			log.Error().Msgf("score mismatch at depth %d: minimax %d, alphabeta %d",
				depth, minimax.Score, alphabeta.Score)
		}
	}
}

// runGameExperiment plays search vs random games and records per-move search
// metrics to CSV.
func runGameExperiment(cfg config.Config) {
	const numGames = 4

	writer, err := metrics.NewWriter("pruning")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < numGames; i++ {
		s := searcher.New(
			searcher.WithMaxDepth(cfg.MaxDepth),
			searcher.WithWeights(cfg.SearchWeights()),
			searcher.WithMetrics(),
		)
		e := engine.NewLocal(
			engine.NewSearchPlayer(s),
			engine.NewRandomPlayer(uint64(i)+1),
		)

		start := time.Now()
		winner, moves := e.Run()
		end := time.Now()

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			Black:      "search",
			White:      "random",
			Winner:     winner.String(),
			TotalMoves: len(moves),
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
		})
		for _, move := range moves {
			move.Game = i
			moveRecords = append(moveRecords, move)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
}
