package config

import (
	"fmt"
	"os"

	"othello/searcher"

	"gopkg.in/yaml.v3"
)

// Config holds the engine settings that vary between runs: the search depth
// budget and the evaluator's heuristic weights.
type Config struct {
	MaxDepth int     `yaml:"max_depth"`
	Weights  Weights `yaml:"weights"`
}

type Weights struct {
	CoinParity int `yaml:"coin_parity"`
	Mobility   int `yaml:"mobility"`
	Corners    int `yaml:"corners"`
	Stability  int `yaml:"stability"`
}

func Default() Config {
	return Config{
		MaxDepth: searcher.DefaultMaxDepth,
		Weights: Weights{
			CoinParity: searcher.DefaultWeights.CoinParity,
			Mobility:   searcher.DefaultWeights.Mobility,
			Corners:    searcher.DefaultWeights.Corners,
			Stability:  searcher.DefaultWeights.Stability,
		},
	}
}

// Load reads a YAML file and overlays it on the defaults, so a partial file
// only overrides the keys it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.MaxDepth <= 0 {
		return Config{}, fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// SearchWeights converts to the searcher's weight type.
func (c Config) SearchWeights() searcher.Weights {
	return searcher.Weights{
		CoinParity: c.Weights.CoinParity,
		Mobility:   c.Weights.Mobility,
		Corners:    c.Weights.Corners,
		Stability:  c.Weights.Stability,
	}
}
