package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/daystram/checkers/board"
)

type config struct {
	FEN           string `env:"CHECKERS_FEN"`
	Seed          uint64 `env:"CHECKERS_SEED" envDefault:"1"`
	NoColor       bool   `env:"CHECKERS_NO_COLOR"`
	PerftParallel bool   `env:"CHECKERS_PERFT_PARALLEL" envDefault:"true"`
	PprofAddr     string `env:"CHECKERS_PPROF_ADDR" envDefault:"localhost:6060"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FEN == "" {
		cfg.FEN = board.DefaultStartingPositionFEN
	}
	return cfg, nil
}
