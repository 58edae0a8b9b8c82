package main

import (
	"testing"

	"github.com/daystram/checkers/board"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig()
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		want := config{
			FEN:           board.DefaultStartingPositionFEN,
			Seed:          1,
			PerftParallel: true,
			PprofAddr:     "localhost:6060",
		}
		if cfg != want {
			t.Errorf("unexpected config: got=%+v want=%+v", cfg, want)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("CHECKERS_FEN", "8/8/8/8/3b4/4w3/8/8 b")
		t.Setenv("CHECKERS_SEED", "42")
		t.Setenv("CHECKERS_NO_COLOR", "true")
		t.Setenv("CHECKERS_PERFT_PARALLEL", "false")
		cfg, err := loadConfig()
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		want := config{
			FEN:       "8/8/8/8/3b4/4w3/8/8 b",
			Seed:      42,
			NoColor:   true,
			PprofAddr: "localhost:6060",
		}
		if cfg != want {
			t.Errorf("unexpected config: got=%+v want=%+v", cfg, want)
		}
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("CHECKERS_SEED", "not-a-number")
		if _, err := loadConfig(); err == nil {
			t.Error("error expected: got=nil")
		}
	})
}
