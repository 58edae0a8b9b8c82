package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/checkers/play"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	verbose = flag.Bool("verbose", false, "log game events")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepPlies = flag.Int("step.plies", 400, "maximum plies in step mode")

	perftDepth = flag.Int("perft", 0, "run perft to the given depth")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	if *profile {
		runProfiler(cfg.PprofAddr)
	}

	err = realMain(cfg, flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler(addr string) {
	go func() {
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(cfg config, args []string) error {
	fen := cfg.FEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen)
	}
	if *stepRun {
		return step(fen, cfg.Seed, *stepPlies)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen, cfg.PerftParallel)
	}

	opts := []play.Option{
		play.WithFEN(fen),
		play.WithColor(!color.NoColor),
	}
	if *verbose {
		opts = append(opts, play.WithLogger(log.Println))
	}
	i, err := play.NewInterface(os.Stdin, os.Stdout, opts...)
	if err != nil {
		return err
	}
	return i.Run(context.Background())
}
