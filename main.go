package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"deepsea/agent"
	"deepsea/config"
	"deepsea/engine"
	"deepsea/experiments"
	"deepsea/game"
	"deepsea/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("deepsea failed")
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file")
	trials := flag.Int("trials", 0, "Number of evaluation trials")
	seed := flag.Uint64("seed", 0, "Seed for reproducible runs")
	workers := flag.Int("workers", 0, "Number of goroutines running trials")
	out := flag.String("out", "", "Directory for win rates and trial records")
	strategies := flag.String("strategies", "", "Comma-separated strategies, e.g. heuristic,probability")
	play := flag.Bool("play", false, "Play a single game and log every turn")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Flags override the file and the environment
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *strategies != "" {
		cfg.Strategies = strings.Split(*strategies, ",")
	}
	if *play {
		cfg.LogLevel = zerolog.LevelTraceValue
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	kinds, _ := cfg.Kinds()
	if *play {
		return playGame(cfg, kinds)
	}

	options := []experiments.Option{
		experiments.WithTrials(cfg.Trials),
		experiments.WithWorkers(cfg.Workers),
		experiments.WithOxygen(cfg.Oxygen),
	}
	if cfg.Seed != 0 {
		options = append(options, experiments.WithSeed(cfg.Seed))
	}

	result, err := experiments.RunEvaluation(cfg.Name, cfg.OutputDir, kinds, options...)
	if err != nil {
		return err
	}

	fmt.Printf("Result over %d trials (seed %d):\n", result.Trials, result.Seed)
	for i, kind := range result.Kinds {
		fmt.Printf("  %-12s %.4f\n", kind, result.WinRates[i])
	}
	return nil
}

// playGame runs one game with the strategies seated in declaration order.
func playGame(cfg config.Config, kinds []agent.Kind) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = utils.NewSeed(); err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(seed))

	agents := make([]agent.Agent, len(kinds))
	for i, kind := range kinds {
		a, err := agent.New(kind, rng)
		if err != nil {
			return err
		}
		agents[i] = a
	}

	e, err := engine.NewLocalEngine(
		game.CreateDefaultPath(),
		agents,
		engine.WithOxygen(cfg.Oxygen),
		engine.WithDice(game.NewStandardDice(rng)),
	)
	if err != nil {
		return err
	}

	scores, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Game over (seed %d):\n", seed)
	for seat, score := range scores {
		fmt.Printf("  %d %-12s %d\n", seat, kinds[seat], score)
	}
	return nil
}
