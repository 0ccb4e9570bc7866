package experiments

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"deepsea/agent"
	"deepsea/engine"
	"deepsea/experiments/metrics"
	"deepsea/game"
	"deepsea/meta"
	"deepsea/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Result holds each strategy's share of wins, in declaration order.
type Result struct {
	Kinds    []agent.Kind
	WinRates []float64
	Trials   int
	Seed     uint64
	Records  []metrics.TrialRecord // Only filled WithRecords
}

type Option func(h *harness)

type harness struct {
	trials  int
	workers int
	seats   int
	oxygen  int
	seed    uint64
	seeded  bool
	records bool
}

func WithTrials(trials int) Option {
	return func(h *harness) {
		h.trials = trials
	}
}

func WithWorkers(workers int) Option {
	return func(h *harness) {
		h.workers = workers
	}
}

// WithSeats fixes the expected number of seats; it must match the number of strategies.
func WithSeats(seats int) Option {
	return func(h *harness) {
		h.seats = seats
	}
}

func WithOxygen(oxygen int) Option {
	return func(h *harness) {
		h.oxygen = oxygen
	}
}

// WithSeed makes the evaluation reproducible. Without it a fresh seed is drawn.
func WithSeed(seed uint64) Option {
	return func(h *harness) {
		h.seed = seed
		h.seeded = true
	}
}

// WithRecords keeps one record per trial in the result.
func WithRecords() Option {
	return func(h *harness) {
		h.records = true
	}
}

type trial struct {
	credits []float64
	record  metrics.TrialRecord
}

// Evaluate plays independent games of the given strategies on the default board, shuffling seats every trial,
// and returns each strategy's average win credit. Tied winners split the credit of a game.
func Evaluate(kinds []agent.Kind, options ...Option) (Result, error) {
	h := &harness{ // Default values
		trials:  meta.DEFAULT_TRIALS,
		workers: runtime.NumCPU(),
		oxygen:  meta.DEFAULT_OXYGEN,
	}
	for _, option := range options {
		option(h)
	}
	if err := h.validate(kinds); err != nil {
		return Result{}, err
	}
	if !h.seeded {
		seed, err := utils.NewSeed()
		if err != nil {
			return Result{}, err
		}
		h.seed = seed
	}

	log.Info().Msgf("evaluating %v over %d trials with %d workers (seed %d)...", kinds, h.trials, h.workers, h.seed)

	trials, err := h.runTrials(kinds)
	if err != nil {
		return Result{}, err
	}

	// Sum in trial order so the result does not depend on scheduling
	totals := make([]float64, len(kinds))
	var records []metrics.TrialRecord
	for _, t := range trials {
		for i, credit := range t.credits {
			totals[i] += credit
		}
		if h.records {
			records = append(records, t.record)
		}
	}
	winRates := make([]float64, len(kinds))
	for i, total := range totals {
		winRates[i] = total / float64(h.trials)
	}

	log.Info().Msgf("completed evaluation: win rates %v", winRates)

	return Result{
		Kinds:    append([]agent.Kind(nil), kinds...),
		WinRates: winRates,
		Trials:   h.trials,
		Seed:     h.seed,
		Records:  records,
	}, nil
}

func (h *harness) validate(kinds []agent.Kind) error {
	if len(kinds) == 0 {
		return fmt.Errorf("cannot evaluate: no strategies: %w", game.ErrInvalidConfig)
	}
	for _, kind := range kinds {
		if !kind.Valid() {
			return fmt.Errorf("cannot evaluate: unknown agent kind %q: %w", kind, game.ErrInvalidConfig)
		}
	}
	if h.seats != 0 && h.seats != len(kinds) {
		return fmt.Errorf("cannot evaluate: %d strategies for %d seats: %w", len(kinds), h.seats, game.ErrInvalidConfig)
	}
	if h.trials <= 0 {
		return fmt.Errorf("cannot evaluate: %d trials: %w", h.trials, game.ErrInvalidConfig)
	}
	if h.workers <= 0 {
		return fmt.Errorf("cannot evaluate: %d workers: %w", h.workers, game.ErrInvalidConfig)
	}
	if h.oxygen <= 0 {
		return fmt.Errorf("cannot evaluate: %d oxygen: %w", h.oxygen, game.ErrInvalidConfig)
	}
	return nil
}

// runTrials fans the trials out over the workers. The first failure stops the remaining trials.
func (h *harness) runTrials(kinds []agent.Kind) ([]trial, error) {
	task := make(chan int, h.trials)
	for i := 0; i < h.trials; i++ {
		task <- i
	}
	close(task)

	trials := make([]trial, h.trials)
	errs := make([]error, h.trials)
	var failed atomic.Bool

	var wg sync.WaitGroup
	for w := 0; w < min(h.workers, h.trials); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if failed.Load() {
					continue
				}
				trials[i], errs[i] = h.runTrial(kinds, i)
				if errs[i] != nil {
					failed.Store(true)
				}
			}
		}()
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
	}
	return trials, nil
}

// runTrial plays one game. Seat s is played by kinds[perm[s]].
func (h *harness) runTrial(kinds []agent.Kind, id int) (trial, error) {
	rng := rand.New(rand.NewSource(trialSeed(h.seed, id)))
	perm := rng.Perm(len(kinds))

	agents := make([]agent.Agent, len(kinds))
	seats := make([]string, len(kinds))
	for seat, k := range perm {
		a, err := agent.New(kinds[k], rng)
		if err != nil {
			return trial{}, err
		}
		agents[seat] = a
		seats[seat] = string(kinds[k])
	}

	e, err := engine.NewLocalEngine(
		game.CreateDefaultPath(),
		agents,
		engine.WithOxygen(h.oxygen),
		engine.WithDice(game.NewStandardDice(rng)),
		engine.WithCollector(metrics.NewCollector()),
	)
	if err != nil {
		return trial{}, err
	}

	scores, gameMetric, err := e.Run()
	if err != nil {
		return trial{}, err
	}

	credits := make([]float64, len(kinds))
	for seat, share := range utils.SplitWinners(scores) {
		credits[perm[seat]] += share
	}

	log.Trace().Msgf("completed trial %d: seats %v scores %v", id, seats, scores)

	return trial{
		credits: credits,
		record: metrics.TrialRecord{
			ID:         id,
			Seats:      seats,
			Credits:    credits,
			GameMetric: gameMetric,
		},
	}, nil
}

// trialSeed derives an independent stream per trial from the evaluation seed.
func trialSeed(seed uint64, id int) uint64 {
	return seed + uint64(id+1)*0x9E3779B97F4A7C15
}
