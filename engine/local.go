package engine

import (
	"fmt"
	"time"

	"deepsea/agent"
	"deepsea/experiments/metrics"
	"deepsea/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type LocalEngine struct {
	State   *game.State
	Agents  []agent.Agent // One per seat
	dice    game.Dice
	values  game.NewValueAssigner
	metrics metrics.Collector
	turn    int
}

type Option func(e *LocalEngine)

func WithDice(dice game.Dice) Option {
	return func(e *LocalEngine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithValueAssigner(values game.NewValueAssigner) Option {
	return func(e *LocalEngine) {
		if values != nil {
			e.values = values
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithOxygen sets the initial oxygen supply of the game.
func WithOxygen(oxygen int) Option {
	return func(e *LocalEngine) {
		game.WithOxygen(oxygen)(e.State)
	}
}

// NewLocalEngine seats one player per agent on the given path.
func NewLocalEngine(path []game.Tile, agents []agent.Agent, options ...Option) (*LocalEngine, error) {
	state, err := game.NewState(path, len(agents))
	if err != nil {
		return nil, err
	}

	e := &LocalEngine{ // Default values
		State:   state,
		Agents:  agents,
		dice:    game.NewStandardDice(rand.New(rand.NewSource(uint64(time.Now().UnixNano())))),
		values:  game.NewDecayingValues,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop until the oxygen runs out or everyone is back.
func (e *LocalEngine) Run() ([]int, metrics.GameMetric, error) {
	e.metrics.Start()
	log.Trace().Msgf("game started: %s", e.State)

	for !e.State.IsFinished() {
		e.turn++
		if err := e.takeTurn(); err != nil {
			return nil, metrics.GameMetric{}, fmt.Errorf("turn %d: %w", e.turn, err)
		}
		log.Trace().Msgf("turn %d: %s", e.turn, e.State)
	}

	scores := e.score()
	gameMetric := e.metrics.Complete(e.State, scores)
	log.Trace().Msgf("game over after %d turns with scores %v", e.turn, scores)
	return scores, gameMetric, nil
}

func (e *LocalEngine) takeTurn() error {
	seat := e.State.Turn
	player := e.State.ActivePlayer()
	if player.IsReturned() {
		e.metrics.AddSkip()
		e.State.AdvanceTurn()
		return nil
	}

	e.State.ConsumeOxygen()

	// A player who turned back can never dive again
	direction := game.Up
	if player.Direction == game.Down {
		direction = e.Agents[seat].ChooseDirection(e.State, seat)
	}

	roll := e.dice.Roll()
	if err := e.State.MovePlayer(direction, roll); err != nil {
		return err
	}

	if _, ok := e.State.ActivePlayer().Position.AsDiving(); ok {
		decision := e.Agents[seat].DecideTreasure(e.State, seat)
		if err := e.State.ResolveTreasure(decision); err != nil {
			return err
		}
		if decision == game.Take {
			e.metrics.AddPickup()
		}
	}

	e.metrics.AddTurn()
	e.State.AdvanceTurn()
	return nil
}

// score values the holdings of every returned player in seat order; divers still out lose everything.
func (e *LocalEngine) score() []int {
	assigner := e.values()
	scores := make([]int, len(e.State.Players))
	for i, p := range e.State.Players {
		if !p.IsReturned() {
			continue
		}
		for _, t := range p.Held {
			scores[i] += assigner.AssignValue(t)
		}
	}
	return scores
}
