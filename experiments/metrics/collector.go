package metrics

import (
	"time"

	"deepsea/game"
)

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Turns      int   // Turns that spent oxygen
	Skipped    int   // Turns skipped for players already back in the submarine
	Pickups    int   // Treasures taken
	OxygenLeft int   // Oxygen at the end of the game
	Returned   int   // Players back in the submarine at the end of the game
	Scores     []int // Final score per seat
}

type Collector interface {
	Start()
	AddTurn()
	AddSkip()
	AddPickup()
	Complete(state *game.State, scores []int) GameMetric
}

// collector records one game; games run on a single goroutine so no synchronization is needed.
type collector struct {
	startTime time.Time
	turns     int
	skipped   int
	pickups   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.turns = 0
	m.skipped = 0
	m.pickups = 0
}

func (m *collector) AddTurn() {
	m.turns++
}

func (m *collector) AddSkip() {
	m.skipped++
}

func (m *collector) AddPickup() {
	m.pickups++
}

func (m *collector) Complete(state *game.State, scores []int) GameMetric {
	end := time.Now()
	returned := 0
	for _, p := range state.Players {
		if p.IsReturned() {
			returned++
		}
	}
	return GameMetric{
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
		Turns:      m.turns,
		Skipped:    m.skipped,
		Pickups:    m.pickups,
		OxygenLeft: state.Oxygen,
		Returned:   returned,
		Scores:     append([]int(nil), scores...),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()     {}
func (m *dummyCollector) AddTurn()   {}
func (m *dummyCollector) AddSkip()   {}
func (m *dummyCollector) AddPickup() {}
func (m *dummyCollector) Complete(state *game.State, scores []int) GameMetric {
	return GameMetric{Scores: append([]int(nil), scores...)}
}
