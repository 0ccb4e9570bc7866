package agent

import (
	"deepsea/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal options.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// ChooseDirection always starts the dive; afterwards it flips a coin.
func (r *Random) ChooseDirection(state *game.State, player int) game.DiveDirection {
	if state.Players[player].Position.Kind == game.WaitingToDive || r.rng.Intn(2) == 0 {
		return game.Down
	}
	return game.Up
}

func (r *Random) DecideTreasure(state *game.State, player int) game.TreasureDecision {
	index, ok := state.Players[player].Position.AsDiving()
	if !ok || state.Path[index].IsEmpty() {
		return game.Ignore
	}
	if r.rng.Intn(2) == 0 {
		return game.Ignore
	}
	return game.Take
}
