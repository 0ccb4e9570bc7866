package searcher

import (
	"fmt"

	"deepsea/game"
	"deepsea/utils"
)

// Forecast plays a copy of state to the end under the Surface policy and returns each seat's chance of winning.
// Chances sum to 1: tied leaders split the win. The given state is never modified.
func Forecast(state *game.State) []float64 {
	return forecast(state, Surface)
}

// MostLikelyToWin reports whether player is tied for the best forecast chance.
func MostLikelyToWin(state *game.State, player int) bool {
	chances := Forecast(state)
	return chances[player] == utils.Max(chances)
}

func forecast(state *game.State, policy Policy) []float64 {
	sim := state.Clone()

	// Every step either spends oxygen or skips a returned player
	limit := (sim.Oxygen + 1) * len(sim.Players)
	for steps := 0; !sim.IsFinished(); steps++ {
		if steps > limit {
			panic(fmt.Sprintf("forecast did not finish within %d steps: %s", limit, sim))
		}
		playout(sim, policy)
	}

	return winChances(sim)
}

// playout advances sim by one turn without any treasure decisions.
func playout(sim *game.State, policy Policy) {
	if !sim.ActivePlayer().IsReturned() {
		sim.ConsumeOxygen()
		direction, distance := policy(sim)
		if err := sim.MovePlayer(direction, distance); err != nil {
			panic(fmt.Sprintf("forecast move failed: %v", err))
		}
	}
	sim.AdvanceTurn()
}

// winChances scores a finished game at expected treasure values; divers still out score nothing.
func winChances(sim *game.State) []float64 {
	scores := make([]float64, len(sim.Players))
	for i, p := range sim.Players {
		if p.IsReturned() {
			scores[i] = game.ExpectedScore(p)
		}
	}
	return utils.SplitWinners(scores)
}
