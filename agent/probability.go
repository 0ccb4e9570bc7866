package agent

import (
	"deepsea/game"
	"deepsea/searcher"
)

// ProbabilityAware plays like Heuristic, but also takes any treasure while the forecast says it is behind.
type ProbabilityAware struct {
	Heuristic
}

func NewProbabilityAware() *ProbabilityAware {
	return &ProbabilityAware{}
}

func (pa *ProbabilityAware) DecideTreasure(state *game.State, player int) game.TreasureDecision {
	if wantsFirstTreasure(state, player) {
		return game.Take
	}

	index, ok := state.Players[player].Position.AsDiving()
	if !ok || state.Path[index].IsEmpty() {
		return game.Ignore
	}
	if !searcher.MostLikelyToWin(state, player) {
		return game.Take
	}
	return game.Ignore
}
