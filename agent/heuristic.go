package agent

import "deepsea/game"

// Heuristic grabs the first treasure above the lowest tier and heads home.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) ChooseDirection(state *game.State, player int) game.DiveDirection {
	return grabOneDirection(state.Players[player])
}

func (h *Heuristic) DecideTreasure(state *game.State, player int) game.TreasureDecision {
	if wantsFirstTreasure(state, player) {
		return game.Take
	}
	return game.Ignore
}

// grabOneDirection dives until holding something, then turns back.
func grabOneDirection(p game.Player) game.DiveDirection {
	if p.Position.Kind == game.WaitingToDive {
		return game.Down
	}
	if p.HasTreasure() {
		return game.Up
	}
	return game.Down
}

// wantsFirstTreasure is true for an empty-handed player standing on anything better than the lowest tier.
func wantsFirstTreasure(state *game.State, player int) bool {
	p := state.Players[player]
	index, ok := p.Position.AsDiving()
	if !ok || p.HasTreasure() {
		return false
	}
	return state.Path[index].Treasure > game.One
}
