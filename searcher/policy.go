package searcher

import (
	"deepsea/game"
	"deepsea/meta"
)

// Surface sends waiting players down once and everyone else straight up, always by the expected roll.
func Surface(state *game.State) (game.DiveDirection, int) {
	if state.ActivePlayer().Position.Kind == game.WaitingToDive {
		return game.Down, meta.FORECAST_DISTANCE
	}
	return game.Up, meta.FORECAST_DISTANCE
}
