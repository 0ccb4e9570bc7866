// Package searcher forecasts how a game ends if every diver stops collecting and heads home.
package searcher

import "deepsea/game"

// Policy decides where the active player moves during a forecast playout.
type Policy func(state *game.State) (direction game.DiveDirection, distance int)
