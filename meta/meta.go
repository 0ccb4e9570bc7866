// meta/meta.go
package meta

// DEFAULT_OXYGEN defines the shared oxygen supply at the start of a game.
const DEFAULT_OXYGEN = 25

// TILES_PER_TIER defines how many tiles of each treasure tier the default board holds.
const TILES_PER_TIER = 8

// FORECAST_DISTANCE defines the fixed move distance used by the forecast (expected roll of two 3-sided dice).
const FORECAST_DISTANCE = 4

// DIE_FACES defines the number of faces on each movement die.
const DIE_FACES = 3

// DEFAULT_TRIALS defines the number of evaluation trials when none are configured.
const DEFAULT_TRIALS = 10_000
