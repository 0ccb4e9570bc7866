package game

import "errors"

var (
	// ErrInvalidState is returned when an operation does not apply to the active player's position.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidMove is returned for malformed movement requests.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidConfig is returned when a game cannot be constructed from the given setup.
	ErrInvalidConfig = errors.New("invalid config")
)
