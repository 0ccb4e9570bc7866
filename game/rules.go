package game

// Dice produces the distance of one move.
type Dice interface {
	Roll() int
}
