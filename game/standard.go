package game

import (
	"deepsea/meta"

	"golang.org/x/exp/rand"
)

// StandardDice sums two independent uniform draws in [1, Faces], giving 2..6 with three-sided dice.
type StandardDice struct {
	Faces int
	rng   *rand.Rand
}

func NewStandardDice(rng *rand.Rand) *StandardDice {
	return &StandardDice{
		Faces: meta.DIE_FACES,
		rng:   rng,
	}
}

func (sd *StandardDice) Roll() int {
	return sd.rng.Intn(sd.Faces) + 1 + sd.rng.Intn(sd.Faces) + 1
}

// FixedDice replays a scripted sequence of rolls, repeating the last one once exhausted.
type FixedDice struct {
	Rolls []int
	next  int
}

func NewFixedDice(rolls ...int) *FixedDice {
	if len(rolls) == 0 {
		panic("fixed dice need at least one roll")
	}
	return &FixedDice{Rolls: rolls}
}

func (fd *FixedDice) Roll() int {
	roll := fd.Rolls[min(fd.next, len(fd.Rolls)-1)]
	fd.next++
	return roll
}
