package game

import "fmt"

// Treasure is the face-value tier of a treasure chip.
type Treasure int

const (
	NoTreasure Treasure = iota // 0, marks an empty tile
	One                        // 1
	Two                        // 2
	Three                      // 3
	Four                       // 4
)

// Tiers lists every treasure tier from shallowest to deepest.
var Tiers = []Treasure{One, Two, Three, Four}

// ExpectedValue is the mean chip value of the tier.
func (t Treasure) ExpectedValue() float64 {
	switch t {
	case One:
		return 1.5
	case Two:
		return 5.5
	case Three:
		return 9.5
	case Four:
		return 13.5
	default:
		return 0
	}
}

func (t Treasure) String() string {
	switch t {
	case NoTreasure:
		return "-"
	case One, Two, Three, Four:
		return fmt.Sprintf("T%d", int(t))
	default:
		return fmt.Sprintf("Treasure(%d)", int(t))
	}
}

// Tile is one step of the path. The zero value is an empty tile.
type Tile struct {
	Treasure Treasure
}

// TreasureTile returns a tile holding a treasure of the given tier.
func TreasureTile(t Treasure) Tile {
	return Tile{Treasure: t}
}

func (t Tile) IsEmpty() bool {
	return t.Treasure == NoTreasure
}

func (t Tile) String() string {
	return t.Treasure.String()
}
