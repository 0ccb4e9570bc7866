package game

// DiveDirection is the direction a player travels along the path.
type DiveDirection int

const (
	Down DiveDirection = iota
	Up
)

func (d DiveDirection) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// TreasureDecision is a player's answer when standing on a tile.
type TreasureDecision int

const (
	Ignore TreasureDecision = iota
	Take
)

func (d TreasureDecision) String() string {
	if d == Take {
		return "take"
	}
	return "ignore"
}
