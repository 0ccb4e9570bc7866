package game

import "fmt"

// PositionKind says where a player is relative to the submarine.
type PositionKind int

const (
	WaitingToDive PositionKind = iota
	Diving
	ReturnedToSubmarine
)

// Position of a player. Index is only meaningful while Diving (0 = shallowest tile).
type Position struct {
	Kind  PositionKind
	Index int
}

func Waiting() Position {
	return Position{Kind: WaitingToDive}
}

func DivingAt(index int) Position {
	return Position{Kind: Diving, Index: index}
}

func Returned() Position {
	return Position{Kind: ReturnedToSubmarine}
}

// AsDiving returns the path index and true if the position is Diving.
func (p Position) AsDiving() (int, bool) {
	if p.Kind != Diving {
		return 0, false
	}
	return p.Index, true
}

func (p Position) String() string {
	switch p.Kind {
	case WaitingToDive:
		return "waiting"
	case Diving:
		return fmt.Sprintf("diving(%d)", p.Index)
	default:
		return "returned"
	}
}

// Player is one seat of the game.
type Player struct {
	ID        int
	Position  Position
	Direction DiveDirection
	Held      []Treasure // Pickup order
}

// HasTreasure reports whether the player holds at least one treasure.
func (p Player) HasTreasure() bool {
	return len(p.Held) > 0
}

func (p Player) IsReturned() bool {
	return p.Position.Kind == ReturnedToSubmarine
}
