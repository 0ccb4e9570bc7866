package game

import (
	"fmt"
	"strings"

	"deepsea/meta"
)

// State represents the dynamic state of one game: the path, the seats, whose turn it is and the shared oxygen.
type State struct {
	Path    []Tile   // Tiles from the shallowest (0) to the deepest
	Players []Player // Seats in turn order
	Turn    int      // Index of the active player
	Oxygen  int      // Shared oxygen supply, never negative
}

type StateOption func(gs *State)

// WithOxygen sets the initial oxygen supply.
func WithOxygen(oxygen int) StateOption {
	return func(gs *State) {
		if oxygen >= 0 {
			gs.Oxygen = oxygen
		}
	}
}

// NewState initializes a game over the given path with the given number of seats, all waiting to dive.
func NewState(path []Tile, players int, options ...StateOption) (*State, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("cannot create game: path is empty: %w", ErrInvalidConfig)
	}
	if players <= 0 {
		return nil, fmt.Errorf("cannot create game: %d players: %w", players, ErrInvalidConfig)
	}

	gs := &State{
		Path:    make([]Tile, len(path)),
		Players: make([]Player, players),
		Oxygen:  meta.DEFAULT_OXYGEN,
	}
	copy(gs.Path, path)
	for i := range gs.Players {
		gs.Players[i] = Player{ID: i, Position: Waiting(), Direction: Down}
	}
	for _, option := range options {
		option(gs)
	}
	return gs, nil
}

// Clone returns a deep copy that shares nothing with the receiver.
func (gs *State) Clone() *State {
	pathCopy := make([]Tile, len(gs.Path))
	copy(pathCopy, gs.Path)

	playersCopy := make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		p.Held = append([]Treasure(nil), p.Held...)
		playersCopy[i] = p
	}

	return &State{
		Path:    pathCopy,
		Players: playersCopy,
		Turn:    gs.Turn,
		Oxygen:  gs.Oxygen,
	}
}

// ActivePlayer returns the player whose turn it is.
func (gs *State) ActivePlayer() Player {
	return gs.Players[gs.Turn]
}

// TileAt returns the tile at the given path index.
func (gs *State) TileAt(index int) Tile {
	return gs.Path[index]
}

// ConsumeOxygen spends one unit of oxygen on behalf of the active player, unless they have returned.
func (gs *State) ConsumeOxygen() {
	if gs.Players[gs.Turn].IsReturned() || gs.Oxygen == 0 {
		return
	}
	gs.Oxygen--
}

// MovePlayer moves the active player distance steps in the given direction.
// A player waiting at the submarine counts as standing just above tile 0.
func (gs *State) MovePlayer(direction DiveDirection, distance int) error {
	if distance <= 0 {
		return fmt.Errorf("cannot move %d steps: %w", distance, ErrInvalidMove)
	}

	player := &gs.Players[gs.Turn]
	from := -1
	switch player.Position.Kind {
	case ReturnedToSubmarine:
		return fmt.Errorf("cannot move player %d: already returned to the submarine: %w", player.ID, ErrInvalidState)
	case Diving:
		from = player.Position.Index
	}

	if direction == Up {
		player.Direction = Up
		to := from - distance
		if to < 0 {
			player.Position = Returned()
		} else {
			player.Position = DivingAt(to)
		}
		return nil
	}

	player.Position = DivingAt(min(from+distance, len(gs.Path)-1))
	return nil
}

// ResolveTreasure applies the active player's decision for the tile they stand on.
func (gs *State) ResolveTreasure(decision TreasureDecision) error {
	player := &gs.Players[gs.Turn]
	index, ok := player.Position.AsDiving()
	if !ok {
		return fmt.Errorf("cannot resolve treasure for player %d: player is %s: %w", player.ID, player.Position, ErrInvalidState)
	}
	if decision == Ignore {
		return nil
	}

	tile := gs.Path[index]
	if tile.IsEmpty() {
		return fmt.Errorf("cannot take treasure at tile %d: tile is empty: %w", index, ErrInvalidState)
	}
	gs.Path[index] = Tile{}
	player.Held = append(player.Held, tile.Treasure)
	return nil
}

// AdvanceTurn hands the turn to the next seat.
func (gs *State) AdvanceTurn() {
	gs.Turn = (gs.Turn + 1) % len(gs.Players)
}

// IsFinished reports whether the oxygen ran out or every player is back in the submarine.
func (gs *State) IsFinished() bool {
	if gs.Oxygen == 0 {
		return true
	}
	for _, p := range gs.Players {
		if !p.IsReturned() {
			return false
		}
	}
	return true
}

func (gs *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "oxygen=%d turn=%d path=[", gs.Oxygen, gs.Turn)
	for i, tile := range gs.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tile.String())
	}
	b.WriteByte(']')
	for _, p := range gs.Players {
		fmt.Fprintf(&b, " p%d:%s/%s%v", p.ID, p.Position, p.Direction, p.Held)
	}
	return b.String()
}
