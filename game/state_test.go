package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, players, oxygen int, tiers ...Treasure) *State {
	t.Helper()
	gs, err := NewState(CreatePath(tiers...), players, WithOxygen(oxygen))
	require.NoError(t, err, "Should create a valid game")
	return gs
}

func TestNewState(t *testing.T) {
	t.Run("all players start waiting and heading down", func(t *testing.T) {
		gs := newTestState(t, 3, 10, One, Two)

		require.Len(t, gs.Players, 3, "Should create one player per seat")
		for i, p := range gs.Players {
			require.Equal(t, i, p.ID, "Player ID should match the seat")
			require.Equal(t, Waiting(), p.Position, "Player should wait to dive")
			require.Equal(t, Down, p.Direction, "Player should head down")
			require.Empty(t, p.Held, "Player should hold nothing")
		}
		require.Equal(t, 0, gs.Turn, "First seat should start")
		require.Equal(t, 10, gs.Oxygen, "Oxygen should be configurable")
	})

	t.Run("default oxygen", func(t *testing.T) {
		gs, err := NewState(CreateDefaultPath(), 2)

		require.NoError(t, err)
		require.Equal(t, 25, gs.Oxygen, "Oxygen should default to 25")
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := NewState(nil, 2)

		require.ErrorIs(t, err, ErrInvalidConfig, "Should reject an empty path")
	})

	t.Run("rejects zero players", func(t *testing.T) {
		_, err := NewState(CreatePath(One), 0)

		require.ErrorIs(t, err, ErrInvalidConfig, "Should reject zero players")
	})

	t.Run("does not alias the given path", func(t *testing.T) {
		path := CreatePath(One)
		gs, err := NewState(path, 1)
		require.NoError(t, err)

		gs.Path[0] = Tile{}

		require.False(t, path[0].IsEmpty(), "Caller's path should not change")
	})
}

func TestConsumeOxygen(t *testing.T) {
	t.Run("decrements for an active diver", func(t *testing.T) {
		gs := newTestState(t, 2, 3, One)

		gs.ConsumeOxygen()

		require.Equal(t, 2, gs.Oxygen, "Should spend one unit")
	})

	t.Run("saturates at zero", func(t *testing.T) {
		gs := newTestState(t, 2, 1, One)

		gs.ConsumeOxygen()
		gs.ConsumeOxygen()

		require.Equal(t, 0, gs.Oxygen, "Oxygen should never go negative")
	})

	t.Run("free for a returned player", func(t *testing.T) {
		gs := newTestState(t, 2, 3, One)
		gs.Players[0].Position = Returned()

		gs.ConsumeOxygen()

		require.Equal(t, 3, gs.Oxygen, "Returned players should not spend oxygen")
	})
}

func TestMovePlayer(t *testing.T) {
	t.Run("first dive lands distance-1 tiles deep", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One, One, One, One, One)

		require.NoError(t, gs.MovePlayer(Down, 3))

		require.Equal(t, DivingAt(2), gs.Players[0].Position, "Should land on tile 2")
		require.Equal(t, Down, gs.Players[0].Direction, "Direction should not change")
	})

	t.Run("down clamps at the last tile", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One, One, One)
		gs.Players[0].Position = DivingAt(1)

		require.NoError(t, gs.MovePlayer(Down, 6))

		require.Equal(t, DivingAt(2), gs.Players[0].Position, "Should stop at the last tile")
		require.Equal(t, Down, gs.Players[0].Direction, "Hitting the bottom should not turn the player")
	})

	t.Run("up within the path", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One, One, One, One, One, One)
		gs.Players[0].Position = DivingAt(5)

		require.NoError(t, gs.MovePlayer(Up, 3))

		require.Equal(t, DivingAt(2), gs.Players[0].Position, "Should climb three tiles")
		require.Equal(t, Up, gs.Players[0].Direction, "Moving up should fix the direction")
	})

	t.Run("up past the start returns to the submarine", func(t *testing.T) {
		for index := 0; index < 4; index++ {
			gs := newTestState(t, 1, 10, One, One, One, One)
			gs.Players[0].Position = DivingAt(index)

			require.NoError(t, gs.MovePlayer(Up, index+1))

			require.Equal(t, Returned(), gs.Players[0].Position, "Should reach the submarine from tile %d", index)
			require.Equal(t, Up, gs.Players[0].Direction, "Direction should be fixed up")

			err := gs.MovePlayer(Up, 2)
			require.ErrorIs(t, err, ErrInvalidState, "Moving a returned player should fail")
			err = gs.MovePlayer(Down, 2)
			require.ErrorIs(t, err, ErrInvalidState, "Moving a returned player should fail")
		}
	})

	t.Run("up while waiting goes straight back", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One)

		require.NoError(t, gs.MovePlayer(Up, 2))

		require.Equal(t, Returned(), gs.Players[0].Position, "Should never leave the submarine")
	})

	t.Run("only moves the active player", func(t *testing.T) {
		gs := newTestState(t, 2, 10, One, One, One)
		gs.AdvanceTurn()

		require.NoError(t, gs.MovePlayer(Down, 2))

		require.Equal(t, Waiting(), gs.Players[0].Position, "Inactive player should not move")
		require.Equal(t, DivingAt(1), gs.Players[1].Position, "Active player should move")
	})

	t.Run("rejects non-positive distance", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One)

		require.ErrorIs(t, gs.MovePlayer(Down, 0), ErrInvalidMove)
		require.Equal(t, Waiting(), gs.Players[0].Position, "Failed move should not change position")
	})
}

func TestResolveTreasure(t *testing.T) {
	t.Run("taking empties the tile and appends the treasure", func(t *testing.T) {
		gs := newTestState(t, 1, 10, One, Three)
		gs.Players[0].Position = DivingAt(1)

		require.NoError(t, gs.ResolveTreasure(Take))

		require.True(t, gs.TileAt(1).IsEmpty(), "Tile should be empty")
		require.Equal(t, []Treasure{Three}, gs.Players[0].Held, "Player should hold the treasure")
	})

	t.Run("held treasures keep pickup order", func(t *testing.T) {
		gs := newTestState(t, 1, 10, Four, One)
		gs.Players[0].Position = DivingAt(1)
		require.NoError(t, gs.ResolveTreasure(Take))
		gs.Players[0].Position = DivingAt(0)
		require.NoError(t, gs.ResolveTreasure(Take))

		require.Equal(t, []Treasure{One, Four}, gs.Players[0].Held, "Should keep pickup order")
	})

	t.Run("ignoring changes nothing", func(t *testing.T) {
		gs := newTestState(t, 1, 10, Two)
		gs.Players[0].Position = DivingAt(0)

		require.NoError(t, gs.ResolveTreasure(Ignore))

		require.Equal(t, TreasureTile(Two), gs.TileAt(0), "Tile should keep its treasure")
		require.Empty(t, gs.Players[0].Held, "Player should hold nothing")
	})

	t.Run("ignoring an empty tile is allowed", func(t *testing.T) {
		gs := newTestState(t, 1, 10, NoTreasure)
		gs.Players[0].Position = DivingAt(0)

		require.NoError(t, gs.ResolveTreasure(Ignore))
	})

	t.Run("a tile can be taken only once", func(t *testing.T) {
		gs := newTestState(t, 2, 10, Two)
		gs.Players[0].Position = DivingAt(0)
		gs.Players[1].Position = DivingAt(0)
		require.NoError(t, gs.ResolveTreasure(Take))
		gs.AdvanceTurn()

		err := gs.ResolveTreasure(Take)

		require.ErrorIs(t, err, ErrInvalidState, "Second pickup should fail")
		require.Empty(t, gs.Players[1].Held, "Second player should hold nothing")
		require.Len(t, gs.Players[0].Held, 1, "First player should keep the treasure")
	})

	t.Run("fails off the path", func(t *testing.T) {
		for _, position := range []Position{Waiting(), Returned()} {
			gs := newTestState(t, 1, 10, Two)
			gs.Players[0].Position = position

			require.ErrorIs(t, gs.ResolveTreasure(Take), ErrInvalidState, "Should fail while %s", position)
			require.ErrorIs(t, gs.ResolveTreasure(Ignore), ErrInvalidState, "Should fail while %s", position)
		}
	})
}

func TestAdvanceTurn(t *testing.T) {
	gs := newTestState(t, 3, 10, One)

	var turns []int
	for i := 0; i < 4; i++ {
		gs.AdvanceTurn()
		turns = append(turns, gs.Turn)
	}

	require.Equal(t, []int{1, 2, 0, 1}, turns, "Turn should wrap round-robin")
}

func TestIsFinished(t *testing.T) {
	t.Run("unfinished while oxygen remains and someone is out", func(t *testing.T) {
		gs := newTestState(t, 2, 5, One)
		gs.Players[0].Position = Returned()

		require.False(t, gs.IsFinished())
	})

	t.Run("finished when oxygen runs out", func(t *testing.T) {
		gs := newTestState(t, 2, 1, One)
		gs.ConsumeOxygen()

		require.True(t, gs.IsFinished(), "Should finish at zero oxygen")
	})

	t.Run("finished when everyone returned", func(t *testing.T) {
		gs := newTestState(t, 2, 5, One)
		gs.Players[0].Position = Returned()
		gs.Players[1].Position = Returned()

		require.True(t, gs.IsFinished(), "Should finish when everyone is back")
	})

	t.Run("stays finished", func(t *testing.T) {
		gs := newTestState(t, 2, 1, One, One)
		require.NoError(t, gs.MovePlayer(Down, 2))
		gs.ConsumeOxygen()
		require.True(t, gs.IsFinished())

		for i := 0; i < 4; i++ {
			gs.AdvanceTurn()
			gs.ConsumeOxygen()
			require.True(t, gs.IsFinished(), "Should never un-finish")
		}
	})
}

func TestClone(t *testing.T) {
	gs := newTestState(t, 2, 5, One, Two)
	gs.Players[0].Position = DivingAt(1)
	require.NoError(t, gs.ResolveTreasure(Take))

	clone := gs.Clone()
	require.Equal(t, gs, clone, "Clone should be structurally identical")

	clone.Path[0] = Tile{}
	clone.Players[0].Held[0] = Four
	clone.Players[1].Position = Returned()
	clone.Oxygen = 0

	require.Equal(t, TreasureTile(One), gs.TileAt(0), "Original path should not change")
	require.Equal(t, []Treasure{Two}, gs.Players[0].Held, "Original holdings should not change")
	require.Equal(t, Waiting(), gs.Players[1].Position, "Original positions should not change")
	require.Equal(t, 5, gs.Oxygen, "Original oxygen should not change")
}

func TestStateString(t *testing.T) {
	gs := newTestState(t, 1, 3, One, NoTreasure)
	gs.Players[0].Position = DivingAt(1)

	require.Equal(t, "oxygen=3 turn=0 path=[T1 -] p0:diving(1)/down[]", gs.String())
}
