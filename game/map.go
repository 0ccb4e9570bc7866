package game

import "deepsea/meta"

// CreateDefaultPath builds the standard board: eight tiles of each tier, tiers in ascending blocks.
func CreateDefaultPath() []Tile {
	path := make([]Tile, 0, len(Tiers)*meta.TILES_PER_TIER)
	for _, tier := range Tiers {
		for i := 0; i < meta.TILES_PER_TIER; i++ {
			path = append(path, TreasureTile(tier))
		}
	}
	return path
}

// CreatePath builds a path from the given tiers, NoTreasure marking empty tiles.
func CreatePath(tiers ...Treasure) []Tile {
	path := make([]Tile, len(tiers))
	for i, tier := range tiers {
		path[i] = Tile{Treasure: tier}
	}
	return path
}
