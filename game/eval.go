package game

// ValueAssigner turns collected treasures into points during scoring.
// Implementations may depend on how many chips of a tier were already assigned, never on who holds them.
type ValueAssigner interface {
	AssignValue(t Treasure) int
}

// NewValueAssigner returns a fresh assigner for one scoring pass.
type NewValueAssigner func() ValueAssigner

// DecayingValues hands out the chips of each tier from the most to the least valuable.
// Tier t holds two chips of each value 4(t-1) .. 4(t-1)+3.
type DecayingValues struct {
	assigned map[Treasure]int
}

func NewDecayingValues() ValueAssigner {
	return &DecayingValues{assigned: make(map[Treasure]int)}
}

func (dv *DecayingValues) AssignValue(t Treasure) int {
	if t == NoTreasure {
		return 0
	}
	k := dv.assigned[t]
	dv.assigned[t]++
	return decayedValue(t, k)
}

// decayedValue is the value of the k-th (0-based) chip of tier t.
func decayedValue(t Treasure, k int) int {
	base := 4 * (int(t) - 1)
	return base + max(3-k/2, 0)
}

// ExpectedScore values a player's holdings at the mean chip value of each tier.
func ExpectedScore(p Player) float64 {
	score := 0.0
	for _, t := range p.Held {
		score += t.ExpectedValue()
	}
	return score
}
