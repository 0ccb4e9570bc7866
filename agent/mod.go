package agent

import (
	"fmt"

	"deepsea/game"

	"golang.org/x/exp/rand"
)

// Agent decides for one seat. The state is read-only: agents answer, the engine applies.
type Agent interface {
	// ChooseDirection is only asked while the player is still heading down.
	ChooseDirection(state *game.State, player int) game.DiveDirection
	// DecideTreasure is asked whenever the player ends a move on the path.
	DecideTreasure(state *game.State, player int) game.TreasureDecision
}

// Kind names an agent implementation.
type Kind string

const (
	HeuristicKind   Kind = "heuristic"
	ProbabilityKind Kind = "probability"
	RandomKind      Kind = "random"
)

// Kinds lists every known agent kind.
var Kinds = []Kind{HeuristicKind, ProbabilityKind, RandomKind}

// New creates an agent of the given kind. rng is only used by randomized agents.
func New(kind Kind, rng *rand.Rand) (Agent, error) {
	switch kind {
	case HeuristicKind:
		return NewHeuristic(), nil
	case ProbabilityKind:
		return NewProbabilityAware(), nil
	case RandomKind:
		if rng == nil {
			return nil, fmt.Errorf("cannot create %s agent: no random source", kind)
		}
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

// ParseKinds converts names into kinds, rejecting unknown ones.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, len(names))
	for i, name := range names {
		kind := Kind(name)
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown agent kind %q", name)
		}
		kinds[i] = kind
	}
	return kinds, nil
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}
