package engine

import "errors"

var ErrNoVotes = errors.New("No votes to process")
var ErrInvalidGameState = errors.New("Invalid game state")

// Tally is the outcome of one voting round, before any spy guess.
type Tally struct {
	Counts     map[string]int
	VotedOutID string // empty on a tie
	IsTie      bool
}

// ResolveVotes groups votes by target and applies the plurality rule: the
// single target holding the true maximum count is voted out. Two or more
// targets at the maximum is a tie and nobody is voted out.
//
// The role list is a consistency check only: it must contain exactly one spy
// and at least one non-spy, otherwise the caller has broken the assignment
// invariant and ErrInvalidGameState is returned.
func ResolveVotes(votes []Vote, roles []PlayerRole) (Tally, error) {
	if len(votes) == 0 {
		return Tally{}, ErrNoVotes
	}

	spies, nonSpies := 0, 0
	for _, r := range roles {
		if r.IsSpy {
			spies++
		} else {
			nonSpies++
		}
	}
	if spies != 1 || nonSpies == 0 {
		return Tally{}, ErrInvalidGameState
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.TargetID]++
	}

	maxVotes := 0
	var atMax []string
	for target, n := range counts {
		if n > maxVotes {
			maxVotes = n
			atMax = []string{target}
		} else if n == maxVotes {
			atMax = append(atMax, target)
		}
	}

	t := Tally{Counts: counts, IsTie: len(atMax) > 1}
	if !t.IsTie {
		t.VotedOutID = atMax[0]
	}
	return t, nil
}
