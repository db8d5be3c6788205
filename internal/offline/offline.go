// Package offline holds the pure round functions for the single-device
// pass-and-play variant. Phase transitions (setup, role reveal, discussion,
// voting, results) belong to the calling UI; this package only deals
// secrets, tallies votes, and snapshots results.
package offline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isaaclins/partygames-sub001/internal/engine"
)

const (
	MinPlayers = 3
	MaxPlayers = 16
)

var ErrTooFewPlayers = fmt.Errorf("a round needs at least %d players", MinPlayers)
var ErrTooManyPlayers = fmt.Errorf("a round supports at most %d players", MaxPlayers)
var ErrSpyNotVotedOut = errors.New("the spy was not voted out")

// Validation aggregates every roster problem at once so the setup screen
// can show them all, rather than failing on the first.
type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateRoster checks player count bounds, empty or whitespace-only
// names, and case-insensitive duplicates.
func ValidateRoster(names []string) Validation {
	var errs []string
	if len(names) < MinPlayers {
		errs = append(errs, fmt.Sprintf("at least %d players are required", MinPlayers))
	}
	if len(names) > MaxPlayers {
		errs = append(errs, fmt.Sprintf("at most %d players are allowed", MaxPlayers))
	}

	seen := make(map[string]bool)
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			errs = append(errs, "player names must not be empty")
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			errs = append(errs, fmt.Sprintf("duplicate player name %q", trimmed))
		}
		seen[key] = true
	}
	return Validation{IsValid: len(errs) == 0, Errors: errs}
}

// AssignRoles deals a round for the given player names. Unlike the session
// engine, which receives a pre-validated roster from the lobby, this
// enforces the size bounds itself.
func AssignRoles(names []string) ([]engine.PlayerRole, error) {
	if len(names) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(names) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	_, _, roles := engine.Assign(names)
	return roles, nil
}

// RoundResults is a pure snapshot recomputed from the vote and role lists;
// nothing here is persisted state.
type RoundResults struct {
	VotedOutPlayer string              `json:"votedOutPlayer"`
	VoteCounts     map[string]int      `json:"voteCounts"`
	SpyName        string              `json:"spyName"`
	Location       string              `json:"location"`
	Winner         engine.Winner       `json:"winner"`
	IsTie          bool                `json:"isTie"`
	Roles          []engine.PlayerRole `json:"roles"`
	Summary        string              `json:"summary"`
}

// ProcessVotes tallies a finished voting round. A tie means nobody is
// eliminated and the spy wins. Voting out the spy hands the non-spies the
// win; the UI may then still offer the spy a last guess via
// ResolveSpyGuess.
func ProcessVotes(votes []engine.Vote, roles []engine.PlayerRole) (*RoundResults, error) {
	tally, err := engine.ResolveVotes(votes, roles)
	if err != nil {
		return nil, err
	}

	var spyName, location string
	for _, r := range roles {
		if r.IsSpy {
			spyName = r.PlayerID
		} else {
			location = r.Location
		}
	}

	res := &RoundResults{
		VoteCounts: tally.Counts,
		SpyName:    spyName,
		Location:   location,
		IsTie:      tally.IsTie,
		Roles:      roles,
		Winner:     engine.WinnerSpy,
	}
	if !tally.IsTie {
		res.VotedOutPlayer = tally.VotedOutID
		if tally.VotedOutID == spyName {
			res.Winner = engine.WinnerNonSpies
		}
	}
	res.Summary = summarize(res)
	return res, nil
}

// ResolveSpyGuess applies the voted-out spy's final location guess on top
// of a processed round, mirroring the session engine's spy-guess phase.
// It fails unless the round actually ended with the spy voted out.
func ResolveSpyGuess(res *RoundResults, guess string) (*RoundResults, error) {
	if res.IsTie || res.VotedOutPlayer != res.SpyName {
		return nil, ErrSpyNotVotedOut
	}
	out := *res
	if engine.GuessMatches(guess, res.Location) {
		out.Winner = engine.WinnerSpy
		out.Summary = fmt.Sprintf("%s was voted out but guessed the location %s. The spy wins!", out.SpyName, out.Location)
	} else {
		out.Winner = engine.WinnerNonSpies
		out.Summary = fmt.Sprintf("%s was caught and guessed %q instead of %s. The non-spies win!", out.SpyName, strings.TrimSpace(guess), out.Location)
	}
	return &out, nil
}

func summarize(r *RoundResults) string {
	switch {
	case r.IsTie:
		return fmt.Sprintf("The vote was a tie, so nobody was eliminated. The spy %s escapes! The location was %s.", r.SpyName, r.Location)
	case r.Winner == engine.WinnerNonSpies:
		return fmt.Sprintf("The spy %s was voted out. The non-spies win! The location was %s.", r.SpyName, r.Location)
	default:
		return fmt.Sprintf("%s was voted out, but the spy was %s. The spy wins! The location was %s.", r.VotedOutPlayer, r.SpyName, r.Location)
	}
}
