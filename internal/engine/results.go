package engine

import (
	"errors"
	"fmt"
)

var ErrGameNotFinished = errors.New("game is not finished")

// RoundResults is the full reveal for a finished game, including a
// ready-to-display summary line.
type RoundResults struct {
	VotedOutPlayer string         `json:"votedOutPlayer"`
	VoteCounts     map[string]int `json:"voteCounts"`
	SpyName        string         `json:"spyName"`
	Location       string         `json:"location"`
	Winner         Winner         `json:"winner"`
	IsTie          bool           `json:"isTie"`
	Roles          []PlayerRole   `json:"roles"`
	LocationGuess  *LocationGuess `json:"locationGuess,omitempty"`
	Summary        string         `json:"summary"`
}

// FinalResults names the overall winner by score.
type FinalResults struct {
	WinnerName string         `json:"winnerName"`
	Scores     map[string]int `json:"scores"`
	Summary    string         `json:"summary"`
}

// RoundResults reveals everything about the finished round. Calling it
// before the game reaches the finished phase is an error.
func (g *Game) RoundResults() (*RoundResults, error) {
	if g.phase != PhaseFinished {
		return nil, ErrGameNotFinished
	}
	tally, err := ResolveVotes(g.votes, g.roles)
	if err != nil {
		return nil, err
	}

	r := &RoundResults{
		VoteCounts:    tally.Counts,
		SpyName:       g.nameOf(g.spyID),
		Location:      g.location,
		Winner:        g.winner,
		IsTie:         tally.IsTie,
		Roles:         append([]PlayerRole(nil), g.roles...),
		LocationGuess: g.guess,
	}
	if !tally.IsTie {
		r.VotedOutPlayer = g.nameOf(tally.VotedOutID)
	}
	r.Summary = summarizeRound(r)
	return r, nil
}

func summarizeRound(r *RoundResults) string {
	switch {
	case r.IsTie:
		return fmt.Sprintf("The vote was a tie, so nobody was eliminated. The spy %s escapes and the location was %s.", r.SpyName, r.Location)
	case r.Winner == WinnerSpy && r.LocationGuess != nil:
		return fmt.Sprintf("%s was voted out and correctly guessed the location %s. The spy wins!", r.SpyName, r.Location)
	case r.Winner == WinnerSpy:
		return fmt.Sprintf("%s was voted out, but the spy was %s. The spy wins! The location was %s.", r.VotedOutPlayer, r.SpyName, r.Location)
	default:
		return fmt.Sprintf("The spy %s was caught and failed to guess the location %s. The non-spies win!", r.SpyName, r.Location)
	}
}

// FinalResults picks the highest-scoring roster member, first one
// encountered on ties, or "No winner" for an empty roster.
func (g *Game) FinalResults() FinalResults {
	r := FinalResults{
		WinnerName: "No winner",
		Scores:     make(map[string]int, len(g.scores)),
	}
	for id, pts := range g.scores {
		r.Scores[id] = pts
	}

	best := -1
	for _, p := range g.players {
		if g.scores[p.ID] > best {
			best = g.scores[p.ID]
			r.WinnerName = p.Name
		}
	}
	if best >= 0 {
		r.Summary = fmt.Sprintf("%s wins the game with %d points.", r.WinnerName, best)
	} else {
		r.Summary = "No winner."
	}
	return r
}
