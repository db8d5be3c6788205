package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/isaaclins/partygames-sub001/internal/engine"
	"github.com/isaaclins/partygames-sub001/internal/offline"
)

// clearLines pushes previous output off a small terminal so the next player
// can't glance at the last secret.
const clearLines = 40

func runRound(in io.Reader, out io.Writer, names []string) error {
	if v := offline.ValidateRoster(names); !v.IsValid {
		for _, e := range v.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		return errors.New("invalid roster")
	}

	roles, err := offline.AssignRoles(names)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)

	// Role reveal, one player at a time.
	for _, role := range roles {
		fmt.Fprintf(out, "Pass the device to %s and press enter.", role.PlayerID)
		waitEnter(sc)
		if role.IsSpy {
			fmt.Fprintln(out, "You are the SPY. Figure out the location without giving yourself away.")
		} else {
			fmt.Fprintf(out, "Location: %s\nYour role: %s\n", role.Location, role.Role)
		}
		fmt.Fprint(out, "Press enter and pass the device on.")
		waitEnter(sc)
		scroll(out)
	}

	fmt.Fprintln(out, "Discuss! Ask each other questions about the location.")
	fmt.Fprint(out, "Press enter when everyone is ready to vote.")
	waitEnter(sc)

	votes := collectVotes(sc, out, names)

	results, err := offline.ProcessVotes(votes, roles)
	if err != nil {
		return err
	}

	// The spy gets a last guess when caught, mirroring the multiplayer flow.
	if !results.IsTie && results.VotedOutPlayer == results.SpyName {
		fmt.Fprintf(out, "%s, you were voted out. Guess the location: ", results.SpyName)
		guess := readLine(sc)
		if strings.TrimSpace(guess) != "" {
			if resolved, gerr := offline.ResolveSpyGuess(results, guess); gerr == nil {
				results = resolved
			}
		}
	}

	printResults(out, results)
	return nil
}

func collectVotes(sc *bufio.Scanner, out io.Writer, names []string) []engine.Vote {
	votes := make([]engine.Vote, 0, len(names))
	for _, voter := range names {
		for {
			fmt.Fprintf(out, "%s, who do you vote out? ", voter)
			target, ok := matchName(readLine(sc), names)
			if !ok {
				fmt.Fprintln(out, "No such player, try again.")
				continue
			}
			votes = append(votes, engine.Vote{VoterID: voter, TargetID: target, SubmittedAt: time.Now()})
			break
		}
	}
	return votes
}

// matchName resolves user input to a roster name, case-insensitively.
func matchName(input string, names []string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	for _, n := range names {
		if strings.EqualFold(n, trimmed) {
			return n, true
		}
	}
	return "", false
}

func printResults(out io.Writer, r *offline.RoundResults) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Summary)
	fmt.Fprintln(out)

	targets := make([]string, 0, len(r.VoteCounts))
	for t := range r.VoteCounts {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool {
		if r.VoteCounts[targets[i]] != r.VoteCounts[targets[j]] {
			return r.VoteCounts[targets[i]] > r.VoteCounts[targets[j]]
		}
		return targets[i] < targets[j]
	})
	fmt.Fprintln(out, "Votes:")
	for _, t := range targets {
		fmt.Fprintf(out, "  %s: %d\n", t, r.VoteCounts[t])
	}

	fmt.Fprintln(out, "Roles:")
	for _, role := range r.Roles {
		if role.IsSpy {
			fmt.Fprintf(out, "  %s was the spy\n", role.PlayerID)
		} else {
			fmt.Fprintf(out, "  %s was the %s\n", role.PlayerID, role.Role)
		}
	}
}

func waitEnter(sc *bufio.Scanner) {
	sc.Scan()
}

func readLine(sc *bufio.Scanner) string {
	if sc.Scan() {
		return sc.Text()
	}
	return ""
}

func scroll(out io.Writer) {
	fmt.Fprint(out, strings.Repeat("\n", clearLines))
}
