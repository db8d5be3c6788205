package engine

import (
	"strings"
	"time"
)

type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseVoting   Phase = "voting"
	PhaseSpyGuess Phase = "spy_guess"
	PhaseFinished Phase = "finished"
)

type Winner string

const (
	WinnerSpy      Winner = "spy"
	WinnerNonSpies Winner = "non_spies"
)

// Points credited on the two terminal outcomes.
const (
	SpyWinPoints    = 3
	NonSpyWinPoints = 2
)

// Player is one roster entry, owned by the surrounding lobby and passed in
// at construction. The engine never adds or removes players.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerRole is one player's secret for the current game. The spy's
// Location and Role are empty.
type PlayerRole struct {
	PlayerID string `json:"playerId"`
	Location string `json:"location,omitempty"`
	Role     string `json:"role,omitempty"`
	IsSpy    bool   `json:"isSpy"`
}

type Vote struct {
	VoterID     string    `json:"voterId"`
	TargetID    string    `json:"targetId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type LocationGuess struct {
	SpyID           string    `json:"spyId"`
	GuessedLocation string    `json:"guessedLocation"`
	SubmittedAt     time.Time `json:"submittedAt"`
	Correct         bool      `json:"isCorrect"`
}

// Result is the outcome of applying one action. Error holds a fixed
// human-readable message when Success is false; Update carries the public
// state to broadcast, and is nil when nothing observable changed.
type Result struct {
	Success bool
	Error   string
	Update  *PublicState
}

func fail(msg string) Result { return Result{Error: msg} }

// Game is one Spyfall session. It is the sole owner of its state; the
// caller must serialize concurrent actions (the lobby actor does this).
type Game struct {
	phase      Phase
	players    []Player
	location   string
	spyID      string
	roles      []PlayerRole
	votes      []Vote
	ready      map[string]bool
	votedOutID string
	winner     Winner
	guess      *LocationGuess
	scores     map[string]int
	startedAt  time.Time
}

// NewGame deals roles immediately and starts in the playing phase. The
// roster comes pre-validated from the lobby (3..16 players).
func NewGame(players []Player) *Game {
	g := &Game{
		phase:     PhasePlaying,
		players:   players,
		ready:     make(map[string]bool),
		scores:    make(map[string]int),
		startedAt: time.Now(),
	}
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
		g.scores[p.ID] = 0
	}
	g.location, g.spyID, g.roles = Assign(ids)
	return g
}

// Apply runs one action through the state machine. Recoverable player
// errors (wrong phase, duplicate vote, bad target) come back as a failed
// Result and never mutate state. The returned error is reserved for
// invariant violations that indicate a bug in the caller, such as a role
// list without exactly one spy at resolution time.
func (g *Game) Apply(a Action) (Result, error) {
	switch act := a.(type) {
	case ReadyToVote:
		if g.phase != PhasePlaying {
			return fail("Not in playing phase"), nil
		}
		g.ready[act.PlayerID] = true
		if g.readyCount() == len(g.players) {
			g.phase = PhaseVoting
			return g.ok(), nil
		}
		return Result{Success: true}, nil

	case SubmitVote:
		if g.phase != PhaseVoting {
			return fail("Not in voting phase"), nil
		}
		if strings.TrimSpace(act.TargetPlayerID) == "" {
			return fail("Must specify target player"), nil
		}
		if g.hasVoted(act.PlayerID) {
			return fail("Already voted"), nil
		}
		if !g.inRoster(act.TargetPlayerID) {
			return fail("Target player not found"), nil
		}
		g.votes = append(g.votes, Vote{
			VoterID:     act.PlayerID,
			TargetID:    act.TargetPlayerID,
			SubmittedAt: act.At,
		})
		if len(g.votes) == len(g.players) {
			if err := g.resolveVotes(); err != nil {
				return fail(err.Error()), err
			}
			return g.ok(), nil
		}
		return Result{Success: true}, nil

	case GuessLocation:
		if g.phase != PhaseSpyGuess {
			return fail("Not in spy guess phase"), nil
		}
		if act.PlayerID != g.spyID {
			return fail("Only the spy can guess the location"), nil
		}
		if strings.TrimSpace(act.GuessedLocation) == "" {
			return fail("Must provide location guess"), nil
		}
		correct := GuessMatches(act.GuessedLocation, g.location)
		g.guess = &LocationGuess{
			SpyID:           act.PlayerID,
			GuessedLocation: act.GuessedLocation,
			SubmittedAt:     act.At,
			Correct:         correct,
		}
		if correct {
			g.award(WinnerSpy)
		} else {
			g.award(WinnerNonSpies)
		}
		g.phase = PhaseFinished
		return g.ok(), nil

	default:
		return fail("Invalid action type"), nil
	}
}

// GuessMatches compares a guessed location against the true one, ignoring
// case and surrounding whitespace.
func GuessMatches(guess, location string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(location))
}

// resolveVotes runs the shared tally once every roster member has voted.
// A voted-out spy gets a guess; a tie or a voted-out non-spy hands the spy
// the win outright.
func (g *Game) resolveVotes() error {
	tally, err := ResolveVotes(g.votes, g.roles)
	if err != nil {
		return err
	}
	g.votedOutID = tally.VotedOutID
	if !tally.IsTie && tally.VotedOutID == g.spyID {
		g.phase = PhaseSpyGuess
		return nil
	}
	g.award(WinnerSpy)
	g.phase = PhaseFinished
	return nil
}

// award records the winner and credits points. Called exactly once per
// game; the phase guards prevent re-entry into a terminal transition.
func (g *Game) award(w Winner) {
	g.winner = w
	if w == WinnerSpy {
		g.scores[g.spyID] += SpyWinPoints
		return
	}
	for _, r := range g.roles {
		if !r.IsSpy {
			g.scores[r.PlayerID] += NonSpyWinPoints
		}
	}
}

func (g *Game) ok() Result {
	update := g.PublicState()
	return Result{Success: true, Update: &update}
}

// readyCount counts ready roster members only, so stray IDs can never push
// the count past the roster size.
func (g *Game) readyCount() int {
	n := 0
	for _, p := range g.players {
		if g.ready[p.ID] {
			n++
		}
	}
	return n
}

func (g *Game) hasVoted(playerID string) bool {
	for _, v := range g.votes {
		if v.VoterID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) inRoster(playerID string) bool {
	for _, p := range g.players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) nameOf(playerID string) string {
	for _, p := range g.players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return playerID
}

func (g *Game) Phase() Phase { return g.phase }

// Players returns the roster snapshot the game was constructed with.
func (g *Game) Players() []Player { return g.players }
