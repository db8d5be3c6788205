package engine

import "time"

// PublicState is the projection every player may see at any time. Location
// and SpyID stay empty until the game is finished; that plus the absence of
// other players' roles is the engine's privacy boundary.
type PublicState struct {
	Phase            Phase          `json:"phase"`
	Players          []Player       `json:"players"`
	ReadyCount       int            `json:"readyCount"`
	Votes            []Vote         `json:"votes"`
	VotedOutPlayerID string         `json:"votedOutPlayerId,omitempty"`
	Winner           Winner         `json:"winner,omitempty"`
	Location         string         `json:"location,omitempty"`
	SpyID            string         `json:"spyId,omitempty"`
	LocationGuess    *LocationGuess `json:"locationGuess,omitempty"`
	Scores           map[string]int `json:"scores"`
	GameStartedAt    time.Time      `json:"gameStartedAt"`
}

// PlayerState is the public projection plus the requesting player's own
// secret. A player always sees their own role, never anyone else's.
type PlayerState struct {
	PublicState
	You *PlayerRole `json:"you,omitempty"`
}

func (g *Game) PublicState() PublicState {
	s := PublicState{
		Phase:            g.phase,
		Players:          append([]Player(nil), g.players...),
		ReadyCount:       g.readyCount(),
		Votes:            append([]Vote(nil), g.votes...),
		VotedOutPlayerID: g.votedOutID,
		Winner:           g.winner,
		Scores:           make(map[string]int, len(g.scores)),
		GameStartedAt:    g.startedAt,
	}
	for id, pts := range g.scores {
		s.Scores[id] = pts
	}
	if g.phase == PhaseFinished {
		s.Location = g.location
		s.SpyID = g.spyID
		s.LocationGuess = g.guess
	}
	return s
}

func (g *Game) PlayerState(playerID string) PlayerState {
	s := PlayerState{PublicState: g.PublicState()}
	for i := range g.roles {
		if g.roles[i].PlayerID == playerID {
			role := g.roles[i]
			s.You = &role
			break
		}
	}
	return s
}
