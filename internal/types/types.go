package types

import "github.com/isaaclins/partygames-sub001/internal/engine"

// ClientMessage is one action frame from a player.
//
// Client -> Server
//
//	ready_to_vote: {}
//	submit_vote:    target_player_id: string
//	guess_location: guessed_location: string
type ClientMessage struct {
	Type            string `json:"type"`
	TargetPlayerID  string `json:"target_player_id,omitempty"`
	GuessedLocation string `json:"guessed_location,omitempty"`
}

// ServerMessage is a personalized state snapshot or an action error.
//
// Server -> Client
//
//	StateSnapshot: version + state (public projection plus the receiving
//	               player's own role; location/spy stay hidden until the
//	               game finishes)
//	Error:         error string from the engine's fixed taxonomy
type ServerMessage struct {
	Type    string              `json:"type"` // "StateSnapshot" | "Error"
	Version int                 `json:"version,omitempty"`
	State   *engine.PlayerState `json:"state,omitempty"`
	Error   string              `json:"error,omitempty"`
}
