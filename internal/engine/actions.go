package engine

import "time"

// Action is the closed set of inputs a game accepts. The transport layer
// decodes client frames into one of these before handing them to Apply.
type Action interface {
	isAction()
	Actor() string
}

// ReadyToVote marks the acting player as done discussing. Safe to repeat.
type ReadyToVote struct {
	PlayerID string
}

func (ReadyToVote) isAction() {}

func (a ReadyToVote) Actor() string { return a.PlayerID }

// SubmitVote casts the acting player's elimination vote. One per player per
// round; the first accepted vote is final.
type SubmitVote struct {
	PlayerID       string
	TargetPlayerID string
	At             time.Time
}

func (SubmitVote) isAction() {}

func (a SubmitVote) Actor() string { return a.PlayerID }

// GuessLocation is the voted-out spy's attempt at naming the location.
type GuessLocation struct {
	PlayerID        string
	GuessedLocation string
	At              time.Time
}

func (GuessLocation) isAction() {}

func (a GuessLocation) Actor() string { return a.PlayerID }
