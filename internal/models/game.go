package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates the game is seated but no round has been played
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates regular rounds are being played
	GameStatusActive GameStatus = "active"

	// GameStatusTieBreak indicates rounds are restricted to tied players
	GameStatusTieBreak GameStatus = "tie_break"

	// GameStatusCompleted indicates a winner has been declared
	GameStatusCompleted GameStatus = "completed"
)

// IsCompleted reports whether a winner has been declared
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// IsTieBreak reports whether the game is in a tie-break
func (s GameStatus) IsTieBreak() bool {
	return s == GameStatusTieBreak
}

// Game represents one zombie dice game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// PlayerIDs contains every seated player in turn order
	PlayerIDs []string

	// ContenderIDs contains the players still in contention during a
	// tie-break, in seating order. Empty outside a tie-break.
	ContenderIDs []string

	// Round is the number of rounds played so far, tie-break rounds included
	Round int

	// TieBreaks is how many tie-breaks have been started
	TieBreaks int

	// WinnerID is set once the game is completed
	WinnerID string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Contenders returns the players taking turns in the next round
func (g *Game) Contenders() []string {
	if len(g.ContenderIDs) > 0 {
		return g.ContenderIDs
	}
	return g.PlayerIDs
}
