package models

// ScoreboardEntry is one row of a ranked scoreboard
type ScoreboardEntry struct {
	// Rank is the 1-based position, highest score first
	Rank int

	// PlayerID is the unique identifier of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the player's banked score
	Score int
}
