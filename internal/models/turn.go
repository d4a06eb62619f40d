package models

import (
	"time"
)

// TurnOutcome is how a turn ended
type TurnOutcome string

const (
	// TurnOutcomeFinished means the player chose to bank
	TurnOutcomeFinished TurnOutcome = "finished"

	// TurnOutcomeGoalReached means the turn ended itself at the target score
	TurnOutcomeGoalReached TurnOutcome = "goal_reached"

	// TurnOutcomeOutOfDice means the cup could not supply a roll
	TurnOutcomeOutOfDice TurnOutcome = "out_of_dice"

	// TurnOutcomeBusted means the shotgun threshold was hit
	TurnOutcomeBusted TurnOutcome = "busted"
)

// Banks reports whether the outcome keeps the turn's brains
func (o TurnOutcome) Banks() bool {
	return o != TurnOutcomeBusted
}

// Totals is the running tally of one turn
type Totals struct {
	Brains     int
	Shotguns   int
	Footprints int
}

// TurnRecord is the ledger entry written when a turn ends
type TurnRecord struct {
	// ID is the unique identifier for the record
	ID string

	// GameID is the game the turn was played in
	GameID string

	// PlayerID is the player who took the turn
	PlayerID string

	// PlayerName is the player's display name at the time
	PlayerName string

	// Round is the game round the turn belongs to
	Round int

	// TieBreak is set for turns played during a tie-break
	TieBreak bool

	// Outcome is how the turn ended
	Outcome TurnOutcome

	// Banked is the number of brains added to the player's score
	Banked int

	// Totals is the turn's tally when it ended
	Totals Totals

	// Rolls is the number of roll actions taken
	Rolls int

	// ScoreAfter is the player's score once the turn was banked
	ScoreAfter int

	// Timestamp is when the turn ended
	Timestamp time.Time
}
