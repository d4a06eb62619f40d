package turn

import (
	"github.com/KirkDiggler/zombiedice/internal/cup"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
)

// Config holds configuration for the turn service
type Config struct {
	// Rules governs draw size, bust and target
	Rules *models.Rules

	// DiceRoller rolls faces
	DiceRoller dice.Roller
}

// State is where a turn is in its lifecycle
type State string

const (
	// StateAwaitingAction waits for roll or finish
	StateAwaitingAction State = "awaiting_action"

	// StateRolling is held while a roll is being resolved
	StateRolling State = "rolling"

	// StateFinished is terminal; brains were banked
	StateFinished State = "finished"

	// StateBusted is terminal; nothing was banked
	StateBusted State = "busted"
)

// IsTerminal reports whether no further actions are accepted
func (s State) IsTerminal() bool {
	return s == StateFinished || s == StateBusted
}

// Result is what a roll or finish leads to. It is one of Continue, Busted
// or Finished.
type Result interface {
	isResult()
}

// Continue means the player decides again
type Continue struct {
	Totals models.Totals
}

// Busted means the shotgun threshold was reached and the turn banked nothing
type Busted struct {
	Totals models.Totals
}

// Finished means the turn ended and Banked brains were added to the score
type Finished struct {
	Banked int
	Reason models.TurnOutcome
	Totals models.Totals
}

func (Continue) isResult() {}
func (Busted) isResult()   {}
func (Finished) isResult() {}

// BeginInput contains parameters for starting a turn
type BeginInput struct {
	// Player is the active player; their score is updated when the turn banks
	Player *models.Player

	// Cup is the shared dice pool, which must be full
	Cup *cup.Cup
}

// BeginOutput contains the started turn
type BeginOutput struct {
	Turn *Turn
}

// RollOutput describes everything one roll action did
type RollOutput struct {
	// Drawn are the dice taken from the cup for this roll, after rolling
	Drawn []models.RolledDie

	// Rerolled are the footprint dice from the hand that were rolled again
	Rerolled []models.RolledDie

	// ReturnedBrains is how many brain dice went back to a short cup
	ReturnedBrains int

	// Totals is the turn's running tally after the roll
	Totals models.Totals

	// Result is what the roll led to
	Result Result
}

// Rolled returns the drawn dice followed by the rerolled ones
func (o *RollOutput) Rolled() []models.RolledDie {
	rolled := make([]models.RolledDie, 0, len(o.Drawn)+len(o.Rerolled))
	rolled = append(rolled, o.Drawn...)
	return append(rolled, o.Rerolled...)
}

// ActionRequest is what the chooser sees when asked for a decision
type ActionRequest struct {
	PlayerID   string
	PlayerName string
	Score      int
	Totals     models.Totals
	Rolls      int
	HandSize   int
	CupSize    int
	Target     int
}

// PlayInput contains parameters for playing a full turn
type PlayInput struct {
	GameID   string
	Player   *models.Player
	Cup      *cup.Cup
	Round    int
	TieBreak bool

	// Chooser is asked for every decision
	Chooser Chooser

	// Observer receives events; optional
	Observer Observer
}

// PlayOutput contains the result of a full turn
type PlayOutput struct {
	Outcome models.TurnOutcome
	Banked  int
	Totals  models.Totals
	Rolls   int
	Score   int
}
