package models

// Event is a structured notification for whatever presents the game.
// The set of events is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// TurnStarted is emitted before a player's first decision
type TurnStarted struct {
	GameID   string
	Player   Player
	Round    int
	TieBreak bool
}

// DiceDrawn is emitted when dice leave the cup for a roll
type DiceDrawn struct {
	PlayerID string
	Colors   []Color
}

// DiceRerolled is emitted when footprint dice from the hand are rolled again
type DiceRerolled struct {
	PlayerID string
	Colors   []Color
}

// BrainsReturned is emitted when the cup runs short and brain dice go back
// into it. Banked points are not affected.
type BrainsReturned struct {
	PlayerID string
	Count    int
}

// DiceRolled carries every face of a single roll action
type DiceRolled struct {
	PlayerID string
	Dice     []RolledDie
	Totals   Totals
}

// TurnEnded is emitted once per turn
type TurnEnded struct {
	PlayerID string
	Outcome  TurnOutcome
	Banked   int
	Score    int
	Totals   Totals
}

// RoundResultKind classifies what a round decided
type RoundResultKind string

const (
	// RoundNoWinner means nobody reached the target
	RoundNoWinner RoundResultKind = "no_winner"

	// RoundWinner means exactly one player won
	RoundWinner RoundResultKind = "winner"

	// RoundTie means several players reached the target together
	RoundTie RoundResultKind = "tie"
)

// RoundEnded is emitted after every contender has taken a turn
type RoundEnded struct {
	GameID    string
	Round     int
	TieBreak  bool
	Kind      RoundResultKind
	WinnerID  string
	TiedIDs   []string
	Standings []ScoreboardEntry
}

// TieBreakStarted is emitted when tied players have been reset to zero
type TieBreakStarted struct {
	GameID    string
	PlayerIDs []string
	Names     []string
}

// GameEnded is emitted once, with the final scoreboard
type GameEnded struct {
	GameID     string
	WinnerID   string
	WinnerName string
	Scoreboard []ScoreboardEntry
}

func (TurnStarted) isEvent()     {}
func (DiceDrawn) isEvent()       {}
func (DiceRerolled) isEvent()    {}
func (BrainsReturned) isEvent()  {}
func (DiceRolled) isEvent()      {}
func (TurnEnded) isEvent()       {}
func (RoundEnded) isEvent()      {}
func (TieBreakStarted) isEvent() {}
func (GameEnded) isEvent()       {}
