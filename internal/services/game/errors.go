package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrGameCompleted     GameError = "game already has a winner"
	ErrPlayerMissing     GameError = "seated player not found"
	ErrMissingGameID     GameError = "game ID cannot be empty"
	ErrTooFewPlayers     GameError = "not enough players"
	ErrTooManyPlayers    GameError = "too many players"
	ErrNameTooShort      GameError = "player name is too short"
	ErrNameTooLong       GameError = "player name is too long"
	ErrDuplicateName     GameError = "player name is already taken"
	ErrRoundLimitReached GameError = "round limit reached without a winner"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilGameRepo       GameError = "game repository cannot be nil"
	ErrNilPlayerRepo     GameError = "player repository cannot be nil"
	ErrNilTurnLedgerRepo GameError = "turn ledger repository cannot be nil"
	ErrNilTurnService    GameError = "turn service cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
	ErrNilChooser        GameError = "action chooser cannot be nil"
)
