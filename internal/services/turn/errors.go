package turn

// Error is a custom error type for turn-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTurnOver           Error = "turn is already over"
	ErrInvariantViolation Error = "dice bookkeeping invariant violated"
	ErrCupNotFull         Error = "cup must hold every die before a turn begins"
	ErrUnknownAction      Error = "unknown action"
	ErrNilConfig          Error = "config cannot be nil"
	ErrNilRules           Error = "rules cannot be nil"
	ErrNilDiceRoller      Error = "dice roller cannot be nil"
	ErrNilPlayer          Error = "player cannot be nil"
	ErrNilCup             Error = "cup cannot be nil"
	ErrNilChooser         Error = "action chooser cannot be nil"
)
