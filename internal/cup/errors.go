package cup

// Error is the error type returned by cup operations
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInsufficientSupply Error = "not enough dice in the cup"
	ErrNotOwnedByPool     Error = "die is already in the cup"
	ErrForeignDie         Error = "die does not belong to this cup"
	ErrInvalidCount       Error = "draw count cannot be negative"
	ErrNilConfig          Error = "config cannot be nil"
	ErrNilRules           Error = "rules cannot be nil"
	ErrNilRoller          Error = "dice roller cannot be nil"
	ErrNilUUIDGenerator   Error = "UUID generator cannot be nil"
)
