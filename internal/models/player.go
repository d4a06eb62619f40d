package models

// Player is a seated participant in a game
type Player struct {
	// ID is the unique identifier of the player
	ID string

	// GameID is the game the player is seated in
	GameID string

	// Name is the display name, unique within the game
	Name string

	// Seat is the player's position in the shuffled turn order
	Seat int

	// Score is the number of brains banked so far
	Score int
}
