package player

import "github.com/KirkDiggler/zombiedice/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// SavePlayersInput contains parameters for saving several players
type SavePlayersInput struct {
	Players []*models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInGameInput contains parameters for retrieving players in a game
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the result of retrieving players in a game
type GetPlayersInGameOutput struct {
	Players []*models.Player
}
