package turn_ledger

import "github.com/KirkDiggler/zombiedice/internal/models"

// AddTurnRecordInput contains parameters for adding a turn record
type AddTurnRecordInput struct {
	Record *models.TurnRecord
}

// GetTurnRecordsForGameInput contains parameters for retrieving turn records for a game
type GetTurnRecordsForGameInput struct {
	GameID string
}

// GetTurnRecordsForGameOutput contains the result of retrieving turn records for a game
type GetTurnRecordsForGameOutput struct {
	Records []*models.TurnRecord
}

// GetTurnRecordsForPlayerInput contains parameters for retrieving turn records for a player
type GetTurnRecordsForPlayerInput struct {
	PlayerID string
}

// GetTurnRecordsForPlayerOutput contains the result of retrieving turn records for a player
type GetTurnRecordsForPlayerOutput struct {
	Records []*models.TurnRecord
}

// GetPlayerStatsInput contains parameters for retrieving a player's counters
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains a player's counters
type GetPlayerStatsOutput struct {
	Turns        int
	Busts        int
	BrainsBanked int
	GoalsReached int
	OutOfDice    int
}
