package turn_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/zombiedice/internal/repositories/turn_ledger Repository

import (
	"context"
)

// Repository defines the interface for turn ledger persistence
type Repository interface {
	// AddTurnRecord appends a finished turn to the ledger
	AddTurnRecord(ctx context.Context, input *AddTurnRecordInput) error

	// GetTurnRecordsForGame retrieves every turn of a game in the order played
	GetTurnRecordsForGame(ctx context.Context, input *GetTurnRecordsForGameInput) (*GetTurnRecordsForGameOutput, error)

	// GetTurnRecordsForPlayer retrieves every turn a player took in the order played
	GetTurnRecordsForPlayer(ctx context.Context, input *GetTurnRecordsForPlayerInput) (*GetTurnRecordsForPlayerOutput, error)

	// GetPlayerStats retrieves aggregate counters for a player
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}
