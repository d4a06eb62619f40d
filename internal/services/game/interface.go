package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombiedice/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame validates the roster, shuffles seating and persists a new game
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// PlayRound gives every contender one turn and resolves the round
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// PlayGame plays rounds until somebody wins
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)

	// GetGame returns a game and its players in seat order
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetScoreboard returns the current standings for a game
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// GetTurnHistory returns every turn of a game in the order played
	GetTurnHistory(ctx context.Context, input *GetTurnHistoryInput) (*GetTurnHistoryOutput, error)

	// GetPlayerStats returns a player's turn counters
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}
