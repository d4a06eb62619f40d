package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombiedice/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetTurnStartMessage returns a line announcing whose turn it is
	GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*GetTurnStartMessageOutput, error)

	// GetTurnEndMessage returns a line describing how a turn ended
	GetTurnEndMessage(ctx context.Context, input *GetTurnEndMessageInput) (*GetTurnEndMessageOutput, error)

	// GetRoundResultMessage returns a line describing what a round decided
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetBrainsReturnedMessage returns a line for a short cup
	GetBrainsReturnedMessage(ctx context.Context, input *GetBrainsReturnedMessageInput) (*GetBrainsReturnedMessageOutput, error)
}
