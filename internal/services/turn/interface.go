package turn

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombiedice/internal/services/turn Service,Chooser,Observer

import (
	"context"

	"github.com/KirkDiggler/zombiedice/internal/models"
)

// Service runs single-player turns against a shared cup
type Service interface {
	// Begin starts a turn that the caller drives with Roll and Finish
	Begin(ctx context.Context, input *BeginInput) (*BeginOutput, error)

	// Play runs a whole turn, asking the chooser for every decision
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}

// Chooser supplies the active player's decisions
type Chooser interface {
	// ChooseAction blocks until the player picks roll or finish
	ChooseAction(ctx context.Context, request *ActionRequest) (models.Action, error)
}

// Observer receives structured events as play progresses
type Observer interface {
	Observe(ctx context.Context, event models.Event)
}
