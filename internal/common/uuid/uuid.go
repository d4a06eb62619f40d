package uuid

import "github.com/google/uuid"

// UUID hands out identifiers for games, players, dice and turn records
//
//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/zombiedice/internal/common/uuid UUID
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random version 4 UUIDs
type DefaultUUID struct{}

// New creates a random UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
