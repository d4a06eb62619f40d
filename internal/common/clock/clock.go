package clock

import "time"

// Clock tells the game services what time it is. Games and turn records
// are stamped through it so tests can pin timestamps.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/zombiedice/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock in UTC
type DefaultClock struct{}

// Now returns the current UTC time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
