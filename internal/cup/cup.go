// Package cup holds the shared, finite set of dice players draw from.
//
// Dice are made once when the cup is created and are never created or
// destroyed afterwards; Draw and Return are the only ways they move.
package cup

import (
	"fmt"

	"github.com/KirkDiggler/zombiedice/internal/common/uuid"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
)

// Config holds configuration for a cup
type Config struct {
	// Rules supplies the composition and face table
	Rules *models.Rules

	// Roller picks which dice are drawn
	Roller dice.Roller

	// UUIDGenerator gives every die its identity
	UUIDGenerator uuid.UUID
}

// Cup is the pool of dice not currently held by any player
type Cup struct {
	roller dice.Roller

	// dice holds the dice currently in the cup; index maps a die ID to its
	// position in dice.
	dice  []*models.Die
	index map[string]int

	// issued is every die this cup ever made
	issued map[string]*models.Die
}

// New creates a cup filled with the rules' composition
func New(cfg *Config) (*Cup, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Rules == nil {
		return nil, ErrNilRules
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	total := cfg.Rules.PoolSize()
	c := &Cup{
		roller: cfg.Roller,
		dice:   make([]*models.Die, 0, total),
		index:  make(map[string]int, total),
		issued: make(map[string]*models.Die, total),
	}

	for _, dc := range cfg.Rules.Composition {
		faces := cfg.Rules.Faces[dc.Color]
		for i := 0; i < dc.Count; i++ {
			die := &models.Die{
				ID:    cfg.UUIDGenerator.NewUUID(),
				Color: dc.Color,
				Faces: append([]models.Face(nil), faces...),
			}
			if _, dup := c.issued[die.ID]; dup {
				return nil, fmt.Errorf("duplicate die id %q", die.ID)
			}
			c.issued[die.ID] = die
			c.push(die)
		}
	}

	return c, nil
}

// Len is the number of dice currently in the cup
func (c *Cup) Len() int {
	return len(c.dice)
}

// Total is the number of dice the cup was created with
func (c *Cup) Total() int {
	return len(c.issued)
}

// Contains reports whether the die with the given ID is in the cup
func (c *Cup) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Owns reports whether the die was made by this cup
func (c *Cup) Owns(id string) bool {
	_, ok := c.issued[id]
	return ok
}

// Counts returns how many dice of each color are in the cup
func (c *Cup) Counts() map[models.Color]int {
	counts := make(map[models.Color]int, len(models.Colors))
	for _, d := range c.dice {
		counts[d.Color]++
	}
	return counts
}

// Draw removes n distinct dice chosen uniformly at random. It never hands
// out fewer than asked: if the cup holds less than n, nothing moves and
// ErrInsufficientSupply is returned.
func (c *Cup) Draw(n int) ([]*models.Die, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if n > len(c.dice) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientSupply, n, len(c.dice))
	}

	drawn := make([]*models.Die, 0, n)
	for i := 0; i < n; i++ {
		pick := c.roller.Roll(len(c.dice)) - 1
		die := c.dice[pick]
		c.remove(pick)
		die.Face = models.FaceNone
		drawn = append(drawn, die)
	}

	return drawn, nil
}

// Return puts dice back in the cup. Every die is checked before any is
// moved, so a failed Return leaves the cup untouched.
func (c *Cup) Return(dice ...*models.Die) error {
	seen := make(map[string]struct{}, len(dice))
	for _, d := range dice {
		if d == nil {
			return fmt.Errorf("%w: nil die", ErrForeignDie)
		}
		if issued, ok := c.issued[d.ID]; !ok || issued != d {
			return fmt.Errorf("%w: %s", ErrForeignDie, d.ID)
		}
		if c.Contains(d.ID) {
			return fmt.Errorf("%w: %s", ErrNotOwnedByPool, d.ID)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: %s returned twice", ErrNotOwnedByPool, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	for _, d := range dice {
		c.push(d)
	}
	return nil
}

func (c *Cup) push(d *models.Die) {
	c.index[d.ID] = len(c.dice)
	c.dice = append(c.dice, d)
}

// remove swaps the die at i with the last one and truncates
func (c *Cup) remove(i int) {
	last := len(c.dice) - 1
	removed := c.dice[i]
	if i != last {
		c.dice[i] = c.dice[last]
		c.index[c.dice[i].ID] = i
	}
	c.dice = c.dice[:last]
	delete(c.index, removed.ID)
}
