package dice

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
)

// Roller provides dice rolling functionality
//
//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/zombiedice/internal/dice Roller
type Roller interface {
	// Roll returns a uniformly random value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomRoller is a Roller backed by math/rand. It is not safe for
// concurrent use; the game never rolls from two goroutines.
type RandomRoller struct {
	random *rand.Rand
	seed   int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
}

// Seed returns the seed the roller was created with
func (r *RandomRoller) Seed() int64 {
	return r.seed
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// RollFace rolls a die, picking uniformly from its face multiset
func RollFace(r Roller, die *models.Die) models.Face {
	die.Face = die.Faces[r.Roll(len(die.Faces))-1]
	return die.Face
}

// Shuffle permutes n elements in place with Fisher-Yates, using swap to
// exchange positions i and j.
func Shuffle(r Roller, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Roll(i+1) - 1
		swap(i, j)
	}
}
