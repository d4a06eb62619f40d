package dice

import (
	"testing"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/stretchr/testify/suite"
)

type RollerTestSuite struct {
	suite.Suite
	roller *RandomRoller
}

func (s *RollerTestSuite) SetupTest() {
	s.roller = New(&Config{Seed: 42})
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestRollStaysInRange() {
	for i := 0; i < 1000; i++ {
		v := s.roller.Roll(6)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *RollerTestSuite) TestRollDefaultsToSixSides() {
	for i := 0; i < 200; i++ {
		v := s.roller.Roll(0)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *RollerTestSuite) TestSameSeedSameSequence() {
	other := New(&Config{Seed: 42})
	for i := 0; i < 50; i++ {
		s.Equal(s.roller.Roll(13), other.Roll(13))
	}
	s.Equal(int64(42), other.Seed())
}

func (s *RollerTestSuite) TestRollFaceUsesDieFaces() {
	die := &models.Die{
		ID:    "die-1",
		Color: models.ColorGreen,
		Faces: models.DefaultRules().Faces[models.ColorGreen],
	}

	seen := map[models.Face]int{}
	for i := 0; i < 600; i++ {
		face := RollFace(s.roller, die)
		s.Equal(face, die.Face)
		seen[face]++
	}

	s.Len(seen, 3)
	s.Greater(seen[models.FaceBrain], seen[models.FaceShotgun])
}

func (s *RollerTestSuite) TestShuffleIsAPermutation() {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(s.roller, len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	s.ElementsMatch([]int{0, 1, 2, 3, 4, 5, 6, 7}, values)
}
