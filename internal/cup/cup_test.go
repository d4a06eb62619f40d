package cup

import (
	"errors"
	"fmt"
	"testing"

	uuidMocks "github.com/KirkDiggler/zombiedice/internal/common/uuid/mocks"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CupTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	roller   *dice.RandomRoller
	cup      *Cup
	nextID   int
}

func (s *CupTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.nextID = 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("die-%02d", s.nextID)
	}).AnyTimes()

	s.roller = dice.New(&dice.Config{Seed: 7})

	c, err := New(&Config{
		Rules:         models.DefaultRules(),
		Roller:        s.roller,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.cup = c
}

func (s *CupTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCupTestSuite(t *testing.T) {
	suite.Run(t, new(CupTestSuite))
}

func (s *CupTestSuite) TestNewFillsStandardComposition() {
	s.Equal(13, s.cup.Len())
	s.Equal(13, s.cup.Total())
	s.Equal(map[models.Color]int{
		models.ColorGreen:  6,
		models.ColorYellow: 4,
		models.ColorRed:    3,
	}, s.cup.Counts())
}

func (s *CupTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Roller: s.roller, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRules)

	_, err = New(&Config{Rules: models.DefaultRules(), UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{Rules: models.DefaultRules(), Roller: s.roller})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	rules := models.DefaultRules()
	rules.DicePerRoll = 0
	_, err = New(&Config{Rules: rules, Roller: s.roller, UUIDGenerator: s.mockUUID})
	s.Error(err)
}

func (s *CupTestSuite) TestDrawRemovesDistinctDice() {
	drawn, err := s.cup.Draw(3)
	s.Require().NoError(err)
	s.Len(drawn, 3)
	s.Equal(10, s.cup.Len())

	ids := map[string]bool{}
	for _, d := range drawn {
		s.False(ids[d.ID], "die drawn twice")
		ids[d.ID] = true
		s.False(s.cup.Contains(d.ID))
		s.True(s.cup.Owns(d.ID))
		s.Equal(models.FaceNone, d.Face)
	}
}

func (s *CupTestSuite) TestDrawZero() {
	drawn, err := s.cup.Draw(0)
	s.Require().NoError(err)
	s.Empty(drawn)
	s.Equal(13, s.cup.Len())
}

func (s *CupTestSuite) TestDrawNegative() {
	_, err := s.cup.Draw(-1)
	s.ErrorIs(err, ErrInvalidCount)
}

func (s *CupTestSuite) TestDrawMoreThanAvailableDoesNotClamp() {
	_, err := s.cup.Draw(11)
	s.Require().NoError(err)

	drawn, err := s.cup.Draw(3)
	s.ErrorIs(err, ErrInsufficientSupply)
	s.Nil(drawn)
	s.Equal(2, s.cup.Len())
}

func (s *CupTestSuite) TestReturnRestoresDice() {
	drawn, err := s.cup.Draw(5)
	s.Require().NoError(err)

	s.Require().NoError(s.cup.Return(drawn...))
	s.Equal(13, s.cup.Len())
	for _, d := range drawn {
		s.True(s.cup.Contains(d.ID))
	}
}

func (s *CupTestSuite) TestReturnDieAlreadyInCup() {
	drawn, err := s.cup.Draw(2)
	s.Require().NoError(err)
	s.Require().NoError(s.cup.Return(drawn[0]))

	err = s.cup.Return(drawn...)
	s.ErrorIs(err, ErrNotOwnedByPool)
	s.Equal(12, s.cup.Len(), "failed return must not move any die")
	s.False(s.cup.Contains(drawn[1].ID))
}

func (s *CupTestSuite) TestReturnSameDieTwiceInOneCall() {
	drawn, err := s.cup.Draw(1)
	s.Require().NoError(err)

	err = s.cup.Return(drawn[0], drawn[0])
	s.ErrorIs(err, ErrNotOwnedByPool)
	s.Equal(12, s.cup.Len())
}

func (s *CupTestSuite) TestReturnForeignDie() {
	err := s.cup.Return(&models.Die{ID: "die-99", Color: models.ColorRed})
	s.ErrorIs(err, ErrForeignDie)

	// Same ID as a real die, different instance.
	drawn, err := s.cup.Draw(1)
	s.Require().NoError(err)
	impostor := *drawn[0]
	err = s.cup.Return(&impostor)
	s.ErrorIs(err, ErrForeignDie)

	err = s.cup.Return(nil)
	s.ErrorIs(err, ErrForeignDie)
}

func (s *CupTestSuite) TestConservationUnderRandomTransfers() {
	var hand []*models.Die
	for step := 0; step < 500; step++ {
		if s.roller.Roll(2) == 1 {
			n := s.roller.Roll(4) - 1
			available := s.cup.Len()
			drawn, err := s.cup.Draw(n)
			if n > available {
				s.Require().True(errors.Is(err, ErrInsufficientSupply))
			} else {
				s.Require().NoError(err)
				hand = append(hand, drawn...)
			}
		} else if len(hand) > 0 {
			k := s.roller.Roll(len(hand))
			s.Require().NoError(s.cup.Return(hand[:k]...))
			hand = hand[k:]
		}

		s.Require().Equal(13, s.cup.Len()+len(hand))
		for _, d := range hand {
			s.Require().False(s.cup.Contains(d.ID))
		}
	}
}
