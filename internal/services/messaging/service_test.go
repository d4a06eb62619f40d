package messaging

import (
	"context"
	"testing"

	diceMocks "github.com/KirkDiggler/zombiedice/internal/dice/mocks"
	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	service        Service
	ctx            context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestTurnEndMessageByOutcome() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	testCases := []struct {
		name     string
		input    *GetTurnEndMessageInput
		tone     MessageTone
		contains string
	}{
		{
			name:     "busted",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeBusted, Score: 4},
			tone:     ToneSarcastic,
			contains: "Busted",
		},
		{
			name:     "goal reached",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeGoalReached, Banked: 2, Score: 13},
			tone:     ToneCelebration,
			contains: "13 brains",
		},
		{
			name:     "out of dice",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeOutOfDice, Banked: 6, Score: 9},
			tone:     ToneNeutral,
			contains: "banks 6",
		},
		{
			name:     "finished empty handed",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeFinished},
			tone:     ToneSarcastic,
			contains: "Romero",
		},
		{
			name:     "finished with a feast",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeFinished, Banked: 6, Score: 8},
			tone:     ToneEncouraging,
			contains: "banks 6",
		},
		{
			name:     "finished",
			input:    &GetTurnEndMessageInput{PlayerName: "Romero", Outcome: models.TurnOutcomeFinished, Banked: 2, Score: 5},
			tone:     ToneNeutral,
			contains: "Score: 5",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.GetTurnEndMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.tone, out.Tone)
			s.Contains(out.Message, tc.contains)
		})
	}
}

func (s *MessagingServiceTestSuite) TestPickUsesRollerWithinRange() {
	s.mockDiceRoller.EXPECT().Roll(2).Return(2)

	out, err := s.service.GetBrainsReturnedMessage(s.ctx, &GetBrainsReturnedMessageInput{PlayerName: "Romero", Count: 2})
	s.Require().NoError(err)
	s.Equal("🤤 The cup ran dry. Romero spits 2 brains back in, points kept.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRoundResultMessages() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	winner, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Kind:       models.RoundWinner,
		WinnerName: "Romero",
	})
	s.Require().NoError(err)
	s.Equal("🧟🏆 Romero wins the game! 🎉 🎉 🎉", winner.Message)
	s.Equal(ToneCelebration, winner.Tone)

	tie, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Kind:      models.RoundTie,
		TiedNames: []string{"Romero", "Fulci"},
	})
	s.Require().NoError(err)
	s.Contains(tie.Message, "Romero, Fulci")

	none, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Kind:   models.RoundNoWinner,
		Target: 13,
	})
	s.Require().NoError(err)
	s.Equal("No one has reached 13 points yet! Next round!", none.Message)

	_, err = s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{Kind: "draw"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestTurnStartMessage() {
	s.mockDiceRoller.EXPECT().Roll(4).Return(4)

	out, err := s.service.GetTurnStartMessage(s.ctx, &GetTurnStartMessageInput{
		PlayerName: "Romero",
		Score:      11,
		Target:     13,
	})
	s.Require().NoError(err)
	s.Equal("Romero is 2 brains from glory. Don't choke now.", out.Message)

	s.mockDiceRoller.EXPECT().Roll(3).Return(1)
	out, err = s.service.GetTurnStartMessage(s.ctx, &GetTurnStartMessageInput{PlayerName: "Romero", TieBreak: true})
	s.Require().NoError(err)
	s.Equal(ToneFunny, out.Tone)
	s.Contains(out.Message, "Tie-break")
}
