package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
)

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		roller: cfg.DiceRoller,
	}, nil
}

// pick selects one of the candidate messages at random
func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(len(messages))-1]
}

// GetTurnStartMessage returns a line announcing whose turn it is
func (s *service) GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*GetTurnStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TieBreak {
		return &GetTurnStartMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("Tie-break! %s starts from zero. 🧟", input.PlayerName),
				fmt.Sprintf("%s, it's just you and the other hungry ones now.", input.PlayerName),
				fmt.Sprintf("Sudden death for %s. Well, sudden undeath.", input.PlayerName),
			}),
			Tone: ToneFunny,
		}, nil
	}

	need := input.Target - input.Score
	messages := []string{
		fmt.Sprintf("It's your turn %s 🧟", input.PlayerName),
		fmt.Sprintf("%s shambles up to the cup. 🧟", input.PlayerName),
		fmt.Sprintf("Grrr... %s smells brains. 🧠", input.PlayerName),
	}
	if need <= 3 {
		messages = append(messages,
			fmt.Sprintf("%s is %d brains from glory. Don't choke now.", input.PlayerName, need),
		)
	}

	return &GetTurnStartMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneNeutral,
	}, nil
}

// GetTurnEndMessage returns a line describing how a turn ended
func (s *service) GetTurnEndMessage(ctx context.Context, input *GetTurnEndMessageInput) (*GetTurnEndMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	switch input.Outcome {
	case models.TurnOutcomeBusted:
		tone = ToneSarcastic
		messages = []string{
			"☠️  Busted, you got too many shotguns. The score of this turn is lost. ☠️",
			fmt.Sprintf("☠️  %s ate three shotguns. Nothing banked.", input.PlayerName),
			fmt.Sprintf("☠️  Headshot! %s goes home hungry.", input.PlayerName),
			fmt.Sprintf("☠️  The humans fought back. %s keeps %d brains.", input.PlayerName, input.Score),
		}
	case models.TurnOutcomeGoalReached:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("🧠 %s reached %d brains! The turn ends right there.", input.PlayerName, input.Score),
			fmt.Sprintf("🧠 That's enough brains for now, %s. %d and counting.", input.PlayerName, input.Score),
		}
	case models.TurnOutcomeOutOfDice:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("⏭️ Out of dice in the cup, turn is over. %s banks %d.", input.PlayerName, input.Banked),
			fmt.Sprintf("⏭️ The cup is empty. %s keeps %d brains.", input.PlayerName, input.Banked),
		}
	default:
		switch {
		case input.Banked == 0:
			tone = ToneSarcastic
			messages = []string{
				fmt.Sprintf("%s stops without a single brain. Bold strategy.", input.PlayerName),
				fmt.Sprintf("%s chickens out with nothing. Not very zombie of you.", input.PlayerName),
			}
		case input.Banked >= 5:
			tone = ToneEncouraging
			messages = []string{
				fmt.Sprintf("🧠 What a feast! %s banks %d and now has %d.", input.PlayerName, input.Banked, input.Score),
				fmt.Sprintf("🧠 %s gorged on %d brains. Score: %d.", input.PlayerName, input.Banked, input.Score),
			}
		default:
			tone = ToneNeutral
			messages = []string{
				fmt.Sprintf("%s banks %d. Score: %d.", input.PlayerName, input.Banked, input.Score),
				fmt.Sprintf("%s you have %d points!", input.PlayerName, input.Score),
				fmt.Sprintf("Safe and slow. %s moves to %d.", input.PlayerName, input.Score),
			}
		}
	}

	return &GetTurnEndMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetRoundResultMessage returns a line describing what a round decided
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Kind {
	case models.RoundWinner:
		return &GetRoundResultMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("🧟🏆 %s wins the game! 🎉 🎉 🎉", input.WinnerName),
				fmt.Sprintf("🧟🏆 %s is the hungriest zombie of them all!", input.WinnerName),
			}),
			Tone: ToneCelebration,
		}, nil
	case models.RoundTie:
		tied := strings.Join(input.TiedNames, ", ")
		return &GetRoundResultMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("🧟 It's a tie between %s! Scores go back to zero for a tie-break.", tied),
				fmt.Sprintf("🧟 Too many full stomachs: %s. Back to zero, eat again.", tied),
			}),
			Tone: ToneFunny,
		}, nil
	case models.RoundNoWinner:
		return &GetRoundResultMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("No one has reached %d points yet! Next round!", input.Target),
				fmt.Sprintf("Round %d is over and everyone is still hungry.", input.Round),
			}),
			Tone: ToneNeutral,
		}, nil
	}

	return nil, fmt.Errorf("unknown round result %q", input.Kind)
}

// GetBrainsReturnedMessage returns a line for a short cup
func (s *service) GetBrainsReturnedMessage(ctx context.Context, input *GetBrainsReturnedMessageInput) (*GetBrainsReturnedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetBrainsReturnedMessageOutput{
		Message: s.pick([]string{
			fmt.Sprintf("🤤 Returning %d brains to the cup, %s will not lose any points.", input.Count, input.PlayerName),
			fmt.Sprintf("🤤 The cup ran dry. %s spits %d brains back in, points kept.", input.PlayerName, input.Count),
		}),
		Tone: ToneFunny,
	}, nil
}
