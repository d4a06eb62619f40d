package turn

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/KirkDiggler/zombiedice/internal/services/turn")

// service implements the Service interface
type service struct {
	rules  *models.Rules
	roller dice.Roller
}

// New creates a new turn service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Rules == nil {
		return nil, ErrNilRules
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &service{
		rules:  cfg.Rules,
		roller: cfg.DiceRoller,
	}, nil
}

// Begin starts a turn. The cup must be full: the previous hand has to be
// drained before anyone draws again.
func (s *service) Begin(ctx context.Context, input *BeginInput) (*BeginOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}
	if input.Cup == nil {
		return nil, ErrNilCup
	}
	if input.Cup.Len() != input.Cup.Total() {
		return nil, fmt.Errorf("%w: %d of %d dice present", ErrCupNotFull, input.Cup.Len(), input.Cup.Total())
	}

	return &BeginOutput{
		Turn: newTurn(s.rules, s.roller, input.Cup, input.Player),
	}, nil
}

// Play runs a whole turn. Decisions come from the chooser; every draw,
// roll and the final outcome are reported to the observer.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}
	if input.Chooser == nil {
		return nil, ErrNilChooser
	}

	ctx, span := tracer.Start(ctx, "turn.play")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("player.id", input.Player.ID),
		attribute.Int("game.round", input.Round),
		attribute.Bool("game.tie_break", input.TieBreak),
	)

	began, err := s.Begin(ctx, &BeginInput{Player: input.Player, Cup: input.Cup})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	t := began.Turn

	notify := func(event models.Event) {
		if input.Observer != nil {
			input.Observer.Observe(ctx, event)
		}
	}

	notify(models.TurnStarted{
		GameID:   input.GameID,
		Player:   *input.Player,
		Round:    input.Round,
		TieBreak: input.TieBreak,
	})

	var result Result
	for result == nil {
		action, err := input.Chooser.ChooseAction(ctx, &ActionRequest{
			PlayerID:   input.Player.ID,
			PlayerName: input.Player.Name,
			Score:      input.Player.Score,
			Totals:     t.Totals(),
			Rolls:      t.Rolls(),
			HandSize:   len(t.hand),
			CupSize:    input.Cup.Len(),
			Target:     s.rules.TargetScore,
		})
		if err != nil {
			if abandonErr := t.abandon(); abandonErr != nil {
				err = abandonErr
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to choose action: %w", err)
		}

		var res Result
		switch action {
		case models.ActionRoll:
			out, err := t.Roll()
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			s.notifyRoll(input.Player.ID, out, notify)
			res = out.Result
		case models.ActionFinish:
			res, err = t.Finish()
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
		default:
			if abandonErr := t.abandon(); abandonErr != nil {
				return nil, abandonErr
			}
			err := fmt.Errorf("%w: %v", ErrUnknownAction, action)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		switch r := res.(type) {
		case Continue:
		case Busted, Finished:
			result = r
		default:
			return nil, fmt.Errorf("%w: unhandled result %T", ErrInvariantViolation, res)
		}
	}

	output := &PlayOutput{
		Totals: t.Totals(),
		Rolls:  t.Rolls(),
		Score:  input.Player.Score,
	}
	switch r := result.(type) {
	case Busted:
		output.Outcome = models.TurnOutcomeBusted
	case Finished:
		output.Outcome = r.Reason
		output.Banked = r.Banked
	}

	notify(models.TurnEnded{
		PlayerID: input.Player.ID,
		Outcome:  output.Outcome,
		Banked:   output.Banked,
		Score:    output.Score,
		Totals:   output.Totals,
	})

	span.SetAttributes(
		attribute.String("turn.outcome", string(output.Outcome)),
		attribute.Int("turn.banked", output.Banked),
		attribute.Int("turn.rolls", output.Rolls),
	)
	return output, nil
}

func (s *service) notifyRoll(playerID string, out *RollOutput, notify func(models.Event)) {
	if out.ReturnedBrains > 0 {
		notify(models.BrainsReturned{PlayerID: playerID, Count: out.ReturnedBrains})
	}
	if len(out.Drawn) > 0 {
		notify(models.DiceDrawn{PlayerID: playerID, Colors: colorsOf(out.Drawn)})
	}
	if len(out.Rerolled) > 0 {
		notify(models.DiceRerolled{PlayerID: playerID, Colors: colorsOf(out.Rerolled)})
	}
	if rolled := out.Rolled(); len(rolled) > 0 {
		notify(models.DiceRolled{PlayerID: playerID, Dice: rolled, Totals: out.Totals})
	}
}

func colorsOf(dice []models.RolledDie) []models.Color {
	colors := make([]models.Color, 0, len(dice))
	for _, d := range dice {
		colors = append(colors, d.Color)
	}
	return colors
}
