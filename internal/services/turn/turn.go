package turn

import (
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/zombiedice/internal/cup"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
)

// Turn is one player's turn. It owns the player's hand from Begin until it
// reaches a terminal state, at which point every held die is back in the cup.
type Turn struct {
	rules  *models.Rules
	roller dice.Roller
	cup    *cup.Cup
	player *models.Player

	hand   []*models.Die
	totals models.Totals
	rolls  int
	state  State
	result Result
}

func newTurn(rules *models.Rules, roller dice.Roller, c *cup.Cup, player *models.Player) *Turn {
	return &Turn{
		rules:  rules,
		roller: roller,
		cup:    c,
		player: player,
		state:  StateAwaitingAction,
	}
}

// State returns where the turn is in its lifecycle
func (t *Turn) State() State {
	return t.state
}

// Totals returns the running tally
func (t *Turn) Totals() models.Totals {
	return t.totals
}

// Rolls returns the number of roll actions taken
func (t *Turn) Rolls() int {
	return t.rolls
}

// Result returns the terminal result, or nil while the turn is live
func (t *Turn) Result() Result {
	return t.result
}

// Hand returns a snapshot of the dice currently held
func (t *Turn) Hand() []models.RolledDie {
	hand := make([]models.RolledDie, 0, len(t.hand))
	for _, d := range t.hand {
		hand = append(hand, d.Snapshot())
	}
	return hand
}

// Finish banks the turn's brains and ends the turn
func (t *Turn) Finish() (Result, error) {
	if t.state != StateAwaitingAction {
		return nil, ErrTurnOver
	}
	return t.end(models.TurnOutcomeFinished)
}

// Roll rerolls held footprints, tops up from the cup to the per-roll dice
// count, rolls, and decides whether the turn goes on.
func (t *Turn) Roll() (*RollOutput, error) {
	if t.state != StateAwaitingAction {
		return nil, ErrTurnOver
	}
	t.state = StateRolling
	t.rolls++

	out := &RollOutput{}
	rerolls, kept := t.partitionFootprints()
	need := t.rules.DicePerRoll - len(rerolls)

	drawn, err := t.cup.Draw(need)
	if errors.Is(err, cup.ErrInsufficientSupply) {
		var returned int
		drawn, kept, returned, err = t.drawAfterReturningBrains(need, kept, rerolls)
		out.ReturnedBrains = returned
		if errors.Is(err, cup.ErrInsufficientSupply) {
			// Running out of dice is not the player's fault; keep what they have.
			res, endErr := t.end(models.TurnOutcomeOutOfDice)
			if endErr != nil {
				return nil, endErr
			}
			out.Totals = t.totals
			out.Result = res
			return out, nil
		}
	}
	if err != nil {
		return nil, t.violation(err)
	}

	for _, d := range drawn {
		t.tally(dice.RollFace(t.roller, d))
		out.Drawn = append(out.Drawn, d.Snapshot())
	}
	for _, d := range rerolls {
		t.tally(dice.RollFace(t.roller, d))
		out.Rerolled = append(out.Rerolled, d.Snapshot())
	}

	hand := make([]*models.Die, 0, len(kept)+len(drawn)+len(rerolls))
	hand = append(hand, kept...)
	hand = append(hand, drawn...)
	t.hand = append(hand, rerolls...)

	if err := t.checkConservation(); err != nil {
		return nil, err
	}

	out.Result, err = t.evaluate()
	if err != nil {
		return nil, err
	}
	out.Totals = t.totals
	return out, nil
}

// partitionFootprints splits the hand into footprint dice to reroll, capped
// at the per-roll dice count, and everything else.
func (t *Turn) partitionFootprints() (rerolls, kept []*models.Die) {
	for _, d := range t.hand {
		if d.Face == models.FaceFootprint && len(rerolls) < t.rules.DicePerRoll {
			rerolls = append(rerolls, d)
			continue
		}
		kept = append(kept, d)
	}
	return rerolls, kept
}

// drawAfterReturningBrains puts the brain dice from kept back in the cup and
// retries the draw once. It returns the dice drawn, what is left of kept and
// how many brain dice went back.
func (t *Turn) drawAfterReturningBrains(need int, kept, rerolls []*models.Die) ([]*models.Die, []*models.Die, int, error) {
	var brains, rest []*models.Die
	for _, d := range kept {
		if d.Face == models.FaceBrain {
			brains = append(brains, d)
		} else {
			rest = append(rest, d)
		}
	}
	if len(brains) == 0 {
		return nil, kept, 0, cup.ErrInsufficientSupply
	}

	if err := t.cup.Return(brains...); err != nil {
		return nil, kept, 0, err
	}
	t.hand = append(append([]*models.Die(nil), rest...), rerolls...)
	if err := t.checkConservation(); err != nil {
		return nil, rest, len(brains), err
	}

	drawn, err := t.cup.Draw(need)
	return drawn, rest, len(brains), err
}

func (t *Turn) tally(face models.Face) {
	switch face {
	case models.FaceBrain:
		t.totals.Brains++
	case models.FaceShotgun:
		t.totals.Shotguns++
	case models.FaceFootprint:
		t.totals.Footprints++
	}
}

// evaluate applies the termination checks in order: bust, then goal.
func (t *Turn) evaluate() (Result, error) {
	if t.totals.Shotguns >= t.rules.BustThreshold {
		return t.end(models.TurnOutcomeBusted)
	}
	if t.player.Score+t.totals.Brains >= t.rules.TargetScore {
		return t.end(models.TurnOutcomeGoalReached)
	}
	t.state = StateAwaitingAction
	return Continue{Totals: t.totals}, nil
}

// end banks (unless busted), drains the hand and moves to a terminal state
func (t *Turn) end(outcome models.TurnOutcome) (Result, error) {
	if err := t.release(); err != nil {
		return nil, err
	}

	if outcome == models.TurnOutcomeBusted {
		t.state = StateBusted
		t.result = Busted{Totals: t.totals}
		return t.result, nil
	}

	t.player.Score += t.totals.Brains
	t.state = StateFinished
	t.result = Finished{
		Banked: t.totals.Brains,
		Reason: outcome,
		Totals: t.totals,
	}
	return t.result, nil
}

// release returns every held die to the cup
func (t *Turn) release() error {
	if len(t.hand) > 0 {
		if err := t.cup.Return(t.hand...); err != nil {
			return t.violation(err)
		}
	}
	t.hand = nil
	return t.checkConservation()
}

// abandon drains the hand without banking. Used when the turn cannot be
// driven any further, e.g. the chooser failed.
func (t *Turn) abandon() error {
	if t.state.IsTerminal() {
		return nil
	}
	if err := t.release(); err != nil {
		return err
	}
	t.state = StateBusted
	t.result = Busted{Totals: t.totals}
	return nil
}

func (t *Turn) checkConservation() error {
	if t.cup.Len()+len(t.hand) != t.cup.Total() {
		return fmt.Errorf("%w: cup holds %d, hand holds %d, expected %d in total",
			ErrInvariantViolation, t.cup.Len(), len(t.hand), t.cup.Total())
	}
	for _, d := range t.hand {
		if t.cup.Contains(d.ID) {
			return fmt.Errorf("%w: die %s is in the cup and in a hand", ErrInvariantViolation, d.ID)
		}
	}
	return nil
}

func (t *Turn) violation(err error) error {
	if errors.Is(err, ErrInvariantViolation) {
		return err
	}
	log.Printf("turn for %s: invariant violation: %v", t.player.Name, err)
	return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
}
