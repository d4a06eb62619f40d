package models

import (
	"errors"
	"fmt"
)

// TieBreakMode selects how a tie at the target score is resolved
type TieBreakMode string

const (
	// TieBreakThreshold plays rounds among the tied players until exactly
	// one of them reaches the target score again
	TieBreakThreshold TieBreakMode = "threshold"

	// TieBreakSingleRound plays one round among the tied players and the
	// single highest score wins; equal highs play again
	TieBreakSingleRound TieBreakMode = "single_round"
)

// DiceCount is how many dice of one color are in the cup
type DiceCount struct {
	Color Color
	Count int
}

// Rules holds every constant that governs play
type Rules struct {
	// Composition is the number of dice of each color in the cup
	Composition []DiceCount

	// Faces maps each color to its six-entry face multiset
	Faces map[Color][]Face

	// DicePerRoll is how many dice a roll handles, rerolled footprints included
	DicePerRoll int

	// BustThreshold is the shotgun count that ends a turn with nothing banked
	BustThreshold int

	// TargetScore is the score that wins the game
	TargetScore int

	// TieBreak selects how ties at the target are resolved
	TieBreak TieBreakMode
}

// DefaultRules returns the standard 6/4/3 cup, three dice per roll, bust on
// three shotguns and thirteen brains to win.
func DefaultRules() *Rules {
	return &Rules{
		Composition: []DiceCount{
			{Color: ColorGreen, Count: 6},
			{Color: ColorYellow, Count: 4},
			{Color: ColorRed, Count: 3},
		},
		Faces: map[Color][]Face{
			ColorGreen:  faceSet(1, 2, 3),
			ColorYellow: faceSet(2, 2, 2),
			ColorRed:    faceSet(3, 2, 1),
		},
		DicePerRoll:   3,
		BustThreshold: 3,
		TargetScore:   13,
		TieBreak:      TieBreakThreshold,
	}
}

func faceSet(shotguns, footprints, brains int) []Face {
	faces := make([]Face, 0, shotguns+footprints+brains)
	for i := 0; i < shotguns; i++ {
		faces = append(faces, FaceShotgun)
	}
	for i := 0; i < footprints; i++ {
		faces = append(faces, FaceFootprint)
	}
	for i := 0; i < brains; i++ {
		faces = append(faces, FaceBrain)
	}
	return faces
}

// PoolSize is the total number of dice the composition puts in the cup
func (r *Rules) PoolSize() int {
	total := 0
	for _, c := range r.Composition {
		total += c.Count
	}
	return total
}

// Validate reports the first inconsistency in the rule set
func (r *Rules) Validate() error {
	if r == nil {
		return errors.New("rules cannot be nil")
	}
	if len(r.Composition) == 0 {
		return errors.New("cup composition cannot be empty")
	}
	for _, c := range r.Composition {
		if c.Count < 0 {
			return fmt.Errorf("negative dice count for %s", c.Color)
		}
		faces, ok := r.Faces[c.Color]
		if !ok || len(faces) == 0 {
			return fmt.Errorf("no faces configured for %s dice", c.Color)
		}
		for _, f := range faces {
			if f != FaceShotgun && f != FaceFootprint && f != FaceBrain {
				return fmt.Errorf("invalid face %q on %s dice", f, c.Color)
			}
		}
	}
	if r.DicePerRoll < 1 {
		return errors.New("dice per roll must be positive")
	}
	if r.PoolSize() < r.DicePerRoll {
		return fmt.Errorf("cup holds %d dice, fewer than the %d needed per roll", r.PoolSize(), r.DicePerRoll)
	}
	if r.BustThreshold < 1 {
		return errors.New("bust threshold must be positive")
	}
	if r.TargetScore < 1 {
		return errors.New("target score must be positive")
	}
	switch r.TieBreak {
	case TieBreakThreshold, TieBreakSingleRound:
	default:
		return fmt.Errorf("unknown tie-break mode %q", r.TieBreak)
	}
	return nil
}
