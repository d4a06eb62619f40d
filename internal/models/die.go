package models

import (
	"fmt"
	"strings"
)

// Color identifies which kind of die an instance is
type Color string

const (
	// ColorGreen dice favor brains
	ColorGreen Color = "green"

	// ColorYellow dice are evenly split
	ColorYellow Color = "yellow"

	// ColorRed dice favor shotguns
	ColorRed Color = "red"
)

// Colors lists every die color in cup order
var Colors = []Color{ColorGreen, ColorYellow, ColorRed}

// UnmarshalText parses a color name, case-insensitively
func (c *Color) UnmarshalText(text []byte) error {
	switch Color(strings.ToLower(strings.TrimSpace(string(text)))) {
	case ColorGreen:
		*c = ColorGreen
	case ColorYellow:
		*c = ColorYellow
	case ColorRed:
		*c = ColorRed
	default:
		return fmt.Errorf("unknown die color %q", string(text))
	}
	return nil
}

// Face is the side a die landed on
type Face string

const (
	// FaceNone means the die has not been rolled since it left the cup
	FaceNone Face = ""

	// FaceShotgun counts toward busting
	FaceShotgun Face = "shotgun"

	// FaceFootprint is a runner; the die is rerolled on the next roll
	FaceFootprint Face = "footprint"

	// FaceBrain is a point
	FaceBrain Face = "brain"
)

// UnmarshalText parses a face name, case-insensitively
func (f *Face) UnmarshalText(text []byte) error {
	switch Face(strings.ToLower(strings.TrimSpace(string(text)))) {
	case FaceShotgun:
		*f = FaceShotgun
	case FaceFootprint, "runner":
		*f = FaceFootprint
	case FaceBrain:
		*f = FaceBrain
	default:
		return fmt.Errorf("unknown die face %q", string(text))
	}
	return nil
}

// Die is a single physical die. ID, Color and Faces never change once the
// die is made; Face changes every time the die is rolled.
type Die struct {
	// ID is the unique identity of this die instance
	ID string

	// Color is the die's kind
	Color Color

	// Faces is the six-sided face multiset the die rolls from
	Faces []Face

	// Face is the most recently rolled face
	Face Face
}

// Snapshot captures the die's current face
func (d *Die) Snapshot() RolledDie {
	return RolledDie{
		DieID: d.ID,
		Color: d.Color,
		Face:  d.Face,
	}
}

// RolledDie is an immutable view of a die after a roll
type RolledDie struct {
	// DieID is the identity of the die that was rolled
	DieID string

	// Color is the die's kind
	Color Color

	// Face is what it landed on
	Face Face
}

// ColorsOf returns the colors of the given dice, in order
func ColorsOf(dice []*Die) []Color {
	colors := make([]Color, 0, len(dice))
	for _, d := range dice {
		colors = append(colors, d.Color)
	}
	return colors
}
