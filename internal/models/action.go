package models

import (
	"fmt"
	"strings"
)

// Action is a decision the active player makes between rolls
type Action int

const (
	// ActionRoll draws up to the per-roll dice count and rolls
	ActionRoll Action = iota + 1

	// ActionFinish banks the turn's brains
	ActionFinish
)

func (a Action) String() string {
	switch a {
	case ActionRoll:
		return "roll"
	case ActionFinish:
		return "finish"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps a typed key to an action. "r"/"roll" and "f"/"finish"
// are accepted in any case.
func ParseAction(key string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "r", "roll":
		return ActionRoll, nil
	case "f", "finish":
		return ActionFinish, nil
	default:
		return 0, fmt.Errorf("invalid action %q", key)
	}
}
