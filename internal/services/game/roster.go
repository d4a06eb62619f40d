package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidatePlayerCount checks that a table of n players can be seated
func ValidatePlayerCount(n int) error {
	if n < MinPlayers {
		return fmt.Errorf("%w: %d, need at least %d", ErrTooFewPlayers, n, MinPlayers)
	}
	if n > MaxPlayers {
		return fmt.Errorf("%w: %d, at most %d can play", ErrTooManyPlayers, n, MaxPlayers)
	}
	return nil
}

// NormalizePlayerName trims a name and checks its length. A blank name
// becomes "Zombie N", where N is the 1-based entry position.
func NormalizePlayerName(raw string, position int) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = fmt.Sprintf("Zombie %d", position)
	}

	n := utf8.RuneCountInString(name)
	if n < MinNameLength {
		return "", fmt.Errorf("%w: %q has %d characters, need %d", ErrNameTooShort, name, n, MinNameLength)
	}
	if n > MaxNameLength {
		return "", fmt.Errorf("%w: %q has %d characters, at most %d", ErrNameTooLong, name, n, MaxNameLength)
	}
	return name, nil
}

// normalizeRoster validates every name and rejects duplicates, ignoring case
func normalizeRoster(raw []string) ([]string, error) {
	if err := ValidatePlayerCount(len(raw)); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, r := range raw {
		name, err := NormalizePlayerName(r, i+1)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[key] = true
		names = append(names, name)
	}
	return names, nil
}
