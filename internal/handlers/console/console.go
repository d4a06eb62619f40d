package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/KirkDiggler/zombiedice/internal/services/game"
	"github.com/KirkDiggler/zombiedice/internal/services/messaging"
	"github.com/KirkDiggler/zombiedice/internal/services/turn"
)

// Config holds configuration for the console
type Config struct {
	// In is where player input is read from
	In io.Reader

	// Out is where prompts and events are written
	Out io.Writer

	// MessagingService supplies flavor text
	MessagingService messaging.Service

	// Target is the score that ends a game, shown in prompts
	Target int

	// NoColor disables ANSI escapes
	NoColor bool
}

// Console is a terminal front end. It prompts for the roster, answers
// turn.Chooser from typed keys and renders turn.Observer events.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	messages messaging.Service
	target   int
	palette  palette

	// names maps player IDs to display names as they are seen in events
	names map[string]string
}

var (
	_ turn.Chooser  = (*Console)(nil)
	_ turn.Observer = (*Console)(nil)
)

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	p := ansiPalette
	if cfg.NoColor {
		p = plainPalette
	}

	return &Console{
		in:       bufio.NewReader(cfg.In),
		out:      cfg.Out,
		messages: cfg.MessagingService,
		target:   cfg.Target,
		palette:  p,
		names:    make(map[string]string),
	}, nil
}

// readLine returns the next input line without its line ending. A final
// line without a newline is returned before io.EOF.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptRoster asks for the number of players and their names until the
// answers are acceptable, and returns the names in entry order.
func (c *Console) PromptRoster(ctx context.Context) ([]string, error) {
	fmt.Fprintf(c.out, "%s🧟 Grrr!!! Have fun eating brains!%s\n", c.palette.bold, c.palette.reset)

	var count int
	for {
		fmt.Fprintf(c.out, "How many players (%d-%d)? ", game.MinPlayers, game.MaxPlayers)
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.warn("Please type a number.")
			continue
		}
		if err := game.ValidatePlayerCount(n); err != nil {
			c.warn(err.Error())
			continue
		}
		count = n
		break
	}

	names := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for len(names) < count {
		position := len(names) + 1
		fmt.Fprintf(c.out, "Name of player %d (%d-%d characters, blank for Zombie %d): ",
			position, game.MinNameLength, game.MaxNameLength, position)
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		name, err := game.NormalizePlayerName(line, position)
		if err != nil {
			c.warn(err.Error())
			continue
		}
		if seen[strings.ToLower(name)] {
			c.warn(fmt.Sprintf("%s is already playing, pick another name.", name))
			continue
		}
		seen[strings.ToLower(name)] = true
		names = append(names, name)
	}

	fmt.Fprintln(c.out, "Shuffling players...")
	return names, nil
}

// ChooseAction shows the running tally and reads roll or finish
func (c *Console) ChooseAction(ctx context.Context, request *turn.ActionRequest) (models.Action, error) {
	if request == nil {
		return 0, errors.New("request cannot be nil")
	}

	fmt.Fprintf(c.out, "%s🧠 %d  💥 %d  👣 %d%s | score %d | %d dice in hand, %d in the cup\n",
		c.palette.bold,
		request.Totals.Brains, request.Totals.Shotguns, request.Totals.Footprints,
		c.palette.reset,
		request.Score, request.HandSize, request.CupSize)

	for {
		fmt.Fprint(c.out, "Roll (r) or finish (f)? ")
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read action: %w", err)
		}
		action, err := models.ParseAction(line)
		if err != nil {
			c.warn(fmt.Sprintf("%q is not an option, type r or f.", strings.TrimSpace(line)))
			continue
		}
		return action, nil
	}
}

func (c *Console) warn(msg string) {
	fmt.Fprintf(c.out, "%s%s%s\n", c.palette.red, msg, c.palette.reset)
}

func (c *Console) name(playerID string) string {
	if name, ok := c.names[playerID]; ok {
		return name
	}
	return playerID
}

// PrintScoreboard writes one line per entry, best first
func (c *Console) PrintScoreboard(entries []models.ScoreboardEntry) {
	for _, e := range entries {
		fmt.Fprintf(c.out, "🏆 %d: %s scored %d points\n", e.Rank, e.PlayerName, e.Score)
	}
}
