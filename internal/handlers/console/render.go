package console

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/KirkDiggler/zombiedice/internal/services/messaging"
)

type palette struct {
	red    string
	yellow string
	green  string
	bold   string
	reset  string
}

var ansiPalette = palette{
	red:    "\033[91m",
	yellow: "\033[93m",
	green:  "\033[92m",
	bold:   "\033[1m",
	reset:  "\033[0m",
}

var plainPalette = palette{}

func (p palette) die(color models.Color) string {
	switch color {
	case models.ColorRed:
		return p.red
	case models.ColorYellow:
		return p.yellow
	case models.ColorGreen:
		return p.green
	}
	return ""
}

func faceSymbol(face models.Face) string {
	switch face {
	case models.FaceBrain:
		return "🧠"
	case models.FaceShotgun:
		return "💥"
	case models.FaceFootprint:
		return "👣"
	}
	return "?"
}

// Observe renders a game event
func (c *Console) Observe(ctx context.Context, event models.Event) {
	switch e := event.(type) {
	case models.TurnStarted:
		c.names[e.Player.ID] = e.Player.Name
		out, err := c.messages.GetTurnStartMessage(ctx, &messaging.GetTurnStartMessageInput{
			PlayerName: e.Player.Name,
			Score:      e.Player.Score,
			Target:     c.target,
			TieBreak:   e.TieBreak,
		})
		if err != nil {
			log.Printf("Failed to get turn start message: %v", err)
			return
		}
		fmt.Fprintf(c.out, "\n%s%s%s\n", c.palette.bold, out.Message, c.palette.reset)

	case models.DiceDrawn:
		fmt.Fprintf(c.out, "🎲 Drew %s\n", c.colors(e.Colors))

	case models.DiceRerolled:
		fmt.Fprintf(c.out, "👣 Chasing %s\n", c.colors(e.Colors))

	case models.BrainsReturned:
		out, err := c.messages.GetBrainsReturnedMessage(ctx, &messaging.GetBrainsReturnedMessageInput{
			PlayerName: c.name(e.PlayerID),
			Count:      e.Count,
		})
		if err != nil {
			log.Printf("Failed to get brains returned message: %v", err)
			return
		}
		fmt.Fprintln(c.out, out.Message)

	case models.DiceRolled:
		parts := make([]string, 0, len(e.Dice))
		for _, d := range e.Dice {
			parts = append(parts, fmt.Sprintf("%s%s%s", c.palette.die(d.Color), faceSymbol(d.Face), c.palette.reset))
		}
		fmt.Fprintf(c.out, "Rolled %s\n", strings.Join(parts, " "))

	case models.TurnEnded:
		out, err := c.messages.GetTurnEndMessage(ctx, &messaging.GetTurnEndMessageInput{
			PlayerName: c.name(e.PlayerID),
			Outcome:    e.Outcome,
			Banked:     e.Banked,
			Score:      e.Score,
		})
		if err != nil {
			log.Printf("Failed to get turn end message: %v", err)
			return
		}
		fmt.Fprintln(c.out, out.Message)

	case models.RoundEnded:
		for _, s := range e.Standings {
			c.names[s.PlayerID] = s.PlayerName
		}
		tied := make([]string, 0, len(e.TiedIDs))
		for _, id := range e.TiedIDs {
			tied = append(tied, c.name(id))
		}
		out, err := c.messages.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
			Kind:       e.Kind,
			Round:      e.Round,
			Target:     c.target,
			WinnerName: c.name(e.WinnerID),
			TiedNames:  tied,
		})
		if err != nil {
			log.Printf("Failed to get round result message: %v", err)
			return
		}
		fmt.Fprintf(c.out, "\n%s%s%s\n", c.palette.bold, out.Message, c.palette.reset)
		if e.Kind == models.RoundNoWinner {
			c.PrintScoreboard(e.Standings)
		}

	case models.TieBreakStarted:
		fmt.Fprintf(c.out, "%sTie-break: %s%s\n", c.palette.yellow, strings.Join(e.Names, " vs "), c.palette.reset)

	case models.GameEnded:
		fmt.Fprintln(c.out)
		c.PrintScoreboard(e.Scoreboard)
	}
}

func (c *Console) colors(colors []models.Color) string {
	parts := make([]string, 0, len(colors))
	for _, color := range colors {
		parts = append(parts, fmt.Sprintf("%s%s%s", c.palette.die(color), color, c.palette.reset))
	}
	return strings.Join(parts, ", ")
}
