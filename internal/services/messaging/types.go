package messaging

import (
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	// DiceRoller picks among the candidate lines
	DiceRoller dice.Roller
}

// GetTurnStartMessageInput contains parameters for a turn start line
type GetTurnStartMessageInput struct {
	PlayerName string
	Score      int
	Target     int
	TieBreak   bool
}

// GetTurnStartMessageOutput contains a turn start line
type GetTurnStartMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetTurnEndMessageInput contains parameters for a turn end line
type GetTurnEndMessageInput struct {
	PlayerName string
	Outcome    models.TurnOutcome
	Banked     int
	Score      int
}

// GetTurnEndMessageOutput contains a turn end line
type GetTurnEndMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoundResultMessageInput contains parameters for a round result line
type GetRoundResultMessageInput struct {
	Kind       models.RoundResultKind
	Round      int
	Target     int
	WinnerName string
	TiedNames  []string
}

// GetRoundResultMessageOutput contains a round result line
type GetRoundResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetBrainsReturnedMessageInput contains parameters for a short cup line
type GetBrainsReturnedMessageInput struct {
	PlayerName string
	Count      int
}

// GetBrainsReturnedMessageOutput contains a short cup line
type GetBrainsReturnedMessageOutput struct {
	Message string
	Tone    MessageTone
}
