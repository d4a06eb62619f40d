package game

import (
	"github.com/KirkDiggler/zombiedice/internal/common/clock"
	"github.com/KirkDiggler/zombiedice/internal/common/uuid"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
	gameRepo "github.com/KirkDiggler/zombiedice/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/turn_ledger"
	"github.com/KirkDiggler/zombiedice/internal/services/turn"
)

const (
	// MinPlayers is the smallest table a game can start with
	MinPlayers = 2

	// MaxPlayers is the largest table a game can seat
	MaxPlayers = 13

	// MinNameLength is the shortest accepted player name, in characters
	MinNameLength = 3

	// MaxNameLength is the longest accepted player name, in characters
	MaxNameLength = 13
)

// Config holds configuration for the game service
type Config struct {
	// Rules governs cups, turns and the tie-break mode. Defaults apply when nil.
	Rules *models.Rules

	// Repository dependencies
	GameRepo       gameRepo.Repository
	PlayerRepo     playerRepo.Repository
	TurnLedgerRepo ledgerRepo.Repository

	// Service dependencies
	TurnService   turn.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerNames in entry order; blank names get a generated one
	PlayerNames []string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game

	// Players in seat order
	Players []*models.Player
}

// RoundResult describes what a round decided
type RoundResult struct {
	// Round is the game round that was just played
	Round int

	// TieBreak is set when only tied players took part
	TieBreak bool

	// Kind is no_winner, winner or tie
	Kind models.RoundResultKind

	// Winner is set when Kind is winner
	Winner *models.Player

	// Tied holds the players going into a tie-break, in seat order
	Tied []*models.Player
}

// PlayRoundInput contains parameters for playing one round
type PlayRoundInput struct {
	GameID string

	// Chooser is asked for every decision of every turn
	Chooser turn.Chooser

	// Observer receives turn and round events; optional
	Observer turn.Observer
}

// PlayRoundOutput contains the result of a round
type PlayRoundOutput struct {
	Result *RoundResult
	Game   *models.Game
}

// PlayGameInput contains parameters for playing a game to the end
type PlayGameInput struct {
	GameID   string
	Chooser  turn.Chooser
	Observer turn.Observer

	// MaxRounds stops the game with ErrRoundLimitReached; zero means no limit
	MaxRounds int
}

// PlayGameOutput contains the final result of a game
type PlayGameOutput struct {
	Game       *models.Game
	Winner     *models.Player
	Scoreboard []models.ScoreboardEntry
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains a game and its players in seat order
type GetGameOutput struct {
	Game    *models.Game
	Players []*models.Player
}

// GetScoreboardInput contains parameters for retrieving the standings
type GetScoreboardInput struct {
	GameID string
}

// GetScoreboardOutput contains the standings, best first
type GetScoreboardOutput struct {
	Entries []models.ScoreboardEntry
}

// GetTurnHistoryInput contains parameters for retrieving turn history
type GetTurnHistoryInput struct {
	GameID string
}

// GetTurnHistoryOutput contains every turn of a game in the order played
type GetTurnHistoryOutput struct {
	Records []*models.TurnRecord
}

// GetPlayerStatsInput contains parameters for retrieving a player's counters
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains a player's counters
type GetPlayerStatsOutput struct {
	Turns        int
	Busts        int
	BrainsBanked int
	GoalsReached int
	OutOfDice    int
}
