package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/zombiedice/internal/common/clock"
	"github.com/KirkDiggler/zombiedice/internal/common/uuid"
	"github.com/KirkDiggler/zombiedice/internal/cup"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/models"
	gameRepo "github.com/KirkDiggler/zombiedice/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/turn_ledger"
	"github.com/KirkDiggler/zombiedice/internal/services/turn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/KirkDiggler/zombiedice/internal/services/game")

// service implements the Service interface
type service struct {
	rules          *models.Rules
	gameRepo       gameRepo.Repository
	playerRepo     playerRepo.Repository
	turnLedgerRepo ledgerRepo.Repository
	turnService    turn.Service
	diceRoller     dice.Roller
	clock          clock.Clock
	uuidGenerator  uuid.UUID

	// cups holds the dice of every game this process is running
	mu   sync.Mutex
	cups map[string]*cup.Cup
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.TurnLedgerRepo == nil {
		return nil, ErrNilTurnLedgerRepo
	}
	if cfg.TurnService == nil {
		return nil, ErrNilTurnService
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == nil {
		rules = models.DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &service{
		rules:          rules,
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		turnLedgerRepo: cfg.TurnLedgerRepo,
		turnService:    cfg.TurnService,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		cups:           make(map[string]*cup.Cup),
	}, nil
}

// CreateGame seats the players in a random order that holds for the whole game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrTooFewPlayers
	}

	names, err := normalizeRoster(input.PlayerNames)
	if err != nil {
		return nil, err
	}

	dice.Shuffle(s.diceRoller, len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		Status:    models.GameStatusWaiting,
		PlayerIDs: make([]string, 0, len(names)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	players := make([]*models.Player, 0, len(names))
	for seat, name := range names {
		player := &models.Player{
			ID:     s.uuidGenerator.NewUUID(),
			GameID: game.ID,
			Name:   name,
			Seat:   seat,
		}
		players = append(players, player)
		game.PlayerIDs = append(game.PlayerIDs, player.ID)
	}

	c, err := s.newCup()
	if err != nil {
		return nil, err
	}

	if err := s.playerRepo.SavePlayers(ctx, &playerRepo.SavePlayersInput{Players: players}); err != nil {
		return nil, fmt.Errorf("failed to save players: %w", err)
	}
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.mu.Lock()
	s.cups[game.ID] = c
	s.mu.Unlock()

	log.Printf("Created game %s with %d players", game.ID, len(players))

	return &CreateGameOutput{
		Game:    game,
		Players: players,
	}, nil
}

// PlayRound gives each contender one turn in seat order, then checks who
// reached the target score.
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}
	if input.Chooser == nil {
		return nil, ErrNilChooser
	}

	ctx, span := tracer.Start(ctx, "game.round")
	defer span.End()

	output, err := s.playRound(ctx, span, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return output, nil
}

func (s *service) playRound(ctx context.Context, span trace.Span, input *PlayRoundInput) (*PlayRoundOutput, error) {
	game, players, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if game.Status.IsCompleted() {
		return nil, ErrGameCompleted
	}

	c, err := s.cupFor(game.ID)
	if err != nil {
		return nil, err
	}

	notify := func(event models.Event) {
		if input.Observer != nil {
			input.Observer.Observe(ctx, event)
		}
	}

	round := game.Round + 1
	tieBreak := game.Status.IsTieBreak()
	contenders := make([]*models.Player, 0, len(game.Contenders()))
	for _, id := range game.Contenders() {
		contenders = append(contenders, players[id])
	}

	span.SetAttributes(
		attribute.String("game.id", game.ID),
		attribute.Int("game.round", round),
		attribute.Bool("game.tie_break", tieBreak),
		attribute.Int("game.contenders", len(contenders)),
	)

	if game.Status == models.GameStatusWaiting {
		game.Status = models.GameStatusActive
	}

	for _, player := range contenders {
		out, err := s.turnService.Play(ctx, &turn.PlayInput{
			GameID:   game.ID,
			Player:   player,
			Cup:      c,
			Round:    round,
			TieBreak: tieBreak,
			Chooser:  input.Chooser,
			Observer: input.Observer,
		})
		if err != nil {
			return nil, fmt.Errorf("turn for %s: %w", player.Name, err)
		}

		if err := s.recordTurn(ctx, player, round, tieBreak, out); err != nil {
			return nil, err
		}
	}

	game.Round = round
	result := s.resolve(game, contenders, tieBreak)
	game.UpdatedAt = s.clock.Now()

	seated := seatOrder(game, players)
	if err := s.playerRepo.SavePlayers(ctx, &playerRepo.SavePlayersInput{Players: seated}); err != nil {
		return nil, fmt.Errorf("failed to save players: %w", err)
	}
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	roundEnded := models.RoundEnded{
		GameID:    game.ID,
		Round:     round,
		TieBreak:  tieBreak,
		Kind:      result.Kind,
		Standings: buildScoreboard(seated, game.WinnerID),
	}
	if result.Winner != nil {
		roundEnded.WinnerID = result.Winner.ID
	}
	for _, p := range result.Tied {
		roundEnded.TiedIDs = append(roundEnded.TiedIDs, p.ID)
	}
	notify(roundEnded)

	switch result.Kind {
	case models.RoundTie:
		started := models.TieBreakStarted{GameID: game.ID}
		for _, p := range result.Tied {
			started.PlayerIDs = append(started.PlayerIDs, p.ID)
			started.Names = append(started.Names, p.Name)
		}
		notify(started)
	case models.RoundWinner:
		s.releaseCup(game.ID)
		notify(models.GameEnded{
			GameID:     game.ID,
			WinnerID:   result.Winner.ID,
			WinnerName: result.Winner.Name,
			Scoreboard: roundEnded.Standings,
		})
	}

	span.SetAttributes(attribute.String("game.round_result", string(result.Kind)))

	return &PlayRoundOutput{
		Result: result,
		Game:   game,
	}, nil
}

// resolve applies the win condition to the round's contenders and moves the
// game to its next status.
func (s *service) resolve(game *models.Game, contenders []*models.Player, tieBreak bool) *RoundResult {
	result := &RoundResult{
		Round:    game.Round,
		TieBreak: tieBreak,
	}

	var leaders []*models.Player
	if tieBreak && s.rules.TieBreak == models.TieBreakSingleRound {
		leaders = highestScores(contenders)
	} else {
		for _, p := range contenders {
			if p.Score >= s.rules.TargetScore {
				leaders = append(leaders, p)
			}
		}
	}

	switch len(leaders) {
	case 0:
		result.Kind = models.RoundNoWinner
	case 1:
		result.Kind = models.RoundWinner
		result.Winner = leaders[0]
		game.Status = models.GameStatusCompleted
		game.WinnerID = leaders[0].ID
		game.ContenderIDs = nil
		log.Printf("Game %s won by %s with %d brains after %d rounds", game.ID, leaders[0].Name, leaders[0].Score, game.Round)
	default:
		result.Kind = models.RoundTie
		result.Tied = leaders
		game.Status = models.GameStatusTieBreak
		game.TieBreaks++
		game.ContenderIDs = make([]string, 0, len(leaders))
		for _, p := range leaders {
			p.Score = 0
			game.ContenderIDs = append(game.ContenderIDs, p.ID)
		}
		log.Printf("Game %s: %d players tied after round %d, starting tie-break %d", game.ID, len(leaders), game.Round, game.TieBreaks)
	}

	return result
}

// highestScores returns every player sharing the top score, in seat order
func highestScores(players []*models.Player) []*models.Player {
	var top []*models.Player
	for _, p := range players {
		switch {
		case len(top) == 0 || p.Score > top[0].Score:
			top = []*models.Player{p}
		case p.Score == top[0].Score:
			top = append(top, p)
		}
	}
	return top
}

func (s *service) recordTurn(ctx context.Context, player *models.Player, round int, tieBreak bool, out *turn.PlayOutput) error {
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return fmt.Errorf("failed to save player %s: %w", player.Name, err)
	}

	err := s.turnLedgerRepo.AddTurnRecord(ctx, &ledgerRepo.AddTurnRecordInput{
		Record: &models.TurnRecord{
			ID:         s.uuidGenerator.NewUUID(),
			GameID:     player.GameID,
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Round:      round,
			TieBreak:   tieBreak,
			Outcome:    out.Outcome,
			Banked:     out.Banked,
			Totals:     out.Totals,
			Rolls:      out.Rolls,
			ScoreAfter: out.Score,
			Timestamp:  s.clock.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to record turn for %s: %w", player.Name, err)
	}
	return nil
}

// PlayGame plays rounds until one of them produces a winner
func (s *service) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	for played := 0; input.MaxRounds == 0 || played < input.MaxRounds; played++ {
		out, err := s.PlayRound(ctx, &PlayRoundInput{
			GameID:   input.GameID,
			Chooser:  input.Chooser,
			Observer: input.Observer,
		})
		if err != nil {
			return nil, err
		}
		if out.Result.Kind != models.RoundWinner {
			continue
		}

		board, err := s.GetScoreboard(ctx, &GetScoreboardInput{GameID: input.GameID})
		if err != nil {
			return nil, err
		}
		return &PlayGameOutput{
			Game:       out.Game,
			Winner:     out.Result.Winner,
			Scoreboard: board.Entries,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d rounds", ErrRoundLimitReached, input.MaxRounds)
}

// GetGame returns a game and its players in seat order
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	game, players, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:    game,
		Players: seatOrder(game, players),
	}, nil
}

// GetScoreboard ranks every seated player
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	game, players, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetScoreboardOutput{
		Entries: buildScoreboard(seatOrder(game, players), game.WinnerID),
	}, nil
}

// GetTurnHistory returns the ledger of a game
func (s *service) GetTurnHistory(ctx context.Context, input *GetTurnHistoryInput) (*GetTurnHistoryOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	out, err := s.turnLedgerRepo.GetTurnRecordsForGame(ctx, &ledgerRepo.GetTurnRecordsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get turn history: %w", err)
	}

	return &GetTurnHistoryOutput{
		Records: out.Records,
	}, nil
}

// GetPlayerStats returns the ledger counters for a player
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrPlayerMissing
	}

	stats, err := s.turnLedgerRepo.GetPlayerStats(ctx, &ledgerRepo.GetPlayerStatsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return &GetPlayerStatsOutput{
		Turns:        stats.Turns,
		Busts:        stats.Busts,
		BrainsBanked: stats.BrainsBanked,
		GoalsReached: stats.GoalsReached,
		OutOfDice:    stats.OutOfDice,
	}, nil
}

// load fetches a game and all of its seated players keyed by ID
func (s *service) load(ctx context.Context, gameID string) (*models.Game, map[string]*models.Player, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	out, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: gameID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make(map[string]*models.Player, len(out.Players))
	for _, p := range out.Players {
		players[p.ID] = p
	}
	for _, id := range game.PlayerIDs {
		if _, ok := players[id]; !ok {
			return nil, nil, fmt.Errorf("%w: %s in game %s", ErrPlayerMissing, id, gameID)
		}
	}

	return game, players, nil
}

func seatOrder(game *models.Game, players map[string]*models.Player) []*models.Player {
	seated := make([]*models.Player, 0, len(game.PlayerIDs))
	for _, id := range game.PlayerIDs {
		seated = append(seated, players[id])
	}
	return seated
}

func (s *service) newCup() (*cup.Cup, error) {
	c, err := cup.New(&cup.Config{
		Rules:         s.rules,
		Roller:        s.diceRoller,
		UUIDGenerator: s.uuidGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fill cup: %w", err)
	}
	return c, nil
}

// cupFor returns the game's cup, filling a new one for a game loaded from
// the store rather than created by this process.
func (s *service) cupFor(gameID string) (*cup.Cup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.cups[gameID]; ok {
		return c, nil
	}
	c, err := s.newCup()
	if err != nil {
		return nil, err
	}
	s.cups[gameID] = c
	return c, nil
}

func (s *service) releaseCup(gameID string) {
	s.mu.Lock()
	delete(s.cups, gameID)
	s.mu.Unlock()
}
