package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/common/clock"
	"github.com/KirkDiggler/zombiedice/internal/common/uuid"
	"github.com/KirkDiggler/zombiedice/internal/config"
	"github.com/KirkDiggler/zombiedice/internal/dice"
	"github.com/KirkDiggler/zombiedice/internal/handlers/console"
	gameRepo "github.com/KirkDiggler/zombiedice/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/zombiedice/internal/repositories/turn_ledger"
	gameService "github.com/KirkDiggler/zombiedice/internal/services/game"
	"github.com/KirkDiggler/zombiedice/internal/services/messaging"
	"github.com/KirkDiggler/zombiedice/internal/services/turn"
	"github.com/KirkDiggler/zombiedice/internal/telemetry"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetPrefix("zombiedice: ")
	log.SetFlags(0)

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, turn.ErrInvariantViolation) {
			log.Fatalf("Dice accounting broke, aborting: %v", err)
		}
		if errors.Is(err, context.Canceled) {
			log.Println("Interrupted, the brains will keep")
			return
		}
		log.Fatalf("Game failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	shutdown, err := telemetry.Setup(ctx, "zombiedice", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	addr := cfg.RedisAddr
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start embedded redis: %w", err)
		}
		defer mr.Close()
		addr = mr.Addr()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.TTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.TTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.TTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create turn ledger repository: %w", err)
	}

	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})
	log.Printf("Rolling with seed %d", diceRoller.Seed())

	turnSvc, err := turn.New(&turn.Config{
		Rules:      rules,
		DiceRoller: diceRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create turn service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Rules:          rules,
		GameRepo:       games,
		PlayerRepo:     players,
		TurnLedgerRepo: ledger,
		TurnService:    turnSvc,
		DiceRoller:     diceRoller,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		DiceRoller: diceRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	term, err := console.New(&console.Config{
		In:               os.Stdin,
		Out:              os.Stdout,
		MessagingService: messagingSvc,
		Target:           rules.TargetScore,
		NoColor:          cfg.NoColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	names, err := term.PromptRoster(ctx)
	if err != nil {
		return err
	}

	created, err := gameSvc.CreateGame(ctx, &gameService.CreateGameInput{
		PlayerNames: names,
	})
	if err != nil {
		return err
	}

	played, err := gameSvc.PlayGame(ctx, &gameService.PlayGameInput{
		GameID:    created.Game.ID,
		Chooser:   term,
		Observer:  term,
		MaxRounds: cfg.MaxRounds,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	for _, p := range created.Players {
		stats, err := gameSvc.GetPlayerStats(ctx, &gameService.GetPlayerStatsInput{PlayerID: p.ID})
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d turns, %d brains banked, %d busts\n", p.Name, stats.Turns, stats.BrainsBanked, stats.Busts)
	}
	log.Printf("Game %s finished after %d rounds", played.Game.ID, played.Game.Round)
	return nil
}
