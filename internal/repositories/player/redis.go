package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	gamePlayersKeyPrefix = "game_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is how long player keys live after the last save. Zero keeps them forever.
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	return r.SavePlayers(ctx, &SavePlayersInput{
		Players: []*models.Player{input.Player},
	})
}

// SavePlayers persists every player in a single transaction
func (r *redisRepository) SavePlayers(ctx context.Context, input *SavePlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pipe := r.client.TxPipeline()
	for _, player := range input.Players {
		if err := r.queueSave(ctx, pipe, player); err != nil {
			return err
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}

func (r *redisRepository) queueSave(ctx context.Context, pipe redis.Pipeliner, player *models.Player) error {
	if player == nil {
		return errors.New("player cannot be nil")
	}
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	pipe.Set(ctx, playerKey, playerJSON, r.ttl)

	// The game's roster is a sorted set scored by seat
	if player.GameID != "" {
		gamePlayersKey := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, player.GameID)
		pipe.ZAdd(ctx, gamePlayersKey, redis.Z{
			Score:  float64(player.Seat),
			Member: player.ID,
		})
		if r.ttl > 0 {
			pipe.Expire(ctx, gamePlayersKey, r.ttl)
		}
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInGame retrieves all players in a game from Redis, ordered by seat
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gamePlayersKey := fmt.Sprintf("%s%s", gamePlayersKeyPrefix, input.GameID)
	playerIDs, err := r.client.ZRange(ctx, gamePlayersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for game: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInGameOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Fetch every player in one round trip, keeping seat order
	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		playerCommands = append(playerCommands, pipe.Get(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, playerID)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player expired before the roster did
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}
