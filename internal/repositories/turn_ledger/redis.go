package turn_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	turnKeyPrefix        = "turn:"
	gameTurnsKeyPrefix   = "game_turns:"
	playerTurnsKeyPrefix = "player_turns:"
	playerStatsKeyPrefix = "player_stats:"

	// Player stats hash fields
	statTurns        = "turns"
	statBusts        = "busts"
	statBrainsBanked = "brains_banked"
	statGoalsReached = "goals_reached"
	statOutOfDice    = "out_of_dice"
)

// Config holds configuration for the Redis turn ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is how long ledger keys live after the last write. Zero keeps them forever.
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed turn ledger repository
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

// AddTurnRecord adds a turn record to the ledger
func (r *redisRepository) AddTurnRecord(ctx context.Context, input *AddTurnRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("turn record ID cannot be empty")
	}
	if record.GameID == "" || record.PlayerID == "" {
		return errors.New("turn record needs a game ID and a player ID")
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal turn record: %w", err)
	}

	pipe := r.client.TxPipeline()

	turnKey := fmt.Sprintf("%s%s", turnKeyPrefix, record.ID)
	pipe.Set(ctx, turnKey, recordJSON, r.ttl)

	// Lists keep insertion order, which is play order
	gameKey := fmt.Sprintf("%s%s", gameTurnsKeyPrefix, record.GameID)
	pipe.RPush(ctx, gameKey, record.ID)

	playerKey := fmt.Sprintf("%s%s", playerTurnsKeyPrefix, record.PlayerID)
	pipe.RPush(ctx, playerKey, record.ID)

	statsKey := fmt.Sprintf("%s%s", playerStatsKeyPrefix, record.PlayerID)
	pipe.HIncrBy(ctx, statsKey, statTurns, 1)
	pipe.HIncrBy(ctx, statsKey, statBrainsBanked, int64(record.Banked))
	switch record.Outcome {
	case models.TurnOutcomeBusted:
		pipe.HIncrBy(ctx, statsKey, statBusts, 1)
	case models.TurnOutcomeGoalReached:
		pipe.HIncrBy(ctx, statsKey, statGoalsReached, 1)
	case models.TurnOutcomeOutOfDice:
		pipe.HIncrBy(ctx, statsKey, statOutOfDice, 1)
	}

	if r.ttl > 0 {
		pipe.Expire(ctx, gameKey, r.ttl)
		pipe.Expire(ctx, playerKey, r.ttl)
		pipe.Expire(ctx, statsKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add turn record: %w", err)
	}

	return nil
}

// GetTurnRecordsForGame retrieves all turn records for a game
func (r *redisRepository) GetTurnRecordsForGame(ctx context.Context, input *GetTurnRecordsForGameInput) (*GetTurnRecordsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	records, err := r.recordsAt(ctx, fmt.Sprintf("%s%s", gameTurnsKeyPrefix, input.GameID))
	if err != nil {
		return nil, err
	}

	return &GetTurnRecordsForGameOutput{
		Records: records,
	}, nil
}

// GetTurnRecordsForPlayer retrieves all turn records for a player
func (r *redisRepository) GetTurnRecordsForPlayer(ctx context.Context, input *GetTurnRecordsForPlayerInput) (*GetTurnRecordsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	records, err := r.recordsAt(ctx, fmt.Sprintf("%s%s", playerTurnsKeyPrefix, input.PlayerID))
	if err != nil {
		return nil, err
	}

	return &GetTurnRecordsForPlayerOutput{
		Records: records,
	}, nil
}

// recordsAt loads the records whose IDs are listed under key, in list order
func (r *redisRepository) recordsAt(ctx context.Context, key string) ([]*models.TurnRecord, error) {
	turnIDs, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get turn IDs: %w", err)
	}

	if len(turnIDs) == 0 {
		return []*models.TurnRecord{}, nil
	}

	pipe := r.client.Pipeline()
	turnCommands := make([]*redis.StringCmd, 0, len(turnIDs))
	for _, turnID := range turnIDs {
		turnCommands = append(turnCommands, pipe.Get(ctx, fmt.Sprintf("%s%s", turnKeyPrefix, turnID)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get turn records: %w", err)
	}

	records := make([]*models.TurnRecord, 0, len(turnIDs))
	for i, cmd := range turnCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record expired before the index did
				continue
			}
			return nil, fmt.Errorf("failed to get turn record %s: %w", turnIDs[i], err)
		}

		var record models.TurnRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn record %s: %w", turnIDs[i], err)
		}

		records = append(records, &record)
	}

	return records, nil
}

// GetPlayerStats retrieves a player's counters from Redis
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", playerStatsKeyPrefix, input.PlayerID)
	stats, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	output := &GetPlayerStatsOutput{}
	for field, dest := range map[string]*int{
		statTurns:        &output.Turns,
		statBusts:        &output.Busts,
		statBrainsBanked: &output.BrainsBanked,
		statGoalsReached: &output.GoalsReached,
		statOutOfDice:    &output.OutOfDice,
	} {
		value, ok := stats[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s stat: %w", field, err)
		}
		*dest = n
	}

	return output, nil
}
