package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// defaultKey is the Redis list holding the history
	defaultKey = "history:rolls"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Key overrides the list key, useful to run several histories on one server
	Key string

	// Capacity is the maximum number of rolls retained, DefaultCapacity when zero
	Capacity int
}

// redisRepository implements the Repository interface using a Redis list
type redisRepository struct {
	client   *redis.Client
	key      string
	capacity int
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	capacity := DefaultCapacity
	if cfg.Capacity != 0 {
		capacity = cfg.Capacity
	}
	if capacity < 1 {
		return nil, errors.New("capacity must be positive")
	}

	key := cfg.Key
	if key == "" {
		key = defaultKey
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		key:      key,
		capacity: capacity,
	}, nil
}

// AppendRoll pushes a roll and trims the list in one transaction
func (r *redisRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	rollJSON, err := json.Marshal(input.Roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	// MULTI/EXEC so concurrent appends never observe the list over capacity
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.key, rollJSON)
	pipe.LTrim(ctx, r.key, int64(-r.capacity), -1)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append roll: %w", err)
	}

	return nil
}

// GetRecentRolls returns the tail of the list
func (r *redisRepository) GetRecentRolls(ctx context.Context, input *GetRecentRollsInput) (*GetRecentRollsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Limit <= 0 {
		return &GetRecentRollsOutput{
			Rolls: []*models.Roll{},
		}, nil
	}

	rolls, err := r.readRange(ctx, int64(-input.Limit), -1)
	if err != nil {
		return nil, err
	}

	return &GetRecentRollsOutput{
		Rolls: rolls,
	}, nil
}

// GetAllRolls returns the full list
func (r *redisRepository) GetAllRolls(ctx context.Context, input *GetAllRollsInput) (*GetAllRollsOutput, error) {
	rolls, err := r.readRange(ctx, 0, -1)
	if err != nil {
		return nil, err
	}

	return &GetAllRollsOutput{
		Rolls: rolls,
	}, nil
}

// ClearRolls deletes the list
func (r *redisRepository) ClearRolls(ctx context.Context, input *ClearRollsInput) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

func (r *redisRepository) readRange(ctx context.Context, start, stop int64) ([]*models.Roll, error) {
	values, err := r.client.LRange(ctx, r.key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	rolls := make([]*models.Roll, 0, len(values))
	for _, value := range values {
		var roll models.Roll
		if err := json.Unmarshal([]byte(value), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
		}
		rolls = append(rolls, &roll)
	}

	return rolls, nil
}
