package history

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// MemoryConfig holds configuration for the in-memory history
type MemoryConfig struct {
	// Capacity is the maximum number of rolls retained, DefaultCapacity when zero
	Capacity int
}

// memoryRepository keeps the history in a slice owned by the process
type memoryRepository struct {
	mu       sync.RWMutex
	capacity int
	rolls    []*models.Roll
}

// NewMemory creates a new in-memory history
func NewMemory(cfg *MemoryConfig) (*memoryRepository, error) {
	capacity := DefaultCapacity
	if cfg != nil && cfg.Capacity != 0 {
		capacity = cfg.Capacity
	}

	if capacity < 1 {
		return nil, errors.New("capacity must be positive")
	}

	return &memoryRepository{
		capacity: capacity,
		rolls:    make([]*models.Roll, 0, capacity+1),
	}, nil
}

// AppendRoll adds a roll and evicts from the front while over capacity
func (r *memoryRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rolls = append(r.rolls, input.Roll.Clone())
	for len(r.rolls) > r.capacity {
		r.rolls[0] = nil
		r.rolls = r.rolls[1:]
	}

	return nil
}

// GetRecentRolls returns the newest rolls in insertion order
func (r *memoryRepository) GetRecentRolls(ctx context.Context, input *GetRecentRollsInput) (*GetRecentRollsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := input.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > len(r.rolls) {
		limit = len(r.rolls)
	}

	return &GetRecentRollsOutput{
		Rolls: cloneRolls(r.rolls[len(r.rolls)-limit:]),
	}, nil
}

// GetAllRolls returns the full retained history
func (r *memoryRepository) GetAllRolls(ctx context.Context, input *GetAllRollsInput) (*GetAllRollsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetAllRollsOutput{
		Rolls: cloneRolls(r.rolls),
	}, nil
}

// ClearRolls empties the history
func (r *memoryRepository) ClearRolls(ctx context.Context, input *ClearRollsInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rolls = make([]*models.Roll, 0, r.capacity+1)

	return nil
}

func cloneRolls(rolls []*models.Roll) []*models.Roll {
	out := make([]*models.Roll, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, roll.Clone())
	}
	return out
}
