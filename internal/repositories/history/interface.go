package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicesim/internal/repositories/history Repository

import (
	"context"
)

// DefaultCapacity is how many rolls the history keeps before evicting the oldest
const DefaultCapacity = 20

// Repository defines the interface for the bounded roll history
type Repository interface {
	// AppendRoll adds a roll to the end of the history, evicting the oldest
	// rolls once capacity is exceeded
	AppendRoll(ctx context.Context, input *AppendRollInput) error

	// GetRecentRolls returns up to Limit of the newest rolls, oldest first
	GetRecentRolls(ctx context.Context, input *GetRecentRollsInput) (*GetRecentRollsOutput, error)

	// GetAllRolls returns every retained roll, oldest first
	GetAllRolls(ctx context.Context, input *GetAllRollsInput) (*GetAllRollsOutput, error)

	// ClearRolls empties the history
	ClearRolls(ctx context.Context, input *ClearRollsInput) error
}
