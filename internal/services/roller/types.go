package roller

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/repositories/history"
)

const (
	// MinDice is the fewest dice a single roll may throw
	MinDice = 1

	// MaxDice is the most dice a single roll may throw
	MaxDice = 10

	// MinSides is the fewest faces a die may have
	MinSides = 2

	// MaxSides is the most faces a die may have
	MaxSides = 100

	// DefaultRecentLimit is how many rolls GetHistory returns by default
	DefaultRecentLimit = 10
)

// Config holds configuration for the roller service
type Config struct {
	// RecentLimit is how many rolls GetHistory returns when no limit is given
	RecentLimit int

	// Repository dependencies
	HistoryRepo history.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, logging is discarded when nil
	Logger *zap.Logger
}

// RollDiceInput contains parameters for a roll
type RollDiceInput struct {
	// DiceCount is how many dice to throw
	DiceCount int

	// SideCount is how many faces each die has
	SideCount int
}

// RollDiceOutput contains the result of a roll
type RollDiceOutput struct {
	// Roll is the roll that was just recorded
	Roll *models.Roll

	// Statistics covers the history including this roll
	Statistics *models.Statistics
}

// GetHistoryInput contains parameters for reading the history
type GetHistoryInput struct {
	// Limit caps how many rolls are returned, the service default when zero
	Limit int
}

// GetHistoryOutput contains the recent rolls
type GetHistoryOutput struct {
	// Rolls are the most recent rolls, oldest first
	Rolls []*models.Roll

	// Statistics covers every retained roll, not just Rolls. Nil when the
	// history is empty.
	Statistics *models.Statistics
}

type GetStatisticsInput struct{}

type GetStatisticsOutput struct {
	// Statistics is nil when the history is empty
	Statistics *models.Statistics
}

type ClearHistoryInput struct{}

type ClearHistoryOutput struct {
	Success bool
}
