package roller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/repositories/history"
	"github.com/KirkDiggler/dicesim/internal/stats"
)

// service implements the Service interface. The history repository decides
// how concurrent calls are serialized.
type service struct {
	historyRepo   history.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
	recentLimit   int
}

// New creates a new roller service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
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

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	recentLimit := cfg.RecentLimit
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	return &service{
		historyRepo:   cfg.HistoryRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.Named("roller"),
		recentLimit:   recentLimit,
	}, nil
}

// Validate checks roll parameters, dice before sides. The returned error is a
// *ValidationError.
func Validate(diceCount, sideCount int) error {
	if diceCount < MinDice || diceCount > MaxDice {
		return errDiceOutOfRange
	}

	if sideCount < MinSides || sideCount > MaxSides {
		return errSidesOutOfRange
	}

	return nil
}

// Roll throws diceCount dice with sideCount faces. It has no side effects;
// recording the roll is up to the caller.
func Roll(roller dice.Roller, diceCount, sideCount int) (*models.Roll, error) {
	if err := Validate(diceCount, sideCount); err != nil {
		return nil, err
	}

	results := make([]int, diceCount)
	total := 0
	for i := range results {
		results[i] = roller.Roll(sideCount)
		total += results[i]
	}

	return &models.Roll{
		Dice:    diceCount,
		Sides:   sideCount,
		Results: results,
		Total:   total,
	}, nil
}

// RollDice performs a roll and appends it to the history
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	// Validation happens before anything touches the history
	roll, err := Roll(s.diceRoller, input.DiceCount, input.SideCount)
	if err != nil {
		return nil, err
	}

	roll.ID = s.uuidGenerator.NewUUID()
	roll.RolledAt = s.clock.Now()

	err = s.historyRepo.AppendRoll(ctx, &history.AppendRollInput{
		Roll: roll,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	s.logger.Debug("dice roll",
		zap.String("roll_id", roll.ID),
		zap.Int("dice", roll.Dice),
		zap.Int("sides", roll.Sides),
		zap.Ints("results", roll.Results),
		zap.Int("total", roll.Total),
	)

	statistics, err := s.computeStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{
		Roll:       roll,
		Statistics: statistics,
	}, nil
}

// GetHistory returns the most recent rolls
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.recentLimit
	}

	recent, err := s.historyRepo.GetRecentRolls(ctx, &history.GetRecentRollsInput{
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent rolls: %w", err)
	}

	// Statistics intentionally cover the whole history, not just the rolls returned
	statistics, err := s.computeStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Rolls:      recent.Rolls,
		Statistics: statistics,
	}, nil
}

// GetStatistics summarizes the history
func (s *service) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	statistics, err := s.computeStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{
		Statistics: statistics,
	}, nil
}

// ClearHistory empties the history
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if err := s.historyRepo.ClearRolls(ctx, &history.ClearRollsInput{}); err != nil {
		return nil, fmt.Errorf("failed to clear history: %w", err)
	}

	s.logger.Info("history cleared")

	return &ClearHistoryOutput{
		Success: true,
	}, nil
}

func (s *service) computeStatistics(ctx context.Context) (*models.Statistics, error) {
	all, err := s.historyRepo.GetAllRolls(ctx, &history.GetAllRollsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return stats.Compute(all.Rolls), nil
}
