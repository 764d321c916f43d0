package roller

import "context"

// Service defines the interface for dice rolling and history operations
type Service interface {
	// RollDice rolls a set of dice, records it in the history and returns it
	// with up to date statistics
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// GetHistory returns the most recent rolls and statistics over the whole history
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetStatistics returns statistics over the whole history
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// ClearHistory forgets every roll
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}
