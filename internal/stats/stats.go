// Package stats derives aggregate statistics from the roll history.
package stats

import (
	"math"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Compute summarizes every die result across rolls. It returns nil when there
// is nothing to summarize.
//
// Average is rounded to 2 decimal places, halves away from zero.
func Compute(rolls []*models.Roll) *models.Statistics {
	var (
		count   = 0
		sum     = 0
		lowest  = math.MaxInt
		highest = math.MinInt
	)

	for _, roll := range rolls {
		if roll == nil {
			continue
		}
		for _, value := range roll.Results {
			count++
			sum += value
			if value < lowest {
				lowest = value
			}
			if value > highest {
				highest = value
			}
		}
	}

	if count == 0 {
		return nil
	}

	return &models.Statistics{
		TotalRolls:  count,
		Average:     Round2(float64(sum) / float64(count)),
		Min:         lowest,
		Max:         highest,
		RecentRolls: len(rolls),
	}
}

// Round2 rounds to 2 decimal places, halves away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
