package models

import (
	"time"
)

// Roll represents a single roll event: one or more dice of the same size
// thrown together
type Roll struct {
	// ID is the unique identifier for the roll
	ID string `json:"id"`

	// Dice is the number of dice thrown
	Dice int `json:"dice"`

	// Sides is the number of faces on each die
	Sides int `json:"sides"`

	// Results holds each die's face value in the order it was rolled
	Results []int `json:"results"`

	// Total is the sum of Results
	Total int `json:"total"`

	// RolledAt is when the roll was made
	RolledAt time.Time `json:"rolled_at"`
}

// Clone returns a deep copy so callers can't mutate a stored roll
func (r *Roll) Clone() *Roll {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Results = append([]int(nil), r.Results...)

	return &clone
}
