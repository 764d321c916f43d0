package models

// Statistics summarizes every die result currently retained in the history
type Statistics struct {
	// TotalRolls counts individual dice, not roll events
	TotalRolls int `json:"total_rolls"`

	// Average is the mean die value rounded to 2 decimal places
	Average float64 `json:"average"`

	// Min is the lowest die value
	Min int `json:"min"`

	// Max is the highest die value
	Max int `json:"max"`

	// RecentRolls counts roll events in the history
	RecentRolls int `json:"recent_rolls"`
}
