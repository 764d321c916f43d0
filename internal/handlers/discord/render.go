package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dicesim/internal/models"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// renderRollTitle renders e.g. "🎲 2d6 → 7"
func renderRollTitle(roll *models.Roll) string {
	return fmt.Sprintf("🎲 %dd%d → %d", roll.Dice, roll.Sides, roll.Total)
}

// renderResults renders each die value, e.g. "[3] [4]"
func renderResults(results []int) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, "["+strconv.Itoa(r)+"]")
	}
	return strings.Join(parts, " ")
}

// renderHistory renders one line per roll, newest first
func renderHistory(rolls []*models.Roll) string {
	if len(rolls) == 0 {
		return "No rolls yet."
	}

	var b strings.Builder
	for idx := len(rolls) - 1; idx >= 0; idx-- {
		roll := rolls[idx]
		fmt.Fprintf(&b, "%dd%d: %s = **%d**\n", roll.Dice, roll.Sides, renderResults(roll.Results), roll.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatisticsFields renders statistics as inline embed fields
func renderStatisticsFields(stats *models.Statistics) []*discordgo.MessageEmbedField {
	if stats == nil {
		return []*discordgo.MessageEmbedField{
			{Name: "Statistics", Value: "No rolls yet."},
		}
	}

	return []*discordgo.MessageEmbedField{
		{Name: "Dice rolled", Value: strconv.Itoa(stats.TotalRolls), Inline: true},
		{Name: "Average", Value: strconv.FormatFloat(stats.Average, 'f', 2, 64), Inline: true},
		{Name: "Min", Value: strconv.Itoa(stats.Min), Inline: true},
		{Name: "Max", Value: strconv.Itoa(stats.Max), Inline: true},
		{Name: "Rolls", Value: strconv.Itoa(stats.RecentRolls), Inline: true},
	}
}
