package history

import "github.com/KirkDiggler/dicesim/internal/models"

type AppendRollInput struct {
	Roll *models.Roll
}

type GetRecentRollsInput struct {
	Limit int
}

type GetRecentRollsOutput struct {
	Rolls []*models.Roll
}

type GetAllRollsInput struct {
}

type GetAllRollsOutput struct {
	Rolls []*models.Roll
}

type ClearRollsInput struct {
}
