package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/dicesim/internal/common/uuid UUID

// UUID generates identifiers for roll records
type UUID interface {
	NewUUID() string
}

// RandomUUID issues version 4 UUIDs
type RandomUUID struct{}

func New() *RandomUUID {
	return &RandomUUID{}
}

// NewUUID returns a new random UUID string
func (g *RandomUUID) NewUUID() string {
	return uuid.NewString()
}
