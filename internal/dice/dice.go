package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicesim/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the source of die results
type Roller interface {
	// Roll returns a uniformly distributed value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomRoller implements Roller on top of math/rand
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *randomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides.
// A die with fewer than two sides always lands on 1.
func (r *randomRoller) Roll(sides int) int {
	if sides < 2 {
		return 1
	}

	// rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}
