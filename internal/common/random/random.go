package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/pearl/internal/common/random Randomizer
type Randomizer interface {
	// Intn returns a number in [0, n)
	Intn(n int) int

	// Shuffle permutes n elements in place through swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the default randomizer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source is a Randomizer backed by math/rand, safe for concurrent use
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new randomizer
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n), or 0 when n is not positive
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

// Shuffle permutes n elements in place
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.random.Shuffle(n, swap)
}

// Between returns a number in [low, high] using r
func Between(r Randomizer, low, high int) int {
	if high <= low {
		return low
	}
	return low + r.Intn(high-low+1)
}
