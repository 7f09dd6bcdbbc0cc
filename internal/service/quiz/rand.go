package quiz

import (
	"math/rand"
	"sync"
)

// randSource is the randomness the engine consumes. *math/rand.Rand
// satisfies it; tests inject a seeded instance for determinism.
type randSource interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// lockedRand guards a *rand.Rand for use from concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a concurrency-safe randSource seeded with seed.
func NewRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
