package ai

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"
)

// Noise perturbs move scores so equal moves are not always picked the same way.
type Noise interface {
	// Noise returns a uniformly distributed integer in [-limit, limit).
	Noise(limit int) int
}

// ZeroNoise never perturbs. Useful for reproducible play.
type ZeroNoise struct{}

func (ZeroNoise) Noise(int) int {
	return 0
}

// RandomNoise draws from a ChaCha stream. Safe for concurrent use.
type RandomNoise struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewRandomNoise seeds the stream with seed, or from the OS when seed is 0.
func NewRandomNoise(seed uint64) *RandomNoise {
	key := make([]byte, 32)
	if seed == 0 {
		key = frand.Bytes(32)
	} else {
		binary.LittleEndian.PutUint64(key, seed)
	}

	return &RandomNoise{rng: frand.NewCustom(key, 1024, 12)}
}

func (that *RandomNoise) Noise(limit int) int {
	if limit <= 0 {
		return 0
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(2*limit) - limit
}
