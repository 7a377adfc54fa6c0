package generator

import (
	"math/rand/v2"
	"sync"

	"blocks-generator/core/world"
)

// Picker draws uniformly random palette entries from a seedable source.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a picker over src.
func NewPicker(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// NewSeededPicker creates a deterministic picker, for tests and replays.
func NewSeededPicker(seed uint64) *Picker {
	return NewPicker(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomPicker creates a picker seeded from the runtime's random source.
func NewRandomPicker() *Picker {
	return NewPicker(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick returns a uniformly chosen member of palette, or false if it is empty.
func (p *Picker) Pick(palette []world.Material) (world.Material, bool) {
	if len(palette) == 0 {
		return "", false
	}
	p.mu.Lock()
	i := p.rng.IntN(len(palette))
	p.mu.Unlock()
	return palette[i], true
}
