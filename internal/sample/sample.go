// Package sample creates tensors with pseudo-random values for the conformance cases.
package sample

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// Uniform samples Float32 tensors from uniform distributions. It is safe for concurrent use.
type Uniform struct {
	seed uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Uniform sampler with the given seed. If seed is 0, a seed is taken from the clock, and can be
// read back with Seed.
func New(seed uint64) *Uniform {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Uniform{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed used, so random cases can be regenerated.
func (u *Uniform) Seed() uint64 {
	return u.seed
}

// Uniform returns a Float32 tensor with the given dimensions, with values sampled from [low, high).
//
// It panics if high <= low, as numpy would produce values outside the interval.
func (u *Uniform) Uniform(low, high float64, dimensions ...int) *tensors.Tensor {
	if !(high > low) {
		panic("sample.Uniform requires low < high")
	}
	size := 1
	for _, dim := range dimensions {
		size *= dim
	}
	lo32, hi32 := float32(low), float32(high)
	values := make([]float32, size)
	u.mu.Lock()
	for ii := range values {
		v := float32(low + (high-low)*u.rng.Float64())
		if v >= hi32 {
			// Rounding to float32 can reach the excluded upper bound.
			v = math32.Nextafter(hi32, lo32)
		}
		values[ii] = v
	}
	u.mu.Unlock()
	return tensors.FromFlatDataAndDimensions(values, dimensions...)
}
