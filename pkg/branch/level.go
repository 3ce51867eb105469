package branch

import (
	"math"
	"sync/atomic"

	"github.com/aretw0/steer/pkg/domain"
)

// Level reads a float64 published with StoreLevel from outside the control loop.
func Level(bits *atomic.Uint64) domain.Scalar {
	return func(domain.Tick) float64 { return math.Float64frombits(bits.Load()) }
}

// StoreLevel publishes v for readers created with Level.
func StoreLevel(bits *atomic.Uint64, v float64) {
	bits.Store(math.Float64bits(v))
}
