package deck

import (
	"math/rand"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type options struct {
	seed     int64
	shuffler Shuffler
}

// Option configures the randomness a Deck shuffles with.
type Option func(*options)

// WithSeed makes shuffles reproducible. Seed 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithShuffler injects the permutation source. A nil s is ignored.
func WithShuffler(s Shuffler) Option {
	return func(o *options) {
		if s != nil {
			o.shuffler = s
		}
	}
}

func newShuffler(opts []Option) Shuffler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.shuffler != nil {
		return o.shuffler
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
