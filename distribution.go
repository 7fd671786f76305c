package main

import (
	"math"
	"math/rand"
)

// A Distribution holds the parameters of a log-normal body-size distribution.
// Location and Scale are the mean and standard deviation of the underlying
// normal distribution.
type Distribution struct {
	Name     string
	Location float64
	Scale    float64
}

// The two built-in presets, tuned for typical xxlsort workloads. The default
// preset has a median body around e^3 bytes with a long tail; large mode
// shifts both the median and the tail up substantially.
var (
	DefaultDistribution = Distribution{Name: "default", Location: 3.0, Scale: 2.3}
	LargeDistribution   = Distribution{Name: "large", Location: 5.2, Scale: 3.2}
)

// SelectDistribution picks the built-in preset for the requested mode.
func SelectDistribution(large bool) Distribution {
	if large {
		return LargeDistribution
	}
	return DefaultDistribution
}

// Sampler returns a log-normal sampler bound to the given random source. Each
// call draws one variate, independent of the previous ones.
func (d Distribution) Sampler(rng *rand.Rand) func() float64 {
	return func() float64 {
		return math.Exp(d.Location + d.Scale*rng.NormFloat64())
	}
}
