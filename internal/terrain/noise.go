// Package terrain generates the deterministic height profiles levels are
// built from.
package terrain

import "github.com/aquilax/go-perlin"

// Noise parameters shared by every layer.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	// indexScale stretches sample indices before the frequency is applied.
	indexScale = 12.34

	// MaxHeight is the exclusive upper bound of a sample.
	MaxHeight = 256
)

// Layer frequencies. The mezzanine is ten times busier than the base.
const (
	BaseFrequency      = 0.5
	MezzanineFrequency = 5.0
)

// Noise samples one seed's perlin generator. The generator is never
// mutated after construction, so a Noise may be shared between goroutines.
type Noise struct {
	seed int64
	p    *perlin.Perlin
}

// NewNoise creates the generator for a seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		p:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Seed returns the generator seed.
func (n *Noise) Seed() int64 {
	return n.seed
}

// Sample returns the height at a sample index for the given frequency. It is
// a pure function of the seed and its arguments, independent of call order.
func (n *Noise) Sample(frequency float64, index int) int {
	v := n.p.Noise1D(float64(index) / indexScale * frequency)
	h := int(v*128 + 128)
	if h < 0 {
		return 0
	}
	if h >= MaxHeight {
		return MaxHeight - 1
	}
	return h
}
