package cltbench

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParameter is the taxonomy for every rejected input: empty
// populations, non-positive sizes, sample sizes that exceed the
// population when drawing without replacement. Match with errors.Is.
var ErrInvalidParameter = errors.New("cltbench: invalid parameter")

// Population is a fixed, finite collection of numeric values from which
// samples are drawn. Immutable after construction: every accessor that
// returns values returns a copy, and the moments are computed once.
type Population struct {
	values []float64
	sorted []float64 // Ascending copy for quantiles

	mean   float64
	stddev float64 // Population standard deviation (n divisor)
}

// PopulationConfig controls generated populations.
//
// The default shape, Beta(1, 3) scaled to [0, 100], is deliberately
// right-skewed: most values pile up near zero with a long tail toward
// 100. A population this far from normal is the honest starting point
// for demonstrating that sample means come out bell-shaped anyway.
type PopulationConfig struct {
	Size  int     // Number of values to generate
	Alpha float64 // Beta distribution α shape parameter
	Beta  float64 // Beta distribution β shape parameter
	Scale float64 // Values are drawn in [0, Scale]
	Seed  uint64  // PCG seed; generation is bit-reproducible per seed
}

// DefaultPopulationConfig returns the reference skewed population:
// 100,000 integers from Beta(1, 3) scaled to [0, 100], mean ≈ 25.
func DefaultPopulationConfig() PopulationConfig {
	return PopulationConfig{
		Size:  100_000,
		Alpha: 1,
		Beta:  3,
		Scale: 100,
		Seed:  1,
	}
}

// NewPopulation builds a population from caller-supplied values.
// The input slice is copied; later mutation of it does not affect the
// population.
func NewPopulation(values []float64) (*Population, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: population must be non-empty", ErrInvalidParameter)
	}

	owned := make([]float64, len(values))
	copy(owned, values)

	return newPopulation(owned), nil
}

// NewBetaPopulation generates a population from a scaled Beta
// distribution and rounds every value to an integer.
func NewBetaPopulation(cfg PopulationConfig) (*Population, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidParameter, cfg.Size)
	}
	if cfg.Alpha <= 0 || cfg.Beta <= 0 {
		return nil, fmt.Errorf("%w: shape parameters must be positive, got α=%g β=%g", ErrInvalidParameter, cfg.Alpha, cfg.Beta)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidParameter, cfg.Scale)
	}

	src := distuv.Beta{
		Alpha: cfg.Alpha,
		Beta:  cfg.Beta,
		Src:   rand.NewPCG(cfg.Seed, populationStream),
	}

	values := make([]float64, cfg.Size)
	for i := range values {
		values[i] = math.Round(src.Rand() * cfg.Scale)
	}

	return newPopulation(values), nil
}

// populationStream separates the population's PCG stream from the
// per-trial streams derived in Simulate, which use the trial index.
const populationStream = math.MaxUint64

func newPopulation(owned []float64) *Population {
	sorted := make([]float64, len(owned))
	copy(sorted, owned)
	sort.Float64s(sorted)

	return &Population{
		values: owned,
		sorted: sorted,
		mean:   stat.Mean(owned, nil),
		stddev: stat.PopStdDev(owned, nil),
	}
}

// Len returns the number of values in the population.
func (p *Population) Len() int { return len(p.values) }

// Values returns a copy of the population values.
func (p *Population) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// Mean returns the population mean μ.
func (p *Population) Mean() float64 { return p.mean }

// StdDev returns the population standard deviation σ (n divisor, not
// n-1: this is the whole population, not a sample of one).
func (p *Population) StdDev() float64 { return p.stddev }

// Min returns the smallest population value.
func (p *Population) Min() float64 { return p.sorted[0] }

// Max returns the largest population value.
func (p *Population) Max() float64 { return p.sorted[len(p.sorted)-1] }

// Quantile returns the q-th empirical quantile, 0 ≤ q ≤ 1.
func (p *Population) Quantile(q float64) float64 {
	return stat.Quantile(q, stat.Empirical, p.sorted, nil)
}

// Skewness returns the sample skewness of the population values.
// Positive for the default Beta(1, 3) population (long right tail).
func (p *Population) Skewness() float64 {
	return stat.Skew(p.values, nil)
}

// Sum returns the sum of all population values.
func (p *Population) Sum() float64 {
	return floats.Sum(p.values)
}

// at returns the value at index i without copying. Internal read-only
// access for the trial loop.
func (p *Population) at(i int) float64 { return p.values[i] }
