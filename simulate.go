package cltbench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Statistic maps one sample to one trial statistic. Implementations
// must be pure: no state beyond the sample argument, safe for
// concurrent execution. The sample slice is owned by the caller and
// may be reused between trials; do not retain it.
type Statistic func(sample []float64) float64

// Mean is the arithmetic-mean statistic, the one the Central Limit
// Theorem is usually told about.
func Mean(sample []float64) float64 {
	return stat.Mean(sample, nil)
}

// StdDev is the sample standard deviation statistic (n-1 divisor).
func StdDev(sample []float64) float64 {
	return stat.StdDev(sample, nil)
}

// Median is the sample median statistic. Sorts a copy; the input
// sample is left untouched.
func Median(sample []float64) float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Config controls simulation execution. All state that would otherwise
// be ambient (global seed, global parallelism) is explicit here.
type Config struct {
	SampleSize  int    // Values drawn per trial (k)
	Trials      int    // Independent trials (T)
	Seed        uint64 // Base seed; trial i uses stream (Seed, i)
	Workers     int    // Concurrent workers (1 = sequential loop)
	Replacement bool   // Draw with replacement instead of without
}

// DefaultConfig returns the reference demonstration parameters:
// samples of 40, 100,000 trials, without replacement, all cores.
func DefaultConfig() Config {
	return Config{
		SampleSize:  40,
		Trials:      100_000,
		Seed:        1,
		Workers:     runtime.NumCPU(),
		Replacement: false,
	}
}

// Simulate runs cfg.Trials independent trials: each draws a sample of
// cfg.SampleSize values from pop, applies statistic, and records the
// result. The returned distribution holds exactly cfg.Trials values.
//
// Trials are exchangeable - no ordering dependency, no shared mutable
// state beyond read-only access to pop - so they are partitioned into
// contiguous chunks across cfg.Workers goroutines, each trial writing
// to its own output slot. Trial i always uses the PCG stream
// (cfg.Seed, i), so output is bit-identical for a fixed seed whether
// Workers is 1 or 64.
//
// A canceled context aborts the whole run with ctx.Err(); there is no
// partial-result contract.
func Simulate(ctx context.Context, pop *Population, statistic Statistic, cfg Config) (*SamplingDistribution, error) {
	if err := validate(pop, statistic, cfg); err != nil {
		return nil, err
	}

	stats := make([]float64, cfg.Trials)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (cfg.Trials + workers - 1) / workers
	for lo := 0; lo < cfg.Trials; lo += chunk {
		hi := min(lo+chunk, cfg.Trials)

		g.Go(func() error {
			sample := make([]float64, cfg.SampleSize)

			for trial := lo; trial < hi; trial++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				rng := rand.New(rand.NewPCG(cfg.Seed, uint64(trial)))
				if cfg.Replacement {
					drawWithReplacement(rng, pop, sample)
				} else {
					drawWithoutReplacement(rng, pop, sample)
				}

				stats[trial] = statistic(sample)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	return newSamplingDistribution(stats, cfg.SampleSize), nil
}

func validate(pop *Population, statistic Statistic, cfg Config) error {
	if pop == nil || pop.Len() == 0 {
		return fmt.Errorf("%w: population must be non-empty", ErrInvalidParameter)
	}
	if statistic == nil {
		return fmt.Errorf("%w: statistic must be non-nil", ErrInvalidParameter)
	}
	if cfg.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidParameter, cfg.SampleSize)
	}
	if cfg.Trials <= 0 {
		return fmt.Errorf("%w: trial count must be positive, got %d", ErrInvalidParameter, cfg.Trials)
	}
	if !cfg.Replacement && cfg.SampleSize > pop.Len() {
		return fmt.Errorf("%w: sample size %d exceeds population size %d without replacement",
			ErrInvalidParameter, cfg.SampleSize, pop.Len())
	}
	return nil
}

// drawWithReplacement fills sample with k independent uniform draws.
func drawWithReplacement(rng *rand.Rand, pop *Population, sample []float64) {
	n := pop.Len()
	for i := range sample {
		sample[i] = pop.at(rng.IntN(n))
	}
}

// drawWithoutReplacement fills sample with k distinct uniform draws
// using Floyd's subset-sampling algorithm: O(k) work per trial instead
// of permuting the whole population.
func drawWithoutReplacement(rng *rand.Rand, pop *Population, sample []float64) {
	n := pop.Len()
	k := len(sample)

	chosen := make(map[int]struct{}, k)
	out := 0
	for i := n - k; i < n; i++ {
		j := rng.IntN(i + 1)
		if _, taken := chosen[j]; taken {
			j = i
		}
		chosen[j] = struct{}{}
		sample[out] = pop.at(j)
		out++
	}
}
