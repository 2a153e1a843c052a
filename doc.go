// Package cltbench measures distributional properties of sample statistics.
//
// # Overview
//
// cltbench answers a single question empirically: what does the
// distribution of a statistic look like under repeated sampling? It draws
// many independent samples from a fixed population, computes a statistic
// per sample, and aggregates the results into an empirical sampling
// distribution that can be summarized, histogrammed, and tested against
// the theoretical normal predicted by the Central Limit Theorem.
//
// # Architecture
//
// The package components:
//
//   - population/   - Immutable populations (generated or supplied)
//   - simulate/     - The Monte Carlo trial runner
//   - distribution/ - Sampling-distribution summaries
//   - histogram/    - Binning for the plotting collaborator
//   - normal/       - Theoretical normal reference curves
//   - ztest/        - Null-hypothesis significance testing
//   - assertions/   - Test helpers for distributional properties
//
// # Quick Start
//
// Simulate the sampling distribution of the mean:
//
//	pop, err := cltbench.NewBetaPopulation(cltbench.DefaultPopulationConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dist, err := cltbench.Simulate(ctx, pop, cltbench.Mean, cltbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Center: %.2f\n", dist.Mean())
//	fmt.Printf("Standard error: %.4f\n", dist.StdDev())
//
// # The Central Limit Theorem
//
// For samples of size k drawn from a population with mean μ and standard
// deviation σ, the sampling distribution of the mean approaches:
//
//	Normal(μ, σ/√k)
//
// regardless of the population's own shape. cltbench demonstrates this
// with a deliberately skewed population: Beta(1, 3) scaled to [0, 100]
// is nothing like a bell curve, yet the distribution of its sample means
// is, already at k = 40.
//
// Properties measured:
//   - Convergence: mean(dist) → μ as trials grow (law of large numbers)
//   - Standard Error: stddev(dist) → σ/√k
//   - Shape: skewness ≈ 0, excess kurtosis ≈ 0 (bell-shaped)
//
// # Determinism
//
// Every trial derives its own PCG stream from (Config.Seed, trial index).
// This makes runs bit-reproducible for a fixed seed regardless of how
// many workers execute the trials, and it keeps concurrent trial streams
// statistically independent - correlated draws across trials would break
// the independence assumption the whole exercise rests on.
//
// # Significance Testing
//
// The sampling distribution is what a p-value quietly refers to. cltbench
// makes that explicit two ways:
//
//	// Analytic: one-sample z-test against the known population
//	verdict, err := cltbench.ZTest(sample, pop)
//
//	// Empirical: p as the fraction of simulated null means at least
//	// as extreme as the observed one
//	verdict, err := cltbench.MonteCarloTest(ctx, pop, observed, 40, cfg)
//
//	if verdict.Significant(0.05) {
//	    // Reject H0: this sample mean is unlikely under the population
//	}
//
// # Testing
//
// Use assertions to validate distributional properties:
//
//	func TestMySimulation(t *testing.T) {
//	    dist, _ := cltbench.Simulate(ctx, pop, cltbench.Mean, cfg)
//
//	    cfg := cltbench.DefaultAssertionConfig()
//	    cltbench.AssertConvergesToPopulationMean(t, dist, pop, cfg)
//	    cltbench.AssertStandardError(t, dist, pop, cfg)
//	    cltbench.AssertBellShaped(t, dist, cfg)
//	}
//
// # Philosophy
//
// Traditional statistics teaching answers: "What is the formula?"
// cltbench answers: "What would you actually see if you sampled 100,000
// times?"
//
// - Does the mean of means converge? (law of large numbers)
// - Does the spread shrink like σ/√k? (standard error)
// - Does the skew wash out? (Central Limit Theorem)
// - Is a p-value just a tail fraction of this distribution? (yes)
//
// This shifts focus from "trusting the formula" to "watching the formula
// emerge from brute-force resampling".
package cltbench
