package cltbench

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for distributional properties.
type AssertionConfig struct {
	// Absolute tolerance for mean convergence (population scale units)
	MeanTolerance float64

	// Relative tolerance for the empirical vs analytic standard error
	StdErrorTolerance float64

	// |skewness| and |excess kurtosis| below this pass the shape check
	ShapeTolerance float64

	// Minimum trials for the convergence assertions to be meaningful
	MinTrials int
}

// DefaultAssertionConfig returns tolerances calibrated for the
// reference demonstration (100,000 trials, population mean ≈ 25).
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MeanTolerance:     0.5,
		StdErrorTolerance: 0.05, // 5% relative
		ShapeTolerance:    0.25,
		MinTrials:         10_000,
	}
}

// AssertTrialCount verifies the distribution holds exactly the number
// of trial statistics the run was configured for. A silently short
// output would invalidate every downstream summary.
func AssertTrialCount(t *testing.T, dist *SamplingDistribution, trials int) {
	t.Helper()

	if dist.Len() != trials {
		t.Errorf("Trial count mismatch: got %d statistics, expected %d", dist.Len(), trials)
		return
	}

	t.Logf("✓ Trial count: %d statistics", dist.Len())
}

// AssertConvergesToPopulationMean verifies the law of large numbers:
// the mean of the sampling distribution lands within MeanTolerance of
// the population mean.
//
// Mathematical property:
//
//	mean(dist) → μ as T → ∞
func AssertConvergesToPopulationMean(t *testing.T, dist *SamplingDistribution, pop *Population, cfg AssertionConfig) {
	t.Helper()

	if dist.Len() < cfg.MinTrials {
		t.Errorf("Too few trials for convergence check: %d (min: %d)", dist.Len(), cfg.MinTrials)
		return
	}

	diff := math.Abs(dist.Mean() - pop.Mean())
	if diff > cfg.MeanTolerance {
		t.Errorf("Mean did not converge: |%.4f - %.4f| = %.4f (tolerance: %.4f)\n"+
			"Either trials are too few or the sampler is biased.",
			dist.Mean(), pop.Mean(), diff, cfg.MeanTolerance)
		return
	}

	t.Logf("✓ Convergence: mean %.4f vs μ %.4f (Δ %.4f, tolerance %.4f)",
		dist.Mean(), pop.Mean(), diff, cfg.MeanTolerance)
}

// AssertStandardError verifies the spread of the sampling distribution
// matches the analytic standard error within relative tolerance.
//
// Mathematical property:
//
//	stddev(dist) → σ/√k as T → ∞
func AssertStandardError(t *testing.T, dist *SamplingDistribution, pop *Population, cfg AssertionConfig) {
	t.Helper()

	if dist.Len() < cfg.MinTrials {
		t.Errorf("Too few trials for standard-error check: %d (min: %d)", dist.Len(), cfg.MinTrials)
		return
	}

	predicted := PredictedStandardError(pop, dist.SampleSize())
	if predicted == 0 {
		t.Errorf("Population has zero spread, standard error undefined")
		return
	}

	observed := dist.StdDev()
	relErr := math.Abs(observed-predicted) / predicted
	if relErr > cfg.StdErrorTolerance {
		t.Errorf("Standard error off: observed %.4f vs σ/√k %.4f (%.1f%% relative, tolerance %.1f%%)",
			observed, predicted, relErr*100, cfg.StdErrorTolerance*100)
		return
	}

	t.Logf("✓ Standard error: observed %.4f vs σ/√k %.4f (%.1f%% relative)",
		observed, predicted, relErr*100)
}

// AssertBellShaped verifies the sampling distribution has washed out
// the population's shape: skewness and excess kurtosis near zero.
//
// This is the Central Limit Theorem check. The population can be as
// skewed as it likes; the distribution of sample means must not be.
func AssertBellShaped(t *testing.T, dist *SamplingDistribution, cfg AssertionConfig) {
	t.Helper()

	skew := dist.Skewness()
	kurt := dist.ExcessKurtosis()

	if math.Abs(skew) > cfg.ShapeTolerance {
		t.Errorf("Distribution still skewed: %.4f (tolerance: %.4f)\n"+
			"Sample size may be too small for this population's tail.",
			skew, cfg.ShapeTolerance)
	}

	if math.Abs(kurt) > cfg.ShapeTolerance {
		t.Errorf("Excess kurtosis too large: %.4f (tolerance: %.4f)", kurt, cfg.ShapeTolerance)
	}

	t.Logf("✓ Bell shape: skewness %.4f, excess kurtosis %.4f (tolerance %.4f)",
		skew, kurt, cfg.ShapeTolerance)
}

// AssertSamplingDistribution runs all distributional assertions with
// default tolerances.
func AssertSamplingDistribution(t *testing.T, dist *SamplingDistribution, pop *Population) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("Convergence", func(t *testing.T) {
		AssertConvergesToPopulationMean(t, dist, pop, cfg)
	})

	t.Run("StandardError", func(t *testing.T) {
		AssertStandardError(t, dist, pop, cfg)
	})

	t.Run("BellShaped", func(t *testing.T) {
		AssertBellShaped(t, dist, cfg)
	})
}

// PrintAnalysis outputs the observed-vs-predicted table to the test log.
func PrintAnalysis(t *testing.T, dist *SamplingDistribution, pop *Population) {
	t.Helper()

	s := dist.Summary()
	predicted := PredictedStandardError(pop, s.SampleSize)

	t.Logf("\n=== Sampling Distribution Analysis ===")
	t.Logf("Population:")
	t.Logf("  size     = %d", pop.Len())
	t.Logf("  μ        = %.4f", pop.Mean())
	t.Logf("  σ        = %.4f", pop.StdDev())
	t.Logf("  skewness = %.4f", pop.Skewness())

	t.Logf("\nSampling distribution (k=%d, T=%d):", s.SampleSize, s.Trials)
	t.Logf("                Observed      Predicted")
	t.Logf("  center        %10.4f    %10.4f (μ)", s.Mean, pop.Mean())
	t.Logf("  spread        %10.4f    %10.4f (σ/√k)", s.StdDev, predicted)
	t.Logf("  skewness      %10.4f    %10.4f (normal)", s.Skewness, 0.0)
	t.Logf("  ex. kurtosis  %10.4f    %10.4f (normal)", s.ExcessKurtosis, 0.0)
	t.Logf("  P05/P50/P95   %.3f / %.3f / %.3f", s.P05, s.P50, s.P95)

	w1, w2, w3 := EmpiricalRule(dist.Values())
	t.Logf("\nEmpirical rule (expect 68/95/99.7):")
	t.Logf("  within 1σ: %.1f%%", w1*100)
	t.Logf("  within 2σ: %.1f%%", w2*100)
	t.Logf("  within 3σ: %.1f%%", w3*100)

	if h, err := dist.Histogram(20); err == nil {
		t.Logf("\nHistogram:\n%s", h.Render(40))
	}
}
