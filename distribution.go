package cltbench

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SamplingDistribution is the empirical distribution of a trial
// statistic across all completed trials. Built once by Simulate,
// read-only afterwards.
//
// Its standard deviation is the standard error of the statistic: the
// number that quietly sits under every confidence interval and p-value.
type SamplingDistribution struct {
	stats      []float64
	sorted     []float64 // Ascending copy for quantiles
	sampleSize int       // k: values drawn per trial
}

func newSamplingDistribution(stats []float64, sampleSize int) *SamplingDistribution {
	sorted := make([]float64, len(stats))
	copy(sorted, stats)
	sort.Float64s(sorted)

	return &SamplingDistribution{
		stats:      stats,
		sorted:     sorted,
		sampleSize: sampleSize,
	}
}

// Len returns the number of trials aggregated.
func (d *SamplingDistribution) Len() int { return len(d.stats) }

// SampleSize returns k, the number of values drawn per trial.
func (d *SamplingDistribution) SampleSize() int { return d.sampleSize }

// Values returns a copy of the trial statistics, in trial order.
// This plain numeric slice is the hand-off surface for plotting.
func (d *SamplingDistribution) Values() []float64 {
	out := make([]float64, len(d.stats))
	copy(out, d.stats)
	return out
}

// Mean returns the center of the sampling distribution. For the mean
// statistic this converges to the population mean μ as trials grow.
func (d *SamplingDistribution) Mean() float64 {
	return stat.Mean(d.stats, nil)
}

// StdDev returns the empirical standard error: the sample standard
// deviation of the trial statistics. For the mean statistic this
// converges to σ/√k.
func (d *SamplingDistribution) StdDev() float64 {
	return stat.StdDev(d.stats, nil)
}

// Quantile returns the q-th empirical quantile, 0 ≤ q ≤ 1.
func (d *SamplingDistribution) Quantile(q float64) float64 {
	return stat.Quantile(q, stat.Empirical, d.sorted, nil)
}

// Skewness returns the sample skewness of the trial statistics.
// Near zero when the Central Limit Theorem has done its work.
func (d *SamplingDistribution) Skewness() float64 {
	return stat.Skew(d.stats, nil)
}

// ExcessKurtosis returns kurtosis minus 3 (0 for a normal).
func (d *SamplingDistribution) ExcessKurtosis() float64 {
	return stat.ExKurtosis(d.stats, nil)
}

// IsBellShaped reports whether the distribution looks normal under a
// moment heuristic: |skewness| and |excess kurtosis| both below tol.
// tol 0.25 is a reasonable screen at 100,000 trials.
func (d *SamplingDistribution) IsBellShaped(tol float64) bool {
	return math.Abs(d.Skewness()) < tol && math.Abs(d.ExcessKurtosis()) < tol
}

// Histogram bins the trial statistics into the given number of
// equal-width bins spanning [min, max].
func (d *SamplingDistribution) Histogram(bins int) (*Histogram, error) {
	return NewHistogram(d.sorted, bins)
}

// PredictedStandardError returns the analytic standard error σ/√k for
// the mean statistic over samples of size k from pop. The empirical
// StdDev of a simulated distribution of means converges to this.
func PredictedStandardError(pop *Population, k int) float64 {
	return pop.StdDev() / math.Sqrt(float64(k))
}

// DistributionSummary is a point-in-time statistical snapshot.
type DistributionSummary struct {
	Trials         int
	SampleSize     int
	Mean           float64
	StdDev         float64 // Empirical standard error
	P05            float64
	P50            float64
	P95            float64
	Skewness       float64
	ExcessKurtosis float64
}

// Summary returns the comprehensive snapshot of the distribution.
func (d *SamplingDistribution) Summary() DistributionSummary {
	return DistributionSummary{
		Trials:         d.Len(),
		SampleSize:     d.sampleSize,
		Mean:           d.Mean(),
		StdDev:         d.StdDev(),
		P05:            d.Quantile(0.05),
		P50:            d.Quantile(0.50),
		P95:            d.Quantile(0.95),
		Skewness:       d.Skewness(),
		ExcessKurtosis: d.ExcessKurtosis(),
	}
}
