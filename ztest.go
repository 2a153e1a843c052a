package cltbench

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestStatus is the outcome of a significance test at the conventional
// α = 0.05 level. Use Verdict.Significant to apply a different level.
type TestStatus string

const (
	StatusRejected    TestStatus = "rejected"     // H0 rejected: p < 0.05
	StatusNotRejected TestStatus = "not_rejected" // Evidence insufficient
)

// Verdict is the judgment on the null hypothesis that a sample was
// drawn from the population (H0: sample mean == population mean).
type Verdict struct {
	Status     TestStatus
	P          float64 // Two-sided p-value
	Z          float64 // Standardized distance of Observed from Expected
	Observed   float64 // Observed sample mean
	Expected   float64 // Population mean under H0
	StdError   float64 // Standard error the Z was computed against
	EffectSize float64 // (Observed - Expected) / population σ, Cohen's d
	SampleSize int

	// Null describes the distribution the p-value was read from: the
	// analytic normal for ZTest, the simulated sampling distribution
	// for MonteCarloTest.
	Null NullSummary
}

// NullSummary captures the null distribution behind a verdict.
type NullSummary struct {
	Mean   float64
	StdDev float64
	P025   float64
	P975   float64
	Trials int // 0 for analytic nulls
}

// Significant reports whether H0 is rejected at level alpha.
func (v Verdict) Significant(alpha float64) bool {
	return v.P < alpha
}

// ZTest runs a one-sample, two-sided z-test of H0: the sample was drawn
// from pop. The population σ is known here, so the standard error is
// the analytic σ/√n and the p-value comes straight from the standard
// normal CDF - no simulation involved. Compare with MonteCarloTest,
// which reads the same p-value off a brute-force null distribution.
func ZTest(sample []float64, pop *Population) (Verdict, error) {
	if len(sample) == 0 {
		return Verdict{}, fmt.Errorf("%w: sample must be non-empty", ErrInvalidParameter)
	}
	if pop == nil || pop.Len() == 0 {
		return Verdict{}, fmt.Errorf("%w: population must be non-empty", ErrInvalidParameter)
	}
	if pop.StdDev() == 0 {
		return Verdict{}, fmt.Errorf("%w: population has zero spread, z is undefined", ErrInvalidParameter)
	}

	observed := stat.Mean(sample, nil)
	se := pop.StdDev() / math.Sqrt(float64(len(sample)))
	z := (observed - pop.Mean()) / se

	// Two-sided: P(|Z| ≥ |z|) under the standard normal.
	p := 2 * distuv.UnitNormal.CDF(-math.Abs(z))

	norm := distuv.Normal{Mu: pop.Mean(), Sigma: se}

	return Verdict{
		Status:     status(p),
		P:          p,
		Z:          z,
		Observed:   observed,
		Expected:   pop.Mean(),
		StdError:   se,
		EffectSize: (observed - pop.Mean()) / pop.StdDev(),
		SampleSize: len(sample),
		Null: NullSummary{
			Mean:   pop.Mean(),
			StdDev: se,
			P025:   norm.Quantile(0.025),
			P975:   norm.Quantile(0.975),
		},
	}, nil
}

// MonteCarloTest computes the same two-sided p-value empirically: it
// simulates the null sampling distribution of the mean for samples of
// size k from pop (cfg.SampleSize is overridden by k), then counts the
// fraction of trial means at least as far from the population mean as
// observed is.
//
// The +1 in numerator and denominator is the standard correction that
// keeps a resampled p-value from ever reaching an impossible zero.
func MonteCarloTest(ctx context.Context, pop *Population, observed float64, k int, cfg Config) (Verdict, error) {
	cfg.SampleSize = k

	dist, err := Simulate(ctx, pop, Mean, cfg)
	if err != nil {
		return Verdict{}, err
	}

	delta := math.Abs(observed - pop.Mean())
	extreme := 0
	for _, m := range dist.Values() {
		if math.Abs(m-pop.Mean()) >= delta {
			extreme++
		}
	}
	p := float64(extreme+1) / float64(dist.Len()+1)

	se := dist.StdDev()
	var z float64
	if se > 0 {
		z = (observed - pop.Mean()) / se
	}

	var effect float64
	if pop.StdDev() > 0 {
		effect = (observed - pop.Mean()) / pop.StdDev()
	}

	return Verdict{
		Status:     status(p),
		P:          p,
		Z:          z,
		Observed:   observed,
		Expected:   pop.Mean(),
		StdError:   se,
		EffectSize: effect,
		SampleSize: k,
		Null: NullSummary{
			Mean:   dist.Mean(),
			StdDev: se,
			P025:   dist.Quantile(0.025),
			P975:   dist.Quantile(0.975),
			Trials: dist.Len(),
		},
	}, nil
}

func status(p float64) TestStatus {
	if p < 0.05 {
		return StatusRejected
	}
	return StatusNotRejected
}
