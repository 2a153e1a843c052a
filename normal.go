package cltbench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalReference is the theoretical normal curve to lay over an
// empirical distribution. For a sampling distribution of means, build
// it with μ = pop.Mean() and σ = PredictedStandardError(pop, k).
type NormalReference struct {
	dist distuv.Normal
}

// NewNormalReference returns the Normal(mu, sigma) reference.
func NewNormalReference(mu, sigma float64) (NormalReference, error) {
	if sigma <= 0 {
		return NormalReference{}, fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalidParameter, sigma)
	}
	return NormalReference{dist: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// Mu returns the center of the reference.
func (n NormalReference) Mu() float64 { return n.dist.Mu }

// Sigma returns the spread of the reference.
func (n NormalReference) Sigma() float64 { return n.dist.Sigma }

// PDF evaluates the density at x.
func (n NormalReference) PDF(x float64) float64 { return n.dist.Prob(x) }

// CDF returns P(X ≤ x).
func (n NormalReference) CDF(x float64) float64 { return n.dist.CDF(x) }

// ZScore returns how many standard deviations x sits from the center.
func (n NormalReference) ZScore(x float64) float64 {
	return (x - n.dist.Mu) / n.dist.Sigma
}

// Curve evaluates the density on an evenly spaced grid over μ ± 4σ and
// returns plain x/y slices for the plotting collaborator.
func (n NormalReference) Curve(points int) (xs, ys []float64) {
	if points < 2 {
		points = 2
	}

	xs = make([]float64, points)
	floats.Span(xs, n.dist.Mu-4*n.dist.Sigma, n.dist.Mu+4*n.dist.Sigma)

	ys = make([]float64, points)
	for i, x := range xs {
		ys[i] = n.dist.Prob(x)
	}
	return xs, ys
}

// EmpiricalRule reports the fractions of values within 1, 2, and 3
// standard deviations of their own mean. For normal data these approach
// 0.683, 0.954, and 0.997 - the 68/95/99.7 rule.
func EmpiricalRule(values []float64) (within1, within2, within3 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	mean := stat.Mean(values, nil)
	sd := stat.StdDev(values, nil)
	if sd == 0 {
		return 1, 1, 1
	}

	var c1, c2, c3 int
	for _, v := range values {
		z := math.Abs((v - mean) / sd)
		if z <= 1 {
			c1++
		}
		if z <= 2 {
			c2++
		}
		if z <= 3 {
			c3++
		}
	}

	n := float64(len(values))
	return float64(c1) / n, float64(c2) / n, float64(c3) / n
}
