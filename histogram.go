package cltbench

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram is the plotting hand-off: equal-width bins over a numeric
// collection, exposed as plain slices so any external plotting
// collaborator can consume them.
type Histogram struct {
	Edges  []float64 // len(Counts)+1 ascending bin boundaries
	Counts []float64 // Observations per bin
}

// NewHistogram bins values into the given number of equal-width bins
// spanning [min(values), max(values)]. The input is not mutated.
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: histogram needs at least one value", ErrInvalidParameter)
	}
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bin count must be positive, got %d", ErrInvalidParameter, bins)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate spread: widen so the dividers stay strictly
		// increasing and the constant value lands mid-range.
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	// Span's last edge can land a hair below the true max after
	// floating-point division; gonum's binning rejects values beyond
	// the final divider, so pin it.
	edges[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(make([]float64, bins), edges, sorted, nil)

	return &Histogram{Edges: edges, Counts: counts}, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.Counts) }

// Total returns the number of observations across all bins.
func (h *Histogram) Total() float64 { return floats.Sum(h.Counts) }

// Densities returns counts normalized so the histogram integrates to 1,
// directly comparable to a probability density curve.
func (h *Histogram) Densities() []float64 {
	total := h.Total()
	out := make([]float64, len(h.Counts))
	if total == 0 {
		return out
	}
	for i, c := range h.Counts {
		width := h.Edges[i+1] - h.Edges[i]
		out[i] = c / (total * width)
	}
	return out
}

// ModeBin returns the index of the fullest bin.
func (h *Histogram) ModeBin() int {
	return floats.MaxIdx(h.Counts)
}

// Center returns the midpoint of bin i.
func (h *Histogram) Center(i int) float64 {
	return (h.Edges[i] + h.Edges[i+1]) / 2
}

// Render returns a text rendering of the histogram, one bar row per
// bin, scaled so the fullest bin spans width characters. Good enough
// to see a bell take shape in a terminal or test log.
func (h *Histogram) Render(width int) string {
	if width <= 0 {
		width = 50
	}

	peak := h.Counts[h.ModeBin()]
	var b strings.Builder
	for i, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = int(math.Round(c / peak * float64(width)))
		}
		fmt.Fprintf(&b, "%8.2f │%s %d\n", h.Center(i), strings.Repeat("█", bar), int(c))
	}
	return b.String()
}
