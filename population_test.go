package cltbench

import (
	"errors"
	"math"
	"testing"
)

// TestNewBetaPopulation_ReferenceShape verifies the default skewed
// population comes out the way the demonstration needs it.
func TestNewBetaPopulation_ReferenceShape(t *testing.T) {
	pop, err := NewBetaPopulation(DefaultPopulationConfig())
	if err != nil {
		t.Fatalf("NewBetaPopulation failed: %v", err)
	}

	if pop.Len() != 100_000 {
		t.Fatalf("Expected 100000 values, got %d", pop.Len())
	}

	// All values integers in [0, 100]
	for i, v := range pop.Values() {
		if v != math.Round(v) {
			t.Fatalf("Value %d not rounded: %v", i, v)
		}
		if v < 0 || v > 100 {
			t.Fatalf("Value %d out of range: %v", i, v)
		}
	}

	// Beta(1,3) scaled to 100: E[X] = 25, strong right skew
	if diff := math.Abs(pop.Mean() - 25); diff > 0.5 {
		t.Errorf("Mean %.4f not near 25 (Δ %.4f)", pop.Mean(), diff)
	}

	if pop.Skewness() < 0.5 {
		t.Errorf("Population should be strongly right-skewed, got skewness %.4f", pop.Skewness())
	}

	t.Logf("✓ Reference population: μ=%.3f σ=%.3f skewness=%.3f range=[%.0f, %.0f]",
		pop.Mean(), pop.StdDev(), pop.Skewness(), pop.Min(), pop.Max())
}

// TestNewBetaPopulation_Deterministic verifies bit-reproducible
// generation per seed.
func TestNewBetaPopulation_Deterministic(t *testing.T) {
	cfg := DefaultPopulationConfig()
	cfg.Size = 1000

	a, err := NewBetaPopulation(cfg)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	b, err := NewBetaPopulation(cfg)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	av, bv := a.Values(), b.Values()
	for i := range av {
		if av[i] != bv[i] {
			t.Fatalf("Value %d differs across identical seeds: %v vs %v", i, av[i], bv[i])
		}
	}

	cfg.Seed = 2
	c, err := NewBetaPopulation(cfg)
	if err != nil {
		t.Fatalf("third generation failed: %v", err)
	}
	if c.Mean() == a.Mean() && c.Values()[0] == av[0] {
		t.Error("Different seeds produced identical populations")
	}

	t.Logf("✓ Deterministic: identical seeds agree, seed change diverges")
}

// TestNewBetaPopulation_InvalidConfig verifies parameter validation.
func TestNewBetaPopulation_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PopulationConfig)
	}{
		{"zero size", func(c *PopulationConfig) { c.Size = 0 }},
		{"negative size", func(c *PopulationConfig) { c.Size = -5 }},
		{"zero alpha", func(c *PopulationConfig) { c.Alpha = 0 }},
		{"negative beta", func(c *PopulationConfig) { c.Beta = -1 }},
		{"zero scale", func(c *PopulationConfig) { c.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPopulationConfig()
			tt.mutate(&cfg)

			_, err := NewBetaPopulation(cfg)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

// TestNewPopulation_Immutable verifies the constructor copies its input
// and accessors copy their output.
func TestNewPopulation_Immutable(t *testing.T) {
	raw := []float64{10, 20, 30}
	pop, err := NewPopulation(raw)
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}

	raw[0] = 999
	if pop.Values()[0] != 10 {
		t.Error("Population mutated through the input slice")
	}

	out := pop.Values()
	out[1] = 999
	if pop.Values()[1] != 20 {
		t.Error("Population mutated through an accessor copy")
	}

	if pop.Mean() != 20 {
		t.Errorf("Mean: expected 20, got %v", pop.Mean())
	}
	if pop.Min() != 10 || pop.Max() != 30 {
		t.Errorf("Range: expected [10, 30], got [%v, %v]", pop.Min(), pop.Max())
	}
	if pop.Sum() != 60 {
		t.Errorf("Sum: expected 60, got %v", pop.Sum())
	}
}

// TestNewPopulation_Empty verifies empty input is rejected, not
// silently accepted.
func TestNewPopulation_Empty(t *testing.T) {
	_, err := NewPopulation(nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for empty population, got %v", err)
	}
}

// TestPopulation_Quantile verifies empirical quantiles on known values.
func TestPopulation_Quantile(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1) // 1..100
	}

	pop, err := NewPopulation(values)
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}

	if q := pop.Quantile(0.5); q < 49 || q > 51 {
		t.Errorf("Median of 1..100: expected ≈50, got %v", q)
	}
	if q := pop.Quantile(1.0); q != 100 {
		t.Errorf("Q(1.0): expected 100, got %v", q)
	}
}
