package services

import (
	"math"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"redfin-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

// uniform 0.5 maps to zero perturbation.
func zeroPerturbationGenerator() *SeriesGenerator {
	g := NewSeriesGenerator(newTestLogger())
	g.uniform = func() float64 { return 0.5 }
	return g
}

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Anchored at 2024-01-01, the 36 backward 30-day steps land in 36 distinct
// calendar months.
var distinctKeyAnchor = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestExpandZeroPerturbation(t *testing.T) {
	series := zeroPerturbationGenerator().Expand(500000.0, distinctKeyAnchor)

	if len(series) != SeriesMonths {
		t.Fatalf("series has %d entries; want %d", len(series), SeriesMonths)
	}
	for key, price := range series {
		if !dateKeyPattern.MatchString(key) {
			t.Errorf("key %q does not match YYYY-MM", key)
		}
		if price != 500000.00 {
			t.Errorf("series[%q] = %v; want 500000.00", key, price)
		}
	}

	keys := series.SortedKeys()
	if keys[0] != "2021-02" || keys[len(keys)-1] != "2024-01" {
		t.Errorf("key range = %s … %s; want 2021-02 … 2024-01", keys[0], keys[len(keys)-1])
	}
}

func TestExpandBoundedPerturbation(t *testing.T) {
	gen := NewSeriesGeneratorWithSource(newTestLogger(), rand.New(rand.NewSource(42)))

	const anchor = 875250.0
	series := gen.Expand(anchor, distinctKeyAnchor)

	lo, hi := anchor*0.98-0.005, anchor*1.02+0.005
	for key, price := range series {
		if price < lo || price > hi {
			t.Errorf("series[%q] = %v outside [%v, %v]", key, price, lo, hi)
		}
	}
}

func TestExpandRoundsToCents(t *testing.T) {
	gen := NewSeriesGeneratorWithSource(newTestLogger(), rand.New(rand.NewSource(7)))

	series := gen.Expand(333333.33, distinctKeyAnchor)
	for key, price := range series {
		cents := price * 100
		if math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Errorf("series[%q] = %v not rounded to cents", key, price)
		}
	}
}

// Anchors whose 30-day stepping revisits a month keep the later value
// (last write wins), so the map ends up with fewer than 36 keys.
func TestExpandOverwritesCollidingKeys(t *testing.T) {
	collidingAnchor := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	series := zeroPerturbationGenerator().Expand(500000.0, collidingAnchor)
	if len(series) != 35 {
		t.Errorf("series has %d entries for colliding anchor; want 35", len(series))
	}
}
