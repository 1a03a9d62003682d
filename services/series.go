package services

import (
	"math"
	"math/rand"
	"time"

	"redfin-scraper/models"
	"redfin-scraper/utils"
)

// SeriesMonths is the number of synthetic points produced per run.
const SeriesMonths = 36

// monthStep approximates one calendar month. Keys can collide when month
// lengths drift across the 36 steps; later iterations overwrite earlier
// ones (last write wins).
const monthStep = 30 * 24 * time.Hour

// maxPerturbation bounds the uniform noise applied to the anchor price.
const maxPerturbation = 0.02

// SeriesGenerator expands one anchor observation into a monthly series of
// bounded noise around it. Only the anchor value was actually observed;
// every other point is synthetic.
type SeriesGenerator struct {
	logger  *utils.Logger
	uniform func() float64 // draws from [0, 1)
}

// NewSeriesGenerator creates a generator with fresh randomness.
func NewSeriesGenerator(logger *utils.Logger) *SeriesGenerator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewSeriesGeneratorWithSource(logger, rng)
}

// NewSeriesGeneratorWithSource creates a generator drawing from rng, so
// callers can pin the perturbations.
func NewSeriesGeneratorWithSource(logger *utils.Logger, rng *rand.Rand) *SeriesGenerator {
	return &SeriesGenerator{logger: logger, uniform: rng.Float64}
}

// Expand produces the monthly series for the given anchor price, stepping
// back 30 days per point from anchorTime. Each point carries an independent
// perturbation in [-0.02, +0.02], rounded to cents.
func (g *SeriesGenerator) Expand(anchorPrice float64, anchorTime time.Time) models.MonthlySeries {
	series := make(models.MonthlySeries, SeriesMonths)

	for i := 0; i < SeriesMonths; i++ {
		key := anchorTime.Add(-time.Duration(i) * monthStep).Format(models.DateKeyFormat)
		perturbation := (g.uniform()*2 - 1) * maxPerturbation
		series[key] = round2(anchorPrice * (1 + perturbation))
	}

	g.logger.Debug("[series] Expanded anchor %.2f into %d month keys", anchorPrice, len(series))
	return series
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
