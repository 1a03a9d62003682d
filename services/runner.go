package services

import (
	"fmt"
	"time"

	"redfin-scraper/models"
	"redfin-scraper/storage"
	"redfin-scraper/utils"
)

// Navigator drives the browser to the housing-market page for a query.
type Navigator interface {
	Navigate(city, state string) error
}

// PriceReader reads the current median sale price off the loaded page.
type PriceReader interface {
	ReadPrice() (float64, error)
}

// SessionCloser releases the browser session a run exclusively owns.
type SessionCloser interface {
	Close()
}

// Runner sequences one full scrape: navigate, read the anchor price, expand
// it into the synthetic series, and hand the result to every writer.
// Nothing is persisted unless every stage before it succeeded.
type Runner struct {
	nav     Navigator
	reader  PriceReader
	gen     *SeriesGenerator
	writers []storage.SeriesWriter
	session SessionCloser
	logger  *utils.Logger
	now     func() time.Time
}

// NewRunner wires the pipeline together.
func NewRunner(nav Navigator, reader PriceReader, gen *SeriesGenerator,
	writers []storage.SeriesWriter, logger *utils.Logger) *Runner {
	return &Runner{
		nav:     nav,
		reader:  reader,
		gen:     gen,
		writers: writers,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock pins the timestamp the series is anchored to.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// WithSession hands the Runner the session to release when the run ends.
func (r *Runner) WithSession(session SessionCloser) *Runner {
	r.session = session
	return r
}

// Run executes one scrape for the query and returns the generated series.
// The session, if one was attached, is released on every exit path.
func (r *Runner) Run(query models.LocationQuery) (models.MonthlySeries, error) {
	if r.session != nil {
		defer r.session.Close()
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := r.nav.Navigate(query.City, query.State); err != nil {
		return nil, err
	}

	price, err := r.reader.ReadPrice()
	if err != nil {
		return nil, err
	}

	anchor := models.AnchorObservation{Price: price, ObservedAt: r.now()}
	r.logger.Info("[runner] Anchor observation for %s: %s at %s",
		query, models.FormatUSD(anchor.Price), anchor.ObservedAt.Format(time.RFC3339))

	series := r.gen.Expand(anchor.Price, anchor.ObservedAt)

	for _, w := range r.writers {
		if err := w.Write(query, series); err != nil {
			return nil, fmt.Errorf("persist series: %w", err)
		}
	}

	return series, nil
}
