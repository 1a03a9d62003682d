package storage

import "redfin-scraper/models"

// SeriesWriter is the interface any series persistence backend must satisfy.
type SeriesWriter interface {
	Write(query models.LocationQuery, series models.MonthlySeries) error
	Close() error
}
