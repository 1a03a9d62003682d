package redfin

import (
	"fmt"
	"strings"

	"redfin-scraper/config"
	"redfin-scraper/utils"
)

// Extractor reads the median sale price off the housing-market page. It is
// single-shot: exactly one value or a fatal error, no retries.
type Extractor struct {
	browser Browser
	cfg     *config.Config
	logger  *utils.Logger
}

// NewExtractor creates an Extractor over an existing browser session.
func NewExtractor(browser Browser, cfg *config.Config, logger *utils.Logger) *Extractor {
	return &Extractor{browser: browser, cfg: cfg, logger: logger}
}

// ReadPrice waits for the median-price element and parses its text. Call
// only after a successful Navigate.
func (e *Extractor) ReadPrice() (float64, error) {
	text, err := e.browser.ElementText(medianPriceSelector, e.cfg.PriceTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPriceNotFound, err)
	}

	text = strings.TrimSpace(text)
	e.logger.Info("[redfin] Found current price: %s", text)

	return ParsePrice(text)
}
