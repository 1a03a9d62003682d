package redfin

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"redfin-scraper/config"
	"redfin-scraper/models"
	"redfin-scraper/utils"
)

// CSS selectors for the Redfin elements a run touches. Structural selectors
// are kept here in one place so page-layout changes have a single blast
// radius.
const (
	searchBoxSelector   = `input#search-box-input`
	medianPriceSelector = `[data-rf-test-id="abp-price"] .statsValue`
)

const (
	cityPathFragment  = "/city/"
	housingMarketPath = "/housing-market"
)

// Navigator drives the browser from the Redfin homepage to a city's
// housing-market page.
type Navigator struct {
	browser Browser
	cfg     *config.Config
	logger  *utils.Logger
	retry   *utils.RetryConfig
}

// NewNavigator creates a Navigator over an existing browser session.
func NewNavigator(browser Browser, cfg *config.Config, logger *utils.Logger) *Navigator {
	return &Navigator{
		browser: browser,
		cfg:     cfg,
		logger:  logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			Delay:       cfg.RetryBackoff,
			Logger:      logger,
		},
	}
}

// Navigate searches for "{city}, {state}" and lands on the derived
// housing-market page. It makes up to MaxRetries attempts with a fixed
// backoff and returns ErrNavigationFailed once they are exhausted.
func (n *Navigator) Navigate(city, state string) error {
	query := models.LocationQuery{City: city, State: state}.String()

	err := n.retry.Do("navigate "+query, func() error {
		return n.attempt(query)
	})
	if err != nil {
		n.logger.Error("[redfin] Giving up on %q: %v", query, err)
		return fmt.Errorf("%w: %s", ErrNavigationFailed, query)
	}
	return nil
}

func (n *Navigator) attempt(query string) error {
	if err := n.browser.Load(n.cfg.BaseURL); err != nil {
		return fmt.Errorf("load homepage: %w", err)
	}
	if err := n.browser.WaitInteractable(searchBoxSelector, n.cfg.SearchTimeout); err != nil {
		return fmt.Errorf("search box: %w", err)
	}
	if err := n.browser.Clear(searchBoxSelector); err != nil {
		return fmt.Errorf("clear search box: %w", err)
	}

	// Type character by character with a randomized delay so the cadence
	// looks human rather than scripted.
	for _, ch := range query {
		if err := n.browser.SendKeys(searchBoxSelector, string(ch)); err != nil {
			return fmt.Errorf("type query: %w", err)
		}
		time.Sleep(n.typeDelay())
	}
	if err := n.browser.Submit(searchBoxSelector); err != nil {
		return fmt.Errorf("submit query: %w", err)
	}

	cityURL, err := n.browser.WaitURLContains(cityPathFragment, n.cfg.SearchTimeout)
	if err != nil {
		return fmt.Errorf("await city page: %w", err)
	}

	marketURL := strings.TrimRight(cityURL, "/") + housingMarketPath
	n.logger.Debug("[redfin] City page %s → loading %s", cityURL, marketURL)
	return n.browser.Load(marketURL)
}

func (n *Navigator) typeDelay() time.Duration {
	min, max := n.cfg.TypeDelayMin, n.cfg.TypeDelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
