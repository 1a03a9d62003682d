package redfin

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"redfin-scraper/config"
	"redfin-scraper/utils"
)

// Browser is the minimal surface of a scriptable browser session the
// Navigator and Extractor need. The chromedp-backed Session implements it;
// tests substitute fakes.
type Browser interface {
	Load(url string) error
	WaitInteractable(selector string, timeout time.Duration) error
	Clear(selector string) error
	SendKeys(selector, keys string) error
	Submit(selector string) error
	WaitURLContains(fragment string, timeout time.Duration) (string, error)
	ElementText(selector string, timeout time.Duration) (string, error)
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// hideWebdriverScript suppresses the automation flag sites probe first.
// Installed before any document loads.
const hideWebdriverScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Session owns one Chrome instance for the lifetime of a run. Every action
// it issues is bounded: element waits carry their caller's timeout, and all
// other interactions are capped by loadTimeout so a hung page cannot stall
// an attempt forever.
type Session struct {
	ctx         context.Context
	cancel      func()
	closeOnce   sync.Once
	loadTimeout time.Duration
	logger      *utils.Logger
}

// NewSession launches Chrome with anti-fingerprint settings and installs
// the webdriver-property override.
func NewSession(cfg *config.Config, logger *utils.Logger) (*Session, error) {
	chromeBin := findChromeBinary(cfg.ChromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("window-size", "1920,1080"),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.UserAgent(userAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}

	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(hideWebdriverScript).Do(ctx)
		return err
	}))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrSessionSetup, err)
	}

	logger.Info("[session] Browser ready — headless=%v, binary=%q", cfg.Headless, chromeBin)
	return &Session{ctx: ctx, cancel: cancel, loadTimeout: cfg.PageLoadTimeout, logger: logger}, nil
}

// Close tears the browser down. Safe to call more than once; only the first
// call does anything.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.logger.Info("[session] Browser closed")
	})
}

// actionContext derives the bounded context an action runs under.
func (s *Session) actionContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(s.ctx)
	}
	return context.WithTimeout(s.ctx, timeout)
}

func (s *Session) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := s.actionContext(timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Load navigates the session to an absolute URL.
func (s *Session) Load(url string) error {
	return s.run(s.loadTimeout, chromedp.Navigate(url))
}

// CurrentURL reports the browser's current location.
func (s *Session) CurrentURL() (string, error) {
	var url string
	err := s.run(s.loadTimeout, chromedp.Location(&url))
	return url, err
}

// WaitInteractable blocks until the element is visible and enabled, or the
// timeout elapses.
func (s *Session) WaitInteractable(selector string, timeout time.Duration) error {
	return s.run(timeout,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.WaitEnabled(selector, chromedp.ByQuery),
	)
}

// Clear empties the element's value.
func (s *Session) Clear(selector string) error {
	return s.run(s.loadTimeout, chromedp.Clear(selector, chromedp.ByQuery))
}

// SendKeys types keys into the element.
func (s *Session) SendKeys(selector, keys string) error {
	return s.run(s.loadTimeout, chromedp.SendKeys(selector, keys, chromedp.ByQuery))
}

// Submit sends the Enter keystroke to the element.
func (s *Session) Submit(selector string) error {
	return s.run(s.loadTimeout, chromedp.SendKeys(selector, kb.Enter, chromedp.ByQuery))
}

// WaitURLContains polls the location until it contains fragment, returning
// the matching URL.
func (s *Session) WaitURLContains(fragment string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		url, err := s.CurrentURL()
		if err != nil {
			return "", err
		}
		if strings.Contains(url, fragment) {
			return url, nil
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("location never contained %q (last: %s)", fragment, url)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

// ElementText waits for the element and returns its text content.
func (s *Session) ElementText(selector string, timeout time.Duration) (string, error) {
	var text string
	err := s.run(timeout, chromedp.Text(selector, &text, chromedp.ByQuery))
	return text, err
}

// findChromeBinary locates the Chrome/Chromium binary, preferring an
// explicit override.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
