package cv2pdf

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/cv"
)

// Record is the structured CV recovered from source text.
type Record = cv.Record

// Experience is one employment entry of a Record.
type Experience = cv.Experience

// Diagnostic reports one source line that did not contribute to the Record.
type Diagnostic = cv.Diagnostic

// Engine selects the browser automation library used for pagination.
type Engine string

// Supported engines.
const (
	EngineRod      Engine = "rod"
	EngineChromedp Engine = "chromedp"
)

// ParseEngine accepts an engine name case-insensitively.
// The empty string selects EngineRod.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineRod:
		return EngineRod, nil
	case EngineChromedp:
		return EngineChromedp, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, s, EngineRod, EngineChromedp)
}

// ParseTimeout parses a positive duration such as "45s" or "2m".
func ParseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, s)
	}
	return d, nil
}

// Defaults applied when no option overrides them.
const (
	defaultTimeout    = 30 * time.Second
	defaultIdleWindow = 500 * time.Millisecond
)

// HTMLResult is the output of the parse and render stages.
type HTMLResult struct {
	HTML        []byte
	Record      *Record
	Diagnostics []Diagnostic
}

// ConvertResult adds the paginated document to an HTMLResult.
type ConvertResult struct {
	HTMLResult
	PDF []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	location string
	title    string
	engine   Engine
	browser  browserSettings
	logger   *slog.Logger
}

// WithTimeout bounds page creation, navigation, the network-idle wait and
// printing. Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.browser.timeout = d
	}
}

// WithIdleWindow sets how long the page must have no request in flight
// before it is printed. Panics if d <= 0.
func WithIdleWindow(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithIdleWindow duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.browser.idleWindow = d
	}
}

// WithEngine selects the pagination backend.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithBrowserBin launches the browser at path instead of searching for one.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browser.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which most containers require.
func WithNoSandbox(disable bool) Option {
	return func(c *Converter) {
		c.cfg.browser.noSandbox = disable
	}
}

// WithDownload lets go-rod fetch a Chromium build when no browser is installed.
func WithDownload(allow bool) Option {
	return func(c *Converter) {
		c.cfg.browser.download = allow
	}
}

// WithLocation sets the first part of the contact line.
func WithLocation(location string) Option {
	return func(c *Converter) {
		c.cfg.location = location
	}
}

// WithTitle overrides the document <title>.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithLogger receives parser diagnostics and browser lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}
