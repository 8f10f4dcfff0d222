package cv2pdf

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-cv2pdf/internal/hints"
)

// paginator prints a local HTML file to PDF bytes. Each call acquires its own
// browser and releases it before returning.
type paginator interface {
	Paginate(ctx context.Context, htmlPath string) ([]byte, error)
}

// Compile-time interface checks.
var (
	_ paginator = (*rodPaginator)(nil)
	_ paginator = (*chromedpPaginator)(nil)
)

// A4 page with uniform margins, in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5
)

// browserSettings is the browser part of converterConfig.
type browserSettings struct {
	bin        string
	noSandbox  bool
	download   bool
	timeout    time.Duration
	idleWindow time.Duration
}

// sandboxDisabled applies the container heuristics on top of the explicit setting.
func (s browserSettings) sandboxDisabled() bool {
	if s.noSandbox {
		return true
	}
	switch os.Getenv("ROD_NO_SANDBOX") {
	case "1", "true":
		return true
	}
	return os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != ""
}

// Discovery hooks, replaced in tests.
var (
	lookPath        = launcher.LookPath
	execLookPath    = exec.LookPath
	downloadBrowser = func() (string, error) { return launcher.NewBrowser().Get() }
)

// resolve returns the browser executable to launch. Order: explicit bin,
// ROD_BROWSER_BIN, system lookup, then a go-rod download when both the
// settings and the caller allow it.
func (s browserSettings) resolve(allowDownload bool) (string, error) {
	bin := s.bin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		path, err := execLookPath(bin)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v%s", ErrBrowserUnavailable, bin, err, hints.ForBrowserUnavailable())
		}
		return path, nil
	}
	if path, ok := lookPath(); ok {
		return path, nil
	}
	if !s.download || !allowDownload {
		return "", fmt.Errorf("%w: no Chrome or Chromium found%s", ErrBrowserUnavailable, hints.ForBrowserUnavailable())
	}
	path, err := downloadBrowser()
	if err != nil {
		return "", fmt.Errorf("%w: download failed: %v", ErrBrowserUnavailable, err)
	}
	return path, nil
}

// fileURL turns a local path into an absolute file:// URL.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// loadError classifies a navigation failure. A cancelled parent context is
// returned as is; the page timeout becomes ErrPageLoad with a hint.
func loadError(parent, page context.Context, timeout time.Duration, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if page.Err() != nil {
		return fmt.Errorf("%w: page did not reach network idle within %s%s", ErrPageLoad, timeout, hints.ForTimeout())
	}
	return fmt.Errorf("%w: %v", ErrPageLoad, err)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
