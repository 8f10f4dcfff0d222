package cv2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/alnah/go-cv2pdf/internal/hints"
)

// chromedpPaginator prints through a browser driven by chromedp. Network idle
// is Chrome's own "networkIdle" lifecycle event, which uses a fixed 500 ms
// window; the idleWindow setting does not apply to this engine.
type chromedpPaginator struct {
	settings browserSettings
	logger   *slog.Logger
}

func newChromedpPaginator(settings browserSettings, logger *slog.Logger) *chromedpPaginator {
	return &chromedpPaginator{settings: settings, logger: logger}
}

// Paginate starts a browser through an exec allocator, prints htmlPath and
// cancels both contexts on return, which closes the tab and kills the browser.
func (c *chromedpPaginator) Paginate(ctx context.Context, htmlPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := fileURL(htmlPath)
	if err != nil {
		return nil, err
	}

	bin, err := c.settings.resolve(true)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(bin),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.settings.sandboxDisabled() {
		opts = append(opts, chromedp.NoSandbox)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer func() {
		cancelBrowser()
		c.logger.Debug("browser released", "engine", EngineChromedp)
	}()

	// The first Run starts the browser and opens the tab.
	if err := chromedp.Run(browserCtx, page.SetLifecycleEventsEnabled(true)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	c.logger.Debug("browser launched", "engine", EngineChromedp, "bin", bin)

	pageCtx, cancel := context.WithTimeout(browserCtx, c.settings.timeout)
	defer cancel()

	idle := newIdleWatcher()
	chromedp.ListenTarget(pageCtx, idle.handle)
	idle.arm()

	if err := chromedp.Run(pageCtx, chromedp.Navigate(target)); err != nil {
		return nil, loadError(ctx, pageCtx, c.settings.timeout, err)
	}
	select {
	case <-idle.done:
	case <-pageCtx.Done():
		return nil, loadError(ctx, pageCtx, c.settings.timeout, pageCtx.Err())
	}
	c.logger.Debug("page idle", "url", target)

	var data []byte
	err = chromedp.Run(pageCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		data, _, err = page.PrintToPDF().
			WithPaperWidth(paperWidthInches).
			WithPaperHeight(paperHeightInches).
			WithMarginTop(marginInches).
			WithMarginBottom(marginInches).
			WithMarginLeft(marginInches).
			WithMarginRight(marginInches).
			WithPrintBackground(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// idleWatcher closes done on the first networkIdle of the navigation that
// started after arm. Lifecycle events of the initial blank page are ignored.
type idleWatcher struct {
	mu     sync.Mutex
	armed  bool
	loader cdp.LoaderID
	once   sync.Once
	done   chan struct{}
}

func newIdleWatcher() *idleWatcher {
	return &idleWatcher{done: make(chan struct{})}
}

func (w *idleWatcher) arm() {
	w.mu.Lock()
	w.armed = true
	w.mu.Unlock()
}

func (w *idleWatcher) handle(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.armed {
		return
	}
	switch e.Name {
	case "init":
		if w.loader == "" {
			w.loader = e.LoaderID
		}
	case "networkIdle":
		if w.loader != "" && e.LoaderID == w.loader {
			w.once.Do(func() { close(w.done) })
		}
	}
}
