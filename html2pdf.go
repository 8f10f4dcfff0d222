package cv2pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/process"
)

// rodPaginator prints through a browser launched and driven by go-rod.
type rodPaginator struct {
	settings browserSettings
	logger   *slog.Logger
}

func newRodPaginator(settings browserSettings, logger *slog.Logger) *rodPaginator {
	return &rodPaginator{settings: settings, logger: logger}
}

// Paginate launches a browser, prints htmlPath and tears the browser down on
// every exit path.
func (r *rodPaginator) Paginate(ctx context.Context, htmlPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := fileURL(htmlPath)
	if err != nil {
		return nil, err
	}

	bin, err := r.settings.resolve(true)
	if err != nil {
		return nil, err
	}

	l := launcher.New().
		Context(ctx).
		Bin(bin).
		Headless(true).
		NoSandbox(r.settings.sandboxDisabled())

	u, err := l.Launch()
	if err != nil {
		// A browser that started but never answered still needs reaping.
		process.KillProcessGroup(l.PID())
		l.Kill()
		return nil, fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	r.logger.Debug("browser launched", "engine", EngineRod, "bin", bin, "pid", l.PID())
	defer func() {
		process.KillProcessGroup(l.PID())
		l.Kill()
		l.Cleanup()
		r.logger.Debug("browser released", "engine", EngineRod)
	}()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	defer func() { _ = browser.Close() }()

	pageCtx, cancel := context.WithTimeout(ctx, r.settings.timeout)
	defer cancel()

	page, err := browser.Context(pageCtx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	// Armed before navigation so requests issued during load are counted.
	waitIdle := page.WaitRequestIdle(r.settings.idleWindow, nil, nil, nil)
	if err := page.Navigate(target); err != nil {
		return nil, loadError(ctx, pageCtx, r.settings.timeout, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, loadError(ctx, pageCtx, r.settings.timeout, err)
	}
	waitIdle()
	if pageCtx.Err() != nil {
		return nil, loadError(ctx, pageCtx, r.settings.timeout, pageCtx.Err())
	}
	r.logger.Debug("page idle", "url", target)

	reader, err := page.PDF(pdfParams())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// pdfParams is the fixed print configuration: A4, backgrounds, half-inch margins.
func pdfParams() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}
