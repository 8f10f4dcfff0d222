package cv2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/pipeline"
)

// Converter runs the CV pipeline: parse, render, paginate.
// A Converter holds no browser between calls and is safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	renderer  pipeline.DocumentRenderer
	paginator paginator
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine, WithLocation).
// Returns error if the embedded template does not load or the engine is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine: EngineRod,
			browser: browserSettings{
				timeout:    defaultTimeout,
				idleWindow: defaultIdleWindow,
			},
			logger: slog.New(slog.DiscardHandler),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.renderer == nil {
		r, err := pipeline.NewTemplateRenderer(assets.NewEmbeddedLoader())
		if err != nil {
			return nil, fmt.Errorf("initializing renderer: %w", err)
		}
		c.renderer = r
	}

	if c.paginator == nil {
		p, err := newPaginator(c.cfg)
		if err != nil {
			return nil, err
		}
		c.paginator = p
	}

	return c, nil
}

// newPaginator picks the backend for cfg.engine.
func newPaginator(cfg converterConfig) (paginator, error) {
	switch cfg.engine {
	case EngineRod, "":
		return newRodPaginator(cfg.browser, cfg.logger), nil
	case EngineChromedp:
		return newChromedpPaginator(cfg.browser, cfg.logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidEngine, cfg.engine)
}

// Render fills the document template from rec. rec is only read.
func (c *Converter) Render(ctx context.Context, rec *Record) ([]byte, error) {
	return c.renderer.Render(ctx, rec, pipeline.DocumentOptions{
		Title:    c.cfg.title,
		Location: c.cfg.location,
	})
}

// ToHTML parses source and renders the resulting Record.
// Diagnostics are logged at debug level and returned in the result.
func (c *Converter) ToHTML(ctx context.Context, source string) (*HTMLResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, diags := Parse(source)
	c.logDiagnostics(diags)

	html, err := c.Render(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return &HTMLResult{HTML: html, Record: rec, Diagnostics: diags}, nil
}

// RenderFile reads the CV at inPath, renders it and writes the document to
// outPath. outPath is only touched once rendering succeeded.
func (c *Converter) RenderFile(ctx context.Context, inPath, outPath string) (*HTMLResult, error) {
	if !fileutil.FileExists(inPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
	}
	source, err := os.ReadFile(inPath) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inPath, err)
	}

	res, err := c.ToHTML(ctx, string(source))
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outPath, res.HTML); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	return res, nil
}

// Paginate prints the styled document at htmlPath to pdfPath.
// The input is checked first; a missing browser is reported before anything
// is launched; pdfPath is written only after the whole PDF was received.
func (c *Converter) Paginate(ctx context.Context, htmlPath, pdfPath string) error {
	if !fileutil.FileExists(htmlPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, htmlPath)
	}

	pdf, err := c.paginator.Paginate(ctx, htmlPath)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(pdfPath, pdf); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWritePDF, err, hints.ForOutputDirectory())
	}
	c.cfg.logger.Debug("pdf written", "path", pdfPath, "bytes", len(pdf))
	return nil
}

// Convert runs every stage in memory: source text in, HTML and PDF out.
// The intermediate HTML file is removed on every exit path.
func (c *Converter) Convert(ctx context.Context, source string) (*ConvertResult, error) {
	res, err := c.ToHTML(ctx, source)
	if err != nil {
		return nil, err
	}

	htmlPath, cleanup, err := fileutil.WriteTempFile(string(res.HTML), "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	pdf, err := c.paginator.Paginate(ctx, htmlPath)
	if err != nil {
		return nil, err
	}
	return &ConvertResult{HTMLResult: *res, PDF: pdf}, nil
}

// BrowserPath reports the browser executable pagination would launch.
// It never downloads.
func (c *Converter) BrowserPath() (string, error) {
	return c.cfg.browser.resolve(false)
}

// Engine returns the selected pagination backend.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

func (c *Converter) logDiagnostics(diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	for _, d := range diags {
		c.cfg.logger.Debug("line skipped", "line", d.Line, "reason", d.Reason, "text", d.Text)
	}
	counts := cv.CountByReason(diags)
	attrs := make([]any, 0, 2*len(counts))
	for _, reason := range slices.Sorted(maps.Keys(counts)) {
		attrs = append(attrs, string(reason), counts[reason])
	}
	c.cfg.logger.Info(fmt.Sprintf("%d lines skipped", len(diags)), attrs...)
}
