package cli

import (
	"errors"
	"fmt"
	"log/slog"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// LoadConfig resolves the configuration below the flag layer:
// YAML file (flag name, else CV2PDF_CONFIG), then environment overrides.
// Without a file name the defaults are used.
func LoadConfig(flagConfig string, env *EnvConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	if err := env.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConverterOptions translates cfg into converter options.
func ConverterOptions(cfg *config.Config, logger *slog.Logger) ([]cv2pdf.Option, error) {
	engine, err := cv2pdf.ParseEngine(cfg.Browser.Engine)
	if err != nil {
		return nil, err
	}

	opts := []cv2pdf.Option{
		cv2pdf.WithEngine(engine),
		cv2pdf.WithLocation(cfg.Render.Location),
		cv2pdf.WithTitle(cfg.Render.Title),
		cv2pdf.WithBrowserBin(cfg.Browser.Bin),
		cv2pdf.WithNoSandbox(cfg.Browser.NoSandbox),
		cv2pdf.WithDownload(cfg.Browser.Download),
		cv2pdf.WithLogger(logger),
	}
	if d := cfg.Browser.TimeoutDuration(); d > 0 {
		opts = append(opts, cv2pdf.WithTimeout(d))
	}
	if d := cfg.Browser.IdleWindowDuration(); d > 0 {
		opts = append(opts, cv2pdf.WithIdleWindow(d))
	}
	return opts, nil
}

// Positional splits "<input> [output]" and derives the output path from the
// input by swapping the extension for ext when it is omitted.
func Positional(args []string, ext string) (in, out string, err error) {
	switch len(args) {
	case 1:
		return args[0], fileutil.ReplaceExt(args[0], ext), nil
	case 2:
		return args[0], args[1], nil
	case 0:
		return "", "", fmt.Errorf("%w: missing input file", ErrUsage)
	}
	return "", "", fmt.Errorf("%w: expected at most 2 arguments, got %d", ErrUsage, len(args))
}
