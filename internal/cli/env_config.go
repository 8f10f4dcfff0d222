package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// EnvPrefix starts every variable the commands read.
const EnvPrefix = "CV2PDF_"

// EnvConfig holds the CV2PDF_* overrides.
type EnvConfig struct {
	ConfigPath string // CV2PDF_CONFIG: config file name or path
	Timeout    string // CV2PDF_TIMEOUT: pagination timeout
	Engine     string // CV2PDF_ENGINE: rod or chromedp
	Location   string // CV2PDF_LOCATION: contact line location
}

// knownEnvVars lists valid CV2PDF_* variables, to catch typos.
var knownEnvVars = map[string]bool{
	"CV2PDF_CONFIG":   true,
	"CV2PDF_TIMEOUT":  true,
	"CV2PDF_ENGINE":   true,
	"CV2PDF_LOCATION": true,
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// LoadEnvConfig reads the CV2PDF_* variables through getenv.
func LoadEnvConfig(getenv func(string) string) *EnvConfig {
	return &EnvConfig{
		ConfigPath: strings.TrimSpace(getenv("CV2PDF_CONFIG")),
		Timeout:    strings.TrimSpace(getenv("CV2PDF_TIMEOUT")),
		Engine:     strings.TrimSpace(getenv("CV2PDF_ENGINE")),
		Location:   getenv("CV2PDF_LOCATION"),
	}
}

// WarnUnknownEnvVars writes a warning for each unrecognized CV2PDF_* variable.
func WarnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// Apply overrides cfg with every variable that is set. Values are checked
// here so a bad variable is reported as such instead of as a config error.
func (e *EnvConfig) Apply(cfg *config.Config) error {
	if e.Timeout != "" {
		if _, err := cv2pdf.ParseTimeout(e.Timeout); err != nil {
			return fmt.Errorf("CV2PDF_TIMEOUT: %w", err)
		}
		cfg.Browser.Timeout = e.Timeout
	}
	if e.Engine != "" {
		engine, err := cv2pdf.ParseEngine(e.Engine)
		if err != nil {
			return fmt.Errorf("CV2PDF_ENGINE: %w", err)
		}
		cfg.Browser.Engine = string(engine)
	}
	if e.Location != "" {
		cfg.Render.Location = e.Location
	}
	return nil
}
