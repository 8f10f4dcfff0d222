package cli

// Notes:
// - LoadEnvConfig takes getenv, so most tests stay parallel with a map lookup.
// - LoadDotEnv touches the process environment and uses t.Setenv, so it does
//   not run in parallel.
// - Apply is checked for override order and for rejecting bad values.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := LoadEnvConfig(mapEnv(map[string]string{
		"CV2PDF_CONFIG":   " work ",
		"CV2PDF_TIMEOUT":  "2m",
		"CV2PDF_ENGINE":   "chromedp",
		"CV2PDF_LOCATION": "Berlin, Germany",
	}))

	want := EnvConfig{ConfigPath: "work", Timeout: "2m", Engine: "chromedp", Location: "Berlin, Germany"}
	if *env != want {
		t.Errorf("LoadEnvConfig() = %+v, want %+v", *env, want)
	}

	empty := LoadEnvConfig(mapEnv(nil))
	if *empty != (EnvConfig{}) {
		t.Errorf("LoadEnvConfig(empty) = %+v, want zero value", *empty)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WarnUnknownEnvVars(&buf, []string{
		"CV2PDF_TIMEOUT=10s",
		"CV2PDF_TIMOUT=10s",
		"CV2PDF_LOCATION=Paris",
		"HOME=/root",
		"ROD_BROWSER_BIN=/usr/bin/chromium",
	})

	out := buf.String()
	if !strings.Contains(out, "CV2PDF_TIMOUT") {
		t.Errorf("missing warning for typo, got %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestEnvConfig_Apply
// ---------------------------------------------------------------------------

func TestEnvConfig_Apply(t *testing.T) {
	t.Parallel()

	t.Run("overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Browser.Timeout = "10s"
		cfg.Render.Location = "Paris"

		env := &EnvConfig{Timeout: "45s", Engine: "ChromeDP", Location: "Berlin"}
		if err := env.Apply(cfg); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if cfg.Browser.Timeout != "45s" || cfg.Browser.Engine != "chromedp" || cfg.Render.Location != "Berlin" {
			t.Errorf("Apply() = %+v", cfg)
		}
	})

	t.Run("unset variables keep file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.Location = "Paris"
		if err := (&EnvConfig{}).Apply(cfg); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if cfg.Render.Location != "Paris" {
			t.Errorf("Location = %q, want Paris", cfg.Render.Location)
		}
	})

	t.Run("rejects bad values", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			env     EnvConfig
			wantErr error
		}{
			{EnvConfig{Timeout: "soon"}, cv2pdf.ErrInvalidTimeout},
			{EnvConfig{Timeout: "-1s"}, cv2pdf.ErrInvalidTimeout},
			{EnvConfig{Engine: "webkit"}, cv2pdf.ErrInvalidEngine},
		}
		for _, tt := range tests {
			err := tt.env.Apply(config.DefaultConfig())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply(%+v) error = %v, want %v", tt.env, err, tt.wantErr)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadDotEnv
// ---------------------------------------------------------------------------

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("LoadDotEnv() error = %v, want nil", err)
		}
	})

	t.Run("loads unset variables", func(t *testing.T) {
		t.Setenv("CV2PDF_LOCATION", "")
		os.Unsetenv("CV2PDF_LOCATION")

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("CV2PDF_LOCATION=Lisbon, Portugal\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := LoadDotEnv(path); err != nil {
			t.Fatalf("LoadDotEnv() error = %v", err)
		}
		if got := os.Getenv("CV2PDF_LOCATION"); got != "Lisbon, Portugal" {
			t.Errorf("CV2PDF_LOCATION = %q", got)
		}
	})

	t.Run("set variables win", func(t *testing.T) {
		t.Setenv("CV2PDF_ENGINE", "rod")

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("CV2PDF_ENGINE=chromedp\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := LoadDotEnv(path); err != nil {
			t.Fatalf("LoadDotEnv() error = %v", err)
		}
		if got := os.Getenv("CV2PDF_ENGINE"); got != "rod" {
			t.Errorf("CV2PDF_ENGINE = %q, want rod", got)
		}
	})
}
