package cli

// Notes:
// - ExitCodeFor: every sentinel the commands can surface, bare and wrapped,
//   to verify the errors.Is chain.
// - Exit code constants: Unix conventions and custom codes below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser unavailable", cv2pdf.ErrBrowserUnavailable, ExitBrowser},
		{"browser connect", cv2pdf.ErrBrowserConnect, ExitBrowser},
		{"page create", cv2pdf.ErrPageCreate, ExitBrowser},
		{"page load", cv2pdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", cv2pdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped page load", fmt.Errorf("paginating: %w", cv2pdf.ErrPageLoad), ExitBrowser},

		// I/O errors (exit 3)
		{"input not found", cv2pdf.ErrInputNotFound, ExitIO},
		{"write pdf", cv2pdf.ErrWritePDF, ExitIO},
		{"write html", cv2pdf.ErrWriteHTML, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"wrapped input not found", fmt.Errorf("x: %w", cv2pdf.ErrInputNotFound), ExitIO},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid engine", cv2pdf.ErrInvalidEngine, ExitUsage},
		{"invalid timeout", cv2pdf.ErrInvalidTimeout, ExitUsage},
		{"wrapped usage", fmt.Errorf("%w: missing input file", ErrUsage), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("conventional codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom code %d outside (2, 126)", code)
		}
	}
}
