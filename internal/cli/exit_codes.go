package cli

import (
	"errors"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Exit codes shared by both commands.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, or config
	ExitIO      = 3 // Missing input, unwritable output
	ExitBrowser = 4 // Browser missing or failing
)

// ExitCodeFor returns the exit code for err.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, cv2pdf.ErrBrowserUnavailable) ||
		errors.Is(err, cv2pdf.ErrBrowserConnect) ||
		errors.Is(err, cv2pdf.ErrPageCreate) ||
		errors.Is(err, cv2pdf.ErrPageLoad) ||
		errors.Is(err, cv2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, cv2pdf.ErrInputNotFound) ||
		errors.Is(err, cv2pdf.ErrWritePDF) ||
		errors.Is(err, cv2pdf.ErrWriteHTML) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, cv2pdf.ErrInvalidEngine) ||
		errors.Is(err, cv2pdf.ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
