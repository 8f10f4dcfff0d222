package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInputNotFound is returned when the document to paginate does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrBrowserUnavailable is returned before anything is launched when no
	// browser executable can be found and downloading is disabled.
	ErrBrowserUnavailable = errors.New("no browser available")

	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF")
	ErrWriteHTML      = errors.New("failed to write HTML")

	// Option validation errors.
	ErrInvalidEngine  = errors.New("invalid browser engine")
	ErrInvalidTimeout = errors.New("invalid timeout")
)
