package cv2pdf

import "github.com/alnah/go-cv2pdf/internal/cv"

// Parse recovers a Record from CV source text in one forward pass.
// It never fails; lines it cannot place are returned as diagnostics.
func Parse(source string) (*Record, []Diagnostic) {
	return cv.ParseText(source)
}
