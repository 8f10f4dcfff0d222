// Package cli holds the plumbing shared by the cv2html and html2pdf commands:
// injectable environment, exit codes, logger construction, environment
// variable overrides, configuration loading and signal handling.
package cli
