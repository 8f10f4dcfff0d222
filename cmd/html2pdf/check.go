package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/cli"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// chromeVersion runs the browser with --version; replaced in tests.
var chromeVersion = func(path string) (string, error) {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- resolved browser path
	return strings.TrimSpace(string(out)), err
}

// runCheck reports whether pagination could launch a browser, without
// launching or downloading one.
func runCheck(conv *cv2pdf.Converter, env *cli.Environment) int {
	w := env.Stdout
	fmt.Fprintln(w, "html2pdf check")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Browser")
	fmt.Fprintf(w, "  [OK] Engine: %s\n", conv.Engine())

	path, err := conv.BrowserPath()
	if err != nil {
		fmt.Fprintf(w, "  [ERROR] %v\n", err)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Not ready.")
		return cli.ExitBrowser
	}
	fmt.Fprintf(w, "  [OK] Found at %s\n", path)
	if version, err := chromeVersion(path); err != nil {
		fmt.Fprintf(w, "  [WARN] Could not get version: %v\n", err)
	} else if version != "" {
		fmt.Fprintf(w, "  [OK] Version: %s\n", version)
	}
	if env.Getenv("ROD_NO_SANDBOX") == "1" {
		fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
	} else {
		fmt.Fprintln(w, "  [OK] Sandbox: enabled")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if hints.IsInContainer() {
		fmt.Fprintln(w, "  [OK] Container: detected")
		if env.Getenv("ROD_NO_SANDBOX") != "1" {
			fmt.Fprintln(w, "  [WARN] Container detected but ROD_NO_SANDBOX not set")
		}
	}
	if dir := os.TempDir(); !tempWritable(dir) {
		fmt.Fprintf(w, "  [ERROR] Temp directory not writable: %s\n", dir)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Not ready.")
		return cli.ExitIO
	}
	fmt.Fprintln(w, "  [OK] Temp directory: writable")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Ready.")
	return cli.ExitSuccess
}

// tempWritable reports whether dir accepts a new file.
func tempWritable(dir string) bool {
	f, err := os.CreateTemp(dir, "html2pdf-check-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
