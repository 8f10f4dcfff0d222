package main

// Notes:
// - runCheck's success path needs an executable; the test binary itself is
//   used as the "browser" and chromeVersion is stubbed, so nothing is launched.
// - chromeVersion is a package variable, so this test does not run in parallel.

import (
	"os"
	"strings"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/cli"
)

func TestRunCheck_Ready(t *testing.T) {
	self, err := os.Executable()
	if err != nil {
		t.Skipf("no executable path: %v", err)
	}

	orig := chromeVersion
	chromeVersion = func(string) (string, error) { return "Chromium 130.0", nil }
	t.Cleanup(func() { chromeVersion = orig })

	conv, err := cv2pdf.NewConverter(cv2pdf.WithBrowserBin(self))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	env, stdout, _ := testEnv(map[string]string{"ROD_NO_SANDBOX": "1"})
	if code := runCheck(conv, env); code != cli.ExitSuccess {
		t.Fatalf("runCheck() = %d, want %d\n%s", code, cli.ExitSuccess, stdout)
	}

	out := stdout.String()
	for _, want := range []string{"Found at " + self, "Version: Chromium 130.0", "Sandbox: disabled", "Ready."} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestTempWritable(t *testing.T) {
	t.Parallel()

	if !tempWritable(t.TempDir()) {
		t.Error("tempWritable(TempDir) = false")
	}
	if tempWritable("/nonexistent/dir/for/check") {
		t.Error("tempWritable(missing dir) = true")
	}
}
