// Command html2pdf prints a styled HTML document to an A4 PDF with headless Chrome.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-cv2pdf/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := cli.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if flags, _, err := parseFlags(os.Args[1:]); err == nil && flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := cli.NotifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], cli.DefaultEnv())
	stop()
	os.Exit(code)
}
