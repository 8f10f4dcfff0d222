// Command cv2html converts a Markdown CV into a styled HTML document.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-cv2pdf/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := cli.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	ctx, stop := cli.NotifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], cli.DefaultEnv())
	stop()
	os.Exit(code)
}
