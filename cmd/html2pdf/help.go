package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf [flags] <input> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a local HTML document to an A4 PDF once the page is network idle.")
	fmt.Fprintln(w, "The output defaults to the input path with a .pdf extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Page load timeout (default: 30s)")
	fmt.Fprintln(w, "      --engine <s>          Browser engine: rod, chromedp (default: rod)")
	fmt.Fprintln(w, "      --check               Report browser availability and exit")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show browser lifecycle")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CV2PDF_CONFIG, CV2PDF_TIMEOUT, CV2PDF_ENGINE")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN    Browser executable")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1   Disable the Chrome sandbox (containers, CI)")
}
