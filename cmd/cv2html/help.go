package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2html [flags] <input> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown CV into a styled HTML document.")
	fmt.Fprintln(w, "The output defaults to the input path with a .html extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --location <s>        Location shown on the contact line")
	fmt.Fprintln(w, "      --title <s>           Document title (default: NAME_SUBTITLE_CV)")
	fmt.Fprintln(w, "      --dump-record <path>  Write the parsed record as YAML")
	fmt.Fprintln(w, "      --watch               Convert again on every change, until interrupted")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List skipped lines")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CV2PDF_CONFIG, CV2PDF_LOCATION (a .env file in the working directory is read)")
}
