package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every html2pdf flag.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
	timeout string
	engine  string
	check   bool
	version bool
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show browser lifecycle")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.engine, "engine", "", "browser engine: rod, chromedp")
	fs.BoolVar(&f.check, "check", false, "report browser availability and exit")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
