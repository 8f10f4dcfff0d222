package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every cv2html flag.
type cliFlags struct {
	config     string
	quiet      bool
	verbose    bool
	location   string
	title      string
	dumpRecord string
	watch      bool
	version    bool
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("cv2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped lines and timing")
	fs.StringVar(&f.location, "location", "", "location shown first on the contact line")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = derived from name)")
	fs.StringVar(&f.dumpRecord, "dump-record", "", "write the parsed record as YAML to this path")
	fs.BoolVar(&f.watch, "watch", false, "convert again whenever the input changes")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
