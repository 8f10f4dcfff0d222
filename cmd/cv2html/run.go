package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/cli"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// runMain parses args, runs the conversion and returns the exit code.
func runMain(ctx context.Context, args []string, env *cli.Environment) int {
	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'cv2html --help' for usage.")
		return cli.ExitUsage
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "cv2html %s\n", Version)
		return cli.ExitSuccess
	}

	cli.WarnUnknownEnvVars(env.Stderr, env.Environ())

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'cv2html --help' for usage.")
		}
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

// run resolves paths and configuration, then converts once or keeps watching.
func run(ctx context.Context, positional []string, flags *cliFlags, env *cli.Environment) error {
	in, out, err := cli.Positional(positional, ".html")
	if err != nil {
		return err
	}

	cfg, err := cli.LoadConfig(flags.config, cli.LoadEnvConfig(env.Getenv))
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	logger := cli.NewLogger(env.Stderr, flags.quiet, flags.verbose)
	opts, err := cli.ConverterOptions(cfg, logger)
	if err != nil {
		return err
	}
	conv, err := cv2pdf.NewConverter(opts...)
	if err != nil {
		return err
	}

	job := &conversion{conv: conv, in: in, out: out, flags: flags, env: env}
	if flags.watch {
		return watchInput(ctx, in, defaultDebounce, job.runReported, logger)
	}
	return job.run(ctx)
}

// mergeFlags applies flags that were set on top of cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.location != "" {
		cfg.Render.Location = flags.location
	}
	if flags.title != "" {
		cfg.Render.Title = flags.title
	}
}

// conversion is one input/output pair converted with a fixed Converter.
type conversion struct {
	conv  *cv2pdf.Converter
	in    string
	out   string
	flags *cliFlags
	env   *cli.Environment
}

func (c *conversion) run(ctx context.Context) error {
	res, err := c.conv.RenderFile(ctx, c.in, c.out)
	if err != nil {
		return err
	}

	if c.flags.dumpRecord != "" {
		if err := yamlutil.WriteFile(c.flags.dumpRecord, res.Record); err != nil {
			return fmt.Errorf("writing record dump: %w", err)
		}
	}

	if res.Record.Name == "" && !c.flags.quiet {
		fmt.Fprintf(c.env.Stderr, "warning: no name found in %s%s\n", c.in, hints.ForEmptyRecord())
	}
	if !c.flags.quiet {
		fmt.Fprintf(c.env.Stdout, "Successfully converted %s to %s\n", c.in, c.out)
	}
	return nil
}

// runReported converts and reports failures instead of returning them, so a
// watch session survives a bad edit.
func (c *conversion) runReported(ctx context.Context) {
	if err := c.run(ctx); err != nil {
		fmt.Fprintf(c.env.Stderr, "error: %v\n", err)
	}
}
