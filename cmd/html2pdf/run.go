package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/cli"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// runMain parses args, runs the command and returns the exit code.
func runMain(ctx context.Context, args []string, env *cli.Environment) int {
	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'html2pdf --help' for usage.")
		return cli.ExitUsage
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "html2pdf %s\n", Version)
		return cli.ExitSuccess
	}

	cli.WarnUnknownEnvVars(env.Stderr, env.Environ())

	conv, err := newConverter(flags, env)
	if err == nil {
		if flags.check {
			return runCheck(conv, env)
		}
		err = run(ctx, positional, flags, conv, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'html2pdf --help' for usage.")
		}
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

// newConverter resolves configuration (flags > env > file > defaults).
func newConverter(flags *cliFlags, env *cli.Environment) (*cv2pdf.Converter, error) {
	cfg, err := cli.LoadConfig(flags.config, cli.LoadEnvConfig(env.Getenv))
	if err != nil {
		return nil, err
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}

	logger := cli.NewLogger(env.Stderr, flags.quiet, flags.verbose)
	opts, err := cli.ConverterOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	return cv2pdf.NewConverter(opts...)
}

// mergeFlags applies flags that were set on top of cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) error {
	if flags.timeout != "" {
		if _, err := cv2pdf.ParseTimeout(flags.timeout); err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		cfg.Browser.Timeout = flags.timeout
	}
	if flags.engine != "" {
		engine, err := cv2pdf.ParseEngine(flags.engine)
		if err != nil {
			return fmt.Errorf("--engine: %w", err)
		}
		cfg.Browser.Engine = string(engine)
	}
	return nil
}

// run paginates the input document.
func run(ctx context.Context, positional []string, flags *cliFlags, conv *cv2pdf.Converter, env *cli.Environment) error {
	in, out, err := cli.Positional(positional, ".pdf")
	if err != nil {
		return err
	}

	if err := conv.Paginate(ctx, in, out); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Successfully converted %s to %s\n", in, out)
	}
	return nil
}
