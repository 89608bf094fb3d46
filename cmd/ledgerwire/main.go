// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ledgerwire/lib/config"
	"github.com/bureau-foundation/ledgerwire/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if _, silent := err.(*exitError); !silent {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// environment carries the process streams a command may touch, so
// tests can run commands against buffers.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	config *config.Config
	logger *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	var configPath string
	var format string

	flagSet := pflag.NewFlagSet("ledgerwire", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to ledgerwire.yaml (default: $"+config.EnvVar+", else built-in defaults)")
	flagSet.StringVar(&format, "format", "", "report format: json or yaml (overrides output.format)")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Bool("version", false, "show version")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usage("%v", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printUsage(stdout, flagSet)
		return nil
	}
	if showVersion, _ := flagSet.GetBool("version"); showVersion {
		fmt.Fprintf(stdout, "ledgerwire %s\n", version.Full())
		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return &exitError{Code: 2}
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if format != "" {
		cfg.Output.Format = format
		if err := cfg.Validate(); err != nil {
			return usage("--format: %v", err)
		}
	}

	logger, closeLog, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	env := &environment{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		config: cfg,
		logger: logger.With("command", rest[0]),
	}
	env.logger.Debug("configuration resolved",
		"environment", cfg.Environment,
		"output_format", cfg.Output.Format,
	)

	command, args := rest[0], rest[1:]
	switch command {
	case "decode":
		return decodeCmd(env, args)
	case "encode":
		return encodeCmd(env, args)
	case "check":
		return checkCmd(env, args)
	case "schema":
		return schemaCmd(env, args)
	case "types":
		return typesCmd(env, args)
	case "version":
		fmt.Fprintf(stdout, "ledgerwire %s\n", version.Full())
		return nil
	case "help":
		printUsage(stdout, flagSet)
		return nil
	default:
		return usage("unknown command %q (run \"ledgerwire help\")", command)
	}
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `ledgerwire - decode, encode and check ledger value text forms

USAGE
    ledgerwire [flags] <command> [args...]

COMMANDS
    decode <type> <text>     Decode a text token and print a report
    encode <type> <input>    Encode a value to its canonical text
    check <file.jsonc>       Decode every entry of a JSONC fixture file
    schema                   Print API schema components for every type
    types                    List the value types
    version                  Show version

TYPES
    pubkey, signature        base-58; encode takes hex
    buffer                   base-64; encode takes hex
    decimal, u64             decimal strings; encode takes the number
                             (after "--" when it is negative)
    legacy-tx, versioned-tx  base-64 records; encode takes a JSONC
                             transaction document path ("-" for stdin)

EXAMPLES
    ledgerwire decode pubkey 11111111111111111111111111111111
    ledgerwire encode buffer deadbeef
    ledgerwire encode --raw decimal -- -3.1400
    ledgerwire --format yaml decode legacy-tx "$(cat tx.b64)"
    ledgerwire encode legacy-tx tx.jsonc

ENVIRONMENT
    %s    Path to the config file (when --config is not given)
    LEDGERWIRE_DEBUG     Enable debug logging

FLAGS
`, config.EnvVar)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
