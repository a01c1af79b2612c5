package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches commands and returns the process exit code.
// Arguments that are not a known command are treated as convert inputs,
// so "html2md page.html" and "html2md convert page.html" both work.
func realMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(env.Stdout, "html2md %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "convert":
		return runCommand(args[1:], false, env)
	case "watch":
		return runCommand(args[1:], true, env)
	default:
		return runCommand(args, false, env)
	}
}

// runCommand parses flags and executes the convert or watch pipeline.
func runCommand(args []string, watchMode bool, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	setupMaxprocs(flags.common.verbose, env.Stderr)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	run := runConvert
	if watchMode {
		run = runWatch
	}

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setupMaxprocs aligns GOMAXPROCS with the container CPU quota.
// Errors are ignored: maxprocs.Set only fails if the GOMAXPROCS env value is
// invalid, in which case Go runtime defaults apply and the program continues.
func setupMaxprocs(verbose bool, stderr io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}
