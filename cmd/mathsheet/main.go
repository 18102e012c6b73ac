package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdGenerate = "generate"
	cmdDoctor   = "doctor"
	cmdConfig   = "config"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS env, where runtime
	// defaults still apply.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name.
func runMain(args []string, env *Environment) int {
	rest := args[1:]
	cmd := cmdGenerate
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		if !isCommand(rest[0]) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n", rest[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd = rest[0]
		rest = rest[1:]
	}

	switch cmd {
	case cmdGenerate:
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return reportError(env, runGenerate(ctx, rest, env), rest)
	case cmdConfig:
		return reportError(env, runConfigCmd(rest, env), rest)
	case cmdDoctor:
		return runDoctorCmd(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-mathsheet %s\n", Version)
		return ExitSuccess
	default:
		return runHelp(rest, env)
	}
}

// reportError prints err with hints and maps it to an exit code.
func reportError(env *Environment, err error, args []string) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %s\n", errorWithHints(err, hasOutFlag(args)))
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdDoctor, cmdConfig, cmdVersion, cmdHelp:
		return true
	}
	return false
}

func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

func hasOutFlag(args []string) bool {
	for _, a := range args {
		if a == "-o" || a == "--out" || strings.HasPrefix(a, "--out=") || strings.HasPrefix(a, "-o=") {
			return true
		}
	}
	return false
}
