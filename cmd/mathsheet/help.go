package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathsheet [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a multiplication worksheet (default)")
	fmt.Fprintln(w, "  doctor     Check Chrome, fonts, and system setup")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mathsheet help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mathsheet [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a shuffled 1-10 multiplication worksheet as PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Worksheet:")
	fmt.Fprintln(w, "      --seed <n>            Worksheet ID and shuffle seed (default: random 100000-999999)")
	fmt.Fprintln(w, "  -l, --lang <code>         Language: en, no, pl (default: en)")
	fmt.Fprintln(w, "      --columns <n>         Grid columns, must divide 100 (default: 5)")
	fmt.Fprintln(w, "      --title <s>           Override the localized title")
	fmt.Fprintln(w, "      --instructions <s>    Override the instructions (inline Markdown)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --out <path>          Output file (default: worksheets/worksheet_<seed>_<YYYYMMDD_HHMMSS>.pdf)")
	fmt.Fprintln(w, "      --html                Write HTML instead of PDF")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --page-size <s>       Page size: a4, letter, legal (default: a4)")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0, default: 0.5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --font <path>         Font file tried before the DejaVu Sans candidates")
	fmt.Fprintln(w, "      --style <name|path>   Style: default, large-print, or a CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolution details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MATHSHEET_CONFIG, MATHSHEET_LANG, MATHSHEET_OUTPUT_DIR, MATHSHEET_FONT_PATHS,")
	fmt.Fprintln(w, "  MATHSHEET_STYLE, MATHSHEET_ASSET_PATH, MATHSHEET_TIMEOUT")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdDoctor:
		fmt.Fprintln(env.Stdout, "Usage: mathsheet doctor [--json] [--config <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome availability, the worksheet font, and temp directory access.")
	case cmdConfig:
		fmt.Fprintln(env.Stdout, "Usage: mathsheet config [generate flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration after merging defaults, config file, environment, and flags.")
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mathsheet version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mathsheet help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
