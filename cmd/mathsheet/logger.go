package main

import (
	"fmt"
	"io"
)

// logger writes progress lines to stderr, gated by --verbose and --quiet.
type logger struct {
	w       io.Writer
	verbose bool
}

func newLogger(env *Environment, f commonFlags) *logger {
	return &logger{w: env.Stderr, verbose: f.verbose && !f.quiet}
}

// Verbosef prints only in verbose mode.
func (l *logger) Verbosef(format string, args ...any) {
	if l.verbose {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}
