package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-mathsheet"
)

// worksheetComposer is the part of *mathsheet.Composer the CLI needs.
type worksheetComposer interface {
	ComposeFile(ctx context.Context, input mathsheet.Input, path string) (*mathsheet.ComposeResult, error)
	Close() error
}

var _ worksheetComposer = (*mathsheet.Composer)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	DrawSeed    func(n int64) int64 // nil = math/rand/v2
	NewComposer func(opts ...mathsheet.Option) (worksheetComposer, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		NewComposer: newComposer,
	}
}

func newComposer(opts ...mathsheet.Option) (worksheetComposer, error) {
	c, err := mathsheet.NewComposer(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}
