package main

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mathsheet"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake composer and environment
// ---------------------------------------------------------------------------

// fakeComposer records what it was asked to write and writes a stub file.
type fakeComposer struct {
	mu      sync.Mutex
	inputs  []mathsheet.Input
	paths   []string
	opts    int
	err     error
	closed  bool
	content []byte
}

func (f *fakeComposer) ComposeFile(_ context.Context, input mathsheet.Input, path string) (*mathsheet.ComposeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	f.paths = append(f.paths, path)
	if f.err != nil {
		return nil, f.err
	}
	data := f.content
	if data == nil {
		data = []byte("%PDF-1.4 fake")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, err
	}
	return &mathsheet.ComposeResult{
		WorksheetID: input.WorksheetID,
		Language:    input.Language,
		Problems:    mathsheet.GenerateProblems(input.WorksheetID),
	}, nil
}

func (f *fakeComposer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeComposer) lastInput(t *testing.T) mathsheet.Input {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inputs) == 0 {
		t.Fatal("composer was not called")
	}
	return f.inputs[len(f.inputs)-1]
}

func (f *fakeComposer) lastPath(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.paths) == 0 {
		t.Fatal("composer was not called")
	}
	return f.paths[len(f.paths)-1]
}

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

// newTestEnv returns an environment with a fixed clock, fixed seed draw,
// captured output, and the given composer.
func newTestEnv(comp *fakeComposer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:      func() time.Time { return fixedNow },
		Stdout:   &stdout,
		Stderr:   &stderr,
		DrawSeed: func(int64) int64 { return 23456 }, // 123456
		NewComposer: func(opts ...mathsheet.Option) (worksheetComposer, error) {
			comp.mu.Lock()
			comp.opts = len(opts)
			comp.mu.Unlock()
			return comp, nil
		},
	}
	return env, &stdout, &stderr
}
