package main

// Notes:
// - runGenerate: we drive it through the fake composer for resolution logic
//   (seed, language, fonts, output path, priority) and through the real
//   composer in --html mode for file output, which needs no Chrome.
// - Tests that set MATHSHEET_* variables use t.Setenv and cannot run in
//   parallel; the rest pass --out so no shared directory is touched.
// - PDF output is covered by the library's integration tests.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mathsheet"
	"github.com/alnah/go-mathsheet/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunGenerate_DefaultOutputPath - Timestamped name and directory creation
// ---------------------------------------------------------------------------

func TestRunGenerate_DefaultOutputPath(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "worksheets")
	t.Setenv("MATHSHEET_OUTPUT_DIR", outDir)

	comp := &fakeComposer{}
	env, stdout, _ := newTestEnv(comp)

	if err := runGenerate(context.Background(), nil, env); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	want := filepath.Join(outDir, "worksheet_123456_20240309_140507.pdf")
	if got := comp.lastPath(t); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("worksheet not written: %v", err)
	}
	if !strings.Contains(stdout.String(), "File: "+want) {
		t.Errorf("stdout should report the file, got %q", stdout.String())
	}
}

func TestRunGenerate_DefaultOutputPathHTML(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("MATHSHEET_OUTPUT_DIR", outDir)

	comp := &fakeComposer{}
	env, _, _ := newTestEnv(comp)

	if err := runGenerate(context.Background(), []string{"--html", "--seed", "500000"}, env); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	want := filepath.Join(outDir, "worksheet_500000_20240309_140507.html")
	if got := comp.lastPath(t); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if !comp.lastInput(t).HTMLOnly {
		t.Error("HTMLOnly should be set with --html")
	}
}

// ---------------------------------------------------------------------------
// TestRunGenerate_Resolution - Seed, language, columns, text, and page flags
// ---------------------------------------------------------------------------

func TestRunGenerate_Resolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, in mathsheet.Input)
	}{
		{
			name: "explicit seed is used unchanged",
			args: []string{"--seed", "42"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.WorksheetID != 42 {
					t.Errorf("WorksheetID = %d, want 42", in.WorksheetID)
				}
			},
		},
		{
			name: "random seed comes from DrawSeed",
			args: nil,
			check: func(t *testing.T, in mathsheet.Input) {
				if in.WorksheetID != 123456 {
					t.Errorf("WorksheetID = %d, want 123456", in.WorksheetID)
				}
			},
		},
		{
			name: "polish",
			args: []string{"--lang", "pl"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.Language != mathsheet.Polish {
					t.Errorf("Language = %v, want Polish", in.Language)
				}
			},
		},
		{
			name: "regional tag matches",
			args: []string{"-l", "nb-NO"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.Language != mathsheet.Norwegian {
					t.Errorf("Language = %v, want Norwegian", in.Language)
				}
			},
		},
		{
			name: "unknown language falls back to english",
			args: []string{"--lang", "xx"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.Language != mathsheet.English {
					t.Errorf("Language = %v, want English", in.Language)
				}
			},
		},
		{
			name: "related but unsupported language falls back to english",
			args: []string{"--lang", "da"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.Language != mathsheet.English {
					t.Errorf("Language = %v, want English", in.Language)
				}
			},
		},
		{
			name: "columns and text overrides",
			args: []string{"--columns", "4", "--title", "Quiz", "--instructions", "**Go**"},
			check: func(t *testing.T, in mathsheet.Input) {
				if in.Columns != 4 {
					t.Errorf("Columns = %d, want 4", in.Columns)
				}
				if in.Title != "Quiz" || in.Instructions != "**Go**" {
					t.Errorf("text = %q/%q, want Quiz/**Go**", in.Title, in.Instructions)
				}
			},
		},
		{
			name: "page flags",
			args: []string{"--page-size", "letter", "--orientation", "landscape", "--margin", "1"},
			check: func(t *testing.T, in mathsheet.Input) {
				want := &mathsheet.PageSettings{Size: "letter", Orientation: "landscape", Margin: 1}
				if diff := cmp.Diff(want, in.Page); diff != "" {
					t.Errorf("Page mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "default page",
			args: nil,
			check: func(t *testing.T, in mathsheet.Input) {
				if diff := cmp.Diff(mathsheet.DefaultPageSettings(), in.Page); diff != "" {
					t.Errorf("Page mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comp := &fakeComposer{}
			env, _, _ := newTestEnv(comp)
			args := append([]string{"--out", filepath.Join(t.TempDir(), "w.pdf")}, tt.args...)

			if err := runGenerate(context.Background(), args, env); err != nil {
				t.Fatalf("runGenerate() error = %v", err)
			}
			tt.check(t, comp.lastInput(t))
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunGenerate_Fonts - Font candidate resolution
// ---------------------------------------------------------------------------

func TestRunGenerate_Fonts(t *testing.T) {
	t.Parallel()

	t.Run("font flag wins when it exists", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		font := filepath.Join(dir, "Custom.ttf")
		if err := os.WriteFile(font, []byte("ttf"), 0o600); err != nil {
			t.Fatal(err)
		}

		comp := &fakeComposer{}
		env, _, _ := newTestEnv(comp)
		args := []string{"--out", filepath.Join(dir, "w.pdf"), "--font", font}

		if err := runGenerate(context.Background(), args, env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if got := comp.lastInput(t).FontPath; got != font {
			t.Errorf("FontPath = %q, want %q", got, font)
		}
	})

	t.Run("missing font is not an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "fonts.yaml")
		cfgYAML := "fonts:\n  paths:\n    - " + filepath.Join(dir, "none.ttf") + "\n"
		if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o600); err != nil {
			t.Fatal(err)
		}

		comp := &fakeComposer{}
		env, _, stderr := newTestEnv(comp)
		args := []string{"--out", filepath.Join(dir, "w.pdf"), "--config", cfgPath, "--verbose"}

		if err := runGenerate(context.Background(), args, env); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if got := comp.lastInput(t).FontPath; got != "" {
			t.Errorf("FontPath = %q, want empty", got)
		}
		if !strings.Contains(stderr.String(), "sans-serif") {
			t.Errorf("verbose output should mention the fallback, got %q", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunGenerate_Priority - flags > env > config > defaults
// ---------------------------------------------------------------------------

func TestRunGenerate_Priority(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "class.yaml")
	cfgYAML := "language: pl\ngrid:\n  columns: 10\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "w.pdf")

	tests := []struct {
		name     string
		envLang  string
		args     []string
		wantLang mathsheet.Language
		wantCols int
	}{
		{
			name:     "config over defaults",
			args:     []string{"--config", cfgPath},
			wantLang: mathsheet.Polish,
			wantCols: 10,
		},
		{
			name:     "env over config",
			envLang:  "no",
			args:     []string{"--config", cfgPath},
			wantLang: mathsheet.Norwegian,
			wantCols: 10,
		},
		{
			name:     "flag over env",
			envLang:  "no",
			args:     []string{"--config", cfgPath, "--lang", "en", "--columns", "5"},
			wantLang: mathsheet.English,
			wantCols: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MATHSHEET_LANG", tt.envLang)

			comp := &fakeComposer{}
			env, _, _ := newTestEnv(comp)

			if err := runGenerate(context.Background(), append(tt.args, "--out", out), env); err != nil {
				t.Fatalf("runGenerate() error = %v", err)
			}
			in := comp.lastInput(t)
			if in.Language != tt.wantLang {
				t.Errorf("Language = %v, want %v", in.Language, tt.wantLang)
			}
			if in.Columns != tt.wantCols {
				t.Errorf("Columns = %d, want %d", in.Columns, tt.wantCols)
			}
		})
	}
}

func TestRunGenerate_ConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(cfgPath, []byte("language: no\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MATHSHEET_CONFIG", cfgPath)

	comp := &fakeComposer{}
	env, _, _ := newTestEnv(comp)

	if err := runGenerate(context.Background(), []string{"--out", filepath.Join(dir, "w.pdf")}, env); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if got := comp.lastInput(t).Language; got != mathsheet.Norwegian {
		t.Errorf("Language = %v, want Norwegian", got)
	}
}

// ---------------------------------------------------------------------------
// TestRunGenerate_Errors - Usage and validation failures
// ---------------------------------------------------------------------------

func TestRunGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"malformed seed", []string{"--seed", "abc"}, ErrUsage},
		{"unknown flag", []string{"--nope"}, ErrUsage},
		{"positional argument", []string{"extra"}, ErrUsage},
		{"zero seed", []string{"--seed", "0"}, mathsheet.ErrInvalidSeed},
		{"negative seed", []string{"--seed", "-5"}, mathsheet.ErrInvalidSeed},
		{"columns not dividing 100", []string{"--columns", "3"}, mathsheet.ErrInvalidColumns},
		{"too many columns", []string{"--columns", "20"}, config.ErrInvalidValue},
		{"bad page size", []string{"--page-size", "a3"}, mathsheet.ErrInvalidPageSize},
		{"bad timeout", []string{"--timeout", "soon"}, ErrInvalidTimeout},
		{"negative timeout", []string{"--timeout", "-1s"}, ErrInvalidTimeout},
		{"missing config", []string{"--config", "does-not-exist"}, config.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comp := &fakeComposer{}
			env, _, _ := newTestEnv(comp)
			args := append([]string{"--out", filepath.Join(t.TempDir(), "w.pdf")}, tt.args...)

			err := runGenerate(context.Background(), args, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(comp.inputs) != 0 {
				t.Error("composer should not be called on invalid input")
			}
		})
	}
}

func TestRunGenerate_HelpFlag(t *testing.T) {
	t.Parallel()

	comp := &fakeComposer{}
	env, _, stderr := newTestEnv(comp)

	if err := runGenerate(context.Background(), []string{"--help"}, env); err != nil {
		t.Fatalf("runGenerate(--help) error = %v", err)
	}
	if !strings.Contains(stderr.String(), "--seed") {
		t.Errorf("help should list --seed, got %q", stderr.String())
	}
}

func TestRunGenerate_ComposeError(t *testing.T) {
	t.Parallel()

	comp := &fakeComposer{err: mathsheet.ErrBrowserConnect}
	env, stdout, _ := newTestEnv(comp)

	err := runGenerate(context.Background(), []string{"--out", filepath.Join(t.TempDir(), "w.pdf")}, env)
	if !errors.Is(err, mathsheet.ErrBrowserConnect) {
		t.Fatalf("error = %v, want ErrBrowserConnect", err)
	}
	if !comp.closed {
		t.Error("composer should be closed after a failure")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", stdout.String())
	}
}

func TestRunGenerate_Quiet(t *testing.T) {
	t.Parallel()

	comp := &fakeComposer{}
	env, stdout, _ := newTestEnv(comp)

	args := []string{"-q", "--out", filepath.Join(t.TempDir(), "w.pdf")}
	if err := runGenerate(context.Background(), args, env); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet mode should print nothing, got %q", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunGenerate_RealComposerHTML - End to end without Chrome
// ---------------------------------------------------------------------------

func TestRunGenerate_RealComposerHTML(t *testing.T) {
	t.Parallel()

	var stdout, stderr strings.Builder
	env := &Environment{
		Now:         func() time.Time { return fixedNow },
		Stdout:      &stdout,
		Stderr:      &stderr,
		NewComposer: newComposer,
	}
	out := filepath.Join(t.TempDir(), "sheet.html")

	args := []string{"--html", "--seed", "42", "--lang", "no", "--out", out}
	if err := runGenerate(context.Background(), args, env); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Gangetabell Test 1", "Oppgavesett ID:", "<b>42</b>", " × ", "______"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML should contain %q", want)
		}
	}

	summary := stdout.String()
	for _, want := range []string{"Done!", "File: " + out, "Worksheet ID: 42", "Language: no"} {
		if !strings.Contains(summary, want) {
			t.Errorf("stdout should contain %q, got %q", want, summary)
		}
	}
}

func TestRunGenerate_OutParentMissing(t *testing.T) {
	t.Parallel()

	var stdout, stderr strings.Builder
	env := &Environment{
		Now:         func() time.Time { return fixedNow },
		Stdout:      &stdout,
		Stderr:      &stderr,
		NewComposer: newComposer,
	}
	missing := filepath.Join(t.TempDir(), "missing")
	out := filepath.Join(missing, "sheet.html")

	err := runGenerate(context.Background(), []string{"--html", "--seed", "42", "--out", out}, env)
	if !errors.Is(err, mathsheet.ErrWritePDF) {
		t.Fatalf("error = %v, want ErrWritePDF", err)
	}
	if code := exitCodeFor(err); code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Error("--out must not create the parent directory")
	}
}

// ---------------------------------------------------------------------------
// TestResolveTimeout - Timeout priority and validation
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue string
		envValue  time.Duration
		want      time.Duration
		wantErr   bool
	}{
		{"default", "", 0, defaultTimeout, false},
		{"env only", "", 45 * time.Second, 45 * time.Second, false},
		{"flag over env", "2m", 45 * time.Second, 2 * time.Minute, false},
		{"invalid flag", "abc", 0, 0, true},
		{"zero flag", "0s", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flagValue, tt.envValue)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Fatalf("error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaultOutputPath - Filename pattern
// ---------------------------------------------------------------------------

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	got, err := defaultOutputPath(cfg, 654321, fixedNow, false)
	if err != nil {
		t.Fatalf("defaultOutputPath() error = %v", err)
	}
	want := filepath.Join("worksheets", "worksheet_654321_20240309_140507.pdf")
	if got != want {
		t.Errorf("defaultOutputPath() = %q, want %q", got, want)
	}

	cfg.Output.TimestampFormat = "iso"
	got, err = defaultOutputPath(cfg, 654321, fixedNow, true)
	if err != nil {
		t.Fatalf("defaultOutputPath(iso) error = %v", err)
	}
	want = filepath.Join("worksheets", "worksheet_654321_2024-03-09_14-05-07.html")
	if got != want {
		t.Errorf("defaultOutputPath(iso) = %q, want %q", got, want)
	}
}
