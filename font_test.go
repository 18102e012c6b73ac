package mathsheet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFontResolver_Resolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "Present.ttf")
	second := filepath.Join(dir, "Second.ttf")
	missing := filepath.Join(dir, "Missing.ttf")
	for _, p := range []string{present, second} {
		if err := os.WriteFile(p, []byte("font"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	tests := []struct {
		name       string
		candidates []string
		wantPath   string
		wantOK     bool
	}{
		{name: "first existing wins", candidates: []string{missing, present, second}, wantPath: present, wantOK: true},
		{name: "order respected", candidates: []string{second, present}, wantPath: second, wantOK: true},
		{name: "directory skipped", candidates: []string{dir, second}, wantPath: second, wantOK: true},
		{name: "none found", candidates: []string{missing}, wantOK: false},
		{name: "empty list", candidates: []string{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FontResolver{Candidates: tt.candidates}.Resolve()
			if ok != tt.wantOK || got != tt.wantPath {
				t.Errorf("Resolve() = (%q, %v), want (%q, %v)", got, ok, tt.wantPath, tt.wantOK)
			}
		})
	}
}

func TestDefaultFontCandidates(t *testing.T) {
	t.Parallel()

	if len(DefaultFontCandidates) != 4 {
		t.Fatalf("len(DefaultFontCandidates) = %d, want 4", len(DefaultFontCandidates))
	}
	if DefaultFontCandidates[0] != "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf" {
		t.Errorf("first candidate = %q", DefaultFontCandidates[0])
	}
	if DefaultFontCandidates[3] != "DejaVuSans.ttf" {
		t.Errorf("last candidate = %q, want working-directory fallback", DefaultFontCandidates[3])
	}
}
