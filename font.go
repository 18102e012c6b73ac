package mathsheet

import "github.com/alnah/go-mathsheet/internal/fileutil"

// DefaultFontCandidates are tried in order when no candidates are configured.
var DefaultFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"DejaVuSans.ttf",
}

// FontResolver finds the first existing font file among its candidates.
type FontResolver struct {
	Candidates []string // nil means DefaultFontCandidates
}

// Resolve scans the candidates once, in order. ok is false when none exist,
// in which case the worksheet uses the browser's built-in sans-serif font.
func (r FontResolver) Resolve() (path string, ok bool) {
	candidates := r.Candidates
	if candidates == nil {
		candidates = DefaultFontCandidates
	}
	return fileutil.FirstExisting(candidates)
}
