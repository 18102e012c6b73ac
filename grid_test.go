package mathsheet

import (
	"testing"
)

func TestLayoutGrid(t *testing.T) {
	t.Parallel()

	problems := GenerateProblems(42)

	tests := []struct {
		columns  int
		wantRows int
	}{
		{columns: 5, wantRows: 20},
		{columns: 4, wantRows: 25},
		{columns: 10, wantRows: 10},
		{columns: 1, wantRows: 100},
	}

	for _, tt := range tests {
		grid := layoutGrid(problems, tt.columns)
		if len(grid) != tt.wantRows {
			t.Errorf("columns=%d: rows = %d, want %d", tt.columns, len(grid), tt.wantRows)
			continue
		}
		for r, row := range grid {
			if len(row) != tt.columns {
				t.Fatalf("columns=%d: row %d has %d cells", tt.columns, r, len(row))
			}
			for c, cell := range row {
				if want := problems[r*tt.columns+c].String(); cell != want {
					t.Errorf("columns=%d: cell[%d][%d] = %q, want %q", tt.columns, r, c, cell, want)
				}
			}
		}
	}
}

func TestLayoutGrid_RemainderDropped(t *testing.T) {
	t.Parallel()

	grid := layoutGrid(GenerateProblems(1), 3)
	if len(grid) != 33 {
		t.Errorf("rows = %d, want 33", len(grid))
	}
}

func TestLayoutGrid_NonPositiveColumns(t *testing.T) {
	t.Parallel()

	if grid := layoutGrid(GenerateProblems(1), 0); grid != nil {
		t.Errorf("layoutGrid(_, 0) = %v, want nil", grid)
	}
}
