package mathsheet

// DefaultColumns is the grid width used when Input.Columns is zero.
const DefaultColumns = 5

// MaxColumns bounds the grid width.
const MaxColumns = 10

// layoutGrid arranges problems row-major into rows of the given width.
// rows = len(problems) / columns; a trailing partial row is dropped, so
// callers validate that columns divides the problem count.
func layoutGrid(problems []Problem, columns int) [][]string {
	if columns <= 0 {
		return nil
	}
	rows := len(problems) / columns
	grid := make([][]string, rows)
	for r := range rows {
		row := make([]string, columns)
		for c := range columns {
			row[c] = problems[r*columns+c].String()
		}
		grid[r] = row
	}
	return grid
}
