package fractal

import "github.com/charmbracelet/lipgloss"

// Cell is one styled character of a frame. In half-block mode the symbol is
// '▀' and Fg/Bg carry the top and bottom sample colors; in ASCII mode only
// Fg is set and the symbol itself encodes intensity.
type Cell struct {
	Symbol rune
	Fg     lipgloss.Color
	Bg     lipgloss.Color
}

// Frame is one complete rendered grid, row-major. It is produced whole and
// handed to the display boundary; no partial frames exist.
type Frame struct {
	Rows, Cols int
	Cells      []Cell
}

// NewFrame allocates an empty frame. Zero-area dimensions yield a frame
// with no cells, which is valid.
func NewFrame(rows, cols int) Frame {
	if rows <= 0 || cols <= 0 {
		return Frame{Rows: max(rows, 0), Cols: max(cols, 0)}
	}
	return Frame{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
}

// At returns the cell at (row, col).
func (f Frame) At(row, col int) Cell {
	return f.Cells[row*f.Cols+col]
}

func (f *Frame) set(row, col int, c Cell) {
	f.Cells[row*f.Cols+col] = c
}
