package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of a composed frame
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Span is a run of horizontally adjacent cells sharing one style. Frames are
// flushed span-wise so style switches bound the number of draw operations.
type Span struct {
	X, Y  int
	Runes []rune
	Style tcell.Style
}

// Frame is the glyph+style buffer the rasterizers fill. It never touches the
// terminal itself; Flush hands the content to a tcell screen.
type Frame struct {
	width  int
	height int
	cells  [][]Cell
}

// NewFrame creates a cleared frame of the given dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Reset(width, height)
	return f
}

// Width returns the frame width
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height
func (f *Frame) Height() int {
	return f.height
}

// Reset clears the frame, reallocating only when dimensions change
func (f *Frame) Reset(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width != f.width || height != f.height {
		f.width = width
		f.height = height
		f.cells = make([][]Cell, height)
		for y := range f.cells {
			f.cells[y] = make([]Cell, width)
		}
	}
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
		}
	}
}

// SetCell writes one cell; out-of-bounds writes are dropped
func (f *Frame) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y][x] = Cell{Rune: r, Style: style}
}

// Cell returns the cell at (x, y)
func (f *Frame) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{}, false
	}
	return f.cells[y][x], true
}

// WriteString writes s starting at (x, y), clipped to the row
func (f *Frame) WriteString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= f.width {
			return
		}
		f.SetCell(x, y, r, style)
		x++
	}
}

// RowSpans run-length-encodes row y into identical-style spans
func (f *Frame) RowSpans(y int) []Span {
	if y < 0 || y >= f.height || f.width == 0 {
		return nil
	}
	row := f.cells[y]

	var spans []Span
	start := 0
	for x := 1; x <= f.width; x++ {
		if x == f.width || row[x].Style != row[start].Style {
			runes := make([]rune, x-start)
			for i := start; i < x; i++ {
				runes[i-start] = row[i].Rune
			}
			spans = append(spans, Span{X: start, Y: y, Runes: runes, Style: row[start].Style})
			start = x
		}
	}
	return spans
}

// Flush writes the frame span-wise to the screen. The caller still owns
// screen.Show.
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.height; y++ {
		for _, span := range f.RowSpans(y) {
			x := span.X
			for _, r := range span.Runes {
				screen.SetContent(x, y, r, nil, span.Style)
				x++
			}
		}
	}
}
