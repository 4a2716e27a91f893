package types

// Board geometry, in pixels.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20
	GridWidth    = ScreenWidth / GridSize
	GridHeight   = ScreenHeight / GridSize
)

// Game constants
const (
	Speed       = 20 // Ticks per second
	WindowTitle = "Змейка"
)

// Point is a cell on the board, stored as the pixel position of its top-left corner.
type Point struct {
	X, Y int
}

// Add returns p shifted by d cells.
func (p Point) Add(d Direction, unit int) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X*unit, Y: p.Y + v.Y*unit}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int // pixels
	Height int // pixels
	Unit   int // pixels per cell
}

// DefaultGrid returns the fixed 640x480 board with 20px cells.
func DefaultGrid() Grid {
	return Grid{Width: ScreenWidth, Height: ScreenHeight, Unit: GridSize}
}

// Columns returns the number of cells per row.
func (g Grid) Columns() int {
	return g.Width / g.Unit
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.Unit
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Columns() * g.Rows()
}

// Center returns the spawn cell in the middle of the board.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cell returns the pixel position of the cell at column col, row row.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.Unit, Y: row * g.Unit}
}

// Wrap folds p back onto the board. The board has no walls, so leaving one
// edge re-enters from the opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
