package gol

import (
	"fmt"
	"strings"

	"uk.ac.bris.cs/lifestep/util"
)

// State is the value of a single cell.
type State = byte

const (
	Alive State = 0xFF
	Dead  State = 0x00
)

// MaxCells bounds the size of a single grid buffer.
const MaxCells = 1 << 26

// Grid is a fixed-size board of cells stored row-major, one slice per row.
type Grid struct {
	rows, cols int
	cells      [][]byte
}

// NewGrid allocates an all-dead rows x cols grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ResourceAcquisitionError{
			Resource: "grid buffer",
			Err:      fmt.Errorf("invalid dimensions %dx%d", rows, cols),
		}
	}
	if rows > MaxCells/cols {
		return nil, &ResourceAcquisitionError{
			Resource: "grid buffer",
			Err:      fmt.Errorf("%dx%d exceeds %d cells", rows, cols, MaxCells),
		}
	}
	cells := make([][]byte, rows)
	backing := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// ParseGrid builds a grid from rows of '0' and '1' characters.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	g, err := NewGrid(len(lines), len(strings.TrimSpace(lines[0])))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != g.cols {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", y, len(line), g.cols)
		}
		for x, c := range line {
			switch c {
			case '1':
				g.cells[y][x] = Alive
			case '0':
				g.cells[y][x] = Dead
			default:
				return nil, fmt.Errorf("parse grid: row %d col %d: unexpected %q", y, x, c)
			}
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (State, error) {
	if !g.inBounds(row, col) {
		return Dead, outOfBounds(row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set writes the cell at (row, col).
func (g *Grid) Set(row, col int, s State) error {
	if !g.inBounds(row, col) {
		return outOfBounds(row, col, g.rows, g.cols)
	}
	g.cells[row][col] = s
	return nil
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) ([]byte, error) {
	if row < 0 || row >= g.rows {
		return nil, outOfBounds(row, 0, g.rows, g.cols)
	}
	out := make([]byte, g.cols)
	copy(out, g.cells[row])
	return out, nil
}

// rowSlice hands out the backing slice of a row to its single writer.
func (g *Grid) rowSlice(row int) []byte {
	return g.cells[row]
}

func (g *Grid) Clone() *Grid {
	c, _ := NewGrid(g.rows, g.cols)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for y := range g.cells {
		if string(g.cells[y]) != string(o.cells[y]) {
			return false
		}
	}
	return true
}

// AliveCells finds all alive cells.
func (g *Grid) AliveCells() []util.Cell {
	var slice []util.Cell
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y][x] == Alive {
				slice = append(slice, util.Cell{X: x, Y: y})
			}
		}
	}
	return slice
}

func (g *Grid) AliveCount() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Alive {
				count++
			}
		}
	}
	return count
}
