package gol

import (
	"bufio"
	"io"
)

// WriteGrid prints the header line followed by one line per row of
// space-separated 0/1 tokens.
func WriteGrid(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Updated grid:\n")
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if g.cells[y][x] == Alive {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
