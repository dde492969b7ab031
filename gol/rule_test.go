package gol

import (
	"errors"
	"testing"
)

func TestLiveNeighboursCornerClipping(t *testing.T) {
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			g, _ := NewGrid(rows, cols)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					g.Set(y, x, Alive)
				}
			}
			n, err := LiveNeighbours(g, 0, 0)
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			want := 0
			if rows > 1 {
				want++
			}
			if cols > 1 {
				want++
			}
			if rows > 1 && cols > 1 {
				want++
			}
			if n != want || n > 3 {
				t.Errorf("%dx%d all alive: corner has %d neighbours, want %d", rows, cols, n, want)
			}
		}
	}
}

func TestLiveNeighboursOutOfBounds(t *testing.T) {
	g, _ := NewGrid(2, 2)
	if _, err := LiveNeighbours(g, 2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name     string
		grid     []string
		row, col int
		want     State
	}{
		{"lonely cell dies", []string{"000", "010", "000"}, 1, 1, Dead},
		{"one neighbour dies", []string{"100", "010", "000"}, 1, 1, Dead},
		{"two neighbours survives", []string{"101", "010", "000"}, 1, 1, Alive},
		{"three neighbours survives", []string{"101", "010", "100"}, 1, 1, Alive},
		{"four neighbours dies", []string{"101", "010", "101"}, 1, 1, Dead},
		{"dead with three is born", []string{"010", "101", "000"}, 1, 1, Alive},
		{"dead with two stays dead", []string{"010", "100", "000"}, 1, 1, Dead},
		{"dead with four stays dead", []string{"010", "101", "010"}, 1, 1, Dead},
		{"corner born from three", []string{"01", "11"}, 0, 0, Alive},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NextState(mustParse(t, test.grid...), test.row, test.col)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got %#x, want %#x", got, test.want)
			}
		})
	}
}

func TestNextStateDoesNotModifyGrid(t *testing.T) {
	g := mustParse(t, "0110", "1001", "1001", "0110")
	before := g.Clone()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if _, err := NextState(g, y, x); err != nil {
				t.Fatal(err)
			}
		}
	}
	if !g.Equal(before) {
		t.Error("NextState modified its input")
	}
}
