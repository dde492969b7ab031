package gol

import "math/rand"

// Seed fills g with independent uniformly random cells drawn from rng.
func Seed(g *Grid, rng *rand.Rand) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if rng.Intn(2) == 1 {
				g.cells[y][x] = Alive
			} else {
				g.cells[y][x] = Dead
			}
		}
	}
}
