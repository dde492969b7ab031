package gol

// Rule computes the next state of one cell from the current grid. It must not
// modify current.
type Rule func(current *Grid, row, col int) (State, error)

// LiveNeighbours counts alive cells in the Moore neighbourhood of (row, col).
// Positions off the board count as dead.
func LiveNeighbours(current *Grid, row, col int) (int, error) {
	if !current.inBounds(row, col) {
		return 0, outOfBounds(row, col, current.rows, current.cols)
	}
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		y := row + dy
		if y < 0 || y >= current.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			x := col + dx
			if (dy == 0 && dx == 0) || x < 0 || x >= current.cols {
				continue
			}
			if current.cells[y][x] == Alive {
				sum++
			}
		}
	}
	return sum, nil
}

// NextState applies B3/S23 to (row, col).
func NextState(current *Grid, row, col int) (State, error) {
	sum, err := LiveNeighbours(current, row, col)
	if err != nil {
		return Dead, err
	}
	if current.cells[row][col] == Alive {
		if sum == 2 || sum == 3 {
			return Alive, nil
		}
		return Dead, nil
	}
	if sum == 3 {
		return Alive, nil
	}
	return Dead, nil
}
