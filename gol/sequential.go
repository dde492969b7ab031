package gol

// SequentialStep computes the next generation on the calling goroutine. It is
// the reference the row workers are checked against.
func SequentialStep(current *Grid, rule Rule) (*Grid, error) {
	next, err := NewGrid(current.rows, current.cols)
	if err != nil {
		return nil, err
	}
	for y := 0; y < current.rows; y++ {
		for x := 0; x < current.cols; x++ {
			s, err := rule(current, y, x)
			if err != nil {
				return nil, err
			}
			next.cells[y][x] = s
		}
	}
	return next, nil
}
