package gol

import "fmt"

// worker computes one row of the next grid. It reads current anywhere but
// writes only out, which must be the backing slice of row in next.
func worker(current *Grid, row int, out []byte, rule Rule) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerFailure{Row: row, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if len(out) != current.cols {
		return &WorkerFailure{Row: row, Err: fmt.Errorf("row buffer has %d cells, want %d", len(out), current.cols)}
	}
	for x := 0; x < current.cols; x++ {
		s, err := rule(current, row, x)
		if err != nil {
			return &WorkerFailure{Row: row, Err: err}
		}
		out[x] = s
	}
	return nil
}
