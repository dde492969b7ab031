package gol

import (
	"context"
	"fmt"
	"math/rand"
)

// Run builds the initial board described by p, performs one generation step
// and returns the result. If events is non-nil it receives the step's events
// and is closed before Run returns.
func Run(ctx context.Context, p Params, events chan<- Event) (*Grid, error) {
	if events != nil {
		// Close the channel to stop any consumer gracefully.
		defer close(events)
	}

	world, err := initialWorld(p)
	if err != nil {
		return nil, err
	}
	d, err := NewDistributor(world, p, events)
	if err != nil {
		return nil, err
	}
	next, err := d.Step(ctx)
	if err != nil {
		return nil, err
	}
	if events != nil {
		events <- FinalTurnComplete{d.Turn(), next.AliveCells()}
	}
	return next, nil
}

func initialWorld(p Params) (*Grid, error) {
	if len(p.Pattern) > 0 {
		g, err := ParseGrid(p.Pattern)
		if err != nil {
			return nil, err
		}
		if (p.Rows != 0 && p.Rows != g.rows) || (p.Cols != 0 && p.Cols != g.cols) {
			return nil, fmt.Errorf("pattern is %dx%d, want %dx%d", g.rows, g.cols, p.Rows, p.Cols)
		}
		return g, nil
	}
	g, err := NewGrid(p.Rows, p.Cols)
	if err != nil {
		return nil, err
	}
	Seed(g, rand.New(rand.NewSource(p.Seed)))
	return g, nil
}
