package gol

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/lifestep/util"
)

// Params provides the details of how to build and step the board.
type Params struct {
	Rows    int
	Cols    int
	Threads int           // cap on concurrently running row workers, 0 means one per row up to maxUnboundedRows
	Timeout time.Duration // bound on a step, 0 means wait indefinitely
	Seed    int64
	Pattern []string // rows of 0/1 used instead of a seeded board; Rows and Cols must match when non-zero
}

// Distributor owns the current and next grids and runs one row worker per
// row for every step.
type Distributor struct {
	current *Grid
	next    *Grid
	rule    Rule
	threads int
	timeout time.Duration
	events  chan<- Event

	phase Phase
	turn  int
	err   error
}

// NewDistributor takes ownership of current. events may be nil.
func NewDistributor(current *Grid, p Params, events chan<- Event) (*Distributor, error) {
	if current == nil {
		return nil, &ResourceAcquisitionError{Resource: "current grid", Err: errors.New("nil grid")}
	}
	next, err := NewGrid(current.rows, current.cols)
	if err != nil {
		return nil, err
	}
	return &Distributor{
		current: current,
		next:    next,
		rule:    NextState,
		threads: p.Threads,
		timeout: p.Timeout,
		events:  events,
	}, nil
}

// SetRule replaces the cell rule used by workers.
func (d *Distributor) SetRule(r Rule) { d.rule = r }

func (d *Distributor) Phase() Phase { return d.phase }
func (d *Distributor) Turn() int { return d.turn }

// Current returns the current grid, or nil once a step has failed since
// stalled workers may still be reading it.
func (d *Distributor) Current() *Grid {
	if d.err != nil {
		return nil
	}
	return d.current
}

func (d *Distributor) setPhase(p Phase) {
	d.phase = p
	if d.events != nil {
		d.events <- PhaseChange{d.turn, p}
	}
}

func (d *Distributor) fail(err error) error {
	// Workers that outlived the step may still write into next.
	d.next = nil
	d.err = err
	d.setPhase(Failed)
	return err
}

// Step computes the next generation and makes it the current grid. A failed
// step leaves the distributor in the Failed phase and every later call
// returns the same error.
func (d *Distributor) Step(ctx context.Context) (*Grid, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.next == nil {
		next, err := NewGrid(d.current.rows, d.current.cols)
		if err != nil {
			return nil, d.fail(err)
		}
		d.next = next
	}

	stepCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	current, next, rule := d.current, d.next, d.rule
	rows := current.rows
	done := make([]atomic.Bool, rows)

	d.setPhase(Dispatching)

	g, gctx := errgroup.WithContext(stepCtx)
	if limit := workerLimit(d.threads, rows); limit > 0 {
		g.SetLimit(limit)
	}
	dispatched := make(chan struct{})
	joined := make(chan error, 1)
	go func() {
		for y := 0; y < rows; y++ {
			if gctx.Err() != nil {
				break
			}
			row, out := y, next.rowSlice(y)
			g.Go(func() error {
				if err := worker(current, row, out, rule); err != nil {
					return err
				}
				done[row].Store(true)
				return nil
			})
		}
		close(dispatched)
		joined <- g.Wait()
	}()

	select {
	case <-dispatched:
	case <-stepCtx.Done():
		return nil, d.fail(abortError(stepCtx, done))
	}

	d.setPhase(AwaitingCompletion)

	if err := awaitJoin(stepCtx, joined, done); err != nil {
		return nil, d.fail(err)
	}

	if pending := pendingRows(done); len(pending) > 0 {
		if stepCtx.Err() != nil {
			return nil, d.fail(abortError(stepCtx, done))
		}
		return nil, d.fail(pendingRowsError(ErrIncompleteGrid, pending))
	}

	d.reportFlips(current, next)
	d.current, d.next = next, current
	d.turn++
	d.setPhase(Merged)
	if d.events != nil {
		d.events <- TurnComplete{d.turn}
	}
	return d.current, nil
}

// reportFlips sends a CellFlipped event for every cell that changed.
func (d *Distributor) reportFlips(current, next *Grid) {
	if d.events == nil {
		return
	}
	for y := 0; y < current.rows; y++ {
		for x := 0; x < current.cols; x++ {
			if current.cells[y][x] != next.cells[y][x] {
				d.events <- CellFlipped{d.turn + 1, util.Cell{X: x, Y: y}}
			}
		}
	}
}

// maxUnboundedRows is the largest board that gets one live goroutine per row
// when no thread limit is set.
const maxUnboundedRows = 4096

// workerLimit returns the errgroup limit for a step, 0 meaning no limit.
func workerLimit(threads, rows int) int {
	if threads > 0 {
		return threads
	}
	if rows > maxUnboundedRows {
		return 4 * runtime.GOMAXPROCS(0)
	}
	return 0
}

// awaitJoin waits for the worker group. A deadline that fires after every
// row has reported does not fail the step.
func awaitJoin(ctx context.Context, joined <-chan error, done []atomic.Bool) error {
	select {
	case err := <-joined:
		return err
	case <-ctx.Done():
		if len(pendingRows(done)) > 0 {
			return abortError(ctx, done)
		}
		return <-joined
	}
}

func pendingRows(done []atomic.Bool) []int {
	var pending []int
	for y := range done {
		if !done[y].Load() {
			pending = append(pending, y)
		}
	}
	return pending
}

func abortError(ctx context.Context, done []atomic.Bool) error {
	pending := pendingRows(done)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return pendingRowsError(ErrWorkerTimeout, pending)
	}
	return fmt.Errorf("step aborted: %w", pendingRowsError(ctx.Err(), pending))
}
