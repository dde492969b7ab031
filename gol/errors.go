package gol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrResourceAcquisition is matched by every ResourceAcquisitionError.
	ErrResourceAcquisition = errors.New("resource acquisition failed")
	// ErrOutOfBounds reports a coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrWorkerTimeout reports a step whose workers did not all finish in time.
	ErrWorkerTimeout = errors.New("worker timeout")
	// ErrIncompleteGrid reports a join that returned with a row never written.
	ErrIncompleteGrid = errors.New("next grid incomplete")
)

// ResourceAcquisitionError is returned when a grid buffer or other step
// resource cannot be obtained. It aborts the run before any work is dispatched.
type ResourceAcquisitionError struct {
	Resource string
	Err      error
}

func (e *ResourceAcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Resource, e.Err)
}

func (e *ResourceAcquisitionError) Unwrap() []error {
	return []error{ErrResourceAcquisition, e.Err}
}

// WorkerFailure wraps an error or recovered panic from the worker for Row.
type WorkerFailure struct {
	Row int
	Err error
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("worker for row %d: %v", e.Row, e.Err)
}

func (e *WorkerFailure) Unwrap() error { return e.Err }

func outOfBounds(row, col, rows, cols int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, rows, cols)
}

func pendingRowsError(base error, pending []int) error {
	s := make([]string, len(pending))
	for i, r := range pending {
		s[i] = fmt.Sprint(r)
	}
	return fmt.Errorf("%w: rows [%s] did not report completion", base, strings.Join(s, " "))
}
