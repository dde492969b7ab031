package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifestep/util"
)

// Event represents any event emitted by the distributor during a step.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// Phase is the coordinator's position in a step.
type Phase int

const (
	Idle Phase = iota
	Dispatching
	AwaitingCompletion
	Merged
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dispatching:
		return "Dispatching"
	case AwaitingCompletion:
		return "AwaitingCompletion"
	case Merged:
		return "Merged"
	case Failed:
		return "Failed"
	default:
		return "Incorrect Phase"
	}
}

// PhaseChange is sent every time the distributor moves between phases.
type PhaseChange struct {
	CompletedTurns int
	NewPhase       Phase
}

// CellFlipped is sent by the distributor after the join for every cell whose
// state differs between the current and next grid.
type CellFlipped struct {
	CompletedTurns int
	Cell           util.Cell
}

// TurnComplete is sent once the next grid has been merged.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is sent by Run with the alive cells of the result.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (e PhaseChange) String() string { return e.NewPhase.String() }
func (e CellFlipped) String() string {
	return fmt.Sprintf("Cell flipped %v", e.Cell)
}
func (e TurnComplete) String() string { return "" }
func (e FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn %d, %d alive", e.CompletedTurns, len(e.Alive))
}

func (e PhaseChange) GetCompletedTurns() int { return e.CompletedTurns }
func (e CellFlipped) GetCompletedTurns() int { return e.CompletedTurns }
func (e TurnComplete) GetCompletedTurns() int { return e.CompletedTurns }
func (e FinalTurnComplete) GetCompletedTurns() int { return e.CompletedTurns }
