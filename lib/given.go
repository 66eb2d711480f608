package lib

import (
	"fmt"

	"github.com/eftil/variant-sudoku-solver/lib/utils"
)

// GivenDigit is the trivial single-cell constraint spec.md §6 describes:
// seeding a clue intersects the cell's possibles to {d} and finalises
// it. It is also what the bifurcation controller attaches to the BFS
// closure it seeds into a cloned board (spec.md §4.7.2).
type GivenDigit struct {
	BaseConstraint
	cellIndex int
	value     int
}

func newGivenDigit(cellIndex, value int) *GivenDigit {
	row, col := utils.IndexToRowCol(cellIndex)
	base := newBaseConstraint(
		fmt.Sprintf("Given(r%dc%d=%d)", row+1, col+1, value),
		[]int{cellIndex},
		false,
	)
	return &GivenDigit{BaseConstraint: base, cellIndex: cellIndex, value: value}
}

func (g *GivenDigit) Base() *BaseConstraint { return &g.BaseConstraint }

func (g *GivenDigit) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	if v, ok := assignment[g.cellIndex]; ok && v != g.value {
		return true
	}
	return DefaultInvalid(board, assignment)
}

// Initialise narrows the cell down to {value} via the shared
// DefaultInitialise pass, then finalises eagerly rather than waiting for
// the queue — this is what makes a conflicting given raise Contradiction
// immediately during construction (spec.md §8's boundary behaviour),
// since finaliseCell's peer-removal cascade runs synchronously here too.
func (g *GivenDigit) Initialise(board *Board) error {
	if err := DefaultInitialise(board, g); err != nil {
		return err
	}
	cell := board.cell(g.cellIndex)
	if cell.finalised {
		return nil
	}
	if len(cell.possibles) == 1 {
		return board.finaliseCell(g.cellIndex)
	}
	return nil
}

func (g *GivenDigit) Clone() Constraint {
	return &GivenDigit{BaseConstraint: g.BaseConstraint.clone(), cellIndex: g.cellIndex, value: g.value}
}
