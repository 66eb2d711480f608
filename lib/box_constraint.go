package lib

import (
	"fmt"

	"github.com/eftil/variant-sudoku-solver/lib/utils"
)

// BoxConstraint is a NoRepeats uniqueness region over one 3x3 box.
type BoxConstraint struct {
	BaseConstraint
}

func NewBoxConstraint(cells []int) *BoxConstraint {
	row, col := utils.IndexToRowCol(cells[0])
	box := utils.GetBoxNumber(row, col)
	return &BoxConstraint{BaseConstraint: newBaseConstraint(fmt.Sprintf("Box %d", box+1), cells, true)}
}

func (b *BoxConstraint) Base() *BaseConstraint { return &b.BaseConstraint }

func (b *BoxConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	return DefaultInvalid(board, assignment)
}

func (b *BoxConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, b)
}

func (b *BoxConstraint) QuickUpdate(board *Board) (bool, error) {
	return noRepeatsQuickUpdate(board, &b.BaseConstraint)
}

func (b *BoxConstraint) OnCandidatesChanged(board *Board, cellIndex int) error {
	return noRepeatsOnCandidatesChanged(board, &b.BaseConstraint, cellIndex)
}

func (b *BoxConstraint) Clone() Constraint {
	return &BoxConstraint{BaseConstraint: b.BaseConstraint.clone()}
}
