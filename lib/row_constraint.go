package lib

import "fmt"

// RowConstraint is a NoRepeats uniqueness region over one grid row,
// grounded in the teacher's lib/constraints/row_constraint.go — same
// responsibility, rebuilt against the arena-index BaseConstraint
// instead of a *Board/[]*Cell pointer pair.
type RowConstraint struct {
	BaseConstraint
}

// NewRowConstraint builds the row constraint over the given 9 cell
// indices, in row order.
func NewRowConstraint(cells []int) *RowConstraint {
	row := cells[0] / 9
	return &RowConstraint{BaseConstraint: newBaseConstraint(fmt.Sprintf("Row %d", row+1), cells, true)}
}

func (r *RowConstraint) Base() *BaseConstraint { return &r.BaseConstraint }

func (r *RowConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	return DefaultInvalid(board, assignment)
}

func (r *RowConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, r)
}

func (r *RowConstraint) QuickUpdate(board *Board) (bool, error) {
	return noRepeatsQuickUpdate(board, &r.BaseConstraint)
}

func (r *RowConstraint) OnCandidatesChanged(board *Board, cellIndex int) error {
	return noRepeatsOnCandidatesChanged(board, &r.BaseConstraint, cellIndex)
}

func (r *RowConstraint) Clone() Constraint {
	return &RowConstraint{BaseConstraint: r.BaseConstraint.clone()}
}
