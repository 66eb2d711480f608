package lib

import "fmt"

// KropkiConstraint realizes the black (ratio 2) and white (difference
// 1) dot clues from the variant-Sudoku zoo. spec.md §1 places the
// constraint-kind library out of scope, but SPEC_FULL.md's supplemented
// constraint library carries this one as a cheap extra exercise of the
// interface, grounded in original_source/python/constraints.py's
// BlackKropki/WhiteKropki. It is a plain 2-cell arithmetic relation, not
// a uniqueness region: the ratio/difference rule already forbids the
// two cells from being equal.
type KropkiConstraint struct {
	BaseConstraint
	Black bool // true: ratio 2. false: difference 1.
}

func NewBlackKropkiConstraint(cellA, cellB int) *KropkiConstraint {
	return &KropkiConstraint{
		BaseConstraint: newBaseConstraint("Black Kropki dot", []int{cellA, cellB}, false),
		Black:          true,
	}
}

func NewWhiteKropkiConstraint(cellA, cellB int) *KropkiConstraint {
	return &KropkiConstraint{
		BaseConstraint: newBaseConstraint("White Kropki dot", []int{cellA, cellB}, false),
		Black:          false,
	}
}

func (k *KropkiConstraint) Base() *BaseConstraint { return &k.BaseConstraint }

func (k *KropkiConstraint) related(v, w int) bool {
	if k.Black {
		return v == 2*w || w == 2*v
	}
	return absInt(v-w) == 1
}

func (k *KropkiConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	va, aok := assignment[k.Cells[0]]
	vb, bok := assignment[k.Cells[1]]
	if aok && bok && !k.related(va, vb) {
		return true
	}
	return DefaultInvalid(board, assignment)
}

func (k *KropkiConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, k)
}

func (k *KropkiConstraint) QuickUpdate(board *Board) (bool, error) {
	a, b := board.cell(k.Cells[0]), board.cell(k.Cells[1])
	changed := false

	var removeFromA []int
	for v := range a.possibles {
		ok := false
		for w := range b.possibles {
			if k.related(v, w) {
				ok = true
				break
			}
		}
		if !ok {
			removeFromA = append(removeFromA, v)
		}
	}
	if len(removeFromA) > 0 {
		if err := board.removeFromCell(a.index, removeFromA); err != nil {
			return changed, err
		}
		changed = true
	}

	var removeFromB []int
	for v := range b.possibles {
		ok := false
		for w := range a.possibles {
			if k.related(v, w) {
				ok = true
				break
			}
		}
		if !ok {
			removeFromB = append(removeFromB, v)
		}
	}
	if len(removeFromB) > 0 {
		if err := board.removeFromCell(b.index, removeFromB); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}

func (k *KropkiConstraint) Clone() Constraint {
	return &KropkiConstraint{BaseConstraint: k.BaseConstraint.clone(), Black: k.Black}
}

func (k *KropkiConstraint) String() string {
	return fmt.Sprintf("%s(%d,%d)", k.Name, k.Cells[0], k.Cells[1])
}
