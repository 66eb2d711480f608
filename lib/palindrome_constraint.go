package lib

// PalindromeConstraint requires cell i and its mirror (len-1-i) to hold
// equal values, grounded in original_source/python/constraints.py's
// Palindrome.
type PalindromeConstraint struct {
	BaseConstraint
}

func NewPalindromeConstraint(cells []int) *PalindromeConstraint {
	return &PalindromeConstraint{BaseConstraint: newBaseConstraint("Palindrome", cells, false)}
}

func (p *PalindromeConstraint) Base() *BaseConstraint { return &p.BaseConstraint }

func (p *PalindromeConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	n := len(p.Cells)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		vi, iok := assignment[p.Cells[i]]
		vj, jok := assignment[p.Cells[j]]
		if iok && jok && vi != vj {
			return true
		}
	}
	return DefaultInvalid(board, assignment)
}

func (p *PalindromeConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, p)
}

func (p *PalindromeConstraint) QuickUpdate(board *Board) (bool, error) {
	changed := false
	n := len(p.Cells)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		a, b := board.cell(p.Cells[i]), board.cell(p.Cells[j])
		common := make(map[int]bool)
		for v := range a.possibles {
			if b.possibles[v] {
				common[v] = true
			}
		}
		if len(common) != len(a.possibles) {
			if err := a.Intersect(common); err != nil {
				return changed, err
			}
			changed = true
		}
		if len(common) != len(b.possibles) {
			if err := b.Intersect(common); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

func (p *PalindromeConstraint) Clone() Constraint {
	return &PalindromeConstraint{BaseConstraint: p.BaseConstraint.clone()}
}
