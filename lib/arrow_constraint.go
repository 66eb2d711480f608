package lib

import "github.com/eftil/variant-sudoku-solver/lib/utils"

// ArrowConstraint requires the bulb cell (Cells[0]) to equal the sum of
// the arrow's path cells (Cells[1:]). Grounded in
// original_source/python/constraints.py's Arrow.
type ArrowConstraint struct {
	BaseConstraint
}

func NewArrowConstraint(bulb int, path []int) *ArrowConstraint {
	cells := append([]int{bulb}, path...)
	return &ArrowConstraint{BaseConstraint: newBaseConstraint("Arrow", cells, false)}
}

func (a *ArrowConstraint) Base() *BaseConstraint { return &a.BaseConstraint }

func (a *ArrowConstraint) bulb() int   { return a.Cells[0] }
func (a *ArrowConstraint) path() []int { return a.Cells[1:] }

func (a *ArrowConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	partialSum, assignedCount := 0, 0
	for _, ci := range a.path() {
		if v, ok := assignment[ci]; ok {
			partialSum += v
			assignedCount++
		}
	}
	remaining := len(a.path()) - assignedCount
	minSum := partialSum + remaining*1
	maxSum := partialSum + remaining*9

	if bulbVal, ok := assignment[a.bulb()]; ok {
		if bulbVal < minSum || bulbVal > maxSum {
			return true
		}
		if remaining == 0 && partialSum != bulbVal {
			return true
		}
	} else if minSum > 9 {
		return true
	}
	return DefaultInvalid(board, assignment)
}

func (a *ArrowConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, a)
}

// QuickUpdate propagates sum bounds between the bulb and the path: the
// bulb is intersected with [pathMin, pathMax], and each path cell is
// intersected with the range its value could take given the other path
// cells' bounds and the bulb's current range. This is sound but not
// exact — the default enumeration pruner (when the domain product is
// small enough) tightens the rest.
func (a *ArrowConstraint) QuickUpdate(board *Board) (bool, error) {
	changed := false
	path := a.path()
	mins := make([]int, len(path))
	maxs := make([]int, len(path))
	pathMin, pathMax := 0, 0
	for i, ci := range path {
		cell := board.cell(ci)
		mins[i], maxs[i] = minMaxOf(cell.possibles)
		pathMin += mins[i]
		pathMax += maxs[i]
	}

	bulbCell := board.cell(a.bulb())
	var bulbRemove []int
	for v := range bulbCell.possibles {
		if v < pathMin || v > pathMax {
			bulbRemove = append(bulbRemove, v)
		}
	}
	if len(bulbRemove) > 0 {
		if err := board.removeFromCell(a.bulb(), bulbRemove); err != nil {
			return changed, err
		}
		changed = true
	}
	bulbMin, bulbMax := minMaxOf(bulbCell.possibles)

	for i, ci := range path {
		otherMin := pathMin - mins[i]
		otherMax := pathMax - maxs[i]
		cell := board.cell(ci)
		var remove []int
		for v := range cell.possibles {
			if v+otherMin > bulbMax || v+otherMax < bulbMin {
				remove = append(remove, v)
			}
		}
		if len(remove) > 0 {
			if err := board.removeFromCell(ci, remove); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

func minMaxOf(possibles map[int]bool) (int, int) {
	min, max := 9, 1
	for v := range possibles {
		min = utils.Min(min, v)
		max = utils.Max(max, v)
	}
	return min, max
}

func (a *ArrowConstraint) Clone() Constraint {
	return &ArrowConstraint{BaseConstraint: a.BaseConstraint.clone()}
}
