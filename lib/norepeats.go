package lib

import (
	"sort"

	"github.com/eftil/variant-sudoku-solver/lib/utils"
)

// The functions in this file implement the shared reasoning every
// uniqueness region layers on top of the plain Constraint interface
// (spec.md §4.4): n-tuple detection, corner marks, and locked
// candidates. They are free functions rather than methods on a NoRepeats
// type because the concrete regions (RowConstraint, ColumnConstraint,
// BoxConstraint, and any cage-like uniqueness region) each embed
// BaseConstraint directly and call into this shared machinery from
// their own QuickUpdate/OnCandidatesChanged — the same "composition over
// shared base data" shape spec.md §9 calls for.

// noRepeatsQuickUpdate runs the n-tuple pass always, and the corner-mark
// pass once corner marks have been seeded. Corner marks are only seeded
// for size-9 regions (spec.md §9's resolved Open Question): smaller
// regions such as killer cages get n-tuple reasoning but never corner
// marks or locked-candidates deductions.
func noRepeatsQuickUpdate(board *Board, base *BaseConstraint) (bool, error) {
	changed := false

	if len(base.Cells) == 9 && !base.CornerMarksInitialised {
		initialiseCornerMarks(board, base)
		base.CornerMarksInitialised = true
	}

	ch, err := detectNTuples(board, base)
	if err != nil {
		return changed, err
	}
	changed = changed || ch

	if base.CornerMarksInitialised {
		ch2, err := applyCornerMarkDeductions(board, base)
		if err != nil {
			return changed, err
		}
		changed = changed || ch2
	}

	return changed, nil
}

func initialiseCornerMarks(board *Board, base *BaseConstraint) {
	for d := 1; d <= 9; d++ {
		set := make(map[int]bool)
		for _, ci := range base.Cells {
			if board.cell(ci).possibles[d] {
				set[ci] = true
			}
		}
		base.CornerMarks[d] = set
	}
}

// detectNTuples implements spec.md §4.4's n-tuple rule: for each n from
// 1 up to the number of unfinalised cells in the region, for each
// n-subset of unfinalised cells whose combined possibles has size
// exactly n, remove that union from every other cell of the region.
// Naked singles are the n=1 case; for a size-9 region (where the
// "filled digits 1-9 exactly once" bijection holds) a naked n-subset is
// the exact dual of a hidden (9-n)-subset, so hidden singles/pairs fall
// out of the same pass rather than needing a second algorithm.
func detectNTuples(board *Board, base *BaseConstraint) (bool, error) {
	var unfinalised []int
	for _, ci := range base.Cells {
		if !board.cell(ci).finalised {
			unfinalised = append(unfinalised, ci)
		}
	}
	changed := false

	for n := 1; n <= len(unfinalised); n++ {
		for _, indices := range utils.GenerateCombinations(len(unfinalised), n) {
			combo := make([]int, n)
			for i, idx := range indices {
				combo[i] = unfinalised[idx]
			}
			key := tupleKey(combo)
			if base.TuplesNoted[key] {
				continue
			}
			union := make(map[int]bool)
			for _, ci := range combo {
				for v := range board.cell(ci).possibles {
					union[v] = true
				}
			}
			if len(union) != n {
				continue
			}
			base.TuplesNoted[key] = true

			inCombo := make(map[int]bool, len(combo))
			for _, ci := range combo {
				inCombo[ci] = true
			}
			toRemove := make([]int, 0, len(union))
			for v := range union {
				toRemove = append(toRemove, v)
			}
			for _, ci := range base.Cells {
				if inCombo[ci] || board.cell(ci).finalised {
					continue
				}
				before := board.cell(ci).CandidateCount()
				if err := board.removeFromCell(ci, toRemove); err != nil {
					return changed, err
				}
				if board.cell(ci).CandidateCount() != before {
					changed = true
				}
			}
		}
	}
	return changed, nil
}

// applyCornerMarkDeductions walks every digit's corner-mark set: a
// singleton set forces that cell to the digit; a pair adds the mutual
// forcing_values edges spec.md §4.4 describes; and any set fully
// contained within another uniqueness region's cells triggers the
// locked-candidates purge of that digit from the rest of that region.
func applyCornerMarkDeductions(board *Board, base *BaseConstraint) (bool, error) {
	changed := false
	for d := 1; d <= 9; d++ {
		set := base.CornerMarks[d]
		if len(set) == 0 {
			continue
		}

		if len(set) == 1 {
			var only int
			for c := range set {
				only = c
			}
			cell := board.cell(only)
			if !cell.finalised && !(len(cell.possibles) == 1 && cell.possibles[d]) {
				if err := cell.Intersect(map[int]bool{d: true}); err != nil {
					return changed, err
				}
				changed = true
			}
		} else if len(set) == 2 {
			cells := make([]int, 0, 2)
			for c := range set {
				cells = append(cells, c)
			}
			sort.Ints(cells)
			c1, c2 := cells[0], cells[1]
			for v1 := range board.cell(c1).possibles {
				if v1 != d {
					board.graphs.addForcingEdge(c1, v1, c2, d)
				}
			}
			for v2 := range board.cell(c2).possibles {
				if v2 != d {
					board.graphs.addForcingEdge(c2, v2, c1, d)
				}
			}
		}

		for _, other := range board.constraintsContainingAll(set, base.Index) {
			ob := other.Base()
			for _, ci := range ob.Cells {
				if set[ci] {
					continue
				}
				cell := board.cell(ci)
				if cell.finalised || !cell.possibles[d] {
					continue
				}
				if err := board.removeFromCell(ci, []int{d}); err != nil {
					return changed, err
				}
				changed = true
			}
		}
	}
	return changed, nil
}

// noRepeatsOnCandidatesChanged keeps CornerMarks in step as soon as any
// other constraint narrows a shared cell, rather than waiting for this
// region's own next turn on the queue.
func noRepeatsOnCandidatesChanged(board *Board, base *BaseConstraint, cellIndex int) error {
	if !base.CornerMarksInitialised {
		return nil
	}
	if !utils.ContainsInt(base.Cells, cellIndex) {
		return nil
	}
	cell := board.cell(cellIndex)
	for d := 1; d <= 9; d++ {
		set := base.CornerMarks[d]
		if set == nil {
			continue
		}
		if !cell.possibles[d] {
			delete(set, cellIndex)
		}
	}
	return nil
}
