package lib

import "github.com/eftil/variant-sudoku-solver/lib/errs"

// attemptBifurcation implements spec.md §4.7's repeat-until-progress
// loop: keep selecting and trying bifurcation targets until one trial
// eliminates a candidate (real progress for the parent). Exhausting the
// attempted set raises NoBifurcationsLeft internally; that's caught here
// once to reset the attempted set and retry a full pass, and a second
// exhaustion escalates to NoSolutionFound, matching the errs taxonomy's
// description of NoBifurcationsLeft as a signal the controller recovers
// from rather than one that reaches the caller of Solve.
func (b *Board) attemptBifurcation() (bool, error) {
	triedReset := false
	for {
		target, err := b.selectBifurcationTarget()
		if err != nil {
			if _, ok := err.(*errs.NoBifurcationsLeft); !ok {
				return false, err
			}
			if triedReset {
				return false, errs.NewNoSolutionFound(
					"bifurcation targets exhausted twice with %d cells unfinalised", b.UnfinalisedCount())
			}
			b.attemptedBifurcations = make(map[[2]int]bool)
			triedReset = true
			continue
		}
		b.attemptedBifurcations[target] = true

		progressed, err := b.tryBifurcation(target[0], target[1])
		if err != nil {
			return false, err
		}
		if progressed {
			return true, nil
		}
		// A solved or indeterminate clone outcome is not progress by
		// itself; keep trying other targets.
	}
}

// selectBifurcationTarget picks the (cell, value) pair — among
// candidates not yet attempted at this level — maximising the size of
// its forward-reachable set in forcing_values (spec.md §4.7.1). Cells
// and values are scanned in index order so ties are broken
// deterministically, matching the determinism law (spec.md §8). Raises
// NoBifurcationsLeft if every candidate at this level has been tried.
func (b *Board) selectBifurcationTarget() ([2]int, error) {
	bestScore := -1
	var best [2]int
	found := false

	for cellIdx := 0; cellIdx < 81; cellIdx++ {
		if !b.unfinalised[cellIdx] {
			continue
		}
		cell := b.cell(cellIdx)
		for v := 1; v <= 9; v++ {
			if !cell.possibles[v] {
				continue
			}
			key := [2]int{cellIdx, v}
			if b.attemptedBifurcations[key] {
				continue
			}
			score := len(b.graphs.reachableInForcingGraph(valueNodeID(cellIdx, v)))
			if score > bestScore {
				bestScore = score
				best = key
				found = true
			}
		}
	}
	if !found {
		return best, errs.NewNoBifurcationsLeft(
			"every untried (cell, value) pair among %d unfinalised cells has been attempted", len(b.unfinalised))
	}
	return best, nil
}

// tryBifurcation is spec.md §4.7.2-3: deep-clone the board, seed the
// BFS-closure of (cellIndex, value) as GivenDigits in the clone, run the
// propagation loop recursively one bifurcation level deeper, and
// reconcile the outcome.
//
// A solved clone only records its fingerprint — per spec.md, "the
// parent regards the value as not yet excluded" — it does not commit
// anything to the parent directly. Forward progress at this level comes
// exclusively from a clone raising Contradiction, which eliminates the
// tried value from the parent cell; if that elimination leaves the cell
// a singleton, ordinary propagation finalises it on the next drainQueue
// pass without any special-cased "adopt the clone's grid" step.
func (b *Board) tryBifurcation(cellIndex, value int) (bool, error) {
	clone := b.Clone()

	closure := b.graphs.reachableInForcingGraph(valueNodeID(cellIndex, value))

	var seedErr error
	for id := range closure {
		ci, v := unpackValueNodeID(id)
		if seedErr = clone.AddConstraint(newGivenDigit(ci, v)); seedErr != nil {
			break
		}
	}

	var solveErr error
	if seedErr != nil {
		solveErr = seedErr
	} else {
		clone.bifurcationLevel = b.bifurcationLevel + 1
		solveErr = clone.Solve()
	}

	switch e := solveErr.(type) {
	case nil:
		fp := clone.String()
		b.solutionSnapshots[fp] = true
		if len(b.solutionSnapshots) >= 2 {
			first, second := "", ""
			for snap := range b.solutionSnapshots {
				if first == "" {
					first = snap
				} else if second == "" {
					second = snap
					break
				}
			}
			return false, errs.NewMultipleSolutionsFound(first, second)
		}
		return false, nil

	case *errs.Contradiction:
		if err := b.removeFromCell(cellIndex, []int{value}); err != nil {
			return false, err
		}
		return true, nil

	case *errs.NoSolutionFound:
		return false, nil

	case *errs.MultipleSolutionsFound:
		return false, e

	default:
		return false, solveErr
	}
}
