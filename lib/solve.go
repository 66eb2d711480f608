package lib

import "github.com/eftil/variant-sudoku-solver/lib/errs"

// Solve drives the board to completion (spec.md §4.5): drain the queue
// to a fixed point, run the forcing/contradiction graph pruning pass,
// and escalate to bifurcation when propagation alone cannot make
// progress. Returns normally once every cell is finalised and the final
// per-constraint revalidation passes; otherwise returns one of the
// errs taxonomy members.
func (b *Board) Solve() error {
	for b.UnfinalisedCount() > 0 {
		if err := b.drainQueue(); err != nil {
			return err
		}

		changed, err := b.quickBifurcationCheck()
		if err != nil {
			return err
		}
		if changed {
			continue
		}

		if b.UnfinalisedCount() == 0 {
			break
		}

		if b.bifurcationLevel < b.config.MaxBifurcationLevel {
			progressed, err := b.attemptBifurcation()
			if err != nil {
				return err
			}
			if progressed {
				continue
			}
		}

		if b.queue.empty() {
			return errs.NewNoSolutionFound("propagation and bifurcation exhausted with %d cells unfinalised", b.UnfinalisedCount())
		}
	}
	return b.finalConstraintCheck()
}

// drainQueue runs the queue to a fixed point: Finalise entries commit a
// singleton cell, ordinary entries run the constraint's composed Check
// (QuickUpdate, if any, then the default enumeration pruner). Either
// kind of step can enqueue more work; the loop ends only when the
// queue is empty.
func (b *Board) drainQueue() error {
	for {
		item, ok := b.queue.popFront()
		if !ok {
			return nil
		}
		if item.finalise {
			if len(b.cell(item.cellIndex).possibles) != 1 {
				continue
			}
			if err := b.finaliseCell(item.cellIndex); err != nil {
				return err
			}
			continue
		}
		if _, err := checkConstraint(b, b.constraints[item.constraint]); err != nil {
			return err
		}
	}
}

// quickBifurcationCheck implements spec.md §4.6: for every live
// (cell, value) node in forcing_values, compute its forward-reachable
// set; if that set induces an edge in contradiction_graph, assigning
// the cell that value would necessarily produce two mutually exclusive
// holdings, so the value is eliminated outright.
func (b *Board) quickBifurcationCheck() (bool, error) {
	changed := false

	nodeIt := b.graphs.forcingValues.Nodes()
	ids := make([]int64, 0, nodeIt.Len())
	for nodeIt.Next() {
		ids = append(ids, nodeIt.Node().ID())
	}

	for _, id := range ids {
		if b.graphs.forcingValues.Node(id) == nil {
			continue // removed by an earlier elimination this pass
		}
		reachable := b.graphs.reachableInForcingGraph(id)
		if !b.graphs.hasInducedContradictionEdge(reachable) {
			continue
		}
		cellIdx, v := unpackValueNodeID(id)
		cell := b.cell(cellIdx)
		if cell.finalised || !cell.possibles[v] {
			continue
		}
		if err := b.removeFromCell(cellIdx, []int{v}); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}
