package observer

import "fmt"

// ProgressObserver tracks solve progress for display purposes. Finalising
// cells and eliminating candidates happens entirely inside the board's
// own propagation queue now; this observer only watches and counts,
// it never feeds decisions back into the solve.
type ProgressObserver struct {
	enabled        bool
	solvedCount    int
	eliminatedCount int
}

// NewProgressObserver creates a new progress observer.
func NewProgressObserver() *ProgressObserver {
	return &ProgressObserver{enabled: true}
}

// OnCellSolved is called when a cell's value is finalised.
func (po *ProgressObserver) OnCellSolved(row, col, value int) {
	if !po.enabled {
		return
	}
	po.solvedCount++
	fmt.Printf("✓ r%dc%d finalised with %d (total solved: %d)\n", row+1, col+1, value, po.solvedCount)
}

// OnCandidateEliminated is called when a candidate is removed from a
// cell's remaining possibles.
func (po *ProgressObserver) OnCandidateEliminated(row, col, candidate int) {
	if !po.enabled {
		return
	}
	po.eliminatedCount++
}

// SolvedCount returns the total number of cells this observer has seen
// finalised.
func (po *ProgressObserver) SolvedCount() int { return po.solvedCount }

// EliminatedCount returns the total number of candidate eliminations
// this observer has seen.
func (po *ProgressObserver) EliminatedCount() int { return po.eliminatedCount }

// Enable turns the observer's printing and counting on.
func (po *ProgressObserver) Enable() { po.enabled = true }

// Disable turns the observer's printing and counting off; events seen
// while disabled are not counted.
func (po *ProgressObserver) Disable() { po.enabled = false }

// IsEnabled returns whether the observer is enabled.
func (po *ProgressObserver) IsEnabled() bool { return po.enabled }
