// Package observer provides external-facing notification of solve
// progress. It is decoupled from internal propagation: the board's
// queue, graphs and constraint checks never depend on an observer being
// present, they only fire a notification after the fact (progress
// displays, demo CLIs, auto-solve logging).
package observer

// CellObserver is notified of board-level events as a puzzle solves.
type CellObserver interface {
	// OnCellSolved is called when a cell's value is finalised.
	OnCellSolved(row, col, value int)

	// OnCandidateEliminated is called when a candidate is removed from a
	// cell's remaining possibles.
	OnCandidateEliminated(row, col, candidate int)
}

// CellNotifier fans a single event out to every registered observer.
type CellNotifier struct {
	observers []CellObserver
}

// NewCellNotifier creates a new cell notifier.
func NewCellNotifier() *CellNotifier {
	return &CellNotifier{
		observers: make([]CellObserver, 0),
	}
}

// AddObserver adds an observer to the notifier.
func (cn *CellNotifier) AddObserver(observer CellObserver) {
	if observer == nil {
		return
	}
	cn.observers = append(cn.observers, observer)
}

// RemoveObserver removes an observer from the notifier.
func (cn *CellNotifier) RemoveObserver(observer CellObserver) {
	if observer == nil {
		return
	}
	for i, obs := range cn.observers {
		if obs == observer {
			cn.observers = append(cn.observers[:i], cn.observers[i+1:]...)
			return
		}
	}
}

// NotifyCellSolved notifies all observers that a cell has been solved.
func (cn *CellNotifier) NotifyCellSolved(row, col, value int) {
	for _, o := range cn.observers {
		o.OnCellSolved(row, col, value)
	}
}

// NotifyCandidateEliminated notifies all observers that a candidate was
// eliminated from a cell.
func (cn *CellNotifier) NotifyCandidateEliminated(row, col, candidate int) {
	for _, o := range cn.observers {
		o.OnCandidateEliminated(row, col, candidate)
	}
}

// HasObservers returns true if there are any observers registered.
func (cn *CellNotifier) HasObservers() bool {
	return len(cn.observers) > 0
}

// ClearObservers removes all observers.
func (cn *CellNotifier) ClearObservers() {
	cn.observers = make([]CellObserver, 0)
}
