package lib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eftil/variant-sudoku-solver/lib/config"
	"github.com/eftil/variant-sudoku-solver/lib/errs"
	"github.com/eftil/variant-sudoku-solver/lib/logger"
	"github.com/eftil/variant-sudoku-solver/lib/observer"
	"github.com/eftil/variant-sudoku-solver/lib/utils"
)

// Board owns the whole arena: cells, constraints, the propagation
// queue, the forcing/contradiction graphs, and the bifurcation state
// (spec.md §3). It is the unit a deep clone duplicates.
type Board struct {
	cells       [81]*Cell
	constraints []Constraint

	queue  *constraintQueue
	graphs *valueGraphs

	unfinalised map[int]bool

	attemptedBifurcations map[[2]int]bool
	bifurcationLevel      int

	config config.SolverConfig

	solutionSnapshots map[string]bool

	// notifier is external-facing only (progress display, demo UIs).
	// Internal propagation runs entirely over the queue; it never reads
	// back from the notifier.
	notifier *observer.CellNotifier
}

// NewBoard constructs an empty 9x9 board with the built-in row, column
// and box uniqueness constraints pre-registered (spec.md §6).
func NewBoard() (*Board, error) {
	return NewBoardWithConfig(config.Load())
}

// NewBoardWithConfig is NewBoard with an explicit SolverConfig instead
// of one loaded from the environment. Board.Clone does not go through
// it; a clone copies the parent's config directly.
func NewBoardWithConfig(cfg config.SolverConfig) (*Board, error) {
	logger.Info("creating new board")

	b := &Board{
		queue:                 newConstraintQueue(),
		graphs:                newValueGraphs(),
		unfinalised:           make(map[int]bool, 81),
		attemptedBifurcations: make(map[[2]int]bool),
		config:                cfg,
		solutionSnapshots:     make(map[string]bool),
		notifier:              observer.NewCellNotifier(),
	}
	for i := 0; i < 81; i++ {
		b.cells[i] = newCell(b, i)
		b.unfinalised[i] = true
	}

	for row := 0; row < 9; row++ {
		cells := make([]int, 9)
		for col := 0; col < 9; col++ {
			cells[col] = utils.RowColToIndex(row, col)
		}
		if err := b.AddConstraint(NewRowConstraint(cells)); err != nil {
			return nil, err
		}
	}
	for col := 0; col < 9; col++ {
		cells := make([]int, 9)
		for row := 0; row < 9; row++ {
			cells[row] = utils.RowColToIndex(row, col)
		}
		if err := b.AddConstraint(NewColumnConstraint(cells)); err != nil {
			return nil, err
		}
	}
	for box := 0; box < 9; box++ {
		startRow, startCol := utils.GetBoxCoordinates(box)
		cells := make([]int, 0, 9)
		for r := startRow; r < startRow+3; r++ {
			for c := startCol; c < startCol+3; c++ {
				cells = append(cells, utils.RowColToIndex(r, c))
			}
		}
		if err := b.AddConstraint(NewBoxConstraint(cells)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) cell(index int) *Cell { return b.cells[index] }

// Cell returns the cell at 0-based (row, col).
func (b *Board) Cell(row, col int) *Cell { return b.cells[utils.RowColToIndex(row, col)] }

// CellAt returns the cell at the given 0-80 arena index.
func (b *Board) CellAt(index int) *Cell { return b.cells[index] }

func (b *Board) Constraints() []Constraint { return b.constraints }

func (b *Board) UnfinalisedCount() int { return len(b.unfinalised) }

// AddConstraint registers a constraint, wires its cells' back-references,
// extends seen_graph for uniqueness regions, and runs the constraint's
// Initialise before enqueueing it for its first Check.
func (b *Board) AddConstraint(c Constraint) error {
	idx := len(b.constraints)
	base := c.Base()
	base.Index = idx
	b.constraints = append(b.constraints, c)

	for _, ci := range base.Cells {
		b.cells[ci].constraints = append(b.cells[ci].constraints, idx)
	}
	if base.Uniqueness {
		for i := 0; i < len(base.Cells); i++ {
			for j := i + 1; j < len(base.Cells); j++ {
				b.graphs.addSeenEdge(base.Cells[i], base.Cells[j])
			}
		}
	}

	if err := c.Initialise(b); err != nil {
		return err
	}
	b.queue.pushConstraintBack(idx)
	return nil
}

// constraintsContainingAll returns every uniqueness region, other than
// the one at excludeIndex, whose cell set is a superset of cells. Used
// by the locked-candidates rule (spec.md §4.4) to find "another
// uniqueness region" a corner-mark set might be confined to.
func (b *Board) constraintsContainingAll(cells map[int]bool, excludeIndex int) []Constraint {
	var out []Constraint
	for i, c := range b.constraints {
		if i == excludeIndex || !c.Base().Uniqueness {
			continue
		}
		set := make(map[int]bool, len(c.Base().Cells))
		for _, ci := range c.Base().Cells {
			set[ci] = true
		}
		all := true
		for cellIdx := range cells {
			if !set[cellIdx] {
				all = false
				break
			}
		}
		if all {
			out = append(out, c)
		}
	}
	return out
}

// GivenDigit seeds a clue: intersects the cell's possibles to {d} and
// finalises it (spec.md §6). A conflict with an earlier given surfaces
// as Contradiction immediately, during the given constraint's own
// Initialise (called from AddConstraint).
func (b *Board) GivenDigit(row, col, d int) error {
	return b.AddConstraint(newGivenDigit(utils.RowColToIndex(row, col), d))
}

// ValidateGivensGrid checks a 9x9 grid of clues (0 = blank) for row and
// column duplicates before any cell is seeded, so a malformed puzzle is
// rejected with a clear row/column reference instead of surfacing as a
// Contradiction on whichever given happens to be added last.
func ValidateGivensGrid(grid [9][9]int) error {
	for row := 0; row < 9; row++ {
		if !utils.HasUniqueNonZeros(grid[row][:]) {
			return errs.NewContradiction("row %d has duplicate given digits", row+1)
		}
	}
	for col := 0; col < 9; col++ {
		column := make([]int, 9)
		for row := 0; row < 9; row++ {
			column[row] = grid[row][col]
		}
		if !utils.HasUniqueNonZeros(column) {
			return errs.NewContradiction("column %d has duplicate given digits", col+1)
		}
	}
	return nil
}

// removeFromCell is the implementation behind Cell.Remove (spec.md
// §4.1): drop the intersection of values with the cell's possibles.
// A removal that would empty the cell raises Contradiction before
// anything is changed. Otherwise it drops the forcing_values nodes for
// each value actually removed, pushes Finalise to the queue front on a
// singleton result, and in every case pushes each referencing
// constraint to the back while notifying any CornerMarkObserver among
// them.
func (b *Board) removeFromCell(cellIndex int, values []int) error {
	cell := b.cells[cellIndex]
	var removed []int
	for _, v := range values {
		if cell.possibles[v] && !utils.ContainsInt(removed, v) {
			removed = append(removed, v)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if len(removed) == len(cell.possibles) {
		return errs.NewContradiction("r%dc%d has no remaining candidates", cell.row+1, cell.col+1)
	}
	for _, v := range removed {
		delete(cell.possibles, v)
		b.graphs.dropValueNode(cellIndex, v)
		logger.CandidateElimination(cell.row, cell.col, v, "constraint narrowing")
		b.notifyCandidateEliminated(cell.row, cell.col, v)
	}
	if len(cell.possibles) == 1 {
		b.queue.pushFinaliseFront(cellIndex)
	}
	for _, ci := range cell.constraints {
		b.queue.pushConstraintBack(ci)
		if obs, ok := b.constraints[ci].(CornerMarkObserver); ok {
			if err := obs.OnCandidatesChanged(b, cellIndex); err != nil {
				return err
			}
		}
	}
	return nil
}

// finaliseCell is the implementation behind Cell.Finalise (spec.md
// §4.1). A second finalise of an already-finalised cell is a no-op,
// matching the idempotence law (spec.md §8): once solve() has drained
// the queue, running it again must not re-finalise anything.
func (b *Board) finaliseCell(cellIndex int) error {
	cell := b.cells[cellIndex]
	if cell.finalised {
		return nil
	}
	if len(cell.possibles) != 1 {
		return errs.NewContradiction("finalise requires a singleton candidate set at r%dc%d, has %d", cell.row+1, cell.col+1, len(cell.possibles))
	}
	var value int
	for v := range cell.possibles {
		value = v
	}
	cell.value = value
	cell.finalised = true
	delete(b.unfinalised, cellIndex)
	b.graphs.dropAllValueNodesForCell(cellIndex, cell.possibles)
	logger.CellSolved(cell.row, cell.col, value, "finalised")
	b.notifyCellSolved(cell.row, cell.col, value)

	for _, ci := range cell.constraints {
		c := b.constraints[ci]
		if !c.Base().Uniqueness {
			continue
		}
		for _, peer := range c.Base().Cells {
			if peer == cellIndex {
				continue
			}
			if err := b.removeFromCell(peer, []int{value}); err != nil {
				return err
			}
		}
	}
	return nil
}

// finalConstraintCheck is spec.md §4.5's final_constraint_check(): every
// constraint revalidates its (now fully finalised) cells.
func (b *Board) finalConstraintCheck() error {
	for _, c := range b.constraints {
		base := c.Base()
		assignment := make(map[int]int, len(base.Cells))
		for _, ci := range base.Cells {
			cell := b.cells[ci]
			if cell.finalised {
				assignment[ci] = cell.value
			}
		}
		if c.PartialAssignmentInvalid(b, assignment) {
			return errs.NewContradiction("constraint %q failed final validation", base.Name)
		}
	}
	return nil
}

// ValidateAll exposes finalConstraintCheck, matching the teacher's
// public validation entry point.
func (b *Board) ValidateAll() error { return b.finalConstraintCheck() }

// Clone deep-clones the board: a one-pass arena duplication translating
// every pointer through the cell array and the graphs, never sharing a
// cell between parent and child (spec.md §5, §9).
func (b *Board) Clone() *Board {
	nb := &Board{
		queue:                 b.queue.clone(),
		graphs:                b.graphs.clone(),
		unfinalised:           make(map[int]bool, len(b.unfinalised)),
		attemptedBifurcations: make(map[[2]int]bool, len(b.attemptedBifurcations)),
		bifurcationLevel:      b.bifurcationLevel,
		config:                b.config,
		solutionSnapshots:     make(map[string]bool, len(b.solutionSnapshots)),
		notifier:              observer.NewCellNotifier(),
	}
	for i := range b.cells {
		nb.cells[i] = b.cells[i].cloneInto(nb)
	}
	for k := range b.unfinalised {
		nb.unfinalised[k] = true
	}
	for k := range b.attemptedBifurcations {
		nb.attemptedBifurcations[k] = true
	}
	for k := range b.solutionSnapshots {
		nb.solutionSnapshots[k] = true
	}
	nb.constraints = make([]Constraint, len(b.constraints))
	for i, c := range b.constraints {
		nb.constraints[i] = c.Clone()
	}
	return nb
}

// String renders the canonical multi-line fingerprint (spec.md §6):
// each cell as its sorted candidate digits padded to the widest
// candidate-set width, box rows/columns separated by rules. Used as the
// solution equality key for multiplicity detection.
func (b *Board) String() string {
	cellStrs := make([]string, 81)
	widest := 1
	for i, c := range b.cells {
		var sb strings.Builder
		for _, d := range c.candidatesSorted() {
			sb.WriteString(strconv.Itoa(d))
		}
		cellStrs[i] = sb.String()
		if len(cellStrs[i]) > widest {
			widest = len(cellStrs[i])
		}
	}

	var out strings.Builder
	rule := strings.Repeat("-", (widest+1)*9+2) + "\n"
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			out.WriteString(rule)
		}
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				out.WriteString("| ")
			}
			out.WriteString(fmt.Sprintf("%-*s ", widest, cellStrs[row*9+col]))
		}
		out.WriteString("\n")
	}
	return out.String()
}

func (b *Board) AddObserver(o observer.CellObserver) {
	b.notifier.AddObserver(o)
}

func (b *Board) notifyCellSolved(row, col, value int) {
	b.notifier.NotifyCellSolved(row, col, value)
}

func (b *Board) notifyCandidateEliminated(row, col, candidate int) {
	b.notifier.NotifyCandidateEliminated(row, col, candidate)
}
