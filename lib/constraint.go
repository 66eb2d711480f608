package lib

import (
	"fmt"
	"sort"

	"github.com/eftil/variant-sudoku-solver/lib/errs"
)

// Constraint is the abstract contract every constraint kind realizes
// (spec.md §4.2). Individual geometries — cages, arrows, thermometers,
// whisper lines — are all ordinary implementations of this interface;
// the interface itself, and the default machinery built on top of it in
// this file, is the part of the engine this module owns.
type Constraint interface {
	// Base returns the shared per-constraint state: the cells it
	// addresses, its name, and (for uniqueness regions) corner marks
	// and noted tuples.
	Base() *BaseConstraint

	// PartialAssignmentInvalid reports whether the given partial
	// assignment (a subset of this constraint's cells mapped to
	// values) can never be extended to a satisfying total assignment.
	PartialAssignmentInvalid(board *Board, assignment map[int]int) bool

	// Initialise runs once after the constraint is attached to the
	// board: for every cell and every candidate still in its
	// possibles, drop the candidate if the singleton assignment
	// {cell: candidate} is already invalid.
	Initialise(board *Board) error

	// Clone returns a deep copy of the constraint suitable for
	// attaching to a cloned board. Cells are addressed by index, so a
	// shallow copy of BaseConstraint.Cells is safe to share; mutable
	// per-constraint state (CornerMarks, TuplesNoted) must be copied.
	Clone() Constraint
}

// QuickUpdater is an optional constraint-specific narrowing pass
// (spec.md §4.2.3), e.g. propagating monotonicity bounds along a
// thermometer. Constraints that have nothing cheaper than the default
// enumeration pruner simply don't implement this interface.
type QuickUpdater interface {
	QuickUpdate(board *Board) (bool, error)
}

// CornerMarkObserver lets a constraint react when a cell it references
// has its candidate set narrowed by some other constraint, so it can
// keep its own CornerMarks in step without waiting for its own turn on
// the queue. Only NoRepeats-based regions implement this.
type CornerMarkObserver interface {
	OnCandidatesChanged(board *Board, cellIndex int) error
}

// BaseConstraint is the shared state every constraint embeds, mirroring
// the teacher's lib.BaseConstraint but generalized to the arena-index
// model: cells are plain indices into Board.cells rather than pointers.
type BaseConstraint struct {
	// Index is this constraint's position in Board.constraints — its
	// stable identity, used as the arena key everywhere a constraint
	// is referenced (queue entries, Cell.constraints,
	// constraintsContainingAll lookups).
	Index int

	Cells []int
	Name  string

	// Uniqueness marks this as a NoRepeats-based region: the board's
	// seen_graph gets an edge between every pair of this constraint's
	// cells, and n-tuple/corner-mark/locked-candidate reasoning apply.
	Uniqueness bool

	// CornerMarks[d] is the set of cell indices in this region where
	// digit d is still a candidate. Only meaningful when Uniqueness is
	// true and len(Cells) == 9 (spec.md §9's size-9 gating).
	CornerMarks map[int]map[int]bool

	// TuplesNoted records (as a canonical key: the sorted indices as
	// fmt prints a slice, e.g. "[3 4 12]") the
	// cell-index subsets whose n-tuple deduction has already been
	// applied, so the region doesn't repeat the same elimination pass.
	TuplesNoted map[string]bool

	CornerMarksInitialised bool
}

func newBaseConstraint(name string, cells []int, uniqueness bool) BaseConstraint {
	return BaseConstraint{
		Cells:       append([]int(nil), cells...),
		Name:        name,
		Uniqueness:  uniqueness,
		CornerMarks: make(map[int]map[int]bool),
		TuplesNoted: make(map[string]bool),
	}
}

func (b *BaseConstraint) clone() BaseConstraint {
	out := BaseConstraint{
		Index:                  b.Index,
		Cells:                  append([]int(nil), b.Cells...),
		Name:                   b.Name,
		Uniqueness:             b.Uniqueness,
		CornerMarks:            make(map[int]map[int]bool, len(b.CornerMarks)),
		TuplesNoted:            make(map[string]bool, len(b.TuplesNoted)),
		CornerMarksInitialised: b.CornerMarksInitialised,
	}
	for d, set := range b.CornerMarks {
		cp := make(map[int]bool, len(set))
		for c := range set {
			cp[c] = true
		}
		out.CornerMarks[d] = cp
	}
	for k := range b.TuplesNoted {
		out.TuplesNoted[k] = true
	}
	return out
}

func tupleKey(cells []int) string {
	sorted := append([]int(nil), cells...)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

// DefaultInitialise implements the shared half of spec.md §4.2.2: for
// every cell of the constraint and every candidate still in its
// possibles, drop the candidate if the singleton assignment is
// self-invalid. Concrete constraints call this from their own
// Initialise and then layer anything extra (NoRepeats adds corner-mark
// seeding) on top.
func DefaultInitialise(board *Board, c Constraint) error {
	base := c.Base()
	for _, ci := range base.Cells {
		cell := board.cell(ci)
		var toRemove []int
		for v := range cell.possibles {
			if c.PartialAssignmentInvalid(board, map[int]int{ci: v}) {
				toRemove = append(toRemove, v)
			}
		}
		if len(toRemove) > 0 {
			if err := board.removeFromCell(ci, toRemove); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultInvalid is the background rule every constraint's
// PartialAssignmentInvalid should fold in: two assigned cells linked in
// seen_graph must differ, and an assigned value must not equal that of
// a finalised seen_graph neighbour. Corner marks are not consulted.
// Concrete constraints call this and OR in their own geometry-specific
// rejection.
func DefaultInvalid(board *Board, assignment map[int]int) bool {
	seen := make(map[int]int, len(assignment))
	for cellIdx, v := range assignment {
		if other, ok := seen[v]; ok {
			if board.graphs.seen.HasEdgeBetween(int64(cellIdx), int64(other)) {
				return true
			}
		}
		seen[v] = cellIdx
		for _, neighbour := range board.graphs.seenNeighbours(cellIdx) {
			nc := board.cells[neighbour]
			if nc.finalised && nc.value == v {
				return true
			}
		}
	}
	return false
}

// checkConstraint is spec.md §4.2.4's check(): run QuickUpdate if the
// constraint implements it, then the default enumeration pruner
// (§4.3). Returns whether anything changed. This is invoked by the
// propagation loop (lib/solve.go) rather than being a Constraint method,
// since it is the same composed sequence for every constraint kind.
func checkConstraint(board *Board, c Constraint) (bool, error) {
	changed := false
	if qu, ok := c.(QuickUpdater); ok {
		ch, err := qu.QuickUpdate(board)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	ch, err := defaultEnumerationPruner(board, c)
	if err != nil {
		return changed, err
	}
	changed = changed || ch
	return changed, nil
}

// defaultEnumerationPruner implements spec.md §4.3. For constraints
// whose domain product is within the configured limit, it enumerates
// every total assignment consistent with current possibles and not
// rejected by PartialAssignmentInvalid, then:
//   - intersects each cell's possibles with the projection of surviving
//     assignments onto that cell;
//   - builds the bipartite per-pair co-occurrence graph and feeds
//     degree-1 nodes into forcing_values, complements into
//     contradiction_graph.
func defaultEnumerationPruner(board *Board, c Constraint) (bool, error) {
	base := c.Base()
	domains := make([][]int, len(base.Cells))
	product := 1
	for i, ci := range base.Cells {
		cell := board.cell(ci)
		for v := range cell.possibles {
			domains[i] = append(domains[i], v)
		}
		sort.Ints(domains[i])
		product *= len(domains[i])
		if product > board.config.AllPossibleAssignmentsLimit {
			return false, nil
		}
	}

	assignments := enumerateAssignments(board, c, base.Cells, domains)
	if len(assignments) == 0 {
		return false, errs.NewContradiction("constraint %q has no surviving assignment", base.Name)
	}

	changed := false

	// Per-cell projection.
	projected := make([]map[int]bool, len(base.Cells))
	for i := range base.Cells {
		projected[i] = make(map[int]bool)
	}
	for _, a := range assignments {
		for i, ci := range base.Cells {
			projected[i][a[ci]] = true
		}
	}
	for i, ci := range base.Cells {
		cell := board.cell(ci)
		var toRemove []int
		for v := range cell.possibles {
			if !projected[i][v] {
				toRemove = append(toRemove, v)
			}
		}
		if len(toRemove) > 0 {
			if err := board.removeFromCell(ci, toRemove); err != nil {
				return changed, err
			}
			changed = true
		}
	}

	// Pairwise co-occurrence → forcing/contradiction graphs.
	for i := 0; i < len(base.Cells); i++ {
		for j := i + 1; j < len(base.Cells); j++ {
			c1, c2 := base.Cells[i], base.Cells[j]
			coOccurs := make(map[[2]int]bool)
			for _, a := range assignments {
				coOccurs[[2]int{a[c1], a[c2]}] = true
			}
			degreeCount1 := make(map[int]int)
			last1 := make(map[int][2]int)
			degreeCount2 := make(map[int]int)
			last2 := make(map[int][2]int)
			for pair := range coOccurs {
				degreeCount1[pair[0]]++
				last1[pair[0]] = pair
				degreeCount2[pair[1]]++
				last2[pair[1]] = pair
			}
			for v1, pair := range last1 {
				if degreeCount1[v1] == 1 {
					board.graphs.addForcingEdge(c1, v1, c2, pair[1])
				}
			}
			for v2, pair := range last2 {
				if degreeCount2[v2] == 1 {
					board.graphs.addForcingEdge(c2, v2, c1, pair[0])
				}
			}
			for v1 := range projected[i] {
				for v2 := range projected[j] {
					if !coOccurs[[2]int{v1, v2}] {
						board.graphs.addContradictionEdge(c1, v1, c2, v2)
					}
				}
			}
		}
	}

	return changed, nil
}

// enumerateAssignments is the backtracking scan spec.md §4.3 asks for:
// recurse on the least-ambiguous (fewest remaining candidates)
// unassigned cell first, pruning via PartialAssignmentInvalid as soon
// as a partial assignment is built rather than generating the full
// cross-product first.
func enumerateAssignments(board *Board, c Constraint, cells []int, domains [][]int) []map[int]int {
	var results []map[int]int
	assignment := make(map[int]int, len(cells))

	var recurse func(remaining []int)
	recurse = func(remaining []int) {
		if len(remaining) == 0 {
			snapshot := make(map[int]int, len(assignment))
			for k, v := range assignment {
				snapshot[k] = v
			}
			results = append(results, snapshot)
			return
		}
		bestIdx := 0
		bestLen := -1
		for i, ci := range remaining {
			domainIdx := indexOfCell(cells, ci)
			n := len(domains[domainIdx])
			if bestLen == -1 || n < bestLen {
				bestLen = n
				bestIdx = i
			}
		}
		chosen := remaining[bestIdx]
		rest := make([]int, 0, len(remaining)-1)
		rest = append(rest, remaining[:bestIdx]...)
		rest = append(rest, remaining[bestIdx+1:]...)

		domainIdx := indexOfCell(cells, chosen)
		for _, v := range domains[domainIdx] {
			assignment[chosen] = v
			if !c.PartialAssignmentInvalid(board, assignment) {
				recurse(rest)
			}
			delete(assignment, chosen)
		}
	}
	recurse(append([]int(nil), cells...))
	return results
}

func indexOfCell(cells []int, target int) int {
	for i, c := range cells {
		if c == target {
			return i
		}
	}
	return -1
}
