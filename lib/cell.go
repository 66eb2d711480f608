package lib

import "github.com/eftil/variant-sudoku-solver/lib/utils"

// Cell is one of the 81 positions on the grid (spec.md §3). Cells are
// addressed by a stable arena index rather than by pointer — row*9+col,
// 0-based — so a board deep clone never has to rewrite a pointer graph:
// cloning a cell is a value copy, and every cross-reference held
// elsewhere (Constraint.Cells, graph node IDs, the queue) is already
// just an int that stays valid against the new arena (spec.md §9).
type Cell struct {
	index int
	row   int // 0-based
	col   int // 0-based
	box   int // 0-based, = 3*(row/3) + col/3

	possibles map[int]bool
	finalised bool
	value     int

	// constraints lists the indices, into the owning board's
	// constraint arena, of every constraint that references this cell.
	constraints []int

	board *Board
}

func newCell(board *Board, index int) *Cell {
	row, col := utils.IndexToRowCol(index)
	possibles := make(map[int]bool, 9)
	for v := 1; v <= 9; v++ {
		possibles[v] = true
	}
	return &Cell{
		index:     index,
		row:       row,
		col:       col,
		box:       utils.GetBoxNumber(row, col),
		possibles: possibles,
		board:     board,
	}
}

func (c *Cell) cloneInto(board *Board) *Cell {
	possibles := make(map[int]bool, len(c.possibles))
	for v := range c.possibles {
		possibles[v] = true
	}
	return &Cell{
		index:       c.index,
		row:         c.row,
		col:         c.col,
		box:         c.box,
		possibles:   possibles,
		finalised:   c.finalised,
		value:       c.value,
		constraints: append([]int(nil), c.constraints...),
		board:       board,
	}
}

// Index returns the cell's stable 0-80 arena index.
func (c *Cell) Index() int { return c.index }

// Row and Col are 0-based; spec.md's 1-based row/column are obtained by
// adding 1 at the presentation boundary (logging, fingerprinting).
func (c *Cell) Row() int { return c.row }
func (c *Cell) Col() int { return c.col }
func (c *Cell) Box() int { return c.box }

func (c *Cell) Finalised() bool { return c.finalised }

// Value returns 0 if the cell isn't finalised — callers must check
// Finalised() first to tell that apart from a real value.
func (c *Cell) Value() int { return c.value }

func (c *Cell) Possibles() map[int]bool { return c.possibles }

func (c *Cell) HasCandidate(v int) bool { return c.possibles[v] }

func (c *Cell) CandidateCount() int { return len(c.possibles) }

func (c *Cell) candidatesSorted() []int {
	return utils.GetCandidatesAsSlice(c.possibles)
}

// Remove drops the intersection of values with this cell's possibles
// (spec.md §4.1). All-or-nothing: either the full removal is applied
// and its consequences queued, or an error is returned before any
// state beyond this cell is touched.
func (c *Cell) Remove(values []int) error {
	return c.board.removeFromCell(c.index, values)
}

// Intersect keeps only candidates present in set, removing the rest.
func (c *Cell) Intersect(set map[int]bool) error {
	var toRemove []int
	for v := range c.possibles {
		if !set[v] {
			toRemove = append(toRemove, v)
		}
	}
	if len(toRemove) == 0 {
		return nil
	}
	return c.Remove(toRemove)
}

// Finalise requires |possibles| == 1 and commits that single candidate
// as the cell's value (spec.md §4.1).
func (c *Cell) Finalise() error {
	return c.board.finaliseCell(c.index)
}
