package lib_test

import (
	"testing"

	"github.com/eftil/variant-sudoku-solver/lib"
	"github.com/eftil/variant-sudoku-solver/lib/errs"
	"github.com/stretchr/testify/require"
)

func TestCellStartsWithAllNineCandidates(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(4, 4)
	require.Equal(t, 9, cell.CandidateCount())
	for v := 1; v <= 9; v++ {
		require.True(t, cell.HasCandidate(v))
	}
	require.False(t, cell.Finalised())
}

func TestCellRemoveNarrowsCandidates(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	require.NoError(t, cell.Remove([]int{1, 2, 3}))
	require.Equal(t, 6, cell.CandidateCount())
	require.False(t, cell.HasCandidate(1))
	require.True(t, cell.HasCandidate(4))
}

func TestCellRemoveToSingletonDoesNotAutoFinalise(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	require.NoError(t, cell.Remove([]int{1, 2, 3, 4, 5, 6, 7, 8}))
	require.Equal(t, 1, cell.CandidateCount())
	require.True(t, cell.HasCandidate(9))
	require.False(t, cell.Finalised(), "narrowing to a singleton only queues a Finalise request, it doesn't finalise synchronously")
}

func TestCellRemoveAllRaisesContradiction(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	err = cell.Remove([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.Error(t, err)
	require.IsType(t, &errs.Contradiction{}, err)
}

func TestCellIntersectKeepsOnlyGivenSet(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	require.NoError(t, cell.Intersect(map[int]bool{2: true, 4: true, 6: true}))
	require.Equal(t, 3, cell.CandidateCount())
	require.True(t, cell.HasCandidate(2))
	require.True(t, cell.HasCandidate(4))
	require.True(t, cell.HasCandidate(6))
	require.False(t, cell.HasCandidate(1))
}

func TestCellFinaliseRequiresSingleton(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	err = cell.Finalise()
	require.Error(t, err)
	require.IsType(t, &errs.Contradiction{}, err)
}

func TestCellFinaliseCommitsValueAndIsIdempotent(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	require.NoError(t, cell.Intersect(map[int]bool{7: true}))
	require.NoError(t, cell.Finalise())
	require.True(t, cell.Finalised())
	require.Equal(t, 7, cell.Value())

	// A second Finalise on an already-finalised cell is a no-op.
	require.NoError(t, cell.Finalise())
	require.Equal(t, 7, cell.Value())
}

func TestCellFinalisingRemovesValueFromRowColumnBoxPeers(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	cell := board.Cell(0, 0)
	require.NoError(t, cell.Intersect(map[int]bool{7: true}))
	require.NoError(t, cell.Finalise())

	rowPeer := board.Cell(0, 5)
	colPeer := board.Cell(5, 0)
	boxPeer := board.Cell(1, 1)
	require.False(t, rowPeer.HasCandidate(7))
	require.False(t, colPeer.HasCandidate(7))
	require.False(t, boxPeer.HasCandidate(7))

	unrelated := board.Cell(4, 6)
	require.True(t, unrelated.HasCandidate(7))
}
