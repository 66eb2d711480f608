package lib_test

import (
	"testing"

	"github.com/eftil/variant-sudoku-solver/lib"
	"github.com/eftil/variant-sudoku-solver/lib/errs"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRegistersRowColumnBoxConstraints(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)
	require.Len(t, board.Constraints(), 27) // 9 rows + 9 columns + 9 boxes
	require.Equal(t, 81, board.UnfinalisedCount())
}

func TestGivenDigitFinalisesCellAndNarrowsPeers(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	require.NoError(t, board.GivenDigit(0, 0, 5))

	cell := board.Cell(0, 0)
	require.True(t, cell.Finalised())
	require.Equal(t, 5, cell.Value())
	require.Equal(t, 80, board.UnfinalisedCount())

	require.False(t, board.Cell(0, 3).HasCandidate(5))
	require.False(t, board.Cell(3, 0).HasCandidate(5))
	require.False(t, board.Cell(1, 1).HasCandidate(5))
}

func TestGivenDigitConflictingWithEarlierGivenRaisesContradictionImmediately(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	require.NoError(t, board.GivenDigit(0, 0, 5))

	// Same row as (0,0): a second 5 can never coexist with the first.
	err = board.GivenDigit(0, 1, 5)
	require.Error(t, err)
	require.IsType(t, &errs.Contradiction{}, err)
}

func TestGivenDigitRepeatingSameValueAtSameCellIsFine(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	require.NoError(t, board.GivenDigit(0, 0, 5))
	require.NoError(t, board.GivenDigit(0, 0, 5))
	cell := board.Cell(0, 0)
	require.True(t, cell.Finalised())
	require.Equal(t, 5, cell.Value())
}

func TestCloneIsIndependentOfParent(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)
	require.NoError(t, board.GivenDigit(0, 0, 5))

	clone := board.Clone()
	require.NoError(t, clone.GivenDigit(1, 1, 3))

	// The parent never saw the clone's given.
	require.False(t, board.Cell(1, 1).Finalised())
	require.Equal(t, 80, board.UnfinalisedCount())

	// The clone reflects both givens.
	require.True(t, clone.Cell(0, 0).Finalised())
	require.True(t, clone.Cell(1, 1).Finalised())
	require.Equal(t, 79, clone.UnfinalisedCount())
}

func TestStringFingerprintReflectsFinalisedCells(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)
	require.NoError(t, board.GivenDigit(0, 0, 5))

	fp := board.String()
	require.Contains(t, fp, "5")

	other, err := lib.NewBoard()
	require.NoError(t, err)
	require.Equal(t, other.String(), other.Clone().String(), "cloning an unmodified board must not change its fingerprint")
}

func TestValidateAllPassesOnFreshBoard(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)
	require.NoError(t, board.ValidateAll())
}

func TestValidateGivensGridAcceptsWellFormedPuzzle(t *testing.T) {
	grid := [9][9]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	require.NoError(t, lib.ValidateGivensGrid(grid))
}

func TestValidateGivensGridRejectsDuplicateInRow(t *testing.T) {
	var grid [9][9]int
	grid[0][0] = 5
	grid[0][4] = 5 // second 5 in row 0

	err := lib.ValidateGivensGrid(grid)
	require.Error(t, err)
	require.IsType(t, &errs.Contradiction{}, err)
}

func TestValidateGivensGridRejectsDuplicateInColumn(t *testing.T) {
	var grid [9][9]int
	grid[0][0] = 7
	grid[8][0] = 7 // second 7 in column 0

	err := lib.ValidateGivensGrid(grid)
	require.Error(t, err)
	require.IsType(t, &errs.Contradiction{}, err)
}
