package lib_test

import (
	"testing"

	"github.com/eftil/variant-sudoku-solver/lib"
	"github.com/stretchr/testify/require"
)

// A complete, valid classic grid with only (8,8) left blank (true value
// 9). Giving all 80 other cells forces (8,8) to 9 by row/column/box
// elimination alone, with no bifurcation needed.
var completeGridMinusLastCell = [9][9]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 0},
}

func TestSolveFinalisesLastCellByPropagationAlone(t *testing.T) {
	board, err := lib.NewBoard()
	require.NoError(t, err)

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if d := completeGridMinusLastCell[row][col]; d != 0 {
				require.NoError(t, board.GivenDigit(row, col, d))
			}
		}
	}

	require.NoError(t, board.Solve())
	require.Equal(t, 0, board.UnfinalisedCount())

	last := board.Cell(8, 8)
	require.True(t, last.Finalised())
	require.Equal(t, 9, last.Value())

	require.NoError(t, board.ValidateAll())
}
