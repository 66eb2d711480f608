package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDrainQueueForcesHiddenSingleViaCornerMarks seeds four givens of the
// same digit, each in its own row, column and box, positioned so that row
// and column elimination alone strip candidate 7 from every box-0 cell
// except r2c2 (index 10) — spec.md's "hidden single via corner marks"
// scenario. No naked single ever appears (r2c2 keeps several other
// candidates too). The same givens also leave 7 with r2c2 alone in row 2
// and column 2, so whichever of those three regions the queue checks
// first (row 2) makes the deduction in its NoRepeats pass; here its
// n-tuple pass, seeing the other eight cells share the eight digits
// other than 7, gets there before its corner-mark pass does.
func TestDrainQueueForcesHiddenSingleViaCornerMarks(t *testing.T) {
	board, err := NewBoard()
	require.NoError(t, err)

	require.NoError(t, board.GivenDigit(0, 5, 7)) // row 0, col 5, box 1
	require.NoError(t, board.GivenDigit(2, 6, 7)) // row 2, col 6, box 2
	require.NoError(t, board.GivenDigit(6, 0, 7)) // row 6, col 0, box 6
	require.NoError(t, board.GivenDigit(3, 2, 7)) // row 3, col 2, box 3

	require.NoError(t, board.drainQueue())

	cell := board.cell(10) // r2c2
	require.True(t, cell.finalised, "the only remaining cell for 7 in its row, column and box must be forced")
	require.Equal(t, 7, cell.value)
}
