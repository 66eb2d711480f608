package lib

import (
	"fmt"
	"sort"
)

// KillerCageConstraint is a uniqueness region whose cells must also sum
// to a fixed target, grounded in the teacher's
// lib/constraints/killer_cage_constraint.go (sum + uniqueness
// validation, sum-based candidate pruning).
type KillerCageConstraint struct {
	BaseConstraint
	TargetSum int
}

func NewKillerCageConstraint(cells []int, targetSum int) *KillerCageConstraint {
	return &KillerCageConstraint{
		BaseConstraint: newBaseConstraint(fmt.Sprintf("Killer cage (sum %d)", targetSum), cells, true),
		TargetSum:      targetSum,
	}
}

func (k *KillerCageConstraint) Base() *BaseConstraint { return &k.BaseConstraint }

func (k *KillerCageConstraint) PartialAssignmentInvalid(board *Board, assignment map[int]int) bool {
	if DefaultInvalid(board, assignment) {
		return true
	}

	partialSum := 0
	used := make(map[int]bool, len(assignment))
	for _, v := range assignment {
		partialSum += v
		used[v] = true
	}

	if len(assignment) == len(k.Cells) {
		return partialSum != k.TargetSum
	}

	remaining := len(k.Cells) - len(assignment)
	available := make([]int, 0, 9)
	for v := 1; v <= 9; v++ {
		if !used[v] {
			available = append(available, v)
		}
	}
	if remaining > len(available) {
		return true
	}
	sort.Ints(available)

	minRemaining, maxRemaining := 0, 0
	for i := 0; i < remaining; i++ {
		minRemaining += available[i]
		maxRemaining += available[len(available)-1-i]
	}
	if partialSum+minRemaining > k.TargetSum {
		return true
	}
	if partialSum+maxRemaining < k.TargetSum {
		return true
	}
	return false
}

func (k *KillerCageConstraint) Initialise(board *Board) error {
	return DefaultInitialise(board, k)
}

func (k *KillerCageConstraint) QuickUpdate(board *Board) (bool, error) {
	return noRepeatsQuickUpdate(board, &k.BaseConstraint)
}

func (k *KillerCageConstraint) OnCandidatesChanged(board *Board, cellIndex int) error {
	return noRepeatsOnCandidatesChanged(board, &k.BaseConstraint, cellIndex)
}

func (k *KillerCageConstraint) Clone() Constraint {
	return &KillerCageConstraint{BaseConstraint: k.BaseConstraint.clone(), TargetSum: k.TargetSum}
}
