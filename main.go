package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eftil/variant-sudoku-solver/lib"
	"github.com/eftil/variant-sudoku-solver/lib/logger"
	"github.com/eftil/variant-sudoku-solver/lib/observer"
	"github.com/rs/zerolog"
)

func main() {
	logger.SetLevel(zerolog.InfoLevel)
	logger.SetOutput(os.Stdout)

	fmt.Println("=== Variant Sudoku Solver - Comprehensive Demo ===")

	fmt.Println("\n=== Example 1: Classic Sudoku ===")
	runClassicDemo()

	fmt.Println("\n=== Example 2: Variant Sudoku (Killer Cage + German Whisper + Renban) ===")
	runVariantDemo()
}

func runClassicDemo() {
	board, err := lib.NewBoard()
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	progress := observer.NewProgressObserver()
	board.AddObserver(progress)

	givens := [9][9]int{
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
	if err := lib.ValidateGivensGrid(givens); err != nil {
		log.Fatalf("malformed givens grid: %v", err)
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if d := givens[row][col]; d != 0 {
				if err := board.GivenDigit(row, col, d); err != nil {
					log.Fatalf("rejected given at r%dc%d: %v", row+1, col+1, err)
				}
			}
		}
	}

	if err := board.Solve(); err != nil {
		log.Fatalf("solve failed: %v", err)
	}

	fmt.Println(board.String())
	fmt.Printf("cells finalised on this board (givens included): %d\n", progress.SolvedCount())
}

func runVariantDemo() {
	board, err := lib.NewBoard()
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	killerCells := []int{0, 1, 9} // r1c1, r1c2, r2c1
	if err := board.AddConstraint(lib.NewKillerCageConstraint(killerCells, 15)); err != nil {
		log.Fatalf("failed to add killer cage: %v", err)
	}

	whisperCells := []int{4, 13, 22} // vertical line down column 5 from the top
	if err := board.AddConstraint(lib.NewGermanWhisperConstraint(whisperCells)); err != nil {
		log.Fatalf("failed to add German whisper line: %v", err)
	}

	renbanCells := []int{36, 37, 38} // middle row, columns 1-3
	if err := board.AddConstraint(lib.NewRenbanConstraint(renbanCells)); err != nil {
		log.Fatalf("failed to add Renban line: %v", err)
	}

	if err := board.GivenDigit(0, 0, 5); err != nil {
		log.Fatalf("rejected given: %v", err)
	}
	if err := board.GivenDigit(0, 1, 6); err != nil {
		log.Fatalf("rejected given: %v", err)
	}

	fmt.Println("\nActive constraints:")
	for i, c := range board.Constraints() {
		fmt.Printf("%d. %s\n", i+1, c.Base().Name)
	}

	fmt.Println("\nBoard state after seeding:")
	fmt.Println(board.String())
}
