package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adrian-a27/collapse.go/puzzle"
	"github.com/adrian-a27/collapse.go/wfc"
)

var boardSize int

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a complete random Sudoku grid",
		Long: `Generate a complete random grid by collapsing an empty board.

Examples:
  collapse gen
  collapse gen --size 16 --seed 7`,
		RunE: runGen,
	}
	genCmd.Flags().IntVarP(&boardSize, "size", "s", 9,
		"Board side length (must be a perfect square)")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	defer startProfile()()

	board, err := puzzle.New(boardSize, nil)
	if err != nil {
		return err
	}
	solved, outcome, stats := board.Solve(newRNG())
	log.WithFields(logrus.Fields{
		"outcome":    outcome,
		"steps":      stats.Steps,
		"backtracks": stats.Backtracks,
	}).Info("Generation finished")
	if outcome != wfc.Collapsed {
		return fmt.Errorf("generation failed: %v", outcome)
	}
	fmt.Print(solved.String())
	return nil
}
