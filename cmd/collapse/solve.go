package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adrian-a27/collapse.go/puzzle"
	"github.com/adrian-a27/collapse.go/storage"
	"github.com/adrian-a27/collapse.go/wfc"
)

var (
	puzzleFile string
	useCache   bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a Sudoku puzzle given as an argument or read from a file.

Puzzles are given in row-major order, either as whitespace-separated
numbers or as one character per tile, with "." / "_" / "0" marking
empty tiles.  Examples:

  collapse solve "53..7.... 6..195... .98....6. 8...6...3 4..8.3..1 7...2...6 .6....28. ...419..5 ....8..79"
  collapse solve --file puzzle.txt --seed 42 --cache`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&puzzleFile, "file", "f", "", "Read the puzzle from a file")
	solveCmd.Flags().BoolVar(&useCache, "cache", false,
		"Consult and populate the solution cache, and log the solve")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	defer startProfile()()

	text, err := puzzleText(args)
	if err != nil {
		return err
	}
	values, err := puzzle.ParseValues(text)
	if err != nil {
		return err
	}
	board, err := puzzle.NewFromValues(values)
	if err != nil {
		return err
	}
	start := board.Summary()

	if useCache {
		if id, _, err := storage.Connect(); err != nil {
			log.WithError(err).Warn("Storage unavailable; solving without it")
			useCache = false
		} else {
			defer storage.Close()
			log.WithField("cache", id).Debug("Storage connected")
			if solved, err := storage.CachedSolution(start); err != nil {
				log.WithError(err).Warn("Cache lookup failed")
			} else if solved != nil {
				log.Info("Solution found in cache")
				return printSummary(solved)
			}
		}
	}

	began := time.Now()
	solved, outcome, stats := board.Solve(newRNG())
	elapsed := time.Since(began)
	log.WithFields(logrus.Fields{
		"outcome":    outcome,
		"steps":      stats.Steps,
		"backtracks": stats.Backtracks,
		"elapsed":    elapsed,
	}).Info("Solve finished")

	if useCache {
		rec := &storage.SolveRecord{
			Fingerprint: storage.Fingerprint(start),
			SideLength:  board.SideLength(),
			Outcome:     outcome.String(),
			Steps:       stats.Steps,
			Backtracks:  stats.Backtracks,
			Elapsed:     elapsed,
		}
		if err := storage.RecordSolve(rec); err != nil {
			log.WithError(err).Warn("Couldn't log the solve")
		}
	}

	if outcome != wfc.Collapsed {
		return fmt.Errorf("puzzle has no solution (%v after %d steps)", outcome, stats.Steps)
	}
	if useCache {
		if err := storage.CacheSolution(start, solved.Summary()); err != nil {
			log.WithError(err).Warn("Couldn't cache the solution")
		}
	}
	fmt.Print(solved.String())
	return nil
}

// puzzleText fetches the puzzle text from the argument or the
// --file flag.
func puzzleText(args []string) (string, error) {
	if puzzleFile != "" {
		bytes, err := os.ReadFile(puzzleFile)
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("no puzzle given: pass one as an argument or use --file")
}

// printSummary renders a summary as a board grid.
func printSummary(s *puzzle.Summary) error {
	board, err := puzzle.NewFromSummary(s)
	if err != nil {
		return err
	}
	fmt.Print(board.String())
	return nil
}
