package main

import (
	"math/rand"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	seed       int64
	cpuProfile bool
)

var rootCmd = &cobra.Command{
	Use:   "collapse",
	Short: "Solve and generate Sudoku boards by wavefunction collapse",
	Long: `collapse runs a wavefunction-collapse constraint solver over
Sudoku boards: it repeatedly commits the least-constrained tile
to a random candidate, propagates the consequences, and
backtracks out of contradictions.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Random seed (0 means a nondeterministic time seed)")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false,
		"Write a CPU profile to the current directory")
}

// newRNG builds the solver's random source from the --seed flag.
// A zero seed keeps the default nondeterministic behavior by
// returning nil, which the driver replaces with a time-seeded
// source.
func newRNG() *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// startProfile honors the --profile flag; the caller defers the
// returned stop function.
func startProfile() func() {
	if !cpuProfile {
		return func() {}
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	return p.Stop
}
