package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adrian-a27/collapse.go/storage"
)

var logLimit int

func init() {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show the most recent solve records, newest first",
		RunE:  runLog,
	}
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 10, "Number of records to show")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	_, id, err := storage.Connect()
	if err != nil {
		return err
	}
	defer storage.Close()
	log.WithField("database", id).Debug("Storage connected")

	recs, err := storage.RecentSolves(logLimit)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Printf("%s  %3dx%-3d %-9s %6d steps %4d backtracks %10s  %s\n",
			rec.SolvedAt.Format("2006-01-02 15:04:05"),
			rec.SideLength, rec.SideLength, rec.Outcome,
			rec.Steps, rec.Backtracks, rec.Elapsed, rec.Fingerprint)
	}
	return nil
}
