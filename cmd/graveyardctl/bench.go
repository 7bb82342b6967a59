package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	graveyard "github.com/graveyardtable/graveyard"
)

var (
	benchN           int
	benchSlotsPerBin int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchN, "n", 100_000, "number of distinct string keys to insert")
	cmd.Flags().IntVar(&benchSlotsPerBin, "slots-per-bin", 14, "slots per bin (B)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Insert n keys and report rehash/resize counts and final load factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

type benchReport struct {
	N           int     `json:"n"`
	SlotsPerBin int     `json:"slots_per_bin"`
	Capacity    int     `json:"capacity"`
	LoadFactor  float64 `json:"load_factor"`
	RehashCount int     `json:"rehash_count"`
	ResizeCount int     `json:"resize_count"`
}

func runBench() error {
	rec := &graveyard.Recorder{}
	m := graveyard.NewMap[string, int](
		graveyard.WithSlotsPerBin[string, int](benchSlotsPerBin),
		graveyard.WithTelemetry[string, int](rec),
	)

	printVerbose("inserting %d keys...\n", benchN)
	var buf []byte
	for i := 0; i < benchN; i++ {
		buf = strconv.AppendInt(append(buf[:0], "key"...), int64(i), 10)
		m.Put(string(buf), i)
	}

	report := benchReport{
		N:           benchN,
		SlotsPerBin: benchSlotsPerBin,
		Capacity:    m.Capacity(),
		LoadFactor:  m.LoadFactor(),
		RehashCount: rec.RehashCount,
		ResizeCount: rec.ResizeCount,
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printInfo("keys inserted:  %d\n", report.N)
	printInfo("slots per bin:  %d\n", report.SlotsPerBin)
	printInfo("capacity:       %d\n", report.Capacity)
	printInfo("load factor:    %.4f\n", report.LoadFactor)
	printInfo("rehash count:   %d\n", report.RehashCount)
	return nil
}
