package main

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"

	graveyard "github.com/graveyardtable/graveyard"
)

var statsSlotsPerBin int

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsSlotsPerBin, "slots-per-bin", 14, "slots per bin (B)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Read newline-delimited keys from stdin and report table layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

type distanceBucket struct {
	Distance int `json:"distance"`
	Bins     int `json:"bins"`
}

type statsReport struct {
	Size               int              `json:"size"`
	Capacity           int              `json:"capacity"`
	LoadFactor         float64          `json:"load_factor"`
	SearchDistanceHist []distanceBucket `json:"search_distance_histogram"`
}

func runStats() error {
	s := graveyard.NewSet[string](
		graveyard.WithSlotsPerBin[string, struct{}](statsSlotsPerBin),
	)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		s.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	hist := s.SearchDistanceHistogram()
	buckets := make([]distanceBucket, 0, len(hist))
	for d, n := range hist {
		buckets = append(buckets, distanceBucket{Distance: d, Bins: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Distance < buckets[j].Distance })

	report := statsReport{
		Size:               s.Len(),
		Capacity:           s.Capacity(),
		LoadFactor:         s.LoadFactor(),
		SearchDistanceHist: buckets,
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printInfo("size:          %d\n", report.Size)
	printInfo("capacity:      %d\n", report.Capacity)
	printInfo("load factor:   %.4f\n", report.LoadFactor)
	printInfo("search_distance histogram:\n")
	for _, b := range buckets {
		printInfo("  %3d : %d bins\n", b.Distance, b.Bins)
	}
	return nil
}
