// Command graveyardctl is a small inspection and benchmarking tool for the
// graveyard package, in the spirit of hivectl's subcommand layout
// (github.com/joshuapare/hivekit/cmd/hivectl).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:     "graveyardctl",
	Short:   "Inspect and benchmark graveyard hash tables",
	Long:    "graveyardctl builds graveyard.Map/Set instances and reports on their layout, load factor, and rehash behavior.",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}

func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
