package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nanosum",
	Short: "Nanosum - sequencing summary statistics for nanopore runs",
	Long: `Nanosum computes per-sample statistics from Oxford Nanopore
sequencing summary files: read counts, yield, read N50, quality bins,
genome coverage and reported-vs-alignment quality.

Basecalling and alignment happen elsewhere; this tool only consumes
the files they produce.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(plotdataCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nanosum version 0.1.0")
		fmt.Println("Sequencing summary statistics for nanopore runs")
	},
}
