package main

import (
	"fmt"
	"os"

	"github.com/nanosum/nanosum-go/pkg/output"
	"github.com/nanosum/nanosum-go/pkg/summary"
	"github.com/spf13/cobra"
)

var (
	plotKind       string
	plotAlignment  string
	plotBinWidth   int64
	plotThresholds []int
)

var plotdataCmd = &cobra.Command{
	Use:   "plotdata <sequencing_summary.txt[.gz]>",
	Short: "Emit chart-ready tables for an external plotting step",
	Long: `Emit the tabular data the run plots are drawn from. Rendering is
left to an external plotting tool; this command only produces tables.

Kinds:
  length-hist      read-length histogram (bin_start, bin_end, reads, bases)
  quality-bins     reads per quality threshold
  quality-compare  reported mean_q_score against alignment mapq (needs --alignment)

Examples:
  nanosum plotdata sequencing_summary.txt
  nanosum plotdata --kind length-hist --bin-width 5000 sequencing_summary.txt
  nanosum plotdata --kind quality-compare --alignment sample.bam sequencing_summary.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch plotKind {
		case "length-hist":
			records, diag, err := summary.ReadSummaryFile(args[0])
			if err != nil {
				return err
			}
			warnMalformed(diag)
			return output.WriteLengthHistogram(os.Stdout, records, plotBinWidth)

		case "quality-bins":
			opts := summary.DefaultOptions()
			opts.QualityThresholds = plotThresholds
			s, err := summary.Compute(args[0], "", opts)
			if err != nil {
				return err
			}
			warnMalformed(s.Diagnostics)
			return output.WriteQualityBins(os.Stdout, s)

		case "quality-compare":
			if plotAlignment == "" {
				return fmt.Errorf("--alignment is required for quality-compare")
			}
			records, diag, err := summary.ReadSummaryFile(args[0])
			if err != nil {
				return err
			}
			warnMalformed(diag)
			mapq, skipped, err := summary.LoadAlignment(plotAlignment)
			if err != nil {
				return err
			}
			if skipped > 0 {
				fmt.Fprintf(os.Stderr, "warning: skipped %d malformed alignment rows\n", skipped)
			}
			return output.WriteQualityComparison(os.Stdout, records, mapq)

		default:
			return fmt.Errorf("unknown kind %q (expected length-hist, quality-bins or quality-compare)", plotKind)
		}
	},
}

func warnMalformed(diag summary.Diagnostics) {
	if diag.MalformedRows > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d malformed rows\n", diag.MalformedRows)
	}
}

func init() {
	defaults := loadEnvDefaults()

	plotdataCmd.Flags().StringVar(&plotKind, "kind", "length-hist",
		"Table to emit: length-hist, quality-bins or quality-compare")
	plotdataCmd.Flags().StringVar(&plotAlignment, "alignment", "",
		"Alignment input for quality-compare: TSV or BAM")
	plotdataCmd.Flags().Int64Var(&plotBinWidth, "bin-width", 1000,
		"Histogram bin width in bases")
	plotdataCmd.Flags().IntSliceVar(&plotThresholds, "quality-thresholds", defaults.QualityThresholds,
		"Quality bin thresholds for quality-bins")
}
