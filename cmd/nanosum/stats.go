package main

import (
	"fmt"

	"github.com/nanosum/nanosum-go/pkg/summary"
	"github.com/spf13/cobra"
)

var (
	statsAlignment      string
	statsGenomeSize     float64
	statsThresholds     []int
	statsIncludeUnal    bool
	statsCountMalformed bool
	statsSampleSheet    string
	statsFormat         string
	statsLabel          string
)

var statsCmd = &cobra.Command{
	Use:   "stats <sequencing_summary.txt[.gz]>",
	Short: "Compute summary statistics for one sequencing run",
	Long: `Compute summary statistics for one sequencing summary file.

The summary table must carry read_id, length (or
sequence_length_template) and mean_q_score (or mean_qscore_template)
columns. Rows that fail numeric parsing are skipped and tallied, never
fatal; a required column missing from the header is.

An optional alignment input joins per-read mapping quality by read_id:
either a tab-separated table with read_id and mapq columns, or a BAM
file produced by the aligner. Without it the mean mapq column stays
empty rather than zero.

Examples:
  nanosum stats sequencing_summary.txt
  nanosum stats --genome-size 3.1e9 run/sequencing_summary.txt.gz
  nanosum stats --alignment sample.bam --sample-sheet sample.yaml sequencing_summary.txt
  nanosum stats --format report sequencing_summary.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(statsGenomeSize, statsThresholds, statsIncludeUnal, statsSampleSheet, statsLabel)
		if err != nil {
			return err
		}
		opts.CountMalformedInTotal = statsCountMalformed

		s, err := summary.Compute(args[0], statsAlignment, opts)
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}
		return writeSample(s, statsFormat)
	},
}

func init() {
	defaults := loadEnvDefaults()

	statsCmd.Flags().StringVar(&statsAlignment, "alignment", "",
		"Alignment input: TSV with read_id/mapq columns, or a BAM file")
	statsCmd.Flags().Float64Var(&statsGenomeSize, "genome-size", defaults.GenomeSize,
		"Genome size in bases, the denominator for coverage")
	statsCmd.Flags().IntSliceVar(&statsThresholds, "quality-thresholds", defaults.QualityThresholds,
		"Quality bin thresholds (reads with mean_q_score >= T)")
	statsCmd.Flags().BoolVar(&statsIncludeUnal, "include-unaligned", false,
		"Count reads absent from the alignment input as mapq 0 in the mean")
	statsCmd.Flags().BoolVar(&statsCountMalformed, "count-malformed", false,
		"Include skipped malformed rows in the total read count")
	statsCmd.Flags().StringVar(&statsSampleSheet, "sample-sheet", "",
		"YAML sample sheet with passthrough metadata (sample_id, kit, ...)")
	statsCmd.Flags().StringVar(&statsFormat, "format", defaults.Format,
		"Output format: tsv, csv or report")
	statsCmd.Flags().StringVar(&statsLabel, "label", "",
		"Sample label for the output row (default: the summary path)")
}
