package main

import (
	"fmt"

	"github.com/nanosum/nanosum-go/pkg/summary"
	"github.com/spf13/cobra"
)

var (
	aggAlignment   string
	aggGenomeSize  float64
	aggThresholds  []int
	aggIncludeUnal bool
	aggSampleSheet string
	aggFormat      string
	aggLabel       string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <summary1> [summary2 ...]",
	Short: "Pool several summary files into one sample row",
	Long: `Treat several sequencing summary files as a single pooled sample,
for instance one flowcell basecalled in parts, and emit one statistics
row for the pool.

Files that cannot be read or lack the required columns are skipped
with a warning; the command fails only when no file can be used.

Examples:
  nanosum aggregate run1/sequencing_summary.txt run2/sequencing_summary.txt
  nanosum aggregate --alignment pooled.bam --label sampleA part1.txt.gz part2.txt.gz`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(aggGenomeSize, aggThresholds, aggIncludeUnal, aggSampleSheet, aggLabel)
		if err != nil {
			return err
		}

		s, err := summary.ComputeAggregate(args, aggAlignment, opts)
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}
		return writeSample(s, aggFormat)
	},
}

func init() {
	defaults := loadEnvDefaults()

	aggregateCmd.Flags().StringVar(&aggAlignment, "alignment", "",
		"Alignment input: TSV with read_id/mapq columns, or a BAM file")
	aggregateCmd.Flags().Float64Var(&aggGenomeSize, "genome-size", defaults.GenomeSize,
		"Genome size in bases, the denominator for coverage")
	aggregateCmd.Flags().IntSliceVar(&aggThresholds, "quality-thresholds", defaults.QualityThresholds,
		"Quality bin thresholds (reads with mean_q_score >= T)")
	aggregateCmd.Flags().BoolVar(&aggIncludeUnal, "include-unaligned", false,
		"Count reads absent from the alignment input as mapq 0 in the mean")
	aggregateCmd.Flags().StringVar(&aggSampleSheet, "sample-sheet", "",
		"YAML sample sheet with passthrough metadata (sample_id, kit, ...)")
	aggregateCmd.Flags().StringVar(&aggFormat, "format", defaults.Format,
		"Output format: tsv, csv or report")
	aggregateCmd.Flags().StringVar(&aggLabel, "label", "",
		"Sample label for the output row (default: the joined input paths)")
}
