package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nanosum/nanosum-go/pkg/output"
	"github.com/nanosum/nanosum-go/pkg/summary"
	"github.com/spf13/cobra"
)

var (
	scanGenomeSize float64
	scanThresholds []int
	scanShortname  bool
	scanAppend     string
	scanNoAppend   bool
	scanFormat     string
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir-or-glob>",
	Short: "Discover summary files under matching directories and tabulate them",
	Long: `Search each directory matching the pattern recursively for
sequencing summary files (names starting with "sequencing_summary" or
ending in "_summary.txt.gz") and emit one table row per file.

By default the sample label is shortened to the second path element,
the run directory in a <project>/<run>/... layout, with an optional
suffix appended to tell basecalling modes apart.

Files that cannot be parsed are skipped with a warning so one broken
run does not sink the whole scan.

Examples:
  nanosum scan /data/runs
  nanosum scan --genome-size 3.1e9 "*EnTEX*"
  nanosum scan --append sup --format tsv /data/runs
  nanosum scan --no-append --shortname=false /data/runs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := summary.Discover(args[0])
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no sequencing summary files under %q", args[0])
		}

		appendStr := scanAppend
		if scanNoAppend {
			appendStr = ""
		}

		tw := output.NewTableWriter(os.Stdout, delimiterFor(scanFormat))
		written := 0
		for _, path := range files {
			opts, err := buildOptions(scanGenomeSize, scanThresholds, false, "", sampleLabel(path, scanShortname, appendStr))
			if err != nil {
				return err
			}
			s, err := summary.Compute(path, "", opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
				continue
			}
			if err := tw.Write(s); err != nil {
				return err
			}
			written++
		}
		if written == 0 {
			return fmt.Errorf("no usable sequencing summary files under %q", args[0])
		}
		return tw.Flush()
	},
}

// sampleLabel shortens a path to its second slash-delimited element and
// appends the optional suffix.
func sampleLabel(path string, shortname bool, appendStr string) string {
	label := path
	if shortname {
		parts := strings.Split(path, "/")
		if len(parts) >= 2 {
			label = parts[1]
		}
	}
	if appendStr != "" {
		label = label + "_" + appendStr
	}
	return label
}

func init() {
	defaults := loadEnvDefaults()

	scanCmd.Flags().Float64Var(&scanGenomeSize, "genome-size", defaults.GenomeSize,
		"Genome size in bases, the denominator for coverage")
	scanCmd.Flags().IntSliceVar(&scanThresholds, "quality-thresholds", defaults.QualityThresholds,
		"Quality bin thresholds (reads with mean_q_score >= T)")
	scanCmd.Flags().BoolVar(&scanShortname, "shortname", true,
		"Label samples by the second path element instead of the full path")
	scanCmd.Flags().StringVar(&scanAppend, "append", "fast",
		"Suffix appended to each sample label")
	scanCmd.Flags().BoolVar(&scanNoAppend, "no-append", false,
		"Do not append any suffix (overrides --append)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "csv",
		"Output format: tsv or csv")
}
