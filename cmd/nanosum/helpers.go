package main

import (
	"fmt"
	"os"

	"github.com/nanosum/nanosum-go/pkg/output"
	"github.com/nanosum/nanosum-go/pkg/samplesheet"
	"github.com/nanosum/nanosum-go/pkg/summary"
)

func buildOptions(genomeSize float64, thresholds []int, includeUnaligned bool, sheetPath, label string) (summary.Options, error) {
	opts := summary.DefaultOptions()
	opts.GenomeSize = genomeSize
	opts.QualityThresholds = thresholds
	opts.IncludeUnalignedInMeanMapQ = includeUnaligned
	opts.Label = label

	if sheetPath != "" {
		sheet, err := samplesheet.Load(sheetPath)
		if err != nil {
			return opts, err
		}
		opts.Metadata = sheet.Metadata()
	}
	return opts, nil
}

func writeSample(s *summary.SampleSummary, format string) error {
	switch format {
	case "report":
		printReport(s)
		return nil
	case "tsv", "csv":
		tw := output.NewTableWriter(os.Stdout, delimiterFor(format))
		if err := tw.Write(s); err != nil {
			return err
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (expected tsv, csv or report)", format)
	}
}

func delimiterFor(format string) rune {
	if format == "csv" {
		return ','
	}
	return '\t'
}

func printReport(s *summary.SampleSummary) {
	fmt.Println("===========================================")
	fmt.Println("Sequencing Run Statistics")
	fmt.Println("===========================================")
	fmt.Println()

	fmt.Printf("Sample: %s\n", s.Label)
	if s.Metadata.FlowcellID != "" {
		fmt.Printf("Flowcell: %s\n", s.Metadata.FlowcellID)
	}
	if s.Metadata.SampleID != "" {
		fmt.Printf("Sample ID: %s\n", s.Metadata.SampleID)
	}
	if s.Metadata.Project != "" {
		fmt.Printf("Project: %s\n", s.Metadata.Project)
	}
	if s.Metadata.Kit != "" {
		fmt.Printf("Kit: %s\n", s.Metadata.Kit)
	}
	if s.Metadata.SequencingDate != "" {
		fmt.Printf("Sequencing date: %s\n", s.Metadata.SequencingDate)
	}
	fmt.Println()

	fmt.Println("Reads:")
	fmt.Printf("  Total reads: %d\n", s.TotalReads)
	fmt.Printf("  Total bases: %d\n", s.TotalBases)
	fmt.Printf("  Mean length: %.1f bp\n", s.MeanLength)
	fmt.Printf("  Read N50: %d bp\n", s.N50)
	fmt.Printf("  Mean Q score: %.2f\n", s.MeanQScore)
	fmt.Println()

	fmt.Println("Quality bins:")
	for _, bin := range s.QualityBins {
		fmt.Printf("  %s: %d reads (%.2f%%)\n", bin.Label, bin.Count, bin.Fraction*100)
	}
	fmt.Println()

	fmt.Println("Coverage:")
	fmt.Printf("  Genome coverage: %.2fx\n", s.Coverage)
	for _, lc := range s.LengthCoverage {
		fmt.Printf("  %s: %.2fx\n", lc.Label, lc.Coverage)
	}
	fmt.Printf("  Whales (reads >= 1 Mb): %d\n", s.Whales)

	if s.MeanMapQ != nil {
		fmt.Println()
		fmt.Println("Alignment:")
		if s.TotalReads > 0 {
			fmt.Printf("  Aligned reads: %d (%.2f%%)\n", s.AlignedReads,
				float64(s.AlignedReads)/float64(s.TotalReads)*100)
		} else {
			fmt.Printf("  Aligned reads: %d\n", s.AlignedReads)
		}
		fmt.Printf("  Mean mapQ: %.2f\n", *s.MeanMapQ)
	}

	d := s.Diagnostics
	if d.MalformedRows > 0 || d.MalformedAlignmentRows > 0 || d.UnmatchedAlignments > 0 || d.RepeatedHeaderLines > 0 {
		fmt.Println()
		fmt.Println("Diagnostics:")
		if d.MalformedRows > 0 {
			fmt.Printf("  Malformed summary rows skipped: %d\n", d.MalformedRows)
		}
		if d.RepeatedHeaderLines > 0 {
			fmt.Printf("  Repeated header lines skipped: %d\n", d.RepeatedHeaderLines)
		}
		if d.MalformedAlignmentRows > 0 {
			fmt.Printf("  Malformed alignment rows skipped: %d\n", d.MalformedAlignmentRows)
		}
		if d.UnmatchedAlignments > 0 {
			fmt.Printf("  Alignment records without a summary read: %d\n", d.UnmatchedAlignments)
		}
	}
}
