// Package output renders computed sample summaries as delimited tables
// and chart-ready data files. Plot rendering itself happens elsewhere;
// this package only produces the tabular data plots are drawn from.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/nanosum/nanosum-go/pkg/summary"
)

// TableWriter emits one header and one row per sample. The quality-bin
// and length-coverage columns come from the first sample written, so
// every sample in one table must be computed with the same thresholds.
type TableWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewTableWriter writes rows delimited by delim (',' or '\t').
func NewTableWriter(w io.Writer, delim rune) *TableWriter {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	return &TableWriter{w: cw}
}

// Write appends one sample row, emitting the header first if needed.
func (t *TableWriter) Write(s *summary.SampleSummary) error {
	if !t.wroteHeader {
		if err := t.w.Write(headerRow(s)); err != nil {
			return err
		}
		t.wroteHeader = true
	}
	return t.w.Write(dataRow(s))
}

// Flush writes any buffered rows to the underlying writer.
func (t *TableWriter) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

func headerRow(s *summary.SampleSummary) []string {
	header := []string{
		"sample", "flowcell_id", "sample_id", "project", "kit", "sequencing_date",
		"total_reads", "total_bases", "mean_length", "n50", "mean_q_score",
	}
	for _, bin := range s.QualityBins {
		header = append(header, bin.Label)
	}
	header = append(header, "coverage")
	for _, lc := range s.LengthCoverage {
		header = append(header, lc.Label)
	}
	header = append(header, "whales", "aligned_reads", "mean_mapq", "malformed_rows")
	return header
}

func dataRow(s *summary.SampleSummary) []string {
	row := []string{
		s.Label,
		s.Metadata.FlowcellID,
		s.Metadata.SampleID,
		s.Metadata.Project,
		s.Metadata.Kit,
		s.Metadata.SequencingDate,
		strconv.Itoa(s.TotalReads),
		strconv.FormatInt(s.TotalBases, 10),
		formatFloat(s.MeanLength),
		strconv.FormatInt(s.N50, 10),
		formatFloat(s.MeanQScore),
	}
	for _, bin := range s.QualityBins {
		row = append(row, strconv.Itoa(bin.Count))
	}
	row = append(row, formatFloat(s.Coverage))
	for _, lc := range s.LengthCoverage {
		row = append(row, formatFloat(lc.Coverage))
	}
	row = append(row, strconv.Itoa(s.Whales), strconv.Itoa(s.AlignedReads))
	if s.MeanMapQ != nil {
		row = append(row, formatFloat(*s.MeanMapQ))
	} else {
		// Absent, not zero: no alignment data was joined.
		row = append(row, "")
	}
	row = append(row, strconv.Itoa(s.Diagnostics.MalformedRows))
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
