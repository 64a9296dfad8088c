package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nanosum/nanosum-go/pkg/summary"
)

type histBin struct {
	reads int
	bases int64
}

// WriteLengthHistogram bins read lengths at binWidth bases and writes a
// bin_start, bin_end, reads, bases table. Empty bins are omitted.
func WriteLengthHistogram(w io.Writer, records []summary.ReadRecord, binWidth int64) error {
	if binWidth <= 0 {
		return fmt.Errorf("bin width must be positive, got %d", binWidth)
	}

	bins := make(map[int64]*histBin)
	for _, rec := range records {
		start := (rec.Length / binWidth) * binWidth
		b := bins[start]
		if b == nil {
			b = &histBin{}
			bins[start] = b
		}
		b.reads++
		b.bases += rec.Length
	}

	starts := make([]int64, 0, len(bins))
	for s := range bins {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"bin_start", "bin_end", "reads", "bases"}); err != nil {
		return err
	}
	for _, start := range starts {
		b := bins[start]
		row := []string{
			strconv.FormatInt(start, 10),
			strconv.FormatInt(start+binWidth, 10),
			strconv.Itoa(b.reads),
			strconv.FormatInt(b.bases, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteQualityBins writes the per-threshold quality bin table for one
// computed sample.
func WriteQualityBins(w io.Writer, s *summary.SampleSummary) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"label", "threshold", "reads", "fraction"}); err != nil {
		return err
	}
	for _, bin := range s.QualityBins {
		row := []string{
			bin.Label,
			strconv.Itoa(bin.Threshold),
			strconv.Itoa(bin.Count),
			strconv.FormatFloat(bin.Fraction, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteQualityComparison writes reported basecall quality against
// alignment mapping quality for every read present in both inputs.
func WriteQualityComparison(w io.Writer, records []summary.ReadRecord, mapq map[string]uint8) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"read_id", "length", "mean_q_score", "mapq"}); err != nil {
		return err
	}
	for _, rec := range records {
		q, ok := mapq[rec.ReadID]
		if !ok {
			continue
		}
		row := []string{
			rec.ReadID,
			strconv.FormatInt(rec.Length, 10),
			strconv.FormatFloat(rec.MeanQScore, 'f', 2, 64),
			strconv.Itoa(int(q)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
