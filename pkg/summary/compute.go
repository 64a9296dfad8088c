// Package summary computes per-sample statistics from Oxford Nanopore
// sequencing summary tables: read counts, yield, N50, quality bins,
// genome coverage and, when alignment data is supplied, mean mapping
// quality joined by read_id.
//
// The computation is a single stateless pass: inputs are read once,
// aggregated and discarded. Nothing here is concurrent and nothing is
// retried; all inputs are local files.
package summary

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultGenomeSize is the human genome in bases, the usual coverage
// denominator for these runs.
const DefaultGenomeSize = 3.3e9

// whaleLength is the length from which a read counts as a whale.
const whaleLength = 1_000_000

// Options configures one summary computation. The zero value of a field
// falls back to its default.
type Options struct {
	// GenomeSize is the denominator for coverage, in bases.
	GenomeSize float64
	// QualityThresholds are the bin boundaries for reported quality.
	// They may arrive in any order; output keeps the caller's order.
	QualityThresholds []int
	// LengthThresholds restrict coverage to reads at or above each
	// length. Nil selects the defaults; an empty non-nil slice disables
	// the columns.
	LengthThresholds []int64
	// IncludeUnalignedInMeanMapQ counts reads absent from the alignment
	// input as mapq 0 instead of excluding them from the mean.
	IncludeUnalignedInMeanMapQ bool
	// CountMalformedInTotal adds skipped rows to TotalReads. They never
	// contribute to length or quality aggregates either way.
	CountMalformedInTotal bool
	// Label names the sample in the output row.
	Label string
	// Metadata is copied through to the result untouched, except that an
	// empty FlowcellID is filled in from the summary file when possible.
	Metadata Metadata
}

// DefaultOptions returns the stock configuration: human genome size,
// Q20/Q25/Q30 bins and the usual long-read length thresholds.
func DefaultOptions() Options {
	return Options{
		GenomeSize:        DefaultGenomeSize,
		QualityThresholds: []int{20, 25, 30},
		LengthThresholds:  defaultLengthThresholds(),
	}
}

func defaultLengthThresholds() []int64 {
	return []int64{100_000, 200_000, 300_000, 400_000, 500_000, 1_000_000}
}

func (o *Options) normalize() {
	if o.GenomeSize <= 0 {
		o.GenomeSize = DefaultGenomeSize
	}
	if len(o.QualityThresholds) == 0 {
		o.QualityThresholds = []int{20, 25, 30}
	}
	if o.LengthThresholds == nil {
		o.LengthThresholds = defaultLengthThresholds()
	}
}

// Compute runs the statistics transform for one sample. alignmentPath
// may be empty, in which case MeanMapQ is absent from the result.
func Compute(summaryPath, alignmentPath string, opts Options) (*SampleSummary, error) {
	opts.normalize()

	records, diag, err := ReadSummaryFile(summaryPath)
	if err != nil {
		return nil, err
	}

	var mapq map[string]uint8
	if alignmentPath != "" {
		var skipped int
		mapq, skipped, err = LoadAlignment(alignmentPath)
		if err != nil {
			return nil, err
		}
		diag.MalformedAlignmentRows = skipped
	}

	s := summarize(records, mapq, opts, diag)
	if s.Label == "" {
		s.Label = summaryPath
	}
	return s, nil
}

// ComputeAggregate pools several summary files into one sample, for
// instance one flowcell basecalled in parts. Files that cannot be read
// or lack required columns are skipped with a warning so a single bad
// dump does not sink the batch; the computation fails only when no file
// can be used at all.
func ComputeAggregate(summaryPaths []string, alignmentPath string, opts Options) (*SampleSummary, error) {
	opts.normalize()

	var (
		records   []ReadRecord
		diag      Diagnostics
		flowcells = make(map[string]bool)
		loaded    int
	)
	for _, path := range summaryPaths {
		recs, d, err := ReadSummaryFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			continue
		}
		loaded++
		diag.MalformedRows += d.MalformedRows
		diag.RepeatedHeaderLines += d.RepeatedHeaderLines
		if fc := flowcellFromRecords(recs); fc != "" {
			flowcells[fc] = true
		}
		records = append(records, recs...)
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no readable summary file among %d inputs", len(summaryPaths))
	}

	var mapq map[string]uint8
	if alignmentPath != "" {
		var skipped int
		var err error
		mapq, skipped, err = LoadAlignment(alignmentPath)
		if err != nil {
			return nil, err
		}
		diag.MalformedAlignmentRows = skipped
	}

	s := summarize(records, mapq, opts, diag)
	if s.Metadata.FlowcellID == "" && len(flowcells) > 0 {
		// All parts should name the same flowcell, but keep every
		// distinct prefix visible when they do not.
		ids := make([]string, 0, len(flowcells))
		for id := range flowcells {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		s.Metadata.FlowcellID = strings.Join(ids, ";")
	}
	if s.Label == "" {
		s.Label = strings.Join(summaryPaths, ",")
	}
	return s, nil
}

func summarize(records []ReadRecord, mapq map[string]uint8, opts Options, diag Diagnostics) *SampleSummary {
	s := &SampleSummary{
		Label:    opts.Label,
		Metadata: opts.Metadata,
	}

	lengths := make([]int64, 0, len(records))
	var qualitySum float64
	for _, rec := range records {
		lengths = append(lengths, rec.Length)
		s.TotalBases += rec.Length
		qualitySum += rec.MeanQScore
	}

	valid := len(records)
	s.TotalReads = valid
	if opts.CountMalformedInTotal {
		s.TotalReads += diag.MalformedRows
	}
	if valid > 0 {
		s.MeanLength = float64(s.TotalBases) / float64(valid)
		s.MeanQScore = qualitySum / float64(valid)
	}

	s.N50 = n50(lengths, s.TotalBases)
	s.Coverage = float64(s.TotalBases) / opts.GenomeSize
	s.QualityBins = qualityBins(records, opts.QualityThresholds, valid)
	s.LengthCoverage, s.Whales = lengthCoverage(lengths, opts.LengthThresholds, opts.GenomeSize)

	if mapq != nil {
		var sum int64
		matched := 0
		for _, rec := range records {
			if q, ok := mapq[rec.ReadID]; ok {
				sum += int64(q)
				matched++
			}
		}
		s.AlignedReads = matched

		denom := matched
		if opts.IncludeUnalignedInMeanMapQ {
			denom = valid
		}
		if denom > 0 {
			mean := float64(sum) / float64(denom)
			s.MeanMapQ = &mean
		}

		if unmatched := len(mapq) - matched; unmatched > 0 {
			diag.UnmatchedAlignments = unmatched
			fmt.Fprintf(os.Stderr, "warning: %d alignment records had no matching read_id in the summary\n", unmatched)
		}
	}

	if s.Metadata.FlowcellID == "" {
		s.Metadata.FlowcellID = flowcellFromRecords(records)
	}

	s.Diagnostics = diag
	return s
}

// n50 is the length at which the cumulative sum over the descending
// length distribution first reaches half of the total bases. Zero when
// there are no reads.
func n50(lengths []int64, totalBases int64) int64 {
	if len(lengths) == 0 || totalBases == 0 {
		return 0
	}

	sorted := make([]int64, len(lengths))
	copy(sorted, lengths)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	var cumulative int64
	for _, l := range sorted {
		cumulative += l
		if 2*cumulative >= totalBases {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// qualityBins counts reads at or above each caller-supplied threshold.
// Counting is >= per threshold, so the counts are monotone
// non-increasing in the threshold regardless of caller ordering; the
// output keeps the caller's ordering and labels.
func qualityBins(records []ReadRecord, thresholds []int, validReads int) []QualityBin {
	asc := make([]int, len(thresholds))
	copy(asc, thresholds)
	sort.Ints(asc)

	counts := make(map[int]int, len(asc))
	for _, t := range asc {
		n := 0
		for _, rec := range records {
			if rec.MeanQScore >= float64(t) {
				n++
			}
		}
		counts[t] = n
	}

	bins := make([]QualityBin, 0, len(thresholds))
	for _, t := range thresholds {
		bin := QualityBin{
			Label:     fmt.Sprintf("Q%d", t),
			Threshold: t,
			Count:     counts[t],
		}
		if validReads > 0 {
			bin.Fraction = float64(bin.Count) / float64(validReads)
		}
		bins = append(bins, bin)
	}
	return bins
}

// lengthCoverage reports genome coverage restricted to reads at or
// above each length threshold, plus the whale count.
func lengthCoverage(lengths []int64, thresholds []int64, genomeSize float64) ([]LengthCoverage, int) {
	whales := 0
	for _, l := range lengths {
		if l >= whaleLength {
			whales++
		}
	}

	out := make([]LengthCoverage, 0, len(thresholds))
	for _, t := range thresholds {
		var bases int64
		for _, l := range lengths {
			if l >= t {
				bases += l
			}
		}
		out = append(out, LengthCoverage{
			Label:     lengthLabel(t),
			Threshold: t,
			Coverage:  float64(bases) / genomeSize,
		})
	}
	return out, whales
}

// lengthLabel renders 100000 as "100kb+" and 1000000 as "1Mb+".
func lengthLabel(t int64) string {
	switch {
	case t >= 1_000_000 && t%1_000_000 == 0:
		return fmt.Sprintf("%dMb+", t/1_000_000)
	case t >= 1000 && t%1000 == 0:
		return fmt.Sprintf("%dkb+", t/1000)
	default:
		return fmt.Sprintf("%db+", t)
	}
}
