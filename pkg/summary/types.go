package summary

// ReadRecord is one data row of a sequencing summary table. Only the
// identifier, length and reported quality take part in aggregation;
// Filename is carried along so the flowcell ID can be recovered from it.
type ReadRecord struct {
	ReadID     string
	Length     int64
	MeanQScore float64
	Filename   string
}

// QualityBin counts reads at or above one reported-quality threshold.
type QualityBin struct {
	Label     string
	Threshold int
	Count     int
	Fraction  float64
}

// LengthCoverage is genome coverage restricted to reads at or above a
// minimum length.
type LengthCoverage struct {
	Label     string
	Threshold int64
	Coverage  float64
}

// Metadata carries passthrough sample annotations. Nothing here is
// computed; the values come from a sample sheet or from the summary
// file itself.
type Metadata struct {
	SampleID       string
	Project        string
	Kit            string
	SequencingDate string
	FlowcellID     string
}

// Diagnostics tallies non-fatal input problems seen during one pass.
type Diagnostics struct {
	MalformedRows          int
	MalformedAlignmentRows int
	RepeatedHeaderLines    int
	UnmatchedAlignments    int
}

// SampleSummary is the computed result for one sample.
type SampleSummary struct {
	Label          string
	TotalReads     int
	TotalBases     int64
	MeanLength     float64
	N50            int64
	MeanQScore     float64
	QualityBins    []QualityBin
	Coverage       float64
	LengthCoverage []LengthCoverage
	Whales         int
	AlignedReads   int
	// MeanMapQ is nil when no alignment data was joined, so "no data"
	// stays distinguishable from a mean of zero.
	MeanMapQ    *float64
	Metadata    Metadata
	Diagnostics Diagnostics
}
