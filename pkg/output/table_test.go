package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanosum/nanosum-go/pkg/summary"
)

func sampleFixture() *summary.SampleSummary {
	return &summary.SampleSummary{
		Label:      "runA_fast",
		TotalReads: 3,
		TotalBases: 4500,
		MeanLength: 1500,
		N50:        1500,
		MeanQScore: 24.333333,
		QualityBins: []summary.QualityBin{
			{Label: "Q20", Threshold: 20, Count: 2, Fraction: 2.0 / 3.0},
			{Label: "Q25", Threshold: 25, Count: 2, Fraction: 2.0 / 3.0},
			{Label: "Q30", Threshold: 30, Count: 1, Fraction: 1.0 / 3.0},
		},
		Coverage: 4500.0 / 3.3e9,
		LengthCoverage: []summary.LengthCoverage{
			{Label: "100kb+", Threshold: 100_000, Coverage: 0},
		},
		Metadata: summary.Metadata{FlowcellID: "PBE83079", SampleID: "GM12878"},
	}
}

func TestTableWriterTSV(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf, '\t')

	require.NoError(t, tw.Write(sampleFixture()))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	header := strings.Split(lines[0], "\t")
	row := strings.Split(lines[1], "\t")
	require.Equal(t, len(header), len(row))

	cols := make(map[string]string, len(header))
	for i, h := range header {
		cols[h] = row[i]
	}

	assert.Equal(t, "runA_fast", cols["sample"])
	assert.Equal(t, "PBE83079", cols["flowcell_id"])
	assert.Equal(t, "GM12878", cols["sample_id"])
	assert.Equal(t, "3", cols["total_reads"])
	assert.Equal(t, "4500", cols["total_bases"])
	assert.Equal(t, "1500", cols["n50"])
	assert.Equal(t, "2", cols["Q20"])
	assert.Equal(t, "2", cols["Q25"])
	assert.Equal(t, "1", cols["Q30"])
	// No alignment data joined: the cell is empty, not zero.
	assert.Equal(t, "", cols["mean_mapq"])
	assert.Equal(t, "0", cols["malformed_rows"])
}

func TestTableWriterMeanMapQPresent(t *testing.T) {
	s := sampleFixture()
	mapq := 45.0
	s.MeanMapQ = &mapq
	s.AlignedReads = 2

	var buf bytes.Buffer
	tw := NewTableWriter(&buf, '\t')
	require.NoError(t, tw.Write(s))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "45.00")
}

func TestTableWriterSingleHeader(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf, ',')

	require.NoError(t, tw.Write(sampleFixture()))
	require.NoError(t, tw.Write(sampleFixture()))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "sample,"))
}
