package alignment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestBAM(t *testing.T, records []*sam.Record, refs []*sam.Reference) string {
	t.Helper()

	header, err := sam.NewHeader(nil, refs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.bam")
	f, err := os.Create(path)
	require.NoError(t, err)

	bw, err := bam.NewWriter(f, header, 1)
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, bw.Write(rec))
	}
	require.NoError(t, bw.Close())
	require.NoError(t, f.Close())

	return path
}

func mappedRecord(name string, ref *sam.Reference, pos int, mapq byte, flags sam.Flags) *sam.Record {
	cigar, _ := sam.ParseCigar([]byte("4M"))
	return &sam.Record{
		Name:    name,
		Ref:     ref,
		Pos:     pos,
		MapQ:    mapq,
		Cigar:   cigar,
		Flags:   flags,
		MateRef: nil,
		MatePos: -1,
		TempLen: 0,
		Seq:     sam.NewSeq([]byte("ACGT")),
		Qual:    []byte{30, 30, 30, 30},
	}
}

func TestFromBAM(t *testing.T) {
	ref, err := sam.NewReference("chr1", "", "", 10000, nil, nil)
	require.NoError(t, err)

	records := []*sam.Record{
		mappedRecord("r1", ref, 100, 60, 0),
		mappedRecord("r2", ref, 200, 20, 0),
		// Secondary alignment of r2 must not override the primary mapq.
		mappedRecord("r2", ref, 300, 10, sam.Secondary),
		mappedRecord("r4", ref, 400, 50, sam.Supplementary),
		{
			Name:    "r3",
			Ref:     nil,
			Pos:     -1,
			MapQ:    0,
			Flags:   sam.Unmapped,
			MateRef: nil,
			MatePos: -1,
			Seq:     sam.NewSeq([]byte("ACGT")),
			Qual:    []byte{30, 30, 30, 30},
		},
	}

	path := writeTestBAM(t, records, []*sam.Reference{ref})

	mapq, err := FromBAM(path)
	require.NoError(t, err)

	assert.Len(t, mapq, 2)
	assert.Equal(t, uint8(60), mapq["r1"])
	assert.Equal(t, uint8(20), mapq["r2"])
	assert.NotContains(t, mapq, "r3")
	assert.NotContains(t, mapq, "r4")
}

func TestFromBAMMissingFile(t *testing.T) {
	_, err := FromBAM(filepath.Join(t.TempDir(), "gone.bam"))
	require.Error(t, err)
}
