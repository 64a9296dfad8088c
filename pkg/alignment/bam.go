// Package alignment extracts per-read mapping quality from aligner
// output so it can be joined against a sequencing summary by read name.
package alignment

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// FromBAM reads read-name → mapping-quality pairs from a BAM file.
// Only primary mapped records contribute: secondary and supplementary
// records would double-count a read, and unmapped records carry no
// usable mapq.
func FromBAM(path string) (map[string]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open BAM file: %w", err)
	}
	defer f.Close()

	br, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create BAM reader for %s: %w", path, err)
	}
	defer br.Close()

	mapq := make(map[string]uint8)
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BAM record: %w", err)
		}
		if rec.Flags&(sam.Secondary|sam.Supplementary|sam.Unmapped) != 0 {
			continue
		}
		if _, seen := mapq[rec.Name]; !seen {
			mapq[rec.Name] = rec.MapQ
		}
	}

	return mapq, nil
}
