package summary

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/nanosum/nanosum-go/pkg/alignment"
)

// LoadAlignment reads read_id → mapq pairs from an alignment source.
// BAM files (by extension) are decoded with the hts reader; anything
// else is treated as a tab-separated table with read_id and mapq
// columns. The int result is the number of malformed table rows that
// were skipped.
func LoadAlignment(path string) (map[string]uint8, int, error) {
	if strings.HasSuffix(path, ".bam") {
		m, err := alignment.FromBAM(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, 0, &InputNotFoundError{Path: path, Err: err}
			}
			return nil, 0, err
		}
		return m, 0, nil
	}
	return loadAlignmentTable(path)
}

func loadAlignmentTable(path string) (map[string]uint8, int, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, 0, err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("failed to read header of %s: %w", path, err)
		}
		return nil, 0, &SchemaError{Path: path, Missing: []string{"read_id", "mapq"}}
	}

	headerLine := scanner.Text()
	split := newRowSplitter(headerLine)
	header := split(headerLine)

	readIDCol := findColumn(header, "read_id")
	mapqCol := findColumn(header, "mapq")
	var missing []string
	if readIDCol < 0 {
		missing = append(missing, "read_id")
	}
	if mapqCol < 0 {
		missing = append(missing, "mapq")
	}
	if len(missing) > 0 {
		return nil, 0, &SchemaError{Path: path, Missing: missing}
	}

	needed := readIDCol
	if mapqCol > needed {
		needed = mapqCol
	}

	mapq := make(map[string]uint8)
	skipped := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := split(line)
		if len(fields) <= needed {
			skipped++
			continue
		}
		readID := fields[readIDCol]
		if readID == "read_id" {
			continue
		}
		q, err := strconv.ParseUint(fields[mapqCol], 10, 8)
		if err != nil {
			skipped++
			continue
		}
		// A read can appear several times (supplementary lines exported
		// by the aligner); the first occurrence is the primary one.
		if _, seen := mapq[readID]; !seen {
			mapq[readID] = uint8(q)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return mapq, skipped, nil
}
