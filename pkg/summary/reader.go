package summary

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Column aliases seen across basecaller versions. The plain names come
// from post-processed tables, the *_template names straight from the
// basecaller output.
var (
	lengthColumns   = []string{"length", "sequence_length_template"}
	qualityColumns  = []string{"mean_q_score", "mean_qscore_template"}
	filenameColumns = []string{"filename", "filename_pod5"}
)

type summaryColumns struct {
	readID   int
	length   int
	quality  int
	filename int // -1 when absent
}

// rowSplitter splits one table line into fields. Summaries are
// tab-separated, but older post-processed files use runs of spaces; the
// header line decides which convention the file follows.
type rowSplitter func(string) []string

func newRowSplitter(headerLine string) rowSplitter {
	if strings.Contains(headerLine, "\t") {
		return func(s string) []string { return strings.Split(s, "\t") }
	}
	return strings.Fields
}

func findColumn(header []string, names ...string) int {
	for _, want := range names {
		for i, h := range header {
			if h == want {
				return i
			}
		}
	}
	return -1
}

func resolveSummaryColumns(path string, header []string) (summaryColumns, error) {
	cols := summaryColumns{
		readID:   findColumn(header, "read_id"),
		length:   findColumn(header, lengthColumns...),
		quality:  findColumn(header, qualityColumns...),
		filename: findColumn(header, filenameColumns...),
	}

	var missing []string
	if cols.readID < 0 {
		missing = append(missing, "read_id")
	}
	if cols.length < 0 {
		missing = append(missing, "length")
	}
	if cols.quality < 0 {
		missing = append(missing, "mean_q_score")
	}
	if len(missing) > 0 {
		return cols, &SchemaError{Path: path, Missing: missing}
	}

	return cols, nil
}

// ReadSummaryFile parses one sequencing summary table. Data rows that
// fail numeric parsing are skipped and tallied, never fatal; a required
// column missing from the header is a SchemaError.
func ReadSummaryFile(path string) ([]ReadRecord, Diagnostics, error) {
	var diag Diagnostics

	in, err := openInput(path)
	if err != nil {
		return nil, diag, err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, diag, fmt.Errorf("failed to read header of %s: %w", path, err)
		}
		// An empty file has no header at all, so every required column
		// is missing.
		return nil, diag, &SchemaError{Path: path, Missing: []string{"read_id", "length", "mean_q_score"}}
	}

	headerLine := scanner.Text()
	split := newRowSplitter(headerLine)
	cols, err := resolveSummaryColumns(path, split(headerLine))
	if err != nil {
		return nil, diag, err
	}

	var records []ReadRecord
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, ok := parseSummaryRow(split(line), cols, &diag)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, diag, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return records, diag, nil
}

func parseSummaryRow(fields []string, cols summaryColumns, diag *Diagnostics) (ReadRecord, bool) {
	needed := cols.readID
	if cols.length > needed {
		needed = cols.length
	}
	if cols.quality > needed {
		needed = cols.quality
	}
	if len(fields) <= needed {
		diag.MalformedRows++
		return ReadRecord{}, false
	}

	readID := fields[cols.readID]
	// Live basecalling restarts repeat the header mid-file.
	if readID == "read_id" {
		diag.RepeatedHeaderLines++
		return ReadRecord{}, false
	}

	length, err := strconv.ParseInt(fields[cols.length], 10, 64)
	if err != nil || length < 0 {
		diag.MalformedRows++
		return ReadRecord{}, false
	}
	qscore, err := strconv.ParseFloat(fields[cols.quality], 64)
	if err != nil || qscore < 0 {
		diag.MalformedRows++
		return ReadRecord{}, false
	}

	rec := ReadRecord{ReadID: readID, Length: length, MeanQScore: qscore}
	if cols.filename >= 0 && len(fields) > cols.filename {
		rec.Filename = fields[cols.filename]
	}
	return rec, true
}

// flowcellFromRecords recovers the flowcell ID from the first record
// carrying a pod5 filename: the first underscore-delimited field, e.g.
// "PBE83079" from "PBE83079_skip_15726cb4_58deb308_0.pod5".
func flowcellFromRecords(records []ReadRecord) string {
	for _, rec := range records {
		if rec.Filename == "" {
			continue
		}
		return strings.SplitN(rec.Filename, "_", 2)[0]
	}
	return ""
}
