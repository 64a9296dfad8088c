// Package samplesheet loads passthrough sample annotations from a YAML
// file. Nothing here is computed; the values go straight through to the
// output table.
package samplesheet

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/nanosum/nanosum-go/pkg/summary"
)

// Sheet mirrors the annotation fields of a run.
type Sheet struct {
	SampleID       string `yaml:"sample_id"`
	Project        string `yaml:"project"`
	Kit            string `yaml:"kit"`
	SequencingDate string `yaml:"sequencing_date"`
	FlowcellID     string `yaml:"flowcell_id"`
}

// Load parses a sample sheet. Callers treat the sheet as optional by
// not calling Load at all; once a path is given, it must be readable.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample sheet: %w", err)
	}
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sample sheet %s: %w", path, err)
	}
	return &s, nil
}

// Metadata converts the sheet to the summary metadata it populates.
func (s *Sheet) Metadata() summary.Metadata {
	return summary.Metadata{
		SampleID:       s.SampleID,
		Project:        s.Project,
		Kit:            s.Kit,
		SequencingDate: s.SequencingDate,
		FlowcellID:     s.FlowcellID,
	}
}
