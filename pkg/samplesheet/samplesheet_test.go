package samplesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	content := `sample_id: GM12878
project: EnTEX
kit: SQK-LSK114
sequencing_date: "2024-11-02"
flowcell_id: PBE83079
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	sheet, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "GM12878", sheet.SampleID)
	assert.Equal(t, "EnTEX", sheet.Project)
	assert.Equal(t, "SQK-LSK114", sheet.Kit)
	assert.Equal(t, "2024-11-02", sheet.SequencingDate)
	assert.Equal(t, "PBE83079", sheet.FlowcellID)

	md := sheet.Metadata()
	assert.Equal(t, "GM12878", md.SampleID)
	assert.Equal(t, "PBE83079", md.FlowcellID)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample_id: HG002\n"), 0644))

	sheet, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "HG002", sheet.SampleID)
	assert.Empty(t, sheet.Kit)
	assert.Empty(t, sheet.FlowcellID)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "gone.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
