package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvmend/csvmend/internal/audit"
	"github.com/csvmend/csvmend/internal/pipeline"
	"github.com/csvmend/csvmend/test/fixtures"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestIntegration_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	gen := fixtures.NewGenerator(tmpDir, 42)
	input, err := gen.Generate("corrupted.csv", 200, 10, 5)
	require.NoError(t, err)

	output := filepath.Join(tmpDir, "repaired.csv")

	pipe, err := pipeline.NewPipeline(pipeline.Config{
		InputFile:  input,
		OutputFile: output,
		Columns:    []string{"description"},
	})
	require.NoError(t, err)

	// No chooser attached: every corrupted row must resolve on score
	// alone or the run fails.
	require.NoError(t, pipe.Run())

	summary := pipe.Summary()
	assert.Equal(t, 200, summary.TotalRows)
	assert.Equal(t, 10, summary.MergedCount)
	assert.Equal(t, 5, summary.PaddedCount)
	assert.Equal(t, 185, summary.PassedCount)
	assert.Equal(t, 0, summary.PromptedCount)

	// The output is a well-formed quoted file: header plus one record
	// per data row, every record at the declared width.
	records := readCSV(t, output)
	require.Len(t, records, 201)
	for i, record := range records {
		assert.Len(t, record, 4, "record %d", i)
	}

	// Repaired descriptions kept their commas.
	merged := 0
	for _, record := range records[1:] {
		if strings.Contains(record[2], ",") {
			merged++
		}
	}
	assert.Equal(t, 10, merged)
}

func TestIntegration_AuditTrail(t *testing.T) {
	tmpDir := t.TempDir()

	gen := fixtures.NewGenerator(tmpDir, 7)
	input, err := gen.Generate("audited.csv", 50, 4, 2)
	require.NoError(t, err)

	store, err := audit.Open(filepath.Join(tmpDir, "audit.db"))
	require.NoError(t, err)
	defer store.Close()

	pipe, err := pipeline.NewPipeline(pipeline.Config{
		InputFile:  input,
		OutputFile: filepath.Join(tmpDir, "repaired.csv"),
		Columns:    []string{"description"},
		AuditStore: store,
	})
	require.NoError(t, err)
	require.NoError(t, pipe.Run())

	entries, err := store.Entries(input)
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	for _, entry := range entries {
		assert.NotEqual(t, "PASS", entry.Action)
		assert.Greater(t, entry.LineNumber, 1)
	}
}
