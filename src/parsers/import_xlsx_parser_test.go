package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseImportXLSX(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"SKU", "Name", "Quantity", "Unit"},
		{"WH-001", "Packing Tape", 36, "pcs"},
		{"WH-002", "Bubble Wrap", "2", "Box"},
		{},
		{"WH-003", "Thermal Label", "not-a-number", "pcs"},
	})

	rows, err := ParseImportXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Row numbers are spreadsheet positions so they survive the skipped
	// header and blank row.
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, "WH-001", rows[0].SKU)
	assert.Equal(t, "Packing Tape", rows[0].Name)
	assert.Equal(t, "36", rows[0].Quantity)
	assert.Equal(t, "pcs", rows[0].Unit)

	assert.Equal(t, 3, rows[1].Row)
	assert.Equal(t, "2", rows[1].Quantity)
	assert.Equal(t, "Box", rows[1].Unit)

	// The parser does not judge quantities; that is the reconciler's job.
	assert.Equal(t, 5, rows[2].Row)
	assert.Equal(t, "not-a-number", rows[2].Quantity)
}

func TestParseImportXLSXWithoutHeader(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"WH-001", "Packing Tape", "10", "pcs"},
	})

	rows, err := ParseImportXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "WH-001", rows[0].SKU)
}

func TestParseImportXLSXShortRows(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"sku", "name", "quantity", "unit"},
		{"WH-001", "Tape Only"},
	})

	rows, err := ParseImportXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tape Only", rows[0].Name)
	assert.Empty(t, rows[0].Quantity)
	assert.Empty(t, rows[0].Unit)
}

func TestParseImportXLSXRejectsGarbage(t *testing.T) {
	_, err := ParseImportXLSX(strings.NewReader("definitely not a zip archive"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open xlsx")
}
