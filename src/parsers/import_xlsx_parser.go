// Package parsers turns uploaded spreadsheet files into plain import
// rows. It knows nothing about the catalog; validation of quantities
// and SKUs belongs to the import reconciler.
package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"warehouse-ledger/src/services"
)

// Expected column order. A header row containing "sku" in the first
// cell is skipped.
const (
	colSKU = iota
	colName
	colQuantity
	colUnit
)

// ParseImportXLSX reads the first sheet of an xlsx upload into raw
// import rows. Row numbers are 1-based spreadsheet positions so error
// reports line up with what the operator sees.
func ParseImportXLSX(r io.Reader) ([]services.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := make([]services.ImportRow, 0, len(rows))
	for idx, row := range rows {
		if idx == 0 && strings.EqualFold(cell(row, colSKU), "sku") {
			continue
		}
		if len(row) == 0 {
			continue
		}
		sku := cell(row, colSKU)
		name := cell(row, colName)
		qty := cell(row, colQuantity)
		unit := cell(row, colUnit)
		if sku == "" && name == "" && qty == "" {
			continue
		}
		out = append(out, services.ImportRow{
			Row:      idx + 1,
			SKU:      sku,
			Name:     name,
			Quantity: qty,
			Unit:     unit,
		})
	}

	return out, nil
}
