package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bilanz-dev/bilanz/internal/ledger"
)

// XLSXParser reads the first sheet of a spreadsheet workbook.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads a workbook and returns one row per data line of the first
// sheet, keyed by the header line. Cells are read raw so date serials and
// unformatted numbers reach ingestion unchanged.
func (p *XLSXParser) Parse(r io.Reader) ([]ledger.Row, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	header := records[0]
	rows := make([]ledger.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(ledger.Row, len(header))
		for i, label := range header {
			if i < len(rec) {
				row[label] = rec[i]
			} else {
				row[label] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
