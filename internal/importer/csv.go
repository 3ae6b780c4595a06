package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bilanz-dev/bilanz/internal/ledger"
)

// CSVParser reads header-keyed CSV exports. DATEV-style exports use a
// semicolon delimiter; the header line decides which one applies.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV file and returns one row per record, keyed by the
// header line. Short records leave the remaining columns empty.
func (p *CSVParser) Parse(r io.Reader) ([]ledger.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(string(data)))
	cr.Comma = detectDelimiter(string(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
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

// detectDelimiter picks semicolon when the first line favors it.
func detectDelimiter(data string) rune {
	line := data
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
