package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bilanz-dev/bilanz/internal/model"
)

// Header is the CSV header for an exported journal.
const Header = "id,date,year,text,reference,account,contra_account,debit,credit"

const (
	numFields = 9
	colID     = 0
	colDate   = 1
	colYear   = 2
	colText   = 3
	colRef    = 4
	colAcct   = 5
	colContra = 6
	colDebit  = 7
	colCredit = 8
)

// WriteBookings writes bookings as CSV, including the header.
func WriteBookings(w io.Writer, bookings []model.Booking) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range bookings {
		if err := cw.Write(MarshalBooking(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadBookings reads a journal CSV written by WriteBookings.
func ReadBookings(r io.Reader) ([]model.Booking, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var bookings []model.Booking
	for i, rec := range records[1:] {
		b, err := UnmarshalBooking(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// MarshalBooking converts a Booking to a CSV row.
func MarshalBooking(b model.Booking) []string {
	row := make([]string, numFields)
	row[colID] = b.ID
	row[colDate] = b.Date
	row[colYear] = strconv.Itoa(b.Year)
	row[colText] = b.Text
	row[colRef] = b.Reference
	row[colAcct] = b.Account
	row[colContra] = b.ContraAccount
	row[colDebit] = b.Debit.StringFixed(2)
	row[colCredit] = b.Credit.StringFixed(2)
	return row
}

// UnmarshalBooking converts a CSV row to a Booking. The date key is rebuilt
// from the date column.
func UnmarshalBooking(record []string) (model.Booking, error) {
	if len(record) != numFields {
		return model.Booking{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	year, err := strconv.Atoi(record[colYear])
	if err != nil {
		return model.Booking{}, fmt.Errorf("parsing year %q: %w", record[colYear], err)
	}

	_, key, _ := ParseDate(record[colDate])

	return model.Booking{
		ID:            record[colID],
		Date:          record[colDate],
		DateKey:       key,
		Year:          year,
		Text:          record[colText],
		Reference:     record[colRef],
		Account:       record[colAcct],
		ContraAccount: record[colContra],
		Debit:         ParseAmount(record[colDebit]),
		Credit:        ParseAmount(record[colCredit]),
	}, nil
}
