// Package ledger turns raw tabular rows into bookings and per-account
// balances, expanding each row onto its contra account so every account's
// balance stays independently auditable.
package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bilanz-dev/bilanz/internal/model"
)

// Row is one tabulated source row: column label to raw cell value. Cell
// values arrive as strings regardless of their spreadsheet type.
type Row map[string]string

// Result is the outcome of ingesting one or more sources.
type Result struct {
	Accounts map[string]*model.AccountBalance // keyed by normalized account number
	Bookings []model.Booking                  // primary bookings in row order, mirrors excluded
}

// NewResult returns an empty ingestion result.
func NewResult() *Result {
	return &Result{Accounts: make(map[string]*model.AccountBalance)}
}

// Fallback column names used when no header matches the vocabulary term.
const (
	fallbackAccount   = "Kontonummer"
	fallbackContra    = "Gegenkontonummer"
	fallbackDebit     = "Soll-Betrag"
	fallbackCredit    = "Haben-Betrag"
	fallbackText      = "Text"
	fallbackDate      = "Datum"
	fallbackReference = "Belegnummer 1"
)

// findColumn returns the first column label containing term,
// case-insensitive. Labels are scanned in sorted order so resolution is
// deterministic when several match.
func findColumn(row Row, term string) (string, bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	term = strings.ToLower(term)
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), term) {
			return k, true
		}
	}
	return "", false
}

// accountColumn resolves the primary account column: a label containing
// "konto" that is not the contra-account column.
func accountColumn(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "konto") && !strings.Contains(lk, "gegen") {
			return k
		}
	}
	return fallbackAccount
}

func column(row Row, term, fallback string) string {
	if k, ok := findColumn(row, term); ok {
		return k
	}
	return fallback
}

// ParseAmount converts a raw cell value to a decimal amount. Both European
// (1.234,56) and US (1,234.56) conventions are accepted; the rightmost of
// comma and dot decides which separator is the decimal one. Unparseable or
// empty values yield zero, never an error.
func ParseAmount(val string) decimal.Decimal {
	clean := strings.TrimSpace(val)
	if clean == "" {
		return decimal.Zero
	}
	hasComma := strings.Contains(clean, ",")
	hasDot := strings.Contains(clean, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case hasComma:
		// A lone comma is a decimal comma.
		clean = strings.Replace(clean, ",", ".", 1)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeAccount canonicalizes an account number: grouping punctuation and
// whitespace removed, leading zeros stripped. An empty or all-zero value
// normalizes to model.NoAccount.
func NormalizeAccount(val string) string {
	s := strings.TrimSpace(val)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return model.NoAccount
	}
	return s
}

// serialEpochOffset is the day count between the spreadsheet serial epoch
// (1899-12-30) and the Unix epoch.
const serialEpochOffset = 25569

// minSerial guards against small integers being mistaken for serial dates.
const minSerial = 10000

// ParseDate interprets a raw cell as either a dot-separated day-month-year
// string or a spreadsheet serial day count. Unrecognized values yield an
// empty display date, a zero sort key and year 0.
func ParseDate(val string) (display string, key int64, year int) {
	s := strings.TrimSpace(val)
	if s == "" {
		return "", 0, 0
	}

	if strings.Contains(s, ".") && !isNumeric(s) {
		parts := strings.Split(s, ".")
		if len(parts) == 3 {
			if y, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil {
				return s, 0, y
			}
		}
		return s, 0, 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", 0, 0
	}
	serial := int64(f)
	if serial <= minSerial {
		return "", 0, 0
	}
	t := time.Unix((serial-serialEpochOffset)*86400, 0).UTC()
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year()), serial, t.Year()
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Ingest converts rows into bookings and account balances. Each admitted row
// is attached to its primary account, and mirrored onto the contra account
// when one is present. idPrefix keeps booking IDs unique across appended
// imports.
func Ingest(rows []Row, idPrefix string) *Result {
	res := NewResult()

	for idx, row := range rows {
		accountRaw := row[accountColumn(row)]
		debitRaw := row[column(row, "soll", fallbackDebit)]
		creditRaw := row[column(row, "haben", fallbackCredit)]

		debit := ParseAmount(debitRaw)
		credit := ParseAmount(creditRaw)
		account := NormalizeAccount(accountRaw)

		// A row naming no account and moving no money carries nothing.
		if account == model.NoAccount && debit.IsZero() && credit.IsZero() {
			continue
		}

		contra := NormalizeAccount(row[column(row, "gegen", fallbackContra)])
		display, key, year := ParseDate(row[column(row, "datum", fallbackDate)])

		id := fmt.Sprintf("row-%d", idx+1)
		if idPrefix != "" {
			id = fmt.Sprintf("%s-%s", idPrefix, id)
		}

		b := model.Booking{
			ID:            id,
			Date:          display,
			DateKey:       key,
			Year:          year,
			Text:          row[column(row, "text", fallbackText)],
			Reference:     row[column(row, "beleg", fallbackReference)],
			Account:       account,
			ContraAccount: contra,
			Debit:         debit,
			Credit:        credit,
		}
		res.Bookings = append(res.Bookings, b)

		res.account(account).Record(b)
		if contra != model.NoAccount {
			res.account(contra).Record(b.Mirror())
		}
	}

	for _, acc := range res.Accounts {
		acc.SortBookings()
	}
	return res
}

func (r *Result) account(number string) *model.AccountBalance {
	acc, ok := r.Accounts[number]
	if !ok {
		acc = model.NewAccountBalance(number)
		r.Accounts[number] = acc
	}
	return acc
}

// Merge folds another ingestion result into this one. Accounts present in
// both are summed (balances, year buckets) with their booking lists
// concatenated and re-sorted; new accounts are inserted as-is. The rule is
// commutative and associative, so any import order yields the same state.
func (r *Result) Merge(other *Result) {
	for number, acc := range other.Accounts {
		if existing, ok := r.Accounts[number]; ok {
			existing.MergeFrom(acc)
		} else {
			r.Accounts[number] = acc
		}
	}
	r.Bookings = append(r.Bookings, other.Bookings...)
}
