package model

import "github.com/shopspring/decimal"

// NoAccount is the normalized form of an empty or all-zero account number.
const NoAccount = "0"

// Booking is a single ledger line as seen from one account's side.
// A row with a contra account produces two Bookings: the original and a
// mirrored copy with debit and credit swapped. They are independent values,
// not aliases.
type Booking struct {
	ID            string // unique per import; mirror entries carry a "-mirror" suffix
	Date          string // display form, DD.MM.YYYY; empty if unparseable
	DateKey       int64  // serial day count for sorting; 0 if unknown
	Year          int    // fiscal year; 0 if unknown
	Text          string
	Reference     string
	Account       string // normalized primary account number
	ContraAccount string // normalized contra account number, NoAccount if absent
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// Value is the booking's signed contribution to its account: debit minus credit.
func (b Booking) Value() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Mirror returns the contra-account side of the booking: accounts swapped,
// debit and credit swapped, ID suffixed.
func (b Booking) Mirror() Booking {
	m := b
	m.ID = b.ID + "-mirror"
	m.Account = b.ContraAccount
	m.ContraAccount = b.Account
	m.Debit = b.Credit
	m.Credit = b.Debit
	return m
}
