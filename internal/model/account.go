package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AccountBalance is one ledger account with its accumulated balances and the
// bookings recorded against it. Balance is signed: positive means net debit.
type AccountBalance struct {
	Number         string // normalized, leading zeros stripped
	Name           string
	Balance        decimal.Decimal
	YearlyBalances map[int]decimal.Decimal
	Bookings       []Booking // sorted by DateKey ascending
}

// NewAccountBalance creates an empty account with the generic display name.
func NewAccountBalance(number string) *AccountBalance {
	return &AccountBalance{
		Number:         number,
		Name:           "Konto " + number,
		Balance:        decimal.Zero,
		YearlyBalances: make(map[int]decimal.Decimal),
	}
}

// Record adds a booking and folds its signed value into the total and the
// booking's fiscal-year bucket.
func (a *AccountBalance) Record(b Booking) {
	v := b.Value()
	a.Balance = a.Balance.Add(v)
	a.YearlyBalances[b.Year] = a.YearlyBalances[b.Year].Add(v)
	a.Bookings = append(a.Bookings, b)
}

// MergeFrom folds another account with the same number into this one:
// balances are summed, year buckets are summed key-wise, and the booking
// lists are concatenated and re-sorted by date key.
func (a *AccountBalance) MergeFrom(other *AccountBalance) {
	a.Balance = a.Balance.Add(other.Balance)
	for year, v := range other.YearlyBalances {
		a.YearlyBalances[year] = a.YearlyBalances[year].Add(v)
	}
	a.Bookings = append(a.Bookings, other.Bookings...)
	a.SortBookings()
}

// SortBookings orders the booking list by date key ascending. The sort is
// stable so ties keep their ingestion order.
func (a *AccountBalance) SortBookings() {
	sort.SliceStable(a.Bookings, func(i, j int) bool {
		return a.Bookings[i].DateKey < a.Bookings[j].DateKey
	})
}

// Clone returns a deep copy. Report generation clones accounts before sign
// normalization so the caller's map stays untouched.
func (a *AccountBalance) Clone() *AccountBalance {
	c := &AccountBalance{
		Number:         a.Number,
		Name:           a.Name,
		Balance:        a.Balance,
		YearlyBalances: make(map[int]decimal.Decimal, len(a.YearlyBalances)),
		Bookings:       append([]Booking(nil), a.Bookings...),
	}
	for year, v := range a.YearlyBalances {
		c.YearlyBalances[year] = v
	}
	return c
}

// Negate inverts the total balance and every year bucket in place.
func (a *AccountBalance) Negate() {
	a.Balance = a.Balance.Neg()
	for year, v := range a.YearlyBalances {
		a.YearlyBalances[year] = v.Neg()
	}
}
