package model

import "github.com/shopspring/decimal"

// FinancialReportItem is one line of the generated statement: a taxonomy
// node with its computed totals, child lines and directly attached accounts.
// Attached account balances are already sign-normalized for display.
type FinancialReportItem struct {
	ID            string
	Label         string
	Amount        decimal.Decimal
	YearlyAmounts map[int]decimal.Decimal
	Children      []*FinancialReportItem
	Accounts      []*AccountBalance
}

// AmountFor returns the item's amount for a year, zero if the year is absent.
func (i *FinancialReportItem) AmountFor(year int) decimal.Decimal {
	return i.YearlyAmounts[year]
}

// BalanceCheck is the balance-sheet equilibrium result.
type BalanceCheck struct {
	Diff     decimal.Decimal // assets minus liabilities
	Balanced bool
}

// FinancialData is the complete generated report. It is rebuilt from scratch
// whenever the source accounts or the override mapping change.
type FinancialData struct {
	Assets        *FinancialReportItem
	Liabilities   *FinancialReportItem
	ProfitAndLoss *FinancialReportItem
	Check         BalanceCheck
	Unassigned    []*AccountBalance
	Accounts      map[string]*AccountBalance
	Journal       []Booking
	Profit        decimal.Decimal
	YearlyProfit  map[int]decimal.Decimal
	Years         []int // descending, most recent first
}
